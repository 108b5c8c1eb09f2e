package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/handover"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyPacked is returned by Pack when the order has already been
	// packed. Handlers treat it as a successful no-op so a retried packing
	// request never reduces stock twice.
	ErrOrderAlreadyPacked = errors.New("order is already packed")
)

// Order is the aggregate root of the fulfillment engine. It owns the status
// state machine, the custody codes, the nested return workflow, and the
// append-only status history.
//
// Order follows these invariants:
//   - Status transitions follow the closed transition table; custody-moving
//     edges only exist as dedicated methods gated by a code check
//   - Every transition appends exactly one history entry
//   - Item snapshots, history, and the creation-time charges never change
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id       kernel.UUID
	source   Source
	status   Status
	customer Customer
	items    []Item

	total          float64
	taxAmount      float64
	shippingCost   float64
	discountAmount float64
	transaction    Transaction

	// assignedShipmentID is the staff member who packed the order (nil until packed)
	assignedShipmentID *kernel.UUID

	// assignedDeliveryID is the staff member carrying the package (nil until handover)
	assignedDeliveryID *kernel.UUID

	handoverCode       handover.Code
	deliveryOTP        handover.Code
	returnOTP          handover.Code
	returnHandoverCode handover.Code

	returnStatus        ReturnStatus
	returnType          ReturnType
	returnReason        string
	refundPaymentMethod PaymentMethod

	failureReason string
	deliveryImage string
	returnImage   string

	history   []HistoryEntry
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to place
// an order, ensuring all business invariants hold from the start.
//
// Online orders start in Pending and mint the delivery OTP immediately, so the
// customer holds their half of the doorstep secret from the confirmation
// message onward. POS orders are fulfilled on the spot: they are born
// Delivered with payment collected, and COD is not a valid method for them.
func NewOrder(
	source Source,
	customer Customer,
	items []Item,
	total, taxAmount, shippingCost, discountAmount float64,
	method PaymentMethod,
	codeLength int,
) (*Order, error) {
	if err := source.Validate(); err != nil {
		return nil, err
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if err := validateCharges(total, taxAmount, shippingCost, discountAmount); err != nil {
		return nil, err
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}

	if source == Online && customer.ShippingAddress() == "" {
		return nil, errs.NewValueIsRequiredError("shipping address")
	}
	if source == POS && method.IsCOD() {
		return nil, errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("COD is not available for POS orders"))
	}

	transaction, err := NewTransaction(total, method)
	if err != nil {
		return nil, err
	}

	order := &Order{
		id:             kernel.NewUUID(),
		source:         source,
		customer:       customer,
		items:          items,
		total:          total,
		taxAmount:      taxAmount,
		shippingCost:   shippingCost,
		discountAmount: discountAmount,
		transaction:    transaction,
		createdAt:      time.Now().UTC(),
		isConstructed:  true,
	}

	switch source {
	case POS:
		order.status = Delivered
		if err := order.appendHistory(Delivered, "sold in store"); err != nil {
			return nil, err
		}
	default:
		order.status = Pending
		otp, err := handover.Generate(codeLength)
		if err != nil {
			return nil, err
		}
		order.deliveryOTP = otp
		if err := order.appendHistory(Pending, "order placed"); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without side effects.
// It trusts the stored state but still rejects structurally invalid data.
func RestoreOrder(
	id kernel.UUID,
	source Source,
	status Status,
	customer Customer,
	items []Item,
	total, taxAmount, shippingCost, discountAmount float64,
	transaction Transaction,
	assignedShipmentID, assignedDeliveryID *kernel.UUID,
	handoverCode, deliveryOTP, returnOTP, returnHandoverCode handover.Code,
	returnStatus ReturnStatus,
	returnType ReturnType,
	returnReason string,
	refundPaymentMethod PaymentMethod,
	failureReason, deliveryImage, returnImage string,
	history []HistoryEntry,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		source.Validate(),
		status.Validate(),
		customer.Validate(),
		transaction.Validate(),
		returnStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                  id,
		source:              source,
		status:              status,
		customer:            customer,
		items:               items,
		total:               total,
		taxAmount:           taxAmount,
		shippingCost:        shippingCost,
		discountAmount:      discountAmount,
		transaction:         transaction,
		assignedShipmentID:  assignedShipmentID,
		assignedDeliveryID:  assignedDeliveryID,
		handoverCode:        handoverCode,
		deliveryOTP:         deliveryOTP,
		returnOTP:           returnOTP,
		returnHandoverCode:  returnHandoverCode,
		returnStatus:        returnStatus,
		returnType:          returnType,
		returnReason:        returnReason,
		refundPaymentMethod: refundPaymentMethod,
		failureReason:       failureReason,
		deliveryImage:       deliveryImage,
		returnImage:         returnImage,
		history:             history,
		createdAt:           createdAt,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Source returns the sales channel the order came from.
func (o *Order) Source() Source { return o.source }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Customer returns the customer snapshot.
func (o *Order) Customer() Customer { return o.customer }

// Items returns the order lines.
func (o *Order) Items() []Item { return o.items }

// Total returns the order total charged to the customer.
func (o *Order) Total() float64 { return o.total }

// TaxAmount returns the tax portion of the total.
func (o *Order) TaxAmount() float64 { return o.taxAmount }

// ShippingCost returns the shipping portion of the total.
func (o *Order) ShippingCost() float64 { return o.shippingCost }

// DiscountAmount returns the discount applied to the order.
func (o *Order) DiscountAmount() float64 { return o.discountAmount }

// Transaction returns the payment record.
func (o *Order) Transaction() Transaction { return o.transaction }

// AssignedShipment returns the packing staff member's ID, nil if not packed.
func (o *Order) AssignedShipment() *kernel.UUID { return o.assignedShipmentID }

// AssignedDelivery returns the delivery staff member's ID, nil until handover.
func (o *Order) AssignedDelivery() *kernel.UUID { return o.assignedDeliveryID }

// HandoverCode returns the packing handover code, zero until packed.
func (o *Order) HandoverCode() handover.Code { return o.handoverCode }

// DeliveryOTP returns the doorstep OTP, zero for POS orders.
func (o *Order) DeliveryOTP() handover.Code { return o.deliveryOTP }

// ReturnOTP returns the customer-side return code, zero until a return is approved.
func (o *Order) ReturnOTP() handover.Code { return o.returnOTP }

// ReturnHandoverCode returns the warehouse-side return code, zero until a return is approved.
func (o *Order) ReturnHandoverCode() handover.Code { return o.returnHandoverCode }

// ReturnStatus returns the state of the nested return workflow.
func (o *Order) ReturnStatus() ReturnStatus { return o.returnStatus }

// ReturnType returns what the customer wants back, NoReturnType if no return.
func (o *Order) ReturnType() ReturnType { return o.returnType }

// ReturnReason returns the customer's stated reason for the return.
func (o *Order) ReturnReason() string { return o.returnReason }

// RefundPaymentMethod returns the instrument the refund was paid with.
func (o *Order) RefundPaymentMethod() PaymentMethod { return o.refundPaymentMethod }

// FailureReason returns the reason of the last failed delivery attempt.
func (o *Order) FailureReason() string { return o.failureReason }

// DeliveryImage returns the proof-of-delivery photo reference.
func (o *Order) DeliveryImage() string { return o.deliveryImage }

// ReturnImage returns the returned-goods photo reference.
func (o *Order) ReturnImage() string { return o.returnImage }

// History returns the append-only status history in insertion order.
func (o *Order) History() []HistoryEntry { return o.history }

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Pack marks the order as packed, assigns both staff members, and mints the
// handover code.
//
// Business rules:
//   - Only Pending or Processing orders can be packed
//   - Both the packing (shipment) and the carrying (delivery) staff member
//     are assigned up front; the delivery assignment is confirmed later by
//     the handover code check
//   - A second packing attempt returns ErrOrderAlreadyPacked, which callers
//     treat as success without touching stock again
//
// The caller decrements stock for each order item in the same transaction;
// TransitionStockEffect names the ledger change type.
func (o *Order) Pack(shipmentStaffID, deliveryStaffID kernel.UUID, codeLength int) error {
	if err := errors.Join(shipmentStaffID.Validate(), deliveryStaffID.Validate()); err != nil {
		return err
	}

	if o.status == Packed && o.assignedShipmentID != nil {
		return ErrOrderAlreadyPacked
	}
	if o.status != Pending && o.status != Processing {
		return errs.NewInvalidTransitionError(o.status.String(), Packed.String())
	}

	code, err := handover.Generate(codeLength)
	if err != nil {
		return err
	}

	o.handoverCode = code
	o.assignedShipmentID = &shipmentStaffID
	o.assignedDeliveryID = &deliveryStaffID
	return o.moveTo(Packed, "packed and assigned for delivery")
}

// VerifyHandover transfers custody from shipment to delivery staff. The
// delivery staff member proves presence by reading the handover code off the
// package label.
//
// Business rules:
//   - The order must be Packed or Handover
//   - The supplied code must match the minted handover code exactly;
//     a mismatch leaves the order untouched and the code valid
func (o *Order) VerifyHandover(code string) error {
	if o.status != Packed && o.status != Handover {
		return errs.NewInvalidTransitionError(o.status.String(), Shipped.String())
	}
	if !o.handoverCode.Matches(code) {
		return errs.NewCodeMismatchError("handover code")
	}

	return o.moveTo(Shipped, "handed over to delivery staff")
}

// ConfirmDelivery completes the doorstep handover.
//
// Business rules:
//   - The order must be somewhere between Shipped and OutForDelivery; rural
//     routes skip the carrier scan points, so any status in that chain counts
//   - COD and photo preconditions are checked before the OTP comparison,
//     each with its own error, so the courier's app can say what is missing
//   - The supplied OTP must match the customer's delivery OTP
//   - Confirming a COD order marks the transaction Paid
func (o *Order) ConfirmDelivery(otp string, paymentCollected bool, image string, requirePhoto bool) error {
	switch o.status {
	case Shipped, PickedCarrier, InTransit, OutForDelivery:
	default:
		return errs.NewInvalidTransitionError(o.status.String(), Delivered.String())
	}
	if o.transaction.Method().IsCOD() && !paymentCollected {
		return errs.NewPreconditionUnmetError("payment must be collected for COD orders")
	}
	if requirePhoto && image == "" {
		return errs.NewPreconditionUnmetError("delivery photo is required")
	}
	if !o.deliveryOTP.Matches(otp) {
		return errs.NewCodeMismatchError("delivery OTP")
	}

	if o.transaction.Method().IsCOD() {
		o.transaction.markPaid()
	}
	o.deliveryImage = image
	o.failureReason = ""
	return o.moveTo(Delivered, "delivered to customer")
}

// MarkDeliveryFailed records a failed delivery attempt. The order stays with
// the assigned delivery staff and may be retried via OutForDelivery.
func (o *Order) MarkDeliveryFailed(reason string) error {
	if o.status != OutForDelivery {
		return errs.NewInvalidTransitionError(o.status.String(), DeliveryFailed.String())
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("failure reason")
	}

	o.failureReason = reason
	return o.moveTo(DeliveryFailed, reason)
}

// Cancel moves the order to the terminal Cancelled state.
//
// The caller restores stock in the same transaction when the order was in a
// stock-committed status; TransitionStockEffect names the ledger change type.
func (o *Order) Cancel(note string) error {
	if !o.status.CanCancel() {
		return errs.NewInvalidTransitionError(o.status.String(), Cancelled.String())
	}
	if note == "" {
		note = "order cancelled"
	}
	return o.moveTo(Cancelled, note)
}

// UpdateStatus performs one of the free transitions, i.e. a status change that
// moves no physical custody. Gated edges are rejected even if an operator
// names them here; they only exist as dedicated methods.
func (o *Order) UpdateStatus(to Status, note string) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !o.status.CanMoveFreely(to) {
		return errs.NewInvalidTransitionError(o.status.String(), to.String())
	}
	return o.moveTo(to, note)
}

// RequestReturn opens the return workflow for a delivered order.
//
// Business rules:
//   - The order must be Delivered with no return already in flight
//   - At least one line item's policy must permit a return
func (o *Order) RequestReturn(returnType ReturnType, reason string) error {
	if err := returnType.Validate(); err != nil {
		return err
	}
	if o.status != Delivered || o.returnStatus != NoReturn {
		return errs.NewInvalidTransitionError(o.status.String(), ReturnRequested.String())
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("return reason")
	}

	returnable := false
	for _, item := range o.items {
		if item.IsReturnable() {
			returnable = true
			break
		}
	}
	if !returnable {
		return errs.NewPreconditionUnmetError("no item in this order is returnable")
	}

	o.returnStatus = ReturnPending
	o.returnType = returnType
	o.returnReason = reason
	return o.moveTo(ReturnRequested, reason)
}

// ApproveReturn accepts a requested return and mints the two return codes:
// the OTP the customer reads to the driver, and the handover code the driver
// reads to the warehouse.
func (o *Order) ApproveReturn(codeLength int) error {
	if o.status != ReturnRequested || o.returnStatus != ReturnPending {
		return errs.NewInvalidTransitionError(o.status.String(), ReturnProcessing.String())
	}

	otp, err := handover.Generate(codeLength)
	if err != nil {
		return err
	}
	code, err := handover.Generate(codeLength)
	if err != nil {
		return err
	}

	o.returnOTP = otp
	o.returnHandoverCode = code
	o.returnStatus = ReturnApproved
	return o.moveTo(ReturnProcessing, "return approved")
}

// RejectReturn declines a requested return and puts the order back to
// Delivered. The return request stays on record as rejected.
func (o *Order) RejectReturn(note string) error {
	if o.status != ReturnRequested || o.returnStatus != ReturnPending {
		return errs.NewInvalidTransitionError(o.status.String(), Delivered.String())
	}
	if note == "" {
		note = "return rejected"
	}

	o.returnStatus = ReturnRejected
	return o.moveTo(Delivered, note)
}

// VerifyReturnCollection records that the driver collected the goods from the
// customer, gated by the customer-side return OTP. The optional image is the
// driver's photo of the goods as collected.
func (o *Order) VerifyReturnCollection(otp, image string) error {
	if o.status != ReturnProcessing {
		return errs.NewInvalidTransitionError(o.status.String(), ReturnedWithDriver.String())
	}
	if !o.returnOTP.Matches(otp) {
		return errs.NewCodeMismatchError("return OTP")
	}

	o.returnImage = image
	return o.moveTo(ReturnedWithDriver, "collected from customer")
}

// VerifyReturnToWarehouse records that the warehouse received the goods back,
// gated by the driver-side return handover code.
//
// The caller restores stock for each order item in the same transaction;
// TransitionStockEffect names the ledger change type.
func (o *Order) VerifyReturnToWarehouse(code string) error {
	if o.status != ReturnedWithDriver {
		return errs.NewInvalidTransitionError(o.status.String(), Returned.String())
	}
	if !o.returnHandoverCode.Matches(code) {
		return errs.NewCodeMismatchError("return handover code")
	}

	if err := o.moveTo(Returned, "received at warehouse"); err != nil {
		return err
	}
	// A refund paid out while the goods were still in transit closes the
	// order the moment they arrive.
	if o.returnStatus == ReturnCompleted {
		return o.moveTo(Refunded, "refund already paid out")
	}
	return nil
}

// CompleteRefund attests that the money went back to the customer. The engine
// moves no money itself; this transition records an admin's word for it.
//
// Refunding is independent of the physical-return chain: the admin may pay
// out as soon as a return request exists. The order reaches Refunded once the
// goods are back at the warehouse; an earlier payout is recorded in history
// and on the transaction while the custody chain keeps running.
func (o *Order) CompleteRefund(refundMethod PaymentMethod) error {
	switch o.returnStatus {
	case ReturnPending, ReturnApproved:
	default:
		return errs.NewInvalidTransitionError(o.status.String(), Refunded.String())
	}
	if err := refundMethod.Validate(); err != nil {
		return err
	}

	o.refundPaymentMethod = refundMethod
	o.returnStatus = ReturnCompleted
	o.transaction.markRefunded()
	if o.status == Returned {
		return o.moveTo(Refunded, "refund paid out")
	}
	return o.appendHistory(o.status, "refund paid out")
}

// moveTo sets the new status and appends the matching history entry. All
// transitions funnel through here so history can never miss one.
func (o *Order) moveTo(to Status, note string) error {
	if err := o.appendHistory(to, note); err != nil {
		return err
	}
	o.status = to
	return nil
}

func (o *Order) appendHistory(status Status, note string) error {
	entry, err := NewHistoryEntry(status, note)
	if err != nil {
		return err
	}
	o.history = append(o.history, entry)
	return nil
}

func validateCharges(total, taxAmount, shippingCost, discountAmount float64) error {
	for name, v := range map[string]float64{
		"total":           total,
		"tax amount":      taxAmount,
		"shipping cost":   shippingCost,
		"discount amount": discountAmount,
	} {
		if v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name+" is invalid",
				fmt.Errorf("%f is negative", v))
		}
	}
	return nil
}
