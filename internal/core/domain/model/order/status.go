package order

import (
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a closed transition table so orders follow the fulfillment
// workflow: packing, custody handovers, delivery, and the nested return
// chain.
//
// State transitions (simplified):
//
//	Pending/Processing ──> Packed ──> Handover ──> Shipped ──> ... ──> OutForDelivery ──> Delivered
//	                                                                          │
//	                                                                          └──> DeliveryFailed
//	Delivered ──> ReturnRequested ──> ReturnProcessing ──> ReturnedWithDriver ──> Returned ──> Refunded
//	(non-terminal states) ──> Cancelled
//
// Transitions that move physical custody are gated by handover codes and are
// only reachable through the dedicated aggregate methods, never through the
// generic status update.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly placed online order.
	Pending

	// Processing indicates the order has been acknowledged by staff.
	Processing

	// Packed indicates the goods have been picked from the shelf; stock is
	// decremented on entry and a handover code is minted.
	Packed

	// Handover indicates the package is waiting to be handed to delivery staff.
	Handover

	// Shipped indicates delivery staff have taken custody (handover code verified).
	Shipped

	// PickedCarrier indicates an external carrier has picked up the package.
	PickedCarrier

	// InTransit indicates the package is moving through the carrier network.
	InTransit

	// OutForDelivery indicates the package is on the last leg to the customer.
	OutForDelivery

	// Delivered indicates the customer has received the goods (OTP verified).
	Delivered

	// DeliveryFailed indicates a delivery attempt failed; the order stays
	// assigned and may be retried.
	DeliveryFailed

	// Cancelled is a terminal state; entering it from a stock-committed
	// status restores the stock.
	Cancelled

	// ReturnRequested indicates the customer asked to return a delivered order.
	ReturnRequested

	// ReturnProcessing indicates an admin approved the return and the return
	// codes were minted.
	ReturnProcessing

	// ReturnedWithDriver indicates the driver collected the goods from the
	// customer (return OTP verified).
	ReturnedWithDriver

	// Returned indicates the warehouse received the goods back (return
	// handover code verified); stock is restored on entry.
	Returned

	// Refunded indicates the admin attested the money was returned.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Pending:            "Pending",
		Processing:         "Processing",
		Packed:             "Packed",
		Handover:           "Handover",
		Shipped:            "Shipped",
		PickedCarrier:      "PickedCarrier",
		InTransit:          "InTransit",
		OutForDelivery:     "OutForDelivery",
		Delivered:          "Delivered",
		DeliveryFailed:     "DeliveryFailed",
		Cancelled:          "Cancelled",
		ReturnRequested:    "ReturnRequested",
		ReturnProcessing:   "ReturnProcessing",
		ReturnedWithDriver: "ReturnedWithDriver",
		Returned:           "Returned",
		Refunded:           "Refunded",
	}
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status value is one of the defined states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s <= Unknown || s > Refunded {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus maps an external status string to a Status. The match is
// case-insensitive and tolerates spaces/underscores plus the legacy synonyms
// some callers still send ("Delivered to Customer", "ready_to_ship").
// This normalization lives only at the interface boundary; inside the engine
// a status is always the typed enum.
func ParseStatus(s string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "")
	key = strings.ReplaceAll(key, " ", "")

	statuses := map[string]Status{
		"pending":             Pending,
		"processing":          Processing,
		"confirmed":           Processing,
		"packed":              Packed,
		"readytoship":         Packed,
		"handover":            Handover,
		"shipped":             Shipped,
		"pickedcarrier":       PickedCarrier,
		"pickedbycarrier":     PickedCarrier,
		"intransit":           InTransit,
		"outfordelivery":      OutForDelivery,
		"delivered":           Delivered,
		"deliveredtocustomer": Delivered,
		"deliveryfailed":      DeliveryFailed,
		"cancelled":           Cancelled,
		"canceled":            Cancelled,
		"returnrequested":     ReturnRequested,
		"returnprocessing":    ReturnProcessing,
		"returnedwithdriver":  ReturnedWithDriver,
		"returned":            Returned,
		"refunded":            Refunded,
	}

	status, ok := statuses[key]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a known status", s))
	}
	return status, nil
}

// IsStockCommitted reports whether physical inventory has been decremented
// for an order in this status and must be restored if the order is later
// cancelled or returned. Handover and DeliveryFailed belong to the set: the
// goods left the shelf when the order was packed and have not come back.
func (s Status) IsStockCommitted() bool {
	switch s {
	case Packed, Handover, Shipped, PickedCarrier, InTransit, OutForDelivery,
		Delivered, DeliveryFailed, ReturnedWithDriver:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Refunded
}

// freeTransitions lists the status changes permitted through the generic
// update, i.e. the edges that move no physical custody and no stock except
// for a conditional restock on cancellation. Gated edges (entering Packed,
// Shipped, Delivered, and the return chain) only exist as dedicated
// aggregate methods.
var freeTransitions = map[Status]map[Status]bool{
	Pending:        {Processing: true, Cancelled: true},
	Processing:     {Pending: true, Cancelled: true},
	Packed:         {Handover: true, Cancelled: true},
	Handover:       {Cancelled: true},
	Shipped:        {PickedCarrier: true, InTransit: true, OutForDelivery: true, Cancelled: true},
	PickedCarrier:  {InTransit: true, OutForDelivery: true, Cancelled: true},
	InTransit:      {OutForDelivery: true, Cancelled: true},
	OutForDelivery: {Cancelled: true},
	Delivered:      {Cancelled: true},
	DeliveryFailed: {OutForDelivery: true, Cancelled: true},
}

// CanMoveFreely reports whether the generic status update may perform the
// transition from s to the target status.
func (s Status) CanMoveFreely(to Status) bool {
	return freeTransitions[s][to]
}

// CanCancel reports whether an order in this status may still be cancelled.
// Every stock-committed status up to and including Delivered qualifies; once
// the return chain starts, cancellation gives way to the return workflow.
func (s Status) CanCancel() bool {
	return freeTransitions[s][Cancelled]
}

// StockEffect describes what a transition does to the inventory ledger.
type StockEffect int

const (
	// EffectNone means the transition does not touch the ledger.
	EffectNone StockEffect = iota

	// EffectReduce means one reducing ledger row per order item.
	EffectReduce

	// EffectRestock means one restoring ledger row per order item.
	EffectRestock
)

// TransitionStockEffect is the single place that decides whether a status
// transition moves stock, and under which ledger change type. Restock only
// happens when leaving a stock-committed status; a transition that does not
// cross that boundary never touches the ledger.
func TransitionStockEffect(from, to Status) (StockEffect, inventory.ChangeType) {
	switch {
	case to == Packed && (from == Pending || from == Processing):
		return EffectReduce, inventory.OnlineSalePacked
	case to == Cancelled && from.IsStockCommitted():
		return EffectRestock, inventory.CancelledOrder
	case (to == Returned || to == Refunded) && from.IsStockCommitted():
		return EffectRestock, inventory.Return
	default:
		return EffectNone, inventory.UnknownChange
	}
}
