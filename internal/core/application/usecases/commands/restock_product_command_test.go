package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestockProductCommand_ValidInput(t *testing.T) {
	productID := kernel.NewUUID()
	cmd, err := commands.NewRestockProductCommand(productID, 25, staff.Admin)
	require.NoError(t, err)
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, 25, cmd.Quantity())
}

func TestNewRestockProductCommand_RejectsNonPositiveQuantity(t *testing.T) {
	_, err := commands.NewRestockProductCommand(kernel.NewUUID(), 0, staff.Admin)
	require.Error(t, err)

	_, err = commands.NewRestockProductCommand(kernel.NewUUID(), -5, staff.Admin)
	require.Error(t, err)
}

func TestNewUpdateProductStockCommand_AllowsZero(t *testing.T) {
	// A physical count can legitimately find an empty shelf.
	cmd, err := commands.NewUpdateProductStockCommand(kernel.NewUUID(), 0, staff.Admin)
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.Quantity())
}
