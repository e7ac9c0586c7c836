package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkOrderPaidCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	details := commands.PaymentDetails{ID: "PAYID-123", Status: "COMPLETED"}
	cmd, err := commands.NewMarkOrderPaidCommand(orderID, details, "account@example.com")
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.Equal(t, "PAYID-123", cmd.Details().ID)
	assert.Equal(t, "account@example.com", cmd.AccountEmail())
}

func TestNewMarkOrderPaidCommand_EmptyDetailsAreAccepted(t *testing.T) {
	// Defaults are filled in by the handler, not rejected here.
	_, err := commands.NewMarkOrderPaidCommand(kernel.NewUUID(), commands.PaymentDetails{}, "")
	require.NoError(t, err)
}

func TestNewMarkOrderPaidCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewMarkOrderPaidCommand(kernel.UUID{}, commands.PaymentDetails{}, "account@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
