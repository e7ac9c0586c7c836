package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveCartItemCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewRemoveCartItemCommand(userID, productID)
	require.NoError(t, err)
	assert.True(t, cmd.UserID().IsEqual(userID))
	assert.True(t, cmd.ProductID().IsEqual(productID))
}

func TestNewRemoveCartItemCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewRemoveCartItemCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewRemoveCartItemCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
