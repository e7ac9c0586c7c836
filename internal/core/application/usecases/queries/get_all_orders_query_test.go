package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllOrdersQuery_ValidInput(t *testing.T) {
	query := queries.NewGetAllOrdersQuery()
	assert.NoError(t, query.Validate())
}

func TestGetAllOrdersQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetAllOrdersQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}
