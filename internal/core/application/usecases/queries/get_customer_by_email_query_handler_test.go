package queries_test

import (
	"context"
	"testing"

	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCustomerByEmailQueryHandler_Found(t *testing.T) {
	ctx := context.Background()
	repo := &MockCustomerRepository{}
	aggregate := restoredCustomer(t, 3, "Bob Jones", "bob@example.com")
	email, err := kernel.NewEmail("bob@example.com")
	require.NoError(t, err)
	repo.On("GetByEmail", ctx, email).Return(aggregate, nil)

	handler := queries.NewGetCustomerByEmailQueryHandler(repo)
	query, err := queries.NewGetCustomerByEmailQuery("bob@example.com")
	require.NoError(t, err)

	response, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, int64(3), response.ID)
	assert.Equal(t, "bob@example.com", response.Email)
	repo.AssertExpectations(t)
}

func TestGetCustomerByEmailQueryHandler_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &MockCustomerRepository{}
	email, err := kernel.NewEmail("nobody@example.com")
	require.NoError(t, err)
	repo.On("GetByEmail", ctx, email).Return(nil, errs.NewObjectNotFoundError("customer", "nobody@example.com"))

	handler := queries.NewGetCustomerByEmailQueryHandler(repo)
	query, err := queries.NewGetCustomerByEmailQuery("nobody@example.com")
	require.NoError(t, err)

	response, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Nil(t, response)
}

func TestNewGetCustomerByEmailQuery_RejectsInvalidEmail(t *testing.T) {
	_, err := queries.NewGetCustomerByEmailQuery("not-an-email")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetCustomerByEmailQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
