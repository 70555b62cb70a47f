package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ramses2099/storeapiv2/models"
	"github.com/ramses2099/storeapiv2/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestToServiceError(t *testing.T) {
	b := newBase(newMemTransactor(), nil, "", zap.NewNop())

	tests := []struct {
		name   string
		err    error
		status int
		kind   error
	}{
		{"not found", repository.ErrNotFound, http.StatusNotFound, ErrNotFound},
		{"duplicate", fmt.Errorf("%w: users_username_key", repository.ErrDuplicateKey), http.StatusConflict, ErrConflict},
		{"foreign key", fmt.Errorf("%w: fk_orders_customer", repository.ErrForeignKeyViolation), http.StatusConflict, ErrConflict},
		{"check", repository.ErrCheckViolation, http.StatusUnprocessableEntity, ErrValidation},
		{"service error passes through", validationError("bad"), http.StatusUnprocessableEntity, ErrValidation},
		{"unexpected", errors.New("connection reset by peer"), http.StatusInternalServerError, ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcErr := b.toServiceError("order", tt.err)
			require.NotNil(t, svcErr)
			assert.Equal(t, tt.status, svcErr.StatusCode)
			assert.True(t, errors.Is(svcErr, tt.kind))
		})
	}
}

func TestPersistenceFailure_ReturnsInternalError(t *testing.T) {
	env := newTestEnv(t)
	env.tx.failWith = errors.New("connection refused")

	_, svcErr := env.categories.GetCategory(context.Background(), 1)

	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
	assert.NotContains(t, svcErr.Message, "connection refused")
}

func TestUnitOfWork_PanicRollsBack(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "panicky")

	assert.Panics(t, func() {
		_ = env.tx.WithinTransaction(context.Background(), func(uow repository.UnitOfWork) error {
			require.NoError(t, uow.Categories().Create(context.Background(), &models.Category{Description: "Lost", UserID: user.ID}))
			panic("boom")
		})
	})

	categories, svcErr := env.categories.ListCategories(context.Background(), nil)
	require.Nil(t, svcErr)
	assert.Empty(t, categories)
	assert.Equal(t, 1, env.tx.rollbacks)
}

func TestStampUpdated_StrictlyIncreasesWithFrozenClock(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "clock")
	category := env.seedCategory(t, user.ID)
	require.NotNil(t, category.Created)
	assert.Nil(t, category.Updated)

	first, svcErr := env.categories.UpdateCategory(context.Background(), category.ID, &models.CategoryUpdate{Description: ptr("Tools")})
	require.Nil(t, svcErr)
	second, svcErr := env.categories.UpdateCategory(context.Background(), category.ID, &models.CategoryUpdate{Description: ptr("Garden")})
	require.Nil(t, svcErr)

	assert.True(t, first.Updated.After(*category.Created))
	assert.True(t, second.Updated.After(*first.Updated))
	assert.Equal(t, *category.Created, *second.Created)
}

func TestStampUpdated_UsesClockWhenAhead(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "ahead")
	category := env.seedCategory(t, user.ID)

	env.clock.Advance(time.Hour)
	updated, svcErr := env.categories.UpdateCategory(context.Background(), category.ID, &models.CategoryUpdate{Description: ptr("Tools")})
	require.Nil(t, svcErr)

	assert.Equal(t, env.clock.Now(), *updated.Updated)
}

func TestPublish_FailureDoesNotFailOperation(t *testing.T) {
	env := newTestEnv(t)
	env.sns.err = errors.New("sns unavailable")

	user := env.seedUser(t, "offline")
	got, svcErr := env.users.GetUser(context.Background(), user.ID)
	require.Nil(t, svcErr)
	assert.Equal(t, user.Username, got.Username)
}

func TestPublish_EventTypes(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "events")
	category := env.seedCategory(t, user.ID)
	_, svcErr := env.categories.UpdateCategory(context.Background(), category.ID, &models.CategoryUpdate{Description: ptr("Tools")})
	require.Nil(t, svcErr)
	require.Nil(t, env.categories.DeleteCategory(context.Background(), category.ID))

	assert.Equal(t, []string{"user.created", "category.created", "category.updated", "category.deleted"}, env.sns.eventTypes(t))
}

func TestPublish_NoTopicSendsNothing(t *testing.T) {
	sns := &mockSNS{}
	svc := NewUserService(newMemTransactor(), sns, "", zap.NewNop()).(*userService)
	svc.hashCost = bcrypt.MinCost

	_, svcErr := svc.CreateUser(context.Background(), &models.UserCreate{
		Username:  "quiet",
		Password:  "long enough password",
		Email:     "quiet@example.com",
		FirstName: "Q",
		LastName:  "T",
	})
	require.Nil(t, svcErr)
	assert.Empty(t, sns.messages)
}

func TestValidateInput_Messages(t *testing.T) {
	tests := []struct {
		name string
		req  interface{}
		want string
	}{
		{
			name: "missing price",
			req:  &models.ProductCreate{Name: "Widget", Description: "w", QuantityOnHand: ptr(1), CategoryID: 1, UserID: 1},
			want: "priceperunit is required",
		},
		{
			name: "negative quantity",
			req:  &models.ProductCreate{Name: "Widget", Description: "w", PricePerUnit: ptr(1.0), QuantityOnHand: ptr(-1), CategoryID: 1, UserID: 1},
			want: "quantityonhand must be greater than or equal to 0",
		},
		{
			name: "embedded contact field",
			req:  &models.CustomerCreate{ContactCreate: contact("not-an-email"), UserID: 1},
			want: "email must be a valid email address",
		},
		{
			name: "ship before order",
			req: &models.OrderCreate{
				OrderDate:  time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				ShipDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				OrderTotal: ptr(1.0),
				CustomerID: 1,
				EmployeeID: 1,
				UserID:     1,
			},
			want: "shipdate must not be before orderdate",
		},
		{
			name: "order line",
			req: &models.OrderCreate{
				OrderDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				ShipDate:     time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				OrderTotal:   ptr(1.0),
				CustomerID:   1,
				EmployeeID:   1,
				UserID:       1,
				OrderDetails: []models.OrderLineCreate{{Price: ptr(1.0), Quantity: 1}},
			},
			want: "ordersdetails[0].product_id is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcErr := validateInput(tt.req)
			require.NotNil(t, svcErr)
			assert.Equal(t, http.StatusUnprocessableEntity, svcErr.StatusCode)
			assert.Contains(t, svcErr.Message, tt.want)
		})
	}
}
