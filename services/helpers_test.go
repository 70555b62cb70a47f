package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/ramses2099/storeapiv2/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

const testTopic = "arn:aws:sns:eu-west-2:000000000000:store-events"

// mockSNS implements aws.SNSPublisher
type mockSNS struct {
	mu       sync.Mutex
	messages [][]byte
	err      error
}

func (m *mockSNS) Publish(ctx context.Context, topicArn string, message []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, append([]byte(nil), message...))
	return m.err
}

func (m *mockSNS) eventTypes(t *testing.T) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.messages))
	for _, raw := range m.messages {
		var ev models.StoreEvent
		require.NoError(t, json.Unmarshal(raw, &ev))
		out = append(out, ev.EventType)
	}
	return out
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testEnv struct {
	tx    *memTransactor
	sns   *mockSNS
	clock *testClock

	users      *userService
	customers  *customerService
	employees  *employeeService
	vendors    *vendorService
	categories *categoryService
	products   *productService
	orders     *orderService
	details    *orderDetailService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tx := newMemTransactor()
	sns := &mockSNS{}
	logger := zaptest.NewLogger(t)

	env := &testEnv{
		tx:         tx,
		sns:        sns,
		clock:      &testClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		users:      NewUserService(tx, sns, testTopic, logger).(*userService),
		customers:  NewCustomerService(tx, sns, testTopic, logger).(*customerService),
		employees:  NewEmployeeService(tx, sns, testTopic, logger).(*employeeService),
		vendors:    NewVendorService(tx, sns, testTopic, logger).(*vendorService),
		categories: NewCategoryService(tx, sns, testTopic, logger).(*categoryService),
		products:   NewProductService(tx, sns, testTopic, logger).(*productService),
		orders:     NewOrderService(tx, sns, testTopic, logger).(*orderService),
		details:    NewOrderDetailService(tx, sns, testTopic, logger).(*orderDetailService),
	}
	env.users.hashCost = bcrypt.MinCost
	for _, b := range []*base{
		&env.users.base, &env.customers.base, &env.employees.base, &env.vendors.base,
		&env.categories.base, &env.products.base, &env.orders.base, &env.details.base,
	} {
		b.now = env.clock.Now
	}
	return env
}

func ptr[T any](v T) *T { return &v }

func contact(email string) models.ContactCreate {
	return models.ContactCreate{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		StreetAddress: "12 St James's Square",
		City:          "London",
		State:         "LDN",
		ZipCode:       "SW1Y 4JH",
		PhoneNumber:   "+44 20 7946 0000",
		Email:         email,
	}
}

func (e *testEnv) seedUser(t *testing.T, username string) *models.User {
	t.Helper()
	u, svcErr := e.users.CreateUser(context.Background(), &models.UserCreate{
		Username:  username,
		Password:  "correct horse battery",
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
	})
	require.Nil(t, svcErr)
	return u
}

func (e *testEnv) seedCategory(t *testing.T, userID uint) *models.Category {
	t.Helper()
	c, svcErr := e.categories.CreateCategory(context.Background(), &models.CategoryCreate{
		Description: "Hardware",
		UserID:      userID,
	})
	require.Nil(t, svcErr)
	return c
}

func (e *testEnv) seedProduct(t *testing.T, name string, categoryID, userID uint) *models.Product {
	t.Helper()
	p, svcErr := e.products.CreateProduct(context.Background(), &models.ProductCreate{
		Name:           name,
		Description:    name + " description",
		PricePerUnit:   ptr(9.99),
		QuantityOnHand: ptr(100),
		CategoryID:     categoryID,
		UserID:         userID,
	})
	require.Nil(t, svcErr)
	return p
}

func (e *testEnv) seedVendor(t *testing.T, userID uint) *models.Vendor {
	t.Helper()
	v, svcErr := e.vendors.CreateVendor(context.Background(), &models.VendorCreate{
		ContactCreate: contact("vendor@example.com"),
		UserID:        userID,
	})
	require.Nil(t, svcErr)
	return v
}

// seedOrderParties creates a customer and an employee for orders.
func (e *testEnv) seedOrderParties(t *testing.T, userID uint) (*models.Customer, *models.Employee) {
	t.Helper()
	c, svcErr := e.customers.CreateCustomer(context.Background(), &models.CustomerCreate{
		ContactCreate: contact("customer@example.com"),
		UserID:        userID,
	})
	require.Nil(t, svcErr)
	emp, svcErr := e.employees.CreateEmployee(context.Background(), &models.EmployeeCreate{
		ContactCreate: contact("employee@example.com"),
		DOB:           time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		UserID:        userID,
	})
	require.Nil(t, svcErr)
	return c, emp
}
