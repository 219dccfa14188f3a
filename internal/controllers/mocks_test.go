package controllers

import (
	"context"

	"github.com/franciscosanchezn/pizzaria-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockPizzaService struct {
	mock.Mock
}

func (m *mockPizzaService) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	args := m.Called(ctx)
	pizzas, _ := args.Get(0).([]models.Pizza)
	return pizzas, args.Error(1)
}

func (m *mockPizzaService) GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Pizza), args.Error(1)
}

func (m *mockPizzaService) CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	args := m.Called(ctx, pizza)
	return args.Get(0).(models.Pizza), args.Error(1)
}

func (m *mockPizzaService) DeletePizza(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPizzaService) SeedMenu(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockCustomerService struct {
	mock.Mock
}

func (m *mockCustomerService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	args := m.Called(ctx, customer)
	return args.Get(0).(models.Customer), args.Error(1)
}

func (m *mockCustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]models.Customer)
	return customers, args.Error(1)
}

func (m *mockCustomerService) GetCustomerByEmail(ctx context.Context, email string) (models.Customer, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Customer), args.Error(1)
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) CreateOrder(ctx context.Context, customerID uint, lines []models.OrderLine) (models.Order, error) {
	args := m.Called(ctx, customerID, lines)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *mockOrderService) ListOrders(ctx context.Context) ([]models.OrderSummary, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]models.OrderSummary)
	return orders, args.Error(1)
}

func (m *mockOrderService) ListOrdersForCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *mockOrderService) GetOrderDetail(ctx context.Context, orderID uint) (models.OrderDetail, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(models.OrderDetail), args.Error(1)
}

func (m *mockOrderService) UpdateOrderStatus(ctx context.Context, orderID uint, status string) (int64, error) {
	args := m.Called(ctx, orderID, status)
	return args.Get(0).(int64), args.Error(1)
}
