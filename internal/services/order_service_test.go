package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/franciscosanchezn/pizzaria-api/internal/database"
	"github.com/franciscosanchezn/pizzaria-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderFixture struct {
	db        *gorm.DB
	orders    OrderService
	pizzas    PizzaService
	customers CustomerService
	customer  models.Customer
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	db := setupTestDB(t)
	f := &orderFixture{
		db:        db,
		orders:    NewOrderService(db),
		pizzas:    NewPizzaService(db),
		customers: NewCustomerService(db),
	}

	phone := "11988887777"
	address := "Rua das Flores, 10"
	customer, err := f.customers.CreateCustomer(context.Background(), models.Customer{
		Name: "Carla", Email: "carla@example.com", Phone: &phone, Address: &address,
	})
	require.NoError(t, err)
	f.customer = customer
	return f
}

func (f *orderFixture) pizza(t *testing.T, name, size, price string) models.Pizza {
	t.Helper()
	pizza, err := f.pizzas.CreatePizza(context.Background(), models.Pizza{Name: name, Size: size, Price: money(price)})
	require.NoError(t, err)
	return pizza
}

func (f *orderFixture) counts(t *testing.T) (orders, items int64) {
	t.Helper()
	require.NoError(t, f.db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, f.db.Model(&models.OrderItem{}).Count(&items).Error)
	return orders, items
}

func TestCreateOrderComputesTotal(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	margherita := f.pizza(t, "Margherita", "M", "25.00")
	portuguesa := f.pizza(t, "Portuguesa", "G", "42.50")

	order, err := f.orders.CreateOrder(ctx, f.customer.ID, []models.OrderLine{
		{PizzaID: margherita.ID, Quantity: 2},
		{PizzaID: portuguesa.ID, Quantity: 1},
	})
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Equal(t, f.customer.ID, order.CustomerID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, money("92.50").Equal(order.Total), "total = %s", order.Total)
	assert.False(t, order.CreatedAt.IsZero())

	var items []models.OrderItem
	require.NoError(t, f.db.Where("pedido_id = ?", order.ID).Order("id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, margherita.ID, items[0].PizzaID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, money("25.00").Equal(items[0].UnitPrice))
	assert.True(t, money("42.50").Equal(items[1].UnitPrice))
}

func TestCreateOrderScenario(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	pizza := f.pizza(t, "Calabresa", "M", "20.00")

	order, err := f.orders.CreateOrder(ctx, f.customer.ID, []models.OrderLine{{PizzaID: pizza.ID, Quantity: 2}})
	require.NoError(t, err)
	assert.True(t, money("40.00").Equal(order.Total), "total = %s", order.Total)
	assert.Equal(t, "pending", order.Status)

	changes, err := f.orders.UpdateOrderStatus(ctx, order.ID, "delivered")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	detail, err := f.orders.GetOrderDetail(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "delivered", detail.Status)
}

func TestCreateOrderUnknownPizzaPersistsNothing(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	pizza := f.pizza(t, "Margherita", "M", "25.00")

	_, err := f.orders.CreateOrder(ctx, f.customer.ID, []models.OrderLine{
		{PizzaID: pizza.ID, Quantity: 1},
		{PizzaID: pizza.ID + 500, Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	orders, items := f.counts(t)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	pizza := f.pizza(t, "Margherita", "M", "25.00")

	_, err := f.orders.CreateOrder(ctx, f.customer.ID+10, []models.OrderLine{{PizzaID: pizza.ID, Quantity: 1}})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Usuário não encontrado", Message(err, ""))

	orders, _ := f.counts(t)
	assert.Zero(t, orders)
}

func TestCreateOrderValidation(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	pizza := f.pizza(t, "Margherita", "M", "25.00")

	testCases := []struct {
		name       string
		customerID uint
		lines      []models.OrderLine
	}{
		{"missing customer", 0, []models.OrderLine{{PizzaID: pizza.ID, Quantity: 1}}},
		{"no items", f.customer.ID, nil},
		{"zero quantity", f.customer.ID, []models.OrderLine{{PizzaID: pizza.ID, Quantity: 0}}},
		{"negative quantity", f.customer.ID, []models.OrderLine{{PizzaID: pizza.ID, Quantity: -3}}},
		{"missing pizza id", f.customer.ID, []models.OrderLine{{Quantity: 1}}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.orders.CreateOrder(ctx, tt.customerID, tt.lines)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	orders, items := f.counts(t)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCreateOrderCancelledContext(t *testing.T) {
	f := newOrderFixture(t)
	pizza := f.pizza(t, "Margherita", "M", "25.00")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.orders.CreateOrder(ctx, f.customer.ID, []models.OrderLine{{PizzaID: pizza.ID, Quantity: 1}})
	assert.Error(t, err)

	orders, items := f.counts(t)
	assert.Zero(t, orders)
	assert.Zero(t, items)

	// The single pooled connection was released
	_, err = f.orders.CreateOrder(context.Background(), f.customer.ID, []models.OrderLine{{PizzaID: pizza.ID, Quantity: 1}})
	assert.NoError(t, err)
}

func TestGetOrderDetailSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	pizza := f.pizza(t, "Margherita", "M", "25.00")

	order, err := f.orders.CreateOrder(ctx, f.customer.ID, []models.OrderLine{{PizzaID: pizza.ID, Quantity: 3}})
	require.NoError(t, err)

	require.NoError(t, f.db.Model(&models.Pizza{}).Where("id = ?", pizza.ID).
		Updates(map[string]any{"nome": "Margherita Especial", "tamanho": "G", "preco": money("30.00")}).Error)

	detail, err := f.orders.GetOrderDetail(ctx, order.ID)
	require.NoError(t, err)

	assert.Equal(t, order.ID, detail.ID)
	assert.Equal(t, "Carla", detail.CustomerName)
	assert.Equal(t, "carla@example.com", detail.CustomerEmail)
	require.NotNil(t, detail.CustomerPhone)
	assert.Equal(t, "11988887777", *detail.CustomerPhone)
	require.NotNil(t, detail.CustomerAddress)
	assert.True(t, money("75.00").Equal(detail.Total))

	require.Len(t, detail.Items, 1)
	item := detail.Items[0]
	assert.Equal(t, "Margherita Especial", item.PizzaName)
	assert.Equal(t, "G", item.PizzaSize)
	assert.Equal(t, 3, item.Quantity)
	assert.True(t, money("25.00").Equal(item.UnitPrice), "unit price = %s", item.UnitPrice)
}

func TestGetOrderDetailNotFound(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.GetOrderDetail(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Pedido não encontrado", Message(err, ""))
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	pizza := f.pizza(t, "Margherita", "M", "25.00")

	other, err := f.customers.CreateCustomer(ctx, models.Customer{Name: "Davi", Email: "davi@example.com"})
	require.NoError(t, err)

	first, err := f.orders.CreateOrder(ctx, f.customer.ID, []models.OrderLine{{PizzaID: pizza.ID, Quantity: 1}})
	require.NoError(t, err)
	second, err := f.orders.CreateOrder(ctx, other.ID, []models.OrderLine{{PizzaID: pizza.ID, Quantity: 2}})
	require.NoError(t, err)

	summaries, err := f.orders.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, second.ID, summaries[0].ID)
	assert.Equal(t, "Davi", summaries[0].CustomerName)
	assert.Equal(t, "davi@example.com", summaries[0].CustomerEmail)
	assert.Equal(t, first.ID, summaries[1].ID)
	assert.Equal(t, "Carla", summaries[1].CustomerName)

	mine, err := f.orders.ListOrdersForCustomer(ctx, f.customer.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	none, err := f.orders.ListOrdersForCustomer(ctx, 9999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	changes, err := f.orders.UpdateOrderStatus(ctx, 777, "delivered")
	require.NoError(t, err)
	assert.Zero(t, changes)

	_, err = f.orders.UpdateOrderStatus(ctx, 1, "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateOrderConcurrentOnFileDatabase(t *testing.T) {
	ctx := context.Background()
	db, err := database.InitDatabase(ctx, database.DatabaseConfig{
		Driver:     "sqlite",
		Path:       filepath.Join(t.TempDir(), "pizzaria.db"),
		MaxRetries: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.EnsureSchema(ctx, db))

	customer, err := NewCustomerService(db).CreateCustomer(ctx, models.Customer{Name: "Carla", Email: "carla@example.com"})
	require.NoError(t, err)
	pizza, err := NewPizzaService(db).CreatePizza(ctx, models.Pizza{Name: "Margherita", Size: "M", Price: money("25.00")})
	require.NoError(t, err)

	orders := NewOrderService(db)
	const workers = 40
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := orders.CreateOrder(ctx, customer.ID, []models.OrderLine{{PizzaID: pizza.ID, Quantity: 1}})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(workers), count)
}
