package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizzaria-api/internal/models"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const instrumentationName = "github.com/franciscosanchezn/pizzaria-api/internal/services"

// OrderService places orders and reads them back
type OrderService interface {
	// CreateOrder prices the requested lines with the current pizza prices and stores the
	// order with its items in a single transaction
	CreateOrder(ctx context.Context, customerID uint, lines []models.OrderLine) (models.Order, error)
	// ListOrders retrieves every order with its customer's name and email, newest first
	ListOrders(ctx context.Context) ([]models.OrderSummary, error)
	// ListOrdersForCustomer retrieves the orders of one customer, newest first
	ListOrdersForCustomer(ctx context.Context, customerID uint) ([]models.Order, error)
	// GetOrderDetail retrieves one order with customer contact fields and its items
	GetOrderDetail(ctx context.Context, orderID uint) (models.OrderDetail, error)
	// UpdateOrderStatus overwrites the status and returns the number of rows changed
	UpdateOrderStatus(ctx context.Context, orderID uint, status string) (int64, error)
}

type orderService struct {
	db            *gorm.DB
	txOptions     []*sql.TxOptions
	tracer        trace.Tracer
	ordersCreated metric.Int64Counter
}

// NewOrderService creates a new instance of OrderService. Spans and metrics go to the
// global OpenTelemetry providers.
func NewOrderService(db *gorm.DB) OrderService {
	counter, err := otel.Meter(instrumentationName).Int64Counter("orders_created_total",
		metric.WithDescription("Orders committed to the store"))
	if err != nil {
		log.WithError(err).Warn("Failed to create orders counter, metrics disabled")
		counter = noop.Int64Counter{}
	}

	return &orderService{
		db:            db,
		txOptions:     txOptionsFor(db),
		tracer:        otel.Tracer(instrumentationName),
		ordersCreated: counter,
	}
}

// txOptionsFor pins READ COMMITTED on engines that accept an explicit level. SQLite
// transactions are serializable already.
func txOptionsFor(db *gorm.DB) []*sql.TxOptions {
	switch db.Dialector.Name() {
	case "postgres", "mysql":
		return []*sql.TxOptions{{Isolation: sql.LevelReadCommitted}}
	default:
		return nil
	}
}

func (s *orderService) CreateOrder(ctx context.Context, customerID uint, lines []models.OrderLine) (models.Order, error) {
	ctx, span := s.tracer.Start(ctx, "orders.create", trace.WithAttributes(
		attribute.Int64("usuario_id", int64(customerID)),
		attribute.Int("item_count", len(lines)),
	))
	defer span.End()

	if err := validateOrderLines(customerID, lines); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return models.Order{}, err
	}

	var order models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Customer{}, customerID).Error; err != nil {
			return lookupError(err, "Usuário não encontrado")
		}

		prices, err := resolvePrices(tx, lines)
		if err != nil {
			return err
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			price := prices[line.PizzaID]
			total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, models.OrderItem{
				PizzaID:   line.PizzaID,
				Quantity:  line.Quantity,
				UnitPrice: price,
			})
		}

		order = models.Order{
			CustomerID: customerID,
			Total:      total,
			Status:     models.OrderStatusPending,
		}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		return tx.Omit(clause.Associations).Create(&items).Error
	}, s.txOptions...)

	if err != nil {
		err = transactionError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, Message(err, "order creation failed"))
		log.WithFields(log.Fields{
			"usuario_id": customerID,
			"items":      len(lines),
			"error":      err.Error(),
		}).Warn("Order creation rolled back")
		return models.Order{}, err
	}

	span.SetAttributes(
		attribute.Int64("pedido_id", int64(order.ID)),
		attribute.String("total", order.Total.StringFixed(2)),
	)
	s.ordersCreated.Add(ctx, 1)
	log.WithFields(log.Fields{
		"pedido_id":  order.ID,
		"usuario_id": customerID,
		"total":      order.Total.StringFixed(2),
	}).Info("Order created")

	return order, nil
}

// resolvePrices reads the current price of every requested pizza through tx, so the
// snapshot belongs to the same transaction that writes the order.
func resolvePrices(tx *gorm.DB, lines []models.OrderLine) (map[uint]decimal.Decimal, error) {
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.PizzaID)
	}

	var pizzas []models.Pizza
	if err := tx.Select("id", "preco").Where("id IN ?", ids).Find(&pizzas).Error; err != nil {
		return nil, err
	}

	prices := make(map[uint]decimal.Decimal, len(pizzas))
	for _, pizza := range pizzas {
		prices[pizza.ID] = pizza.Price
	}
	for _, line := range lines {
		if _, ok := prices[line.PizzaID]; !ok {
			return nil, notFoundError(fmt.Sprintf("Pizza %d não encontrada", line.PizzaID))
		}
	}
	return prices, nil
}

func validateOrderLines(customerID uint, lines []models.OrderLine) error {
	if customerID == 0 {
		return validationError("usuario_id é obrigatório")
	}
	if len(lines) == 0 {
		return validationError("itens não pode ser vazio")
	}
	for i, line := range lines {
		if line.PizzaID == 0 {
			return validationError(fmt.Sprintf("itens[%d].pizza_id é obrigatório", i))
		}
		if line.Quantity <= 0 {
			return validationError(fmt.Sprintf("itens[%d].quantidade deve ser maior que 0", i))
		}
	}
	return nil
}

// transactionError keeps not-found and validation errors raised inside the scope. Any
// other failure rolled the order back and becomes ErrTransaction or ErrConnectivity.
func transactionError(err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
		return err
	}
	// Keep the raw cause only so the inner kind does not leak through Unwrap
	var svcErr *Error
	if errors.As(err, &svcErr) && svcErr.Err != nil {
		err = svcErr.Err
	}
	if isConnectivity(err) {
		return newError(ErrConnectivity, "Banco de dados indisponível", err)
	}
	return newError(ErrTransaction, "Erro ao criar pedido", err)
}

func (s *orderService) ListOrders(ctx context.Context) ([]models.OrderSummary, error) {
	orders := []models.OrderSummary{}
	err := s.db.WithContext(ctx).
		Table("pedidos AS o").
		Select("o.*, c.nome AS usuario_nome, c.email AS usuario_email").
		Joins("JOIN usuarios c ON c.id = o.usuario_id").
		Order("o.created_at DESC").
		Order("o.id DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, storeError(err, "Erro ao listar pedidos", "")
	}
	return orders, nil
}

func (s *orderService) ListOrdersForCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.WithContext(ctx).
		Where("usuario_id = ?", customerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, storeError(err, "Erro ao listar pedidos do usuário", "")
	}
	return orders, nil
}

func (s *orderService) GetOrderDetail(ctx context.Context, orderID uint) (models.OrderDetail, error) {
	db := s.db.WithContext(ctx)

	var detail models.OrderDetail
	result := db.Table("pedidos AS o").
		Select("o.*, c.nome AS usuario_nome, c.email AS usuario_email, " +
			"c.telefone AS usuario_telefone, c.endereco AS usuario_endereco").
		Joins("JOIN usuarios c ON c.id = o.usuario_id").
		Where("o.id = ?", orderID).
		Limit(1).
		Scan(&detail)
	if result.Error != nil {
		return models.OrderDetail{}, storeError(result.Error, "Erro ao buscar pedido", "")
	}
	if result.RowsAffected == 0 {
		return models.OrderDetail{}, notFoundError("Pedido não encontrado")
	}

	// Name and size come from the pizza as it is now; the price is the order-time snapshot.
	items := []models.OrderItemDetail{}
	err := db.Table("pedido_itens AS oi").
		Select("oi.*, COALESCE(pz.nome, '') AS pizza_nome, COALESCE(pz.tamanho, '') AS pizza_tamanho").
		Joins("LEFT JOIN pizzas pz ON pz.id = oi.pizza_id").
		Where("oi.pedido_id = ?", orderID).
		Order("oi.id").
		Scan(&items).Error
	if err != nil {
		return models.OrderDetail{}, storeError(err, "Erro ao buscar itens do pedido", "")
	}
	detail.Items = items

	return detail, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID uint, status string) (int64, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return 0, validationError("status é obrigatório")
	}

	result := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return 0, storeError(result.Error, "Erro ao atualizar status", "")
	}
	log.WithFields(log.Fields{"pedido_id": orderID, "status": status, "changes": result.RowsAffected}).Debug("Order status updated")
	return result.RowsAffected, nil
}
