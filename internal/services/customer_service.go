package services

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/pizzaria-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (models.Customer, error)
}

type customerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) CustomerService {
	return &customerService{db: db}
}

// CreateCustomer relies on the unique index on email; a duplicate surfaces as ErrConflict.
func (s *customerService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Email = strings.TrimSpace(customer.Email)
	if customer.Name == "" {
		return models.Customer{}, validationError("nome é obrigatório")
	}
	if customer.Email == "" {
		return models.Customer{}, validationError("email é obrigatório")
	}

	customer.ID = 0
	if err := s.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return models.Customer{}, storeError(err, "Erro ao criar usuário", "Email já cadastrado")
	}
	log.WithField("usuario_id", customer.ID).Debug("Customer created")
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&customers).Error
	if err != nil {
		return nil, storeError(err, "Erro ao listar usuários", "")
	}
	return customers, nil
}

func (s *customerService) GetCustomerByEmail(ctx context.Context, email string) (models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		return models.Customer{}, lookupError(err, "Usuário não encontrado")
	}
	return customer, nil
}
