package services

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/pizzaria-api/internal/models"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza catalog
type PizzaService interface {
	// ListPizzas retrieves all pizzas from the database
	ListPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error)
	// CreatePizza creates a new pizza in the database
	CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	// DeletePizza deletes a pizza by its ID and returns the number of rows removed
	DeletePizza(ctx context.Context, id uint) (int64, error)
	// SeedMenu inserts the default menu when the catalog is empty
	SeedMenu(ctx context.Context) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, storeError(err, "Erro ao listar pizzas", "")
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		return models.Pizza{}, lookupError(err, "Pizza não encontrada")
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	pizza.Name = strings.TrimSpace(pizza.Name)
	pizza.Size = strings.TrimSpace(pizza.Size)
	if err := validatePizza(pizza); err != nil {
		return models.Pizza{}, err
	}

	pizza.ID = 0
	if err := s.db.WithContext(ctx).Create(&pizza).Error; err != nil {
		return models.Pizza{}, storeError(err, "Erro ao criar pizza", "")
	}
	log.WithFields(log.Fields{"pizza_id": pizza.ID, "nome": pizza.Name}).Debug("Pizza created")
	return pizza, nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id uint) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&models.Pizza{}, id)
	if result.Error != nil {
		return 0, storeError(result.Error, "Erro ao remover pizza", "Pizza possui pedidos e não pode ser removida")
	}
	return result.RowsAffected, nil
}

func (s *pizzaService) SeedMenu(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Pizza{}).Count(&count).Error; err != nil {
		return storeError(err, "Erro ao verificar cardápio", "")
	}
	if count > 0 {
		log.Info("Menu already seeded")
		return nil
	}

	log.Info("Pizza catalog is empty, seeding default menu")
	if err := db.Create(defaultMenu()).Error; err != nil {
		return storeError(err, "Erro ao criar cardápio", "")
	}
	return nil
}

func defaultMenu() []models.Pizza {
	return []models.Pizza{
		{Name: "Margherita", Size: "M", Price: decimal.RequireFromString("25.00")},
		{Name: "Calabresa", Size: "M", Price: decimal.RequireFromString("28.00")},
		{Name: "Quatro Queijos", Size: "G", Price: decimal.RequireFromString("39.90")},
		{Name: "Portuguesa", Size: "G", Price: decimal.RequireFromString("42.50")},
	}
}

func validatePizza(pizza models.Pizza) error {
	if pizza.Name == "" {
		return validationError("nome é obrigatório")
	}
	if pizza.Size == "" {
		return validationError("tamanho é obrigatório")
	}
	if pizza.Price.IsNegative() {
		return validationError("preco não pode ser negativo")
	}
	if !pizza.Price.Equal(pizza.Price.Round(2)) {
		return validationError("preco deve ter no máximo 2 casas decimais")
	}
	return nil
}
