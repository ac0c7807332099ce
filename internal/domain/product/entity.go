package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrInvalidPrice  = errors.New("preço de venda deve ser maior que zero")
	ErrNegativeStock = errors.New("estoque não pode ser negativo")
)

// LowStockThreshold é o limite consultivo de estoque baixo exibido no
// painel. É apenas um aviso; nada impede a venda abaixo dele.
const LowStockThreshold = 10

// Product representa um produto vendido pela distribuidora (botijão,
// galão, acessórios)
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SalePrice decimal.Decimal `json:"sale_price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Stock     int             `json:"stock"`
	Unit      string          `json:"unit"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(name string, salePrice, costPrice decimal.Decimal, stock int, unit string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if !salePrice.IsPositive() {
		return nil, ErrInvalidPrice
	}

	if stock < 0 {
		return nil, ErrNegativeStock
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		Name:      name,
		SalePrice: salePrice,
		CostPrice: costPrice,
		Stock:     stock,
		Unit:      unit,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do produto
func (p *Product) Update(name string, salePrice, costPrice decimal.Decimal, stock int, unit string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	if !salePrice.IsPositive() {
		return ErrInvalidPrice
	}

	if stock < 0 {
		return ErrNegativeStock
	}

	p.Name = name
	p.SalePrice = salePrice
	p.CostPrice = costPrice
	p.Stock = stock
	p.Unit = unit
	p.UpdatedAt = time.Now()

	return nil
}

// IsLowStock informa se o produto está abaixo do limite consultivo
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}
