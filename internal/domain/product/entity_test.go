package product

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewProductValidation(t *testing.T) {
	if _, err := NewProduct("", decimal.NewFromInt(10), decimal.Zero, 5, "un"); err != ErrEmptyName {
		t.Fatalf("esperava ErrEmptyName, obteve %v", err)
	}

	if _, err := NewProduct("Botijão 13kg", decimal.Zero, decimal.Zero, 5, "un"); err != ErrInvalidPrice {
		t.Fatalf("esperava ErrInvalidPrice, obteve %v", err)
	}

	if _, err := NewProduct("Botijão 13kg", decimal.NewFromInt(110), decimal.Zero, -1, "un"); err != ErrNegativeStock {
		t.Fatalf("esperava ErrNegativeStock, obteve %v", err)
	}

	p, err := NewProduct("Botijão 13kg", decimal.NewFromFloat(110.5), decimal.NewFromInt(80), 30, "un")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("produto deve ganhar ID")
	}
}

func TestIsLowStock(t *testing.T) {
	p, err := NewProduct("Galão 20L", decimal.NewFromInt(15), decimal.Zero, LowStockThreshold, "un")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if p.IsLowStock() {
		t.Fatalf("estoque no limite não é baixo")
	}

	p.Stock = LowStockThreshold - 1
	if !p.IsLowStock() {
		t.Fatalf("estoque abaixo do limite deve ser baixo")
	}
}
