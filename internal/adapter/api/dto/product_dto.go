package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vrocha/aquagas-api/internal/domain/product"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Name      string          `json:"name" binding:"required"`
	SalePrice decimal.Decimal `json:"sale_price" binding:"required"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Stock     int             `json:"stock"`
	Unit      string          `json:"unit"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SalePrice decimal.Decimal `json:"sale_price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Stock     int             `json:"stock"`
	Unit      string          `json:"unit"`
	LowStock  bool            `json:"low_stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converte a entidade Product para o DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SalePrice: p.SalePrice,
		CostPrice: p.CostPrice,
		Stock:     p.Stock,
		Unit:      p.Unit,
		LowStock:  p.IsLowStock(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos para o DTO de lista
func ToProductListResponse(products []*product.Product, total, page, size int) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}

	return ProductListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
