package dto

import (
	"time"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CategoryResponse struct {
	*entity.Category
	ProductDetails []*entity.Product `json:"productDetails,omitempty"`
}

func ToCategoryResponse(details *usecasecontract.CategoryDetails) CategoryResponse {
	return CategoryResponse{Category: details.Category, ProductDetails: details.Products}
}

func ToCategoryResponses(list []*usecasecontract.CategoryDetails) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for _, d := range list {
		out = append(out, ToCategoryResponse(d))
	}
	return out
}

// ProductRequest is bound from multipart form fields or JSON; the image travels
// in the "image" form part.
type ProductRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Description string  `json:"description" form:"description" binding:"required"`
	Price       float64 `json:"price" form:"price" binding:"required,gt=0"`
	Discount    float64 `json:"discount" form:"discount" binding:"gte=0"`
	Stock       int     `json:"stock" form:"stock" binding:"gte=0"`
	Category    string  `json:"category" form:"category" binding:"required"`
	Brand       string  `json:"brand" form:"brand"`
	Shipping    bool    `json:"shipping" form:"shipping"`
}

func (r ProductRequest) ToInput() usecasecontract.ProductInput {
	return usecasecontract.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Discount:    r.Discount,
		Stock:       r.Stock,
		Category:    r.Category,
		Brand:       r.Brand,
		Shipping:    r.Shipping,
	}
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" form:"name"`
	Description *string  `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price" binding:"omitempty,gt=0"`
	Discount    *float64 `json:"discount" form:"discount" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" form:"stock" binding:"omitempty,gte=0"`
	Category    *string  `json:"category" form:"category"`
	Brand       *string  `json:"brand" form:"brand"`
	Shipping    *bool    `json:"shipping" form:"shipping"`
}

func (r UpdateProductRequest) ToUpdate() usecasecontract.ProductUpdate {
	return usecasecontract.ProductUpdate{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Discount:    r.Discount,
		Stock:       r.Stock,
		Category:    r.Category,
		Brand:       r.Brand,
		Shipping:    r.Shipping,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
