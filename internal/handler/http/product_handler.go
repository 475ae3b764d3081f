package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

type ProductHandlerInterface interface {
	CreateProduct(*gin.Context)
	ListProducts(*gin.Context)
	GetProduct(*gin.Context)
	UpdateProduct(*gin.Context)
	DeleteProduct(*gin.Context)
}

var _ ProductHandlerInterface = (*ProductHandler)(nil)

type ProductHandler struct {
	productUsecase usecasecontract.IProductUseCase
}

func NewProductHandler(productUsecase usecasecontract.IProductUseCase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// CreateProduct accepts multipart with an optional "image" part, or JSON.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := BindFormOrJSON(c, &req); err != nil {
		return
	}
	withUpload(c, "image", func(image *entity.FileUpload) {
		product, err := h.productUsecase.CreateProduct(c.Request.Context(), req.ToInput(), image)
		if err != nil {
			HandleError(c, err)
			return
		}
		SuccessHandler(c, http.StatusCreated, "product created successfully", product)
	})
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := entity.ProductListFilter{
		Search: c.Query("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	}
	products, page, err := h.productUsecase.ListProducts(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "products fetched", dto.PagedData{Items: products, Pagination: page})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productUsecase.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "product fetched", product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := BindFormOrJSON(c, &req); err != nil {
		return
	}
	withUpload(c, "image", func(image *entity.FileUpload) {
		product, err := h.productUsecase.UpdateProduct(c.Request.Context(), c.Param("slug"), req.ToUpdate(), image)
		if err != nil {
			HandleError(c, err)
			return
		}
		SuccessHandler(c, http.StatusOK, "product updated successfully", product)
	})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productUsecase.DeleteProduct(c.Request.Context(), c.Param("slug")); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "product deleted successfully")
}
