package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

type CategoryHandlerInterface interface {
	CreateCategory(*gin.Context)
	ListCategories(*gin.Context)
	GetCategory(*gin.Context)
	UpdateCategory(*gin.Context)
	DeleteCategory(*gin.Context)
}

var _ CategoryHandlerInterface = (*CategoryHandler)(nil)

type CategoryHandler struct {
	categoryUsecase usecasecontract.ICategoryUseCase
}

func NewCategoryHandler(categoryUsecase usecasecontract.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	category, err := h.categoryUsecase.CreateCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, "category created successfully", category)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryUsecase.ListCategories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "categories fetched", dto.ToCategoryResponses(categories))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	details, err := h.categoryUsecase.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "category fetched", dto.ToCategoryResponse(details))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	category, err := h.categoryUsecase.UpdateCategory(c.Request.Context(), c.Param("slug"), req.Name, req.Description)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "category updated successfully", category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryUsecase.DeleteCategory(c.Request.Context(), c.Param("slug")); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "category deleted successfully")
}
