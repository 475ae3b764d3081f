package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

type SeedHandler struct {
	seedUsecase usecasecontract.ISeedUseCase
}

func NewSeedHandler(seedUsecase usecasecontract.ISeedUseCase) *SeedHandler {
	return &SeedHandler{seedUsecase: seedUsecase}
}

func (h *SeedHandler) SeedUsers(c *gin.Context) {
	h.seed(c, "users", h.seedUsecase.SeedUsers)
}

func (h *SeedHandler) SeedCategories(c *gin.Context) {
	h.seed(c, "categories", h.seedUsecase.SeedCategories)
}

func (h *SeedHandler) SeedProducts(c *gin.Context) {
	h.seed(c, "products", h.seedUsecase.SeedProducts)
}

func (h *SeedHandler) seed(c *gin.Context, what string, fn func(context.Context) (int, error)) {
	n, err := fn(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, what+" seeded successfully", dto.SeedResponse{Inserted: n})
}
