package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

type EmailHandlerInterface interface {
	ConfirmAccount(*gin.Context)
	ResendConfirmationEmail(*gin.Context)
}

var _ EmailHandlerInterface = (*EmailHandler)(nil)

type EmailHandler struct {
	emailVerificationUC usecasecontract.IEmailVerificationUC
}

func NewEmailHandler(eu usecasecontract.IEmailVerificationUC) *EmailHandler {
	return &EmailHandler{emailVerificationUC: eu}
}

// ConfirmAccount handles the link sent after registration.
func (h *EmailHandler) ConfirmAccount(c *gin.Context) {
	userID := c.Query("userId")
	token := c.Query("confirmationToken")
	if userID == "" || token == "" {
		ErrorHandler(c, http.StatusBadRequest, "userId and confirmationToken are required")
		return
	}

	user, err := h.emailVerificationUC.ConfirmAccount(c.Request.Context(), userID, token)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "account confirmed successfully", dto.ToUserResponse(*user))
}

func (h *EmailHandler) ResendConfirmationEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		ErrorHandler(c, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.emailVerificationUC.ResendConfirmationEmail(c.Request.Context(), email); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "confirmation email sent")
}
