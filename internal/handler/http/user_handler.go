package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/dto"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	RefreshAccessToken(*gin.Context)
	Logout(*gin.Context)
	GetUserProfile(*gin.Context)
	ForgotPassword(*gin.Context)
	ResetPassword(*gin.Context)
	ConfirmChangeEmail(*gin.Context)
	GetAllUsers(*gin.Context)
	GetCurrentUser(*gin.Context)
	ChangePassword(*gin.Context)
	ChangeEmail(*gin.Context)
	UpdateAccountDetails(*gin.Context)
	DeleteUser(*gin.Context)
	ManageUserStatus(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// Register handles signup. Accepts JSON or multipart with an optional avatar.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindFormOrJSON(c, &req); err != nil {
		return
	}

	withUpload(c, "avatar", func(avatar *entity.FileUpload) {
		user, token, err := h.userUsecase.Register(c.Request.Context(), req.FullName, req.Username, req.Email, req.Password, avatar)
		if err != nil {
			HandleError(c, err)
			return
		}
		SuccessHandler(c, http.StatusCreated, "user registered successfully, please check your email to confirm your account", dto.RegisterResponse{
			User:              dto.ToUserResponse(*user),
			ConfirmationToken: token,
		})
	})
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	identifier := strings.TrimSpace(req.Identifier())
	if identifier == "" {
		ErrorHandler(c, http.StatusBadRequest, "username or email is required")
		return
	}

	user, accessToken, refreshToken, err := h.userUsecase.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		metrics.Logins.WithLabelValues(strconv.Itoa(apperror.StatusOf(err))).Inc()
		HandleError(c, err)
		return
	}
	metrics.Logins.WithLabelValues("success").Inc()

	SuccessHandler(c, http.StatusOK, "logged in successfully", dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (h *UserHandler) RefreshAccessToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	accessToken, refreshToken, err := h.userUsecase.RefreshAccessToken(c.Request.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "access token refreshed", dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout drops the caller's stored refresh token.
func (h *UserHandler) Logout(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.userUsecase.Logout(c.Request.Context(), actor.UserID); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "logged out successfully")
}

func (h *UserHandler) GetUserProfile(c *gin.Context) {
	user, err := h.userUsecase.GetUserProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "user profile fetched", dto.ToProfileResponse(*user))
}

func (h *UserHandler) ForgotPassword(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		ErrorHandler(c, http.StatusBadRequest, "email is required")
		return
	}
	if err := h.userUsecase.ForgotPassword(c.Request.Context(), email); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "password reset link sent to your email")
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	userID := c.Query("userId")
	token := c.Query("resetPasswordToken")
	if userID == "" || token == "" {
		ErrorHandler(c, http.StatusBadRequest, "userId and resetPasswordToken are required")
		return
	}
	var req dto.ResetPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.ResetPassword(c.Request.Context(), userID, token, req.NewPassword); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "password reset successfully")
}

func (h *UserHandler) ConfirmChangeEmail(c *gin.Context) {
	userID := c.Query("userId")
	token := c.Query("confirmationToken")
	if userID == "" || token == "" {
		ErrorHandler(c, http.StatusBadRequest, "userId and confirmationToken are required")
		return
	}

	user, err := h.userUsecase.ConfirmChangeEmail(c.Request.Context(), userID, token)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "email changed successfully", dto.ToUserResponse(*user))
}

// GetAllUsers lists non-admin accounts for administrators.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	filter := entity.UserListFilter{
		Search: c.Query("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	}
	users, page, err := h.userUsecase.GetAllUsers(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "users fetched", dto.PagedData{Items: dto.ToUserResponses(users), Pagination: page})
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	user, err := h.userUsecase.GetCurrentUser(c.Request.Context(), c.Param("id"), actor.UserID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "user fetched", dto.ToUserResponse(*user))
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.userUsecase.ChangePassword(c.Request.Context(), actor.UserID, req.OldPassword, req.NewPassword); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "password changed successfully")
}

func (h *UserHandler) ChangeEmail(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ChangeEmailRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.userUsecase.ChangeEmail(c.Request.Context(), actor.UserID, req.NewEmail, req.Password); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "confirmation link sent to the new email address")
}

// UpdateAccountDetails accepts JSON or multipart with an optional avatar.
func (h *UserHandler) UpdateAccountDetails(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := BindFormOrJSON(c, &req); err != nil {
		return
	}

	withUpload(c, "avatar", func(avatar *entity.FileUpload) {
		user, err := h.userUsecase.UpdateAccountDetails(c.Request.Context(), c.Param("id"), actor.UserID, req.FullName, req.Username, avatar)
		if err != nil {
			HandleError(c, err)
			return
		}
		SuccessHandler(c, http.StatusOK, "account updated successfully", dto.ToUserResponse(*user))
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUsecase.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "user deleted successfully")
}

// ManageUserStatus bans or unbans a user (?action=ban|unban).
func (h *UserHandler) ManageUserStatus(c *gin.Context) {
	action := entity.UserStatusAction(c.Query("action"))
	user, err := h.userUsecase.ManageUserStatus(c.Request.Context(), c.Param("id"), action)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "user status updated to "+string(action), dto.ToUserResponse(*user))
}
