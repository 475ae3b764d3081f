package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	oauthStateCookie  = "oauthState"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type AuthHandlerInterface interface {
	HandleGoogleLogin(*gin.Context)
	HandleGoogleCallback(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

// AuthHandler drives the Google OAuth login flow.
type AuthHandler struct {
	userUseCase usecasecontract.IUserUseCase
	randomGen   contract.IRandomGenerator
	oauthConfig *oauth2.Config
	userInfoURL string
}

func NewAuthHandler(uc usecasecontract.IUserUseCase, randomGen contract.IRandomGenerator, clientID, clientSecret, baseURL string) *AuthHandler {
	return &AuthHandler{
		userUseCase: uc,
		randomGen:   randomGen,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  baseURL + "/api/v1/auth/google/callback",
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
	}
}

type googleUserInfo struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

func (h *AuthHandler) HandleGoogleLogin(ctx *gin.Context) {
	state, err := h.randomGen.GenerateRandomToken(16)
	if err != nil {
		HandleError(ctx, err)
		return
	}
	ctx.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	ctx.Redirect(http.StatusTemporaryRedirect, h.oauthConfig.AuthCodeURL(state))
}

func (h *AuthHandler) HandleGoogleCallback(ctx *gin.Context) {
	state := ctx.Query("state")
	cookieState, err := ctx.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		ErrorHandler(ctx, http.StatusUnauthorized, "invalid oauth state")
		return
	}
	ctx.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := ctx.Query("code")
	if code == "" {
		ErrorHandler(ctx, http.StatusBadRequest, "authorization code not provided")
		return
	}

	requestCtx := ctx.Request.Context()
	token, err := h.oauthConfig.Exchange(requestCtx, code)
	if err != nil {
		ErrorHandler(ctx, http.StatusUnauthorized, "failed to exchange authorization code")
		return
	}

	info, err := h.fetchUserInfo(ctx, token)
	if err != nil {
		HandleError(ctx, err)
		return
	}
	if info.Email == "" {
		ErrorHandler(ctx, http.StatusBadRequest, "google account has no email")
		return
	}

	user, accessToken, refreshToken, err := h.userUseCase.LoginWithOAuth(requestCtx, info.Name, info.Email, info.VerifiedEmail)
	if err != nil {
		HandleError(ctx, err)
		return
	}
	SuccessHandler(ctx, http.StatusOK, "logged in successfully", dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (h *AuthHandler) fetchUserInfo(ctx *gin.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := h.oauthConfig.Client(ctx.Request.Context(), token)
	resp, err := client.Get(h.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch google user info: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch google user info: status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode google user info: %w", err)
	}
	return &info, nil
}
