package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/dto"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// fakeGoogle serves the token exchange and the userinfo lookup.
func fakeGoogle(t *testing.T, userInfo map[string]interface{}) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "google-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer google-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(userInfo)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func googleCallback(t *testing.T, uc *mocks.MockUserUsecase, userInfo map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := fakeGoogle(t, userInfo)

	h := NewAuthHandler(uc, nil, "client-id", "client-secret", "http://shop.test")
	h.oauthConfig.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	h.userInfoURL = srv.URL + "/userinfo"

	r := gin.New()
	r.GET("/callback", h.HandleGoogleCallback)
	req := httptest.NewRequest(http.MethodGet, "/callback?state=s1&code=c1", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "s1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleGoogleCallback_VerifiedEmail(t *testing.T) {
	uc := mocks.NewMockUserUsecase()

	w := googleCallback(t, uc, map[string]interface{}{
		"email":          "alice@gmail.com",
		"verified_email": true,
		"name":           "Alice",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "alice@gmail.com", uc.LastIdentifier)
	assert.True(t, uc.LastEmailVerified)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestHandleGoogleCallback_UnverifiedEmail(t *testing.T) {
	uc := mocks.NewMockUserUsecase()

	w := googleCallback(t, uc, map[string]interface{}{
		"email":          "alice@gmail.com",
		"verified_email": false,
		"name":           "Alice",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "alice@gmail.com", uc.LastIdentifier)
	assert.False(t, uc.LastEmailVerified)
}

func TestHandleGoogleCallback_MissingVerifiedFlagIsRefused(t *testing.T) {
	uc := mocks.NewMockUserUsecase()

	w := googleCallback(t, uc, map[string]interface{}{
		"email": "alice@gmail.com",
		"name":  "Alice",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}
