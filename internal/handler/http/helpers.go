package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/dto"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/middleware"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/logger"
)

// ErrorHandler writes a failure envelope.
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Response{Success: false, StatusCode: statusCode, Message: message})
}

// SuccessHandler writes a success envelope carrying data.
func SuccessHandler(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, dto.Response{Success: true, StatusCode: statusCode, Message: message, Data: data})
}

// MessageHandler writes a success envelope without data.
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Response{Success: true, StatusCode: statusCode, Message: message})
}

// HandleError maps a use case error to its envelope. Internal causes are
// logged, never sent.
func HandleError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
		logger.FromContext(c.Request.Context()).Error("request failed", "error", err)
	}
	ErrorHandler(c, appErr.StatusCode, appErr.Message)
}

// BindAndValidate binds a JSON request and validates it.
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// BindFormOrJSON binds multipart/urlencoded bodies from form fields and
// anything else as JSON.
func BindFormOrJSON(c *gin.Context, req interface{}) error {
	var err error
	if isForm(c) {
		err = c.ShouldBindWith(req, binding.Form)
	} else {
		err = c.ShouldBindJSON(req)
	}
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

func isForm(c *gin.Context) bool {
	ct := c.ContentType()
	return ct == binding.MIMEMultipartPOSTForm || ct == binding.MIMEPOSTForm
}

// formFile returns the named upload, or nil when the request carries none.
// The caller closes the returned file.
func formFile(c *gin.Context, field string) (*entity.FileUpload, multipart.File, error) {
	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		return nil, nil, nil
	}
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &entity.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      f,
	}, f, nil
}

// withUpload opens the named upload, runs fn and closes the file afterwards.
func withUpload(c *gin.Context, field string, fn func(upload *entity.FileUpload)) {
	upload, f, err := formFile(c, field)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "invalid "+field+" upload")
		return
	}
	if f != nil {
		defer f.Close()
	}
	fn(upload)
}

// currentActor reads the identity AuthMiddleware stored on the context.
func currentActor(c *gin.Context) (entity.Actor, bool) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		return entity.Actor{}, false
	}
	role, _ := c.Get(middleware.ContextRole)
	r, _ := role.(entity.UserRole)
	return entity.Actor{UserID: userID, Role: r}, true
}

// requireActor writes 401 and reports false when the caller is anonymous.
func requireActor(c *gin.Context) (entity.Actor, bool) {
	actor, ok := currentActor(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
	}
	return actor, ok
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return 0
	}
	return n
}
