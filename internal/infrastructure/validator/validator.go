package validator

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

const (
	minPasswordLength = 6
	// bcrypt ignores input past 72 bytes
	maxPasswordLength = 72
	minUsernameLength = 3
	maxUsernameLength = 30
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// AppValidator implements the usecase IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator with the custom rules registered.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	registerRules(v)
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if !isValidPassword(password) {
		return fmt.Errorf("password must be between %d and %d characters long", minPasswordLength, maxPasswordLength)
	}
	return nil
}

func (av *AppValidator) ValidateUsername(username string) error {
	if !isValidUsername(username) {
		return fmt.Errorf("username must be %d-%d characters, start with a letter and contain only letters, digits or underscores", minUsernameLength, maxUsernameLength)
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerRules(v)
	}
}

func registerRules(v *validator.Validate) {
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return isValidUsername(fl.Field().String())
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return isValidPassword(fl.Field().String())
	})
}

func isValidUsername(s string) bool {
	return len(s) >= minUsernameLength && len(s) <= maxUsernameLength && usernamePattern.MatchString(s)
}

func isValidPassword(s string) bool {
	return len(s) >= minPasswordLength && len(s) <= maxPasswordLength
}
