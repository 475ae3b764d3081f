package usecasecontract

// IAppLogger is the logging surface use cases depend on.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes the application settings use cases need.
type IConfigProvider interface {
	GetProjectName() string
	GetEnvironment() string
	GetAppBaseURL() string
	GetAccountConfirmationURL() string
	GetResetPasswordURL() string
	GetChangeEmailConfirmationURL() string
	GetDefaultAvatarURL() string
}

type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
	ValidateUsername(username string) error
}
