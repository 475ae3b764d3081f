package dto

// RegisterRequest is bound from JSON or multipart form fields. The avatar file,
// when sent, travels in the "avatar" form part.
type RegisterRequest struct {
	FullName string `json:"fullName" form:"fullName" binding:"required,min=4"`
	Username string `json:"username" form:"username" binding:"required,username"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,password"`
}

// LoginRequest accepts either a username or an email.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// Identifier returns the email when present, otherwise the username.
func (r LoginRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

type RefreshTokenRequest struct {
	UserID       string `json:"userId" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,password"`
}

type ChangeEmailRequest struct {
	NewEmail string `json:"newEmail" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is bound from JSON or multipart form fields; nil fields are
// left untouched.
type UpdateUserRequest struct {
	FullName *string `json:"fullName" form:"fullName" binding:"omitempty,min=4"`
	Username *string `json:"username" form:"username" binding:"omitempty,username"`
}
