package dto

import (
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

// PagedData wraps a page of items with its metadata.
type PagedData struct {
	Items      interface{}       `json:"items"`
	Pagination entity.Pagination `json:"pagination"`
}

// UserResponse is the safe view of a user.
type UserResponse struct {
	ID                 string       `json:"id"`
	FullName           string       `json:"fullName"`
	Username           string       `json:"username"`
	Email              string       `json:"email"`
	Avatar             entity.Image `json:"avatar"`
	Role               string       `json:"role"`
	IsAccountConfirmed bool         `json:"isAccountConfirmed"`
	IsBanned           bool         `json:"isBanned"`
	CreatedAt          string       `json:"createdAt"`
	UpdatedAt          string       `json:"updatedAt"`
}

// ProfileResponse is the public view of a user.
type ProfileResponse struct {
	ID       string       `json:"id"`
	FullName string       `json:"fullName"`
	Username string       `json:"username"`
	Avatar   entity.Image `json:"avatar"`
}

// RegisterResponse carries the confirmation token so clients without mail
// delivery can still confirm.
type RegisterResponse struct {
	User              UserResponse `json:"user"`
	ConfirmationToken string       `json:"confirmationToken"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type SeedResponse struct {
	Inserted int `json:"inserted"`
}

// ToUserResponse converts an entity.User to its safe view.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:                 user.ID,
		FullName:           user.FullName,
		Username:           user.Username,
		Email:              user.Email,
		Avatar:             user.Avatar,
		Role:               string(user.Role),
		IsAccountConfirmed: user.IsAccountConfirmed,
		IsBanned:           user.IsBanned,
		CreatedAt:          formatTime(user.CreatedAt),
		UpdatedAt:          formatTime(user.UpdatedAt),
	}
}

func ToUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(*u))
	}
	return out
}

func ToProfileResponse(user entity.User) ProfileResponse {
	return ProfileResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Username: user.Username,
		Avatar:   user.Avatar,
	}
}
