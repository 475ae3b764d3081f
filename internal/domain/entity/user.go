package entity

import (
	"time"
)

// User represents a registered account
type User struct {
	ID                     string    `bson:"_id,omitempty" json:"id"`
	FullName               string    `bson:"full_name" json:"fullName"`
	Username               string    `bson:"username" json:"username"`
	Email                  string    `bson:"email" json:"email"`
	Avatar                 Image     `bson:"avatar" json:"avatar"`
	PasswordHash           string    `bson:"password_hash" json:"-"`
	Role                   UserRole  `bson:"role" json:"-"`
	IsAccountConfirmed     bool      `bson:"is_account_confirmed" json:"-"`
	IsBanned               bool      `bson:"is_banned" json:"-"`
	RefreshTokenHash       string    `bson:"refresh_token_hash" json:"-"`
	ConfirmationTokenHash  string    `bson:"confirmation_token_hash" json:"-"`
	ResetPasswordTokenHash string    `bson:"reset_password_token_hash" json:"-"`
	ChangeEmailTokenHash   string    `bson:"change_email_token_hash" json:"-"`
	TempMail               string    `bson:"temp_mail" json:"-"`
	CreatedAt              time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt              time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleUser      UserRole = "user"
	UserRoleModerator UserRole = "moderator"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser, UserRoleModerator:
		return true
	}
	return false
}

// HasPendingEmailChange reports whether an email change awaits confirmation.
func (u *User) HasPendingEmailChange() bool {
	return u.TempMail != "" && u.ChangeEmailTokenHash != ""
}

// UserStatusAction is an admin moderation action.
type UserStatusAction string

const (
	UserActionBan   UserStatusAction = "ban"
	UserActionUnban UserStatusAction = "unban"
)

// UserListFilter drives the admin user listing.
type UserListFilter struct {
	Search      string
	ExcludeRole UserRole
	Page        int
	Limit       int
	SortBy      string
	Order       string
}
