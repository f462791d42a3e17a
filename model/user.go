package model

import (
	"strings"
	"time"

	"github.com/muhammadheryan/vastu-shakti/constant"
)

// UserEntity represents the user table entity
type UserEntity struct {
	ID           uint64        `db:"id"`
	Name         string        `db:"name"`
	Email        string        `db:"email"`
	Mobile       string        `db:"mobile"`
	PasswordHash string        `db:"password_hash"`
	State        string        `db:"state"`
	Occupation   string        `db:"occupation"`
	Language     string        `db:"language"`
	Role         constant.Role `db:"role"`
	IsActive     bool          `db:"is_active"`
	LastLoginAt  *time.Time    `db:"last_login_at"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}

// UserFilter for querying users
type UserFilter struct {
	ID     uint64
	Email  string
	Mobile string
}

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	UserID uint64
	Email  string
	Role   constant.Role
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == constant.RoleAdmin
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Mobile     string `json:"mobile" validate:"required,min=7,max=20"`
	Password   string `json:"password" validate:"required,min=6,max=72"`
	State      string `json:"state" validate:"max=100"`
	Occupation string `json:"occupation" validate:"max=100"`
	Language   string `json:"language" validate:"omitempty,oneof=en hi"`
}

func (r *RegisterRequest) Sanitize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.State = strings.TrimSpace(r.State)
	r.Occupation = strings.TrimSpace(r.Occupation)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Sanitize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type UpdateProfileRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=100"`
	State      *string `json:"state" validate:"omitempty,max=100"`
	Occupation *string `json:"occupation" validate:"omitempty,max=100"`
	Language   *string `json:"language" validate:"omitempty,oneof=en hi"`
}

func (r *UpdateProfileRequest) Sanitize() {
	for _, p := range []*string{r.Name, r.State, r.Occupation} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

// UserProfile is the public projection of a user; it never carries the hash.
type UserProfile struct {
	ID         uint64        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Mobile     string        `json:"mobile"`
	State      string        `json:"state"`
	Occupation string        `json:"occupation"`
	Language   string        `json:"language"`
	Role       constant.Role `json:"role"`
	LastLogin  *time.Time    `json:"lastLogin,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
}

func NewUserProfile(u *UserEntity) *UserProfile {
	return &UserProfile{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Mobile:     u.Mobile,
		State:      u.State,
		Occupation: u.Occupation,
		Language:   u.Language,
		Role:       u.Role,
		LastLogin:  u.LastLoginAt,
		CreatedAt:  u.CreatedAt,
	}
}

type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *UserProfile `json:"user"`
}

type ProfileResponse struct {
	User *UserProfile `json:"user"`
}
