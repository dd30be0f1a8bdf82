package domain

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Username  string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      Role      `gorm:"type:varchar(10);not null;default:staff" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,alphanum,min=3,max=50"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" form:"role" validate:"required,oneof=admin staff"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" form:"old_password" validate:"required"`
	NewPassword string `json:"new_password" form:"new_password" validate:"required,min=8,max=72,nefield=OldPassword"`
}

type UserRepo interface {
	FindUserByUsername(ctx context.Context, username string) (*User, error)
	FindUserByID(ctx context.Context, id uint) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id uint, hash string) error
}

type AuthUseCase interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req *RegisterRequest) (*User, error)
	ChangePassword(ctx context.Context, userID uint, req *ChangePasswordRequest) error
}
