package dto

import "skydraw_backend/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	// Admins are seeded, never self-registered.
	Role models.UserRole `json:"role" validate:"required,oneof=customer artist"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	Avatar string          `json:"avatar,omitempty"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}
