package dto

import md "github.com/JMURv/zedasignal/internal/models"

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Token    string `json:"token"`
}

type LoginResponse struct {
	User   *md.User  `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required"`
}

type ResetTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type ConfirmResetRequest struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}
