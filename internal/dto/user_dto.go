package dto

import "time"

// Pointer fields distinguish an absent key from an empty value.

type RegisterRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type LoginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UpdateProfileRequest struct {
	Email       *string `json:"email"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	CountryCode *int    `json:"country_code"`
	ContactNo   *int64  `json:"contact_no"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	State       *string `json:"state" validate:"omitempty,max=100"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
}

type RegisterResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	ContactNo *int64    `json:"contact_no"`
	Created   time.Time `json:"created"`
	Token     string    `json:"token"`
}

type LoginResponse struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

type ProfileResponse struct {
	Email       string    `json:"email"`
	ID          uint      `json:"id"`
	FirstName   *string   `json:"first_name"`
	LastName    *string   `json:"last_name"`
	Created     time.Time `json:"created"`
	CountryCode *int      `json:"country_code"`
	ContactNo   *int64    `json:"contact_no"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	Country     *string   `json:"country"`
}
