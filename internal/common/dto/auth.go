package dto

import "time"

// RegisterRequest is the sign-up payload. Role-specific fields are optional.
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	FarmName     string `json:"farmName"`
	FarmSize     string `json:"farmSize"`
	CompanyName  string `json:"companyName"`
	DeliveryArea string `json:"deliveryArea"`
	Preferences  string `json:"preferences"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest replaces the editable profile fields of the caller
type UpdateProfileRequest struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	FarmName     string `json:"farmName"`
	FarmSize     string `json:"farmSize"`
	CompanyName  string `json:"companyName"`
	DeliveryArea string `json:"deliveryArea"`
	Preferences  string `json:"preferences"`
}

// ChangePasswordRequest represents a request to change password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UserInfo is the public view of an account
type UserInfo struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Role         string    `json:"role"`
	Approved     bool      `json:"approved"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	FarmName     string    `json:"farmName"`
	FarmSize     string    `json:"farmSize"`
	CompanyName  string    `json:"companyName"`
	DeliveryArea string    `json:"deliveryArea"`
	Preferences  string    `json:"preferences"`
	CreatedAt    time.Time `json:"createdAt"`
}
