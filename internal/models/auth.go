package models

// LoginRequest defines the structure for login requests
type LoginRequest struct {
	Name string `json:"name" binding:"required"`
	Pass string `json:"pass" binding:"required"`
}

// LoginResponse carries the issued token back to the caller
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// CreateUserRequest defines the structure for user creation requests
type CreateUserRequest struct {
	Name   string `json:"name" binding:"required"`
	Pass   string `json:"pass" binding:"required,min=6"`
	Status *bool  `json:"status"`
}

// UpdateUserRequest defines the structure for partial user updates
type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Pass   *string `json:"pass"`
	Status *bool   `json:"status"`
}

// UserStatusResponse is the reduced shape returned by the status lookup
type UserStatusResponse struct {
	Name   string `json:"name"`
	Status bool   `json:"status"`
}
