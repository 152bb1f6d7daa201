package handler

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Username    string   `json:"username" binding:"required,max=100"`
	Password    string   `json:"password" binding:"required,min=6,max=128"`
	Permissions []string `json:"permissions"`
	IsAdmin     bool     `json:"isAdmin"`
}

// UpdateUserRequest represents the request body for updating a user.
// Omitted fields keep their current value; an empty password is ignored.
type UpdateUserRequest struct {
	Username    *string   `json:"username" binding:"omitempty,max=100"`
	Password    *string   `json:"password" binding:"omitempty,max=128"`
	Permissions *[]string `json:"permissions"`
	IsAdmin     *bool     `json:"isAdmin"`
}
