package dto

import "github.com/dccc/clubportal/internal/app/models"

// UserResponse represents member information returned by the API
type UserResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Batch       string `json:"batch"`
	Province    string `json:"province"`
	Role        string `json:"role"`
	IsSuspended bool   `json:"isSuspended"`
}

// NewUserResponse maps a user model to its API representation
func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Batch:       u.Batch,
		Province:    string(u.Province),
		Role:        string(u.Role),
		IsSuspended: u.IsSuspended,
	}
}

// UpdateProfileRequest represents the self-editable profile fields.
// Email and role are not part of the patch surface.
type UpdateProfileRequest struct {
	Name     *string          `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Phone    *string          `json:"phone,omitempty"`
	Batch    *string          `json:"batch,omitempty"`
	Province *models.Province `json:"province,omitempty"`
}

// UpdateRoleRequest represents an admin role change
type UpdateRoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}
