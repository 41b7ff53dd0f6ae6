package converter

import (
	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/domain/entity"
)

// UserToResponse converts an AppUser entity to UserResponse DTO
func UserToResponse(user *entity.AppUser) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Name:      user.Person.Name,
		Lastname:  user.Person.Lastname,
		Role:      user.Role.RoleName,
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
