package converter

import (
	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/domain/entity"
)

// TherapyToResponse converts a Therapy entity to TherapyResponse DTO
func TherapyToResponse(therapy *entity.Therapy) *dto.TherapyResponse {
	if therapy == nil {
		return nil
	}

	return &dto.TherapyResponse{
		ID:          therapy.ID,
		Name:        therapy.Name,
		Code:        therapy.Code,
		Description: therapy.Description,
		Price:       therapy.Price,
		IsActive:    therapy.Active(),
		CreatedAt:   therapy.CreatedAt,
		UpdatedAt:   therapy.UpdatedAt,
	}
}

func TherapiesToResponses(therapies []entity.Therapy) []dto.TherapyResponse {
	responses := make([]dto.TherapyResponse, 0, len(therapies))
	for i := range therapies {
		responses = append(responses, *TherapyToResponse(&therapies[i]))
	}
	return responses
}
