package converter

import (
	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/domain/entity"
)

// TherapistToResponse flattens therapist, account and person into one DTO
func TherapistToResponse(therapist *entity.Therapist) *dto.TherapistResponse {
	if therapist == nil {
		return nil
	}

	person := therapist.User.Person
	return &dto.TherapistResponse{
		PublicID:    therapist.PublicID,
		Name:        person.Name,
		Lastname:    person.Lastname,
		Birthdate:   FormatOptionalDate(person.Birthdate),
		Email:       therapist.User.Email,
		Username:    therapist.User.Username,
		Role:        therapist.User.Role.RoleName,
		Status:      string(therapist.User.Status),
		Resume:      therapist.Resume,
		OnboardDate: FormatDate(therapist.OnboardDate),
		Therapies:   TherapiesToResponses(therapist.Therapies),
		CreatedAt:   therapist.CreatedAt,
	}
}

func TherapistsToResponses(therapists []entity.Therapist) []dto.TherapistResponse {
	responses := make([]dto.TherapistResponse, 0, len(therapists))
	for i := range therapists {
		responses = append(responses, *TherapistToResponse(&therapists[i]))
	}
	return responses
}
