package converter

import (
	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	therapistPerson := appointment.Therapist.User.Person
	return &dto.AppointmentResponse{
		ID: appointment.ID,
		Client: dto.PersonSummary{
			PublicID: appointment.Client.PublicID,
			Name:     appointment.Client.Person.Name,
			Lastname: appointment.Client.Person.Lastname,
		},
		Therapist: dto.PersonSummary{
			PublicID: appointment.Therapist.PublicID,
			Name:     therapistPerson.Name,
			Lastname: therapistPerson.Lastname,
		},
		Therapy: dto.TherapySummary{
			ID:   appointment.Therapy.ID,
			Name: appointment.Therapy.Name,
			Code: appointment.Therapy.Code,
		},
		Date:      FormatDate(appointment.Date),
		StartTime: FormatClock(appointment.StartTime),
		EndTime:   FormatClock(appointment.EndTime),
		Room:      appointment.Room,
		Status:    string(appointment.Status),
		Phone:     appointment.Phone,
		Notes:     appointment.Notes,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
