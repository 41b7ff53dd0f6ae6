package repository

import (
	"errors"

	"therapy-clinic-api/internal/domain/entity"
	domainRepo "therapy-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Client", "Therapist", "Therapy").Create(appointment).Error
}

// filterAppointments applies optional filters: client name, date range, therapist and status.
func filterAppointments(filter *entity.AppointmentFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.
			Joins("JOIN client ON client.id = appointment.client_id").
			Joins("JOIN person ON person.id = client.person_id")
		if filter == nil {
			return db
		}
		if filter.Search != "" {
			like := containsPattern(filter.Search)
			db = db.Where("person.name ILIKE ? OR person.lastname ILIKE ?", like, like)
		}
		if filter.From != nil {
			db = db.Where("appointment.date >= ?", filter.From.Format("2006-01-02"))
		}
		if filter.To != nil {
			db = db.Where("appointment.date <= ?", filter.To.Format("2006-01-02"))
		}
		if filter.TherapistID != nil {
			db = db.Where("appointment.therapist_id = ?", *filter.TherapistID)
		}
		if filter.Status != "" {
			db = db.Where("appointment.status = ?", filter.Status)
		}
		return db
	}
}

func preloadAppointment(db *gorm.DB) *gorm.DB {
	return db.Preload("Client.Person").Preload("Therapist.User.Person").Preload("Therapy")
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	var appointments []entity.Appointment
	var total int64

	if err := db.Model(&entity.Appointment{}).Scopes(filterAppointments(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Scopes(filterAppointments(filter), preloadAppointment).
		Order("appointment.date ASC, appointment.start_time ASC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Scopes(preloadAppointment).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Model(appointment).
		Select("client_id", "therapist_id", "therapy_id", "date", "start_time", "end_time", "room", "status", "phone", "notes").
		Updates(appointment).Error
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}
