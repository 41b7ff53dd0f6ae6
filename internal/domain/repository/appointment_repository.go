package repository

import (
	"therapy-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error)
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) (int64, error)
}
