package validator

import (
	"reflect"
	"strings"
	"time"

	"therapy-clinic-api/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// ClockLayout is the HH:MM format used for appointment times.
const ClockLayout = "15:04"

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields by their json name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(ClockLayout, fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("appointment_status", func(fl validator.FieldLevel) bool {
		return entity.AppointmentStatus(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("account_status", func(fl validator.FieldLevel) bool {
		return entity.AccountStatus(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required", "notblank":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "datetime":
				errors[field] = field + " must match the format " + e.Param()
			case "hhmm":
				errors[field] = field + " must be a time in HH:MM format"
			case "appointment_status":
				errors[field] = field + " must be one of pending, confirmed, completed, cancelled"
			case "account_status":
				errors[field] = field + " must be one of active, inactive, suspended"
			case "oneof":
				errors[field] = field + " must be one of " + e.Param()
			case "dive":
				errors[field] = field + " contains an invalid entry"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
