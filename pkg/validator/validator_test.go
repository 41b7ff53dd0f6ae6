package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentForm struct {
	StartTime string `json:"start_time" validate:"required,hhmm"`
	Status    string `json:"status" validate:"omitempty,appointment_status"`
	Account   string `json:"account_status" validate:"omitempty,account_status"`
	Name      string `json:"name" validate:"notblank"`
}

func TestValidate_CustomTags(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		form    appointmentForm
		wantErr map[string]string
	}{
		{
			name: "valid",
			form: appointmentForm{StartTime: "09:30", Status: "confirmed", Account: "active", Name: "Ana"},
		},
		{
			name: "bad clock",
			form: appointmentForm{StartTime: "9.30", Name: "Ana"},
			wantErr: map[string]string{
				"start_time": "start_time must be a time in HH:MM format",
			},
		},
		{
			name: "unknown status",
			form: appointmentForm{StartTime: "10:00", Status: "archived", Name: "Ana"},
			wantErr: map[string]string{
				"status": "status must be one of pending, confirmed, completed, cancelled",
			},
		},
		{
			name: "blank name and bad account",
			form: appointmentForm{StartTime: "10:00", Account: "deleted", Name: "   "},
			wantErr: map[string]string{
				"name":           "name is required",
				"account_status": "account_status must be one of active, inactive, suspended",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.form)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, v.FormatValidationErrors(err))
		})
	}
}
