package entity

import (
	"testing"

	errs "employeeservice/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDepartment(t *testing.T) {
	tests := []struct {
		name     string
		deptName string
		phone    string
		wantErr  bool
	}{
		{
			name:     "valid department",
			deptName: "Engineering",
			phone:    "+7 999 123 45 67",
			wantErr:  false,
		},
		{
			name:     "phone with letters",
			deptName: "Engineering",
			phone:    "555-CALL",
			wantErr:  true,
		},
		{
			name:     "blank name",
			deptName: " ",
			phone:    "123456",
			wantErr:  true,
		},
		{
			name:     "blank phone",
			deptName: "Engineering",
			phone:    "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			department, err := NewDepartment(1, tt.deptName, tt.phone)

			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrBadRequest)
				assert.Nil(t, department)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1, department.CompanyID)
				assert.Equal(t, tt.deptName, department.Name)
				assert.Equal(t, tt.phone, department.Phone)
			}
		})
	}
}
