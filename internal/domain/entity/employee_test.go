package entity

import (
	"strings"
	"testing"

	errs "employeeservice/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	tests := []struct {
		name    string
		empName string
		surname string
		phone   string
		wantErr bool
	}{
		{
			name:    "valid employee",
			empName: "Ivan",
			surname: "Petrov",
			phone:   "+7 912 000 11 22",
			wantErr: false,
		},
		{
			name:    "blank name",
			empName: "",
			surname: "Petrov",
			phone:   "123456",
			wantErr: true,
		},
		{
			name:    "blank surname",
			empName: "Ivan",
			surname: "  ",
			phone:   "123456",
			wantErr: true,
		},
		{
			name:    "phone with invalid characters",
			empName: "Ivan",
			surname: "Petrov",
			phone:   "(123) 456",
			wantErr: true,
		},
		{
			name:    "surname too long",
			empName: "Ivan",
			surname: strings.Repeat("x", 256),
			phone:   "123456",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employee, err := NewEmployee(tt.empName, tt.surname, tt.phone, 1, 2, 3)

			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrBadRequest)
				assert.Nil(t, employee)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.empName, employee.Name)
				assert.Equal(t, tt.surname, employee.Surname)
				assert.Equal(t, tt.phone, employee.Phone)
				assert.Equal(t, 1, employee.CompanyID)
				assert.Equal(t, 2, employee.DepartmentID)
				assert.Equal(t, 3, employee.PassportID)
			}
		})
	}
}

func TestEmployeeSetters(t *testing.T) {
	employee, err := NewEmployee("Ivan", "Petrov", "123456", 1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, employee.SetName("Pyotr"))
	assert.Equal(t, "Pyotr", employee.Name)

	err = employee.SetPhone("not a phone")
	assert.ErrorIs(t, err, errs.ErrBadRequest)
	assert.Equal(t, "123456", employee.Phone, "failed update must not change the phone")
}
