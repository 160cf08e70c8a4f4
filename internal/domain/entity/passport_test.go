package entity

import (
	"strings"
	"testing"

	errs "employeeservice/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassport(t *testing.T) {
	tests := []struct {
		name         string
		passportType string
		number       string
		wantErr      bool
	}{
		{
			name:         "valid passport",
			passportType: "international",
			number:       "1234 567890",
			wantErr:      false,
		},
		{
			name:         "empty type",
			passportType: "",
			number:       "1234567890",
			wantErr:      true,
		},
		{
			name:         "type too long",
			passportType: strings.Repeat("a", 51),
			number:       "1234567890",
			wantErr:      true,
		},
		{
			name:         "number with letters",
			passportType: "internal",
			number:       "AB1234567",
			wantErr:      true,
		},
		{
			name:         "number with plus sign",
			passportType: "internal",
			number:       "+1234567",
			wantErr:      true,
		},
		{
			name:         "number too long",
			passportType: "internal",
			number:       strings.Repeat("1", 51),
			wantErr:      true,
		},
		{
			name:         "blank number",
			passportType: "internal",
			number:       "   ",
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passport, err := NewPassport(tt.passportType, tt.number)

			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrBadRequest)
				assert.Nil(t, passport)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.passportType, passport.Type)
				assert.Equal(t, tt.number, passport.Number)
			}
		})
	}
}
