package entity

import (
	"strings"
	"unicode"

	errs "employeeservice/internal/domain/error"
)

// Field length limits enforced by the database schema
const (
	MaxNameLength   = 255
	MaxPhoneLength  = 50
	MaxTypeLength   = 50
	MaxNumberLength = 50
)

// requireText rejects blank values and values longer than maxLen
func requireText(value, field string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewBadRequestf("field %s is empty or contains whitespace only", field)
	}
	if len(value) > maxLen {
		return errs.NewBadRequestf("field %s exceeds %d characters", field, maxLen)
	}
	return nil
}

// requirePhone accepts digits, spaces and a leading or embedded '+'
func requirePhone(value, field string) error {
	if err := requireText(value, field, MaxPhoneLength); err != nil {
		return err
	}
	for _, r := range value {
		if !unicode.IsDigit(r) && r != ' ' && r != '+' {
			return errs.NewBadRequestf("field %s may contain only digits, spaces and '+'", field)
		}
	}
	return nil
}

// requireDigitsSpaces accepts digits and spaces only
func requireDigitsSpaces(value, field string, maxLen int) error {
	if err := requireText(value, field, maxLen); err != nil {
		return err
	}
	for _, r := range value {
		if !unicode.IsDigit(r) && r != ' ' {
			return errs.NewBadRequestf("field %s may contain only digits and spaces", field)
		}
	}
	return nil
}
