package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeIDExists      = errors.New("employee id already exists")
	ErrCallLogNotFound       = errors.New("call log not found")
	ErrMessageNotFound       = errors.New("message not found")
	ErrInvalidPhoneNumber    = errors.New("phone number must be 10-15 digits")
	ErrInvalidGender         = errors.New("gender must be Male, Female or Other")
	ErrFutureDateNotAllowed  = errors.New("date cannot be in the future")
	ErrInvalidCallLogSorting = errors.New("sort must be ascending or descending")
)
