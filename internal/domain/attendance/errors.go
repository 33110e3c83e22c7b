package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidPhotoType   = errors.New("invalid file type: only jpg, jpeg, png allowed")
	ErrPhotoTooLarge      = errors.New("attendance photo size must not exceed 10MB")
)
