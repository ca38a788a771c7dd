package attendance

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid attendance status")
	ErrInvalidDate   = errors.New("date must be formatted as YYYY-MM-DD")
	ErrUnknownItem   = errors.New("schedule item not found")
)
