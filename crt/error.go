package crt

import "fmt"

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// CapacityExceeded - Custom error to inform that the table can't take more keys, either because a load threshold
// is exceeded or because probing went through every cell without finding an available one.
type CapacityExceeded struct {
	msg string
}

// NewCapacityExceeded - Returns a CapacityExceeded error with a formatted message
func NewCapacityExceeded(format string, a ...any) CapacityExceeded {
	return CapacityExceeded{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that the table is full
func (C CapacityExceeded) Error() string {
	if C.msg == "" {
		return "capacity exceeded"
	}
	return C.msg
}

// Is - Matches any CapacityExceeded regardless of message
func (C CapacityExceeded) Is(target error) bool {
	_, ok := target.(CapacityExceeded)
	return ok
}

// InvalidConfiguration - Custom error to inform that a table or a dataset generator was given parameters it can't
// work with, such as a zero capacity or a min value not lower than the max value.
type InvalidConfiguration struct {
	msg string
}

// NewInvalidConfiguration - Returns an InvalidConfiguration error with a formatted message
func NewInvalidConfiguration(format string, a ...any) InvalidConfiguration {
	return InvalidConfiguration{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify about invalid configuration
func (I InvalidConfiguration) Error() string {
	if I.msg == "" {
		return "invalid configuration"
	}
	return I.msg
}

// Is - Matches any InvalidConfiguration regardless of message
func (I InvalidConfiguration) Is(target error) bool {
	_, ok := target.(InvalidConfiguration)
	return ok
}

// Is - Matches any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// NewNoRecordFound - Returns a NoRecordFound error with a formatted message
func NewNoRecordFound(format string, a ...any) NoRecordFound {
	return NoRecordFound{msg: fmt.Sprintf(format, a...)}
}
