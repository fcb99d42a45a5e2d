package models

// ErrorNotFound signals a lookup for an id that does not exist.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	if e.Message == "" {
		return "not found"
	}
	return e.Message
}

// ErrorValidation signals rejected input. No partial write happens.
type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}
