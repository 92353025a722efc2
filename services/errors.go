package services

// NotFoundError maps to HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError maps to HTTP 409 (uniqueness or sold-status violations).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// BadRequestError maps to HTTP 400 (immutable-field or empty-payload rejections).
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

// ValidationError maps to HTTP 422 and carries every collected field message.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string { return "Validation Error" }
