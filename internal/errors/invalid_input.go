package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "invalid status, must be one of: pending, in_progress, completed",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidTaskNumber = &Exception{
	Message:    "task number must be a positive integer",
	StatusCode: http.StatusBadRequest,
}

var ErrGoalRequired = &Exception{
	Message:    "goal is required",
	StatusCode: http.StatusBadRequest,
}

var ErrGoalTooLong = &Exception{
	Message:    "goal must be at most 2000 characters",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidJSON = &Exception{
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}
