package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

var ErrNoTasks = &Exception{
	Message:    "no tasks found",
	StatusCode: http.StatusNotFound,
}
