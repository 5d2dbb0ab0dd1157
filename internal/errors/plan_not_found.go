package errors

import "net/http"

var ErrPlanNotFound = &Exception{
	Message:    "plan not found",
	StatusCode: http.StatusNotFound,
}

// ErrMalformedPlanID is kept distinct from ErrPlanNotFound internally but
// reads the same to callers.
var ErrMalformedPlanID = &Exception{
	Message:    "plan not found",
	StatusCode: http.StatusNotFound,
}
