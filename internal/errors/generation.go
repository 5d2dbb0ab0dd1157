package errors

import "net/http"

var ErrGenerationBusy = &Exception{
	Message:    "too many plans are being generated, try again shortly",
	StatusCode: http.StatusTooManyRequests,
}

var ErrGenerationFailed = &Exception{
	Message:    "failed to generate plan",
	StatusCode: http.StatusInternalServerError,
}
