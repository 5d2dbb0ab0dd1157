package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-planner.com/task-planner/internal/data_models"
	apperrors "task-planner.com/task-planner/internal/errors"
)

// ErrorHandler writes every failure as {"error": "..."}. Errors outside the
// apperrors catalogue are logged and reported as a generic server error.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := apperrors.StatusCode(err)
	message := apperrors.Message(err)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else if code == http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, dto.ErrorResponse{Error: message})
	}
	if writeErr != nil {
		log.Printf("failed to write error response: %v", writeErr)
	}
}
