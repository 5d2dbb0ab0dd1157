package validators

import (
	"strconv"
	"strings"
	"unicode/utf8"

	dto "task-planner.com/task-planner/internal/data_models"
	apperrors "task-planner.com/task-planner/internal/errors"
)

const MaxGoalLength = 2000

func ValidateCreatePlanRequest(r *dto.CreatePlanRequest) error {
	r.Goal = strings.TrimSpace(r.Goal)
	if r.Goal == "" {
		return apperrors.ErrGoalRequired
	}
	if utf8.RuneCountInString(r.Goal) > MaxGoalLength {
		return apperrors.ErrGoalTooLong
	}
	return nil
}

func ParseTaskNumber(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, apperrors.ErrInvalidTaskNumber
	}
	return n, nil
}
