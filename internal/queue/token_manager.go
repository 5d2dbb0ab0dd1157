package queue

import (
	"context"
	"errors"
)

// TokenManager hands out a bounded number of plan generation slots. A slot
// must be released once the generation it guards has finished.
type TokenManager interface {
	AcquireToken(ctx context.Context) error

	ReleaseToken(ctx context.Context) error

	InitializeTokens(ctx context.Context, count int) error
}

var ErrNoTokenAvailable = errors.New("no generation slot available")
