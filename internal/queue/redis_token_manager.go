package queue

import (
	"context"

	"github.com/redis/rueidis"
)

// RedisTokenManager keeps slots as list elements under key so that every
// instance of the service shares one budget.
type RedisTokenManager struct {
	client rueidis.Client
	key    string
}

func NewRedisTokenManager(client rueidis.Client, key string) *RedisTokenManager {
	return &RedisTokenManager{
		client: client,
		key:    key,
	}
}

func (r *RedisTokenManager) AcquireToken(ctx context.Context) error {
	cmd := r.client.B().Lpop().Key(r.key).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return ErrNoTokenAvailable
		}
		return err
	}

	return nil
}

func (r *RedisTokenManager) ReleaseToken(ctx context.Context) error {
	cmd := r.client.B().Rpush().Key(r.key).Element("1").Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisTokenManager) InitializeTokens(ctx context.Context, count int) error {
	cmds := make(rueidis.Commands, 0, count+1)
	cmds = append(cmds, r.client.B().Del().Key(r.key).Build())
	for i := 0; i < count; i++ {
		cmds = append(cmds, r.client.B().Rpush().Key(r.key).Element("1").Build())
	}

	for _, resp := range r.client.DoMulti(ctx, cmds...) {
		if err := resp.Error(); err != nil {
			return err
		}
	}

	return nil
}
