package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects to the Redis instance holding generation tokens.
// Client-side caching is off since tokens are only ever popped and pushed.
func NewRedisClient(addr string) rueidis.Client {
	client, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress:  []string{addr},
			ClientName:   "task-planner",
			DisableCache: true,
		},
	)
	if err != nil {
		log.Fatalf("failed to connect to redis at %s: %v", addr, err)
	}

	return client
}
