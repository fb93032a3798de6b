package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	liveStream  = "games.live.football_nfl"
	finalStream = "games.final.football_nfl"
)

// RedisStreamPublisher publishes game events to Redis streams for downstream
// consumers (grading jobs, notification fanout).
type RedisStreamPublisher struct {
	client *redis.Client
}

// NewRedisStreamPublisher creates a new Redis stream publisher from existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
	}
}

// PublishLiveGameUpdate publishes a live game update to the stream
func (rsp *RedisStreamPublisher) PublishLiveGameUpdate(ctx context.Context, gameData interface{}) error {
	data, err := json.Marshal(gameData)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: liveStream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}

// PublishFinalResult publishes a captured final score to the stream
func (rsp *RedisStreamPublisher) PublishFinalResult(ctx context.Context, resultData interface{}) error {
	data, err := json.Marshal(resultData)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: finalStream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
