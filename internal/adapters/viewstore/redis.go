package viewstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/csg33k/launchboard/internal/domain"
)

const keyPrefix = "launchboard:view:"

// Redis shares views between dashboard replicas. Keys expire ttl after
// their last read.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Redis{rdb: redis.NewClient(opts), ttl: ttl}, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}


func (r *Redis) Save(ctx context.Context, subs []domain.Submission) (string, error) {
	b, err := json.Marshal(subs)
	if err != nil {
		return "", fmt.Errorf("encode view: %w", err)
	}
	id := uuid.NewString()
	if err := r.rdb.Set(ctx, keyPrefix+id, b, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("save view: %w", err)
	}
	return id, nil
}

func (r *Redis) Load(ctx context.Context, id string) ([]domain.Submission, bool, error) {
	b, err := r.rdb.GetEx(ctx, keyPrefix+id, r.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load view: %w", err)
	}
	var subs []domain.Submission
	if err := json.Unmarshal(b, &subs); err != nil {
		return nil, false, fmt.Errorf("decode view: %w", err)
	}
	return subs, true, nil
}
