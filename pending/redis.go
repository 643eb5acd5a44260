package pending

import (
	"context"
	"fmt"
	"time"

	"avisame/constants"
	"avisame/types"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "recordatorio_context:"

const (
	fieldScheduledFor         = "scheduled_for"
	fieldOriginalMessage      = "original_message"
	fieldAwaitingConfirmation = "awaiting_confirmation"
)

// RedisStore is the production Store backing, one hash per sender with a
// TTL on the key.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Put(ctx context.Context, sender string, p types.PendingReminder) error {
	key := keyPrefix + sender

	err := s.rdb.HSet(ctx, key, map[string]string{
		fieldScheduledFor:         p.ScheduledFor.Format(time.RFC3339),
		fieldOriginalMessage:      p.OriginalMessage,
		fieldAwaitingConfirmation: "1",
	}).Err()

	if err != nil {
		return fmt.Errorf("store pending reminder: %w", err)
	}

	err = s.rdb.Expire(ctx, key, constants.PendingReminderTTL).Err()

	if err != nil {
		return fmt.Errorf("expire pending reminder: %w", err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, sender string) (*types.PendingReminder, error) {
	fields, err := s.rdb.HGetAll(ctx, keyPrefix+sender).Result()

	if err != nil {
		return nil, fmt.Errorf("fetch pending reminder: %w", err)
	}

	if len(fields) == 0 || fields[fieldAwaitingConfirmation] != "1" {
		return nil, nil
	}

	scheduledFor, err := time.Parse(time.RFC3339, fields[fieldScheduledFor])

	if err != nil {
		// A corrupt record is as untrustworthy as an unreachable store.
		return nil, fmt.Errorf("corrupt pending reminder for %q: %w", sender, err)
	}

	return &types.PendingReminder{
		ScheduledFor:    scheduledFor,
		OriginalMessage: fields[fieldOriginalMessage],
	}, nil
}

func (s *RedisStore) Clear(ctx context.Context, sender string) error {
	err := s.rdb.Del(ctx, keyPrefix+sender).Err()

	if err != nil {
		return fmt.Errorf("clear pending reminder: %w", err)
	}

	return nil
}
