package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/modules/roster/infrastructure/persistence/models"
)

const cacheKeyPrefix = "roster:assignments:v1"

// KeyValueStore is the subset of *redis.Client used by the cache.
// Get must return redis.Nil for a missing key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedAssignmentRepository serves fetched windows from redis and falls
// through to the wrapped repository on a miss. Cache failures never fail a
// fetch; they are logged and bypassed.
type CachedAssignmentRepository struct {
	next   roster.Repository
	store  KeyValueStore
	ttl    time.Duration
	prefix string
	logger logrus.FieldLogger
}

func NewCachedAssignmentRepository(next roster.Repository, store KeyValueStore, ttl time.Duration, logger logrus.FieldLogger) *CachedAssignmentRepository {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &CachedAssignmentRepository{
		next:   next,
		store:  store,
		ttl:    ttl,
		prefix: cacheKeyPrefix,
		logger: logger,
	}
}

func (r *CachedAssignmentRepository) key(start, end string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, start, end)
}

func (r *CachedAssignmentRepository) FetchAssignments(ctx context.Context, startDate, endDate string) ([]roster.RawAssignment, error) {
	start, end, err := ValidateWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}
	key := r.key(start, end)

	if cached, ok := r.lookup(ctx, key); ok {
		return cached, nil
	}

	assignments, err := r.next.FetchAssignments(ctx, start, end)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ToCachedWindow(start, end, assignments))
	if err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("roster cache: marshal failed")
		return assignments, nil
	}
	if err := r.store.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("roster cache: write failed")
	}
	return assignments, nil
}

func (r *CachedAssignmentRepository) lookup(ctx context.Context, key string) ([]roster.RawAssignment, bool) {
	result, err := r.store.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WithError(err).WithField("key", key).Warn("roster cache: read failed")
		}
		return nil, false
	}
	var window models.CachedWindow
	if err := json.Unmarshal([]byte(result), &window); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("roster cache: corrupt entry")
		return nil, false
	}
	return ToDomainCachedWindow(window), true
}
