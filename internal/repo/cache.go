package repo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// cachedTripRepo is a Redis cache in front of another TripRepo.
// Only GetByID is cached. Update writes the stored result through, and a
// GetByID miss fills the entry only if it is still absent, so a read that
// overlaps an Update can never put the older trip back. Redis errors never
// fail a request: they are logged and the inner repo answers instead.
type cachedTripRepo struct {
	TripRepo
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

// NewCachedTripRepo wraps inner with a Redis cache whose entries expire
// after ttl.
func NewCachedTripRepo(inner TripRepo, rdb *redis.Client, ttl time.Duration, log *slog.Logger) TripRepo {
	return &cachedTripRepo{TripRepo: inner, rdb: rdb, ttl: ttl, log: log}
}

func tripKey(id uuid.UUID) string {
	return "trip:" + id.String()
}

func (r *cachedTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	key := tripKey(id)

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var t domain.Trip
		if err := json.Unmarshal(raw, &t); err == nil {
			return t, nil
		}
		r.log.WarnContext(ctx, "discarding undecodable cached trip", "key", key)
		_ = r.rdb.Del(ctx, key).Err()
	case !errors.Is(err, redis.Nil):
		r.log.WarnContext(ctx, "trip cache read failed", "key", key, "error", err)
	}

	t, err := r.TripRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, err
	}

	if raw, err := json.Marshal(t); err == nil {
		if err := r.rdb.SetNX(ctx, key, raw, r.ttl).Err(); err != nil {
			r.log.WarnContext(ctx, "trip cache write failed", "key", key, "error", err)
		}
	}
	return t, nil
}

func (r *cachedTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	updated, err := r.TripRepo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, err
	}

	key := tripKey(updated.ID)
	raw, err := json.Marshal(updated)
	if err == nil {
		err = r.rdb.Set(ctx, key, raw, r.ttl).Err()
	}
	if err != nil {
		r.log.WarnContext(ctx, "trip cache write-through failed; evicting", "key", key, "error", err)
		if err := r.rdb.Del(ctx, key).Err(); err != nil {
			r.log.WarnContext(ctx, "trip cache evict failed", "key", key, "error", err)
		}
	}
	return updated, nil
}
