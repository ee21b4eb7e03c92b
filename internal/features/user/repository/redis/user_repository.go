package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"taskboard-backend/internal/common/cache"
	"taskboard-backend/internal/common/logger"
	"taskboard-backend/internal/domain/user"
	"taskboard-backend/internal/features/user/repository"
)

// cachedRepository reads users through Redis by id. The database stays authoritative:
// every mutation drops the cached entry and bumps its version, and a fill is only
// written if the version it started from is still current.
type cachedRepository struct {
	next  repository.UserRepository
	cache *cache.Cache
	ttl   time.Duration
}

const keyPrefix = "user:id"

func NewCachedUserRepository(next repository.UserRepository, client redis.Cmdable, ttl time.Duration) repository.UserRepository {
	return &cachedRepository{next: next, cache: cache.New(client, keyPrefix), ttl: ttl}
}

func keyByID(id string) string { return keyPrefix + ":" + id }

func (r *cachedRepository) List(ctx context.Context) ([]user.User, error) {
	return r.next.List(ctx)
}

func (r *cachedRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var cached user.User
	err := r.cache.Get(ctx, id, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.Warn().Err(err).Str("user_id", id).Msg("User cache read failed")
	}

	version, verErr := r.cache.Version(ctx, id)
	u, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if verErr == nil {
		r.store(ctx, u, version)
	}
	return u, nil
}

func (r *cachedRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.next.FindByEmail(ctx, email)
}

func (r *cachedRepository) FindByWalletAddress(ctx context.Context, address string) (*user.User, error) {
	return r.next.FindByWalletAddress(ctx, address)
}

func (r *cachedRepository) Create(ctx context.Context, u *user.User) error {
	return r.next.Create(ctx, u)
}

func (r *cachedRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	err := r.next.Update(ctx, id, fields)
	r.invalidate(ctx, id)
	return err
}

func (r *cachedRepository) Delete(ctx context.Context, id string) error {
	err := r.next.Delete(ctx, id)
	r.invalidate(ctx, id)
	return err
}

// Transaction bypasses the cache inside fn and drops touched entries once fn returns.
func (r *cachedRepository) Transaction(ctx context.Context, fn func(repo repository.UserRepository) error) error {
	var touched []string
	err := r.next.Transaction(ctx, func(tx repository.UserRepository) error {
		return fn(&recordingRepository{UserRepository: tx, touched: &touched})
	})
	for _, id := range touched {
		r.invalidate(ctx, id)
	}
	return err
}

func (r *cachedRepository) store(ctx context.Context, u *user.User, version int64) {
	written, err := r.cache.SetIfVersion(ctx, u.ID, version, u, r.ttl)
	if err != nil {
		logger.Warn().Err(err).Str("user_id", u.ID).Msg("User cache write failed")
		return
	}
	if !written {
		logger.Debug().Str("user_id", u.ID).Msg("User cache fill dropped after invalidation")
	}
}

func (r *cachedRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Invalidate(ctx, id); err != nil {
		logger.Warn().Err(err).Str("user_id", id).Msg("User cache invalidation failed")
	}
}

// recordingRepository remembers which users a transaction mutated.
type recordingRepository struct {
	repository.UserRepository
	touched *[]string
}

func (r *recordingRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	*r.touched = append(*r.touched, id)
	return r.UserRepository.Update(ctx, id, fields)
}

func (r *recordingRepository) Delete(ctx context.Context, id string) error {
	*r.touched = append(*r.touched, id)
	return r.UserRepository.Delete(ctx, id)
}
