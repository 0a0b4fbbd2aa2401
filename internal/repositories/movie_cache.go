package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
)

// MovieCacheRepository caches movie detail responses in Redis. Every movie
// also has a version counter that eviction bumps; a fill only lands when the
// version it read before loading from the database is still current, so a
// fill racing an eviction cannot resurrect stale data.
type MovieCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewMovieCacheRepository creates a cache with the given entry TTL
func NewMovieCacheRepository(client *redis.Client, expiration time.Duration) *MovieCacheRepository {
	return &MovieCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func movieCacheKey(movieID uuid.UUID) string {
	return fmt.Sprintf("movie:%s", movieID)
}

func movieVersionKey(movieID uuid.UUID) string {
	return fmt.Sprintf("movie:%s:version", movieID)
}

// setIfVersion writes KEYS[1] only while KEYS[2] still holds ARGV[1].
// A missing version counts as 0.
var setIfVersion = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

// Get returns the cached detail of a movie, or nil on a miss
func (r *MovieCacheRepository) Get(ctx context.Context, movieID uuid.UUID) (*models.MovieDetail, error) {
	key := movieCacheKey(movieID)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("detail cache", "key", key, "result", "miss", "error", nil)
		return nil, nil
	}
	if err != nil {
		logger.Log.Debugw("detail cache", "key", key, "result", nil, "error", err)
		return nil, err
	}

	var detail models.MovieDetail
	if err := json.Unmarshal(val, &detail); err != nil {
		logger.Log.Debugw("detail cache", "key", key, "result", nil, "error", err)
		return nil, err
	}

	logger.Log.Debugw("detail cache", "key", key, "result", "hit", "error", nil)

	return &detail, nil
}

// Version returns the current version of a movie's cache entry. Read it
// before loading the detail and pass it to Set.
func (r *MovieCacheRepository) Version(ctx context.Context, movieID uuid.UUID) (int64, error) {
	key := movieVersionKey(movieID)

	version, err := r.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	logger.Log.Debugw("detail cache", "key", key, "result", version, "error", err)

	return version, err
}

// Set caches the detail of a movie unless the entry was evicted after version
// was read. stored reports whether the detail was written.
func (r *MovieCacheRepository) Set(ctx context.Context, detail *models.MovieDetail, version int64) (stored bool, err error) {
	key := movieCacheKey(detail.MovieID)

	val, err := json.Marshal(detail)
	if err != nil {
		return false, err
	}

	res, err := setIfVersion.Run(ctx, r.client,
		[]string{key, movieVersionKey(detail.MovieID)},
		strconv.FormatInt(version, 10), val, r.exp.Milliseconds(),
	).Int()

	logger.Log.Debugw("detail cache", "key", key, "version", version, "result", res, "error", err)

	return res == 1, err
}

// Delete evicts the cached detail of a movie and bumps its version so fills
// that started earlier are discarded.
func (r *MovieCacheRepository) Delete(ctx context.Context, movieID uuid.UUID) error {
	key := movieCacheKey(movieID)
	versionKey := movieVersionKey(movieID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		if r.exp > 0 {
			// outlives every entry filled under the previous version
			pipe.PExpire(ctx, versionKey, 2*r.exp)
		}
		pipe.Del(ctx, key)
		return nil
	})

	logger.Log.Debugw("detail cache", "key", key, "result", "deleted", "error", err)

	return err
}
