package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
)

const (
	rankTopKey     = "rank:movies:top"
	rankPopularKey = "rank:movies:popular"
)

// RankingRepository keeps movies ordered by mean rating and by vote count in Redis sorted sets
type RankingRepository struct {
	client *redis.Client
}

func NewRankingRepository(client *redis.Client) *RankingRepository {
	return &RankingRepository{client: client}
}

// Update scores the movie in both rankings. Movies without votes are kept out
// of the top ranking.
func (r *RankingRepository) Update(ctx context.Context, movieID uuid.UUID, votes int, rating float64) error {
	member := movieID.String()

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, rankPopularKey, redis.Z{Score: float64(votes), Member: member})
		if votes > 0 {
			pipe.ZAdd(ctx, rankTopKey, redis.Z{Score: rating, Member: member})
		} else {
			pipe.ZRem(ctx, rankTopKey, member)
		}
		return nil
	})

	logger.Log.Debugw("ranking update",
		"member", member,
		"votes", votes,
		"rating", rating,
		"error", err,
	)

	return err
}

// Remove drops the movie from both rankings
func (r *RankingRepository) Remove(ctx context.Context, movieID uuid.UUID) error {
	member := movieID.String()

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, rankTopKey, member)
		pipe.ZRem(ctx, rankPopularKey, member)
		return nil
	})

	logger.Log.Debugw("ranking remove", "member", member, "result", "removed", "error", err)

	return err
}

// Top returns up to limit movie ids with the highest mean rating
func (r *RankingRepository) Top(ctx context.Context, limit int) ([]uuid.UUID, error) {
	return r.head(ctx, rankTopKey, limit)
}

// Popular returns up to limit movie ids with the most votes
func (r *RankingRepository) Popular(ctx context.Context, limit int) ([]uuid.UUID, error) {
	return r.head(ctx, rankPopularKey, limit)
}

func (r *RankingRepository) head(ctx context.Context, key string, limit int) ([]uuid.UUID, error) {
	members, err := r.client.ZRevRange(ctx, key, 0, int64(limit-1)).Result()

	logger.Log.Debugw("ranking read", "key", key, "limit", limit, "result", len(members), "error", err)

	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
