package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
)

const movieIndexMapping = `{
	"settings": {"number_of_shards": 1},
	"mappings": {
		"properties": {
			"name":         {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
			"description":  {"type": "text"},
			"releaseYear":  {"type": "integer"},
			"duration":     {"type": "integer"},
			"type":         {"type": "keyword"},
			"certificate":  {"type": "keyword"},
			"thumbnailUrl": {"type": "keyword", "index": false},
			"rating":       {"type": "double"},
			"votes":        {"type": "integer"},
			"genres":       {"type": "keyword"},
			"createdAt":    {"type": "date"},
			"updatedAt":    {"type": "date"}
		}
	}
}`

// MovieSearchRepository mirrors movies into an Elasticsearch index and serves
// listing queries from it.
type MovieSearchRepository struct {
	client *elasticsearch.Client
	index  string
}

func NewMovieSearchRepository(client *elasticsearch.Client, index string) *MovieSearchRepository {
	return &MovieSearchRepository{client: client, index: index}
}

// EnsureIndex creates the index with its mapping when it does not exist yet.
func (r *MovieSearchRepository) EnsureIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return err
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = r.client.Indices.Create(
		r.index,
		r.client.Indices.Create.WithBody(strings.NewReader(movieIndexMapping)),
		r.client.Indices.Create.WithContext(ctx),
	)

	logger.Log.Debugw("search request", "index", r.index, "result", "create", "error", err)

	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("create index %s: %s", r.index, res.String())
	}
	return nil
}

// Index stores the document of a movie, replacing any previous version.
func (r *MovieSearchRepository) Index(ctx context.Context, movieID uuid.UUID, doc models.SearchDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	res, err := r.client.Index(
		r.index,
		bytes.NewReader(body),
		r.client.Index.WithDocumentID(movieID.String()),
		r.client.Index.WithContext(ctx),
	)

	logger.Log.Debugw("search request", "index", r.index, "id", movieID, "result", "index", "error", err)

	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index movie %s: %s", movieID, res.String())
	}
	return nil
}

// Delete removes the document of a movie. A missing document is not an error.
func (r *MovieSearchRepository) Delete(ctx context.Context, movieID uuid.UUID) error {
	res, err := r.client.Delete(r.index, movieID.String(), r.client.Delete.WithContext(ctx))

	logger.Log.Debugw("search request", "index", r.index, "id", movieID, "result", "delete", "error", err)

	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete movie %s: %s", movieID, res.String())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string                `json:"_id"`
			Source models.SearchDocument `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// List returns one page of movies matching the filter and the total match count.
func (r *MovieSearchRepository) List(ctx context.Context, f models.MovieFilter) ([]models.MovieSummary, int, error) {
	body, err := json.Marshal(buildSearchQuery(f))
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(body)),
		r.client.Search.WithTrackTotalHits(true),
	)

	logger.Log.Debugw("search query",
		"index", r.index,
		"query", string(body),
		"duration", time.Since(start),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, 0, fmt.Errorf("search movies: %s", res.String())
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, 0, err
	}
	var parsed searchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, 0, err
	}

	movies := make([]models.MovieSummary, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		id, err := uuid.Parse(hit.ID)
		if err != nil {
			continue
		}
		src := hit.Source
		movies = append(movies, models.MovieSummary{
			MovieID:      id,
			Name:         src.Name,
			ThumbnailURL: src.ThumbnailURL,
			Rating:       src.Rating,
			Votes:        src.Votes,
			Type:         src.Type,
			Certificate:  src.Certificate,
			CreatedAt:    src.CreatedAt,
			Genres:       src.Genres,
		})
	}
	return movies, parsed.Hits.Total.Value, nil
}

// buildSearchQuery translates the filter into an Elasticsearch bool query.
// Text matches rank name prefixes above name phrases above description phrases.
func buildSearchQuery(f models.MovieFilter) map[string]any {
	var filters []any
	if f.Genre != "" {
		filters = append(filters, map[string]any{"term": map[string]any{"genres": f.Genre}})
	}
	switch f.Rating {
	case models.RatingBucketHigh:
		filters = append(filters, map[string]any{"range": map[string]any{"rating": map[string]any{"gte": 8}}})
	case models.RatingBucketMedium:
		filters = append(filters, map[string]any{"range": map[string]any{"rating": map[string]any{"gte": 5, "lte": 8}}})
	case models.RatingBucketLow:
		filters = append(filters, map[string]any{"range": map[string]any{"rating": map[string]any{"lt": 5}}})
	}
	if f.Type != "" {
		filters = append(filters, map[string]any{"term": map[string]any{"type": f.Type}})
	}
	if f.Certificate != "" {
		filters = append(filters, map[string]any{"term": map[string]any{"certificate": f.Certificate}})
	}

	boolQuery := map[string]any{}
	if len(filters) > 0 {
		boolQuery["filter"] = filters
	}

	sort := []any{map[string]any{"createdAt": "desc"}}
	if q := strings.TrimSpace(f.Search); q != "" {
		boolQuery["should"] = []any{
			map[string]any{"prefix": map[string]any{"name": map[string]any{"value": strings.ToLower(q), "boost": 3}}},
			map[string]any{"match_phrase_prefix": map[string]any{"name": map[string]any{"query": q, "boost": 2}}},
			map[string]any{"match_phrase_prefix": map[string]any{"description": map[string]any{"query": q}}},
		}
		boolQuery["minimum_should_match"] = 1
		sort = []any{"_score", map[string]any{"createdAt": "desc"}}
	}

	return map[string]any{
		"from":  f.Offset(),
		"size":  f.Limit,
		"query": map[string]any{"bool": boolQuery},
		"sort":  sort,
	}
}
