package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tubekeep/internal/youtube"
	"tubekeep/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const searchCachePrefix = "search:"

// VideoProvider 외부 영상 검색 프로바이더
type VideoProvider interface {
	Search(ctx context.Context, query string, limit int) ([]youtube.Video, error)
	GetVideo(ctx context.Context, videoID string) (*youtube.Video, error)
}

// SearchService 질의를 URL/키워드로 분기해 프로바이더에 위임한다.
// Redis가 있으면 결과를 캐시하고, 없으면 그대로 프로바이더만 사용한다.
type SearchService struct {
	provider VideoProvider
	cache    *redis.Client // nil이면 캐시 없음
	cacheTTL time.Duration
	limit    int
}

func NewSearchService(provider VideoProvider, cache *redis.Client, cacheTTL time.Duration, limit int) *SearchService {
	if limit <= 0 {
		limit = 20
	}
	return &SearchService{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
		limit:    limit,
	}
}

// Search 질의가 영상 URL이면 해당 영상 하나를, 아니면 키워드 검색 결과를 반환한다.
// URL을 해석하지 못하면 youtube.ErrVideoNotFound.
func (s *SearchService) Search(ctx context.Context, query string) ([]youtube.Video, error) {
	if cached := s.fromCache(ctx, query); cached != nil {
		return cached, nil
	}

	var results []youtube.Video
	if youtube.IsVideoURL(query) {
		videoID := youtube.ExtractVideoID(query)
		video, err := s.provider.GetVideo(ctx, videoID)
		if err != nil {
			return nil, err
		}
		results = []youtube.Video{*video}
	} else {
		videos, err := s.provider.Search(ctx, query, s.limit)
		if err != nil {
			return nil, err
		}
		results = videos
	}

	s.toCache(ctx, query, results)
	return results, nil
}

// fromCache 캐시 조회. 캐시 장애는 무시하고 miss로 처리한다.
func (s *SearchService) fromCache(ctx context.Context, query string) []youtube.Video {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, searchCachePrefix+query).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("검색 캐시 조회 실패", zap.Error(err))
		}
		return nil
	}
	var videos []youtube.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil
	}
	return videos
}

// toCache 캐시 저장. 실패해도 검색 결과에는 영향 없다.
func (s *SearchService) toCache(ctx context.Context, query string, videos []youtube.Video) {
	if s.cache == nil || len(videos) == 0 {
		return
	}
	data, err := json.Marshal(videos)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, searchCachePrefix+query, data, s.cacheTTL).Err(); err != nil {
		logger.Warn("검색 캐시 저장 실패", zap.Error(err))
	}
}
