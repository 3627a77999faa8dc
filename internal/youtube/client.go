// Package youtube YouTube Innertube 웹 API를 감싸는 검색/조회 클라이언트.
// API 키 없이 웹 클라이언트 컨텍스트로 youtubei/v1 엔드포인트를 호출하고,
// 응답을 고정된 결과 형태로 정규화한다.
package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"tubekeep/internal/config"
)

const (
	defaultBaseURL = "https://www.youtube.com/youtubei/v1"
	clientName     = "WEB"
	clientVersion  = "2.20250901.00.00"
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// ErrVideoNotFound 프로바이더가 영상을 찾지 못했을 때
var ErrVideoNotFound = errors.New("영상을 찾을 수 없습니다")

// Video 정규화된 영상 정보. 프로바이더가 생략한 필드는 빈 문자열이 된다.
type Video struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Duration  string `json:"duration"`
	Channel   string `json:"channel"`
	Views     string `json:"views"`
}

// Client Innertube HTTP 클라이언트
type Client struct {
	httpClient *http.Client
	baseURL    string
	hl         string
	gl         string
}

// NewClient 설정으로 클라이언트를 생성한다.
func NewClient(cfg *config.YouTubeConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.TimeoutDuration()},
		baseURL:    defaultBaseURL,
		hl:         cfg.HL,
		gl:         cfg.GL,
	}
}

// Search 키워드로 영상을 검색해 최대 limit건을 반환한다.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Video, error) {
	req := searchRequest{
		Context: c.innertubeContext(),
		Query:   query,
	}

	var resp searchResponse
	if err := c.post(ctx, "/search", req, &resp); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, limit)
	for _, section := range resp.Contents.TwoColumnSearchResultsRenderer.PrimaryContents.SectionListRenderer.Contents {
		for _, item := range section.ItemSectionRenderer.Contents {
			if item.VideoRenderer == nil || item.VideoRenderer.VideoID == "" {
				continue
			}
			videos = append(videos, item.VideoRenderer.toVideo())
			if len(videos) >= limit {
				return videos, nil
			}
		}
	}
	return videos, nil
}

// GetVideo video ID 하나의 메타데이터를 조회한다.
// 프로바이더가 해석하지 못하면 ErrVideoNotFound를 반환한다.
func (c *Client) GetVideo(ctx context.Context, videoID string) (*Video, error) {
	req := playerRequest{
		Context: c.innertubeContext(),
		VideoID: videoID,
	}

	var resp playerResponse
	if err := c.post(ctx, "/player", req, &resp); err != nil {
		return nil, err
	}

	details := resp.VideoDetails
	if details == nil || details.VideoID == "" {
		return nil, ErrVideoNotFound
	}
	if s := resp.PlayabilityStatus.Status; s == "ERROR" {
		return nil, ErrVideoNotFound
	}

	return &Video{
		ID:        details.VideoID,
		Title:     details.Title,
		Thumbnail: details.Thumbnail.first(),
		Duration:  formatDuration(details.LengthSeconds),
		Channel:   details.Author,
		Views:     details.ViewCount,
	}, nil
}

func (c *Client) innertubeContext() innertubeContext {
	return innertubeContext{
		Client: innertubeClient{
			ClientName:    clientName,
			ClientVersion: clientVersion,
			HL:            c.hl,
			GL:            c.gl,
		},
	}
}

// post Innertube 엔드포인트 호출 공통 처리
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("innertube request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("innertube status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// formatDuration 초 문자열을 "H:MM:SS" 또는 "M:SS"로 변환한다.
func formatDuration(lengthSeconds string) string {
	if lengthSeconds == "" {
		return ""
	}
	total, err := strconv.Atoi(lengthSeconds)
	if err != nil {
		return ""
	}
	h := total / 3600
	m := total % 3600 / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
