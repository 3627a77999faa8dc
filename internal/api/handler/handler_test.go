package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"tubekeep/internal/api/handler"
	"tubekeep/internal/api/router"
	"tubekeep/internal/config"
	"tubekeep/internal/infra/database"
	"tubekeep/internal/model"
	"tubekeep/internal/repository"
	"tubekeep/internal/service"
	"tubekeep/internal/youtube"
	"tubekeep/pkg/logger"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Init("error", "console", "stdout", ""); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// stubProvider 고정된 결과를 돌려주는 검색 프로바이더
type stubProvider struct {
	videos []youtube.Video
	video  *youtube.Video
	err    error
}

func (s *stubProvider) Search(ctx context.Context, query string, limit int) ([]youtube.Video, error) {
	return s.videos, s.err
}

func (s *stubProvider) GetVideo(ctx context.Context, videoID string) (*youtube.Video, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.video, nil
}

// recordingDispatcher Submit 호출 기록용
type recordingDispatcher struct {
	videoID string
	kind    string
}

func (r *recordingDispatcher) Submit(videoID, kind string) {
	r.videoID = videoID
	r.kind = kind
}

type fixture struct {
	engine     *gin.Engine
	provider   *stubProvider
	dispatcher *recordingDispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.New(&config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	folderRepo := repository.NewFolderRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	provider := &stubProvider{}
	dispatcher := &recordingDispatcher{}

	searchService := service.NewSearchService(provider, nil, 0, 20)
	downloadService := service.NewDownloadService(dispatcher)
	favoriteService := service.NewFavoriteService(favoriteRepo, folderRepo)
	folderService := service.NewFolderService(folderRepo)

	engine := gin.New()
	router.Setup(engine,
		handler.NewSearchHandler(searchService),
		handler.NewDownloadHandler(downloadService),
		handler.NewFavoriteHandler(favoriteService),
		handler.NewFolderHandler(folderService),
	)

	return &fixture{engine: engine, provider: provider, dispatcher: dispatcher}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestSearchEmptyQuery(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/search", gin.H{"query": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if body := decode(t, w); body["error"] == "" {
		t.Errorf("expected error message, got %v", body)
	}
}

func TestSearchByURL(t *testing.T) {
	f := newFixture(t)
	f.provider.video = &youtube.Video{ID: "abc123", Title: "테스트 영상"}

	w := f.do(t, http.MethodPost, "/api/search", gin.H{"query": "https://www.youtube.com/watch?v=abc123"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	results, ok := body["results"].([]any)
	if !ok || len(results) != 1 {
		t.Fatalf("expected single result, got %v", body["results"])
	}
	first := results[0].(map[string]any)
	if first["id"] != "abc123" {
		t.Errorf("expected id abc123, got %v", first["id"])
	}
}

func TestSearchVideoNotFound(t *testing.T) {
	f := newFixture(t)
	f.provider.err = youtube.ErrVideoNotFound

	w := f.do(t, http.MethodPost, "/api/search", gin.H{"query": "https://youtu.be/missing1234"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDownloadMissingVideoID(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/download", gin.H{"type": "audio"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDownloadStart(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/download", gin.H{"video_id": "abc123", "type": "audio"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := decode(t, w); body["message"] != "다운로드가 시작되었습니다" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if f.dispatcher.videoID != "abc123" || f.dispatcher.kind != "audio" {
		t.Errorf("dispatcher got (%q, %q)", f.dispatcher.videoID, f.dispatcher.kind)
	}
}

func TestAddFavoriteMissingFields(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/favorites", gin.H{"video_id": "abc123"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing title, got %d", w.Code)
	}
}

func TestAddAndListFavorites(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/favorites", gin.H{
		"video_id": "abc123", "title": "테스트 영상", "thumbnail": "t.jpg", "duration": "3:33",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// 같은 영상을 다시 찜하면 400
	w = f.do(t, http.MethodPost, "/api/favorites", gin.H{"video_id": "abc123", "title": "테스트 영상"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 on duplicate, got %d", w.Code)
	}

	w = f.do(t, http.MethodGet, "/api/favorites", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	favorites, ok := body["favorites"].([]any)
	if !ok || len(favorites) != 1 {
		t.Fatalf("expected 1 favorite, got %v", body["favorites"])
	}
	first := favorites[0].(map[string]any)
	if first["video_id"] != "abc123" {
		t.Errorf("expected video_id abc123, got %v", first["video_id"])
	}
	if first["folder_name"] != model.DefaultFolderName {
		t.Errorf("expected default folder, got %v", first["folder_name"])
	}
}

func TestDeleteFavoriteNotFound(t *testing.T) {
	f := newFixture(t)

	// 없는 ID라도 성공으로 응답
	w := f.do(t, http.MethodDelete, "/api/favorites/99999", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestMoveFavorite(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/folders", gin.H{"name": "음악"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	folderID := int64(decode(t, w)["folder_id"].(float64))

	w = f.do(t, http.MethodPost, "/api/favorites", gin.H{"video_id": "abc123", "title": "테스트 영상"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = f.do(t, http.MethodGet, "/api/favorites", nil)
	favorites := decode(t, w)["favorites"].([]any)
	favoriteID := int64(favorites[0].(map[string]any)["id"].(float64))

	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/favorites/%d/move", favoriteID), gin.H{"folder_id": folderID})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/favorites?folder_id=%d", folderID), nil)
	favorites = decode(t, w)["favorites"].([]any)
	if len(favorites) != 1 {
		t.Errorf("expected 1 favorite in folder, got %d", len(favorites))
	}
}

func TestCreateFolder(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/folders", gin.H{"name": ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty name, got %d", w.Code)
	}

	w = f.do(t, http.MethodPost, "/api/folders", gin.H{"name": "음악"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if _, ok := body["folder_id"]; !ok {
		t.Errorf("expected folder_id in response, got %v", body)
	}

	// 중복 이름은 400
	w = f.do(t, http.MethodPost, "/api/folders", gin.H{"name": "음악"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 on duplicate name, got %d", w.Code)
	}
}

func TestListFoldersIncludesDefault(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/folders", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	folders := decode(t, w)["folders"].([]any)
	found := false
	for _, raw := range folders {
		if raw.(map[string]any)["name"] == model.DefaultFolderName {
			found = true
		}
	}
	if !found {
		t.Error("default folder missing from folder list")
	}
}

func TestDeleteDefaultFolder(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/folders", nil)
	folders := decode(t, w)["folders"].([]any)
	var defaultID int64
	for _, raw := range folders {
		m := raw.(map[string]any)
		if m["name"] == model.DefaultFolderName {
			defaultID = int64(m["id"].(float64))
		}
	}

	w = f.do(t, http.MethodDelete, fmt.Sprintf("/api/folders/%d", defaultID), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 deleting default folder, got %d", w.Code)
	}
}

func TestDeleteFolderMovesFavorites(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/folders", gin.H{"name": "음악"})
	folderID := int64(decode(t, w)["folder_id"].(float64))

	w = f.do(t, http.MethodPost, "/api/favorites", gin.H{
		"video_id": "abc123", "title": "테스트 영상", "folder_id": folderID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = f.do(t, http.MethodDelete, fmt.Sprintf("/api/folders/%d", folderID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = f.do(t, http.MethodGet, "/api/favorites", nil)
	favorites := decode(t, w)["favorites"].([]any)
	if len(favorites) != 1 {
		t.Fatalf("favorite must survive folder delete, got %d", len(favorites))
	}
	if favorites[0].(map[string]any)["folder_name"] != model.DefaultFolderName {
		t.Errorf("expected favorite in default folder, got %v", favorites[0])
	}
}
