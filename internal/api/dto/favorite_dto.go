package dto

import "time"

// AddFavoriteRequest 찜 추가 요청. FolderID가 없으면 기본 폴더.
type AddFavoriteRequest struct {
	VideoID   string `json:"video_id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Duration  string `json:"duration"`
	FolderID  *int64 `json:"folder_id"`
}

// MoveFavoriteRequest 찜 이동 요청. FolderID가 없으면 기본 폴더로.
type MoveFavoriteRequest struct {
	FolderID *int64 `json:"folder_id"`
}

// FavoriteInfo 찜 목록 항목
type FavoriteInfo struct {
	ID         int64     `json:"id"`
	VideoID    string    `json:"video_id"`
	Title      string    `json:"title"`
	Thumbnail  string    `json:"thumbnail"`
	Duration   string    `json:"duration"`
	FolderID   *int64    `json:"folder_id"`
	CreatedAt  time.Time `json:"created_at"`
	FolderName string    `json:"folder_name"`
}
