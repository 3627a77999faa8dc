package dto

import "time"

// CreateFolderRequest 폴더 생성 요청
type CreateFolderRequest struct {
	Name string `json:"name"`
}

// FolderInfo 폴더 목록 항목 (찜 개수 포함)
type FolderInfo struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Count     int64     `json:"count"`
}
