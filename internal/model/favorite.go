package model

import "time"

// Favorite 찜한 영상 모델.
// VideoID는 외부 프로바이더(YouTube)의 영상 식별자이며 전체에서 유일하다.
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	VideoID   string    `gorm:"size:64;not null;uniqueIndex:uq_favorites_video_id" json:"video_id"`
	Title     string    `gorm:"size:300;not null" json:"title"`
	Thumbnail string    `gorm:"size:500" json:"thumbnail"`
	Duration  string    `gorm:"size:20" json:"duration"`
	FolderID  *int64    `gorm:"index:idx_favorites_folder_id" json:"folder_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_favorites_created_at" json:"created_at"`

	// 소속 폴더 이름 (목록 조회 시 조인, 컬럼 아님)
	FolderName string `gorm:"->;-:migration" json:"folder_name"`

	// 관계
	Folder *Folder `gorm:"foreignKey:FolderID" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}
