package model

import "time"

// DefaultFolderName 기본 찜하기 폴더 이름.
// 초기화 시 반드시 하나 생성되며 삭제할 수 없다.
const DefaultFolderName = "기본 찜하기"

// Folder 찜하기 폴더 모델
type Folder struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:uq_folders_name" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// 폴더에 담긴 찜 개수 (목록 조회 시 집계, 컬럼 아님)
	Count int64 `gorm:"->;-:migration" json:"count"`
}

func (Folder) TableName() string {
	return "folders"
}

// IsDefault 기본 폴더 여부
func (f *Folder) IsDefault() bool {
	return f.Name == DefaultFolderName
}
