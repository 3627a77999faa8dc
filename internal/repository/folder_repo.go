package repository

import (
	"tubekeep/internal/model"

	"gorm.io/gorm"
)

type FolderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

// ListWithCounts 폴더 목록을 생성 시각 역순으로, 찜 개수와 함께 조회한다.
func (r *FolderRepository) ListWithCounts() ([]model.Folder, error) {
	var folders []model.Folder
	err := r.db.Model(&model.Folder{}).
		Select("folders.id, folders.name, folders.created_at, COUNT(favorites.id) AS count").
		Joins("LEFT JOIN favorites ON favorites.folder_id = folders.id").
		Group("folders.id").
		Order("folders.created_at DESC").
		Scan(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// Create 폴더 생성. 이름 중복은 UNIQUE 제약 위반으로 돌아온다.
func (r *FolderRepository) Create(folder *model.Folder) error {
	return r.db.Create(folder).Error
}

// GetByID ID로 폴더 조회
func (r *FolderRepository) GetByID(id int64) (*model.Folder, error) {
	var folder model.Folder
	if err := r.db.First(&folder, id).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// GetDefault 기본 폴더 조회
func (r *FolderRepository) GetDefault() (*model.Folder, error) {
	var folder model.Folder
	if err := r.db.Where("name = ?", model.DefaultFolderName).First(&folder).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// DeleteWithReassign 폴더의 찜을 기본 폴더로 옮기고 폴더를 삭제한다.
// 재배정과 삭제는 하나의 트랜잭션으로 묶인다.
func (r *FolderRepository) DeleteWithReassign(id, defaultID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Favorite{}).
			Where("folder_id = ?", id).
			Update("folder_id", defaultID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Folder{}, id).Error
	})
}
