package repository

import (
	"tubekeep/internal/model"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// List 찜 목록을 생성 시각 역순으로 조회한다.
// folderID가 있으면 해당 폴더로 한정하고, 폴더 이름을 조인해 채운다.
func (r *FavoriteRepository) List(folderID *int64) ([]model.Favorite, error) {
	query := r.db.Model(&model.Favorite{}).
		Select("favorites.*, folders.name AS folder_name").
		Joins("LEFT JOIN folders ON folders.id = favorites.folder_id")

	if folderID != nil {
		query = query.Where("favorites.folder_id = ?", *folderID)
	}

	var favorites []model.Favorite
	err := query.Order("favorites.created_at DESC").Scan(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// Create 찜 추가. video_id 중복은 UNIQUE 제약 위반으로 돌아온다.
func (r *FavoriteRepository) Create(fav *model.Favorite) error {
	return r.db.Create(fav).Error
}

// Delete ID로 찜 삭제. 없는 ID는 에러 없이 무시된다.
func (r *FavoriteRepository) Delete(id int64) error {
	return r.db.Delete(&model.Favorite{}, id).Error
}

// Move 찜의 소속 폴더만 변경한다. 없는 ID는 0건 갱신으로 끝난다.
func (r *FavoriteRepository) Move(id, folderID int64) error {
	return r.db.Model(&model.Favorite{}).
		Where("id = ?", id).
		Update("folder_id", folderID).Error
}
