package service

import (
	"errors"

	"tubekeep/internal/api/dto"
	"tubekeep/internal/model"
	"tubekeep/internal/repository"
)

var ErrDuplicateFavorite = errors.New("이미 찜한 영상입니다")

type FavoriteService struct {
	favoriteRepo *repository.FavoriteRepository
	folderRepo   *repository.FolderRepository
}

func NewFavoriteService(favoriteRepo *repository.FavoriteRepository, folderRepo *repository.FolderRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, folderRepo: folderRepo}
}

// List 찜 목록 조회. folderID가 있으면 해당 폴더만.
func (s *FavoriteService) List(folderID *int64) ([]model.Favorite, error) {
	return s.favoriteRepo.List(folderID)
}

// Add 찜 추가. 폴더 미지정이면 기본 폴더로 들어간다.
// 같은 video_id가 이미 있으면 ErrDuplicateFavorite.
func (s *FavoriteService) Add(req *dto.AddFavoriteRequest) error {
	folderID := req.FolderID
	if folderID == nil {
		def, err := s.folderRepo.GetDefault()
		if err != nil {
			return err
		}
		folderID = &def.ID
	}

	fav := &model.Favorite{
		VideoID:   req.VideoID,
		Title:     req.Title,
		Thumbnail: req.Thumbnail,
		Duration:  req.Duration,
		FolderID:  folderID,
	}
	if err := s.favoriteRepo.Create(fav); err != nil {
		if repository.IsDuplicateKey(err) {
			return ErrDuplicateFavorite
		}
		return err
	}
	return nil
}

// Delete 찜 삭제. 없는 ID라도 에러가 아니다.
func (s *FavoriteService) Delete(id int64) error {
	return s.favoriteRepo.Delete(id)
}

// Move 찜을 다른 폴더로 이동. 폴더 미지정이면 기본 폴더로.
func (s *FavoriteService) Move(id int64, folderID *int64) error {
	if folderID == nil {
		def, err := s.folderRepo.GetDefault()
		if err != nil {
			return err
		}
		folderID = &def.ID
	}
	return s.favoriteRepo.Move(id, *folderID)
}
