package service

import (
	"errors"

	"tubekeep/internal/model"
	"tubekeep/internal/repository"
)

var (
	ErrDuplicateFolderName = errors.New("이미 존재하는 폴더 이름입니다")
	ErrProtectedFolder     = errors.New("기본 폴더는 삭제할 수 없습니다")
)

type FolderService struct {
	folderRepo *repository.FolderRepository
}

func NewFolderService(folderRepo *repository.FolderRepository) *FolderService {
	return &FolderService{folderRepo: folderRepo}
}

// List 폴더 목록 조회 (찜 개수 포함, 생성 시각 역순)
func (s *FolderService) List() ([]model.Folder, error) {
	return s.folderRepo.ListWithCounts()
}

// Create 폴더 생성. 이름이 중복이면 ErrDuplicateFolderName.
func (s *FolderService) Create(name string) (int64, error) {
	folder := &model.Folder{Name: name}
	if err := s.folderRepo.Create(folder); err != nil {
		if repository.IsDuplicateKey(err) {
			return 0, ErrDuplicateFolderName
		}
		return 0, err
	}
	return folder.ID, nil
}

// Delete 폴더 삭제. 기본 폴더면 ErrProtectedFolder.
// 폴더에 담긴 찜은 기본 폴더로 옮긴 뒤 폴더를 지운다 (단일 트랜잭션).
func (s *FolderService) Delete(id int64) error {
	def, err := s.folderRepo.GetDefault()
	if err != nil {
		return err
	}
	if id == def.ID {
		return ErrProtectedFolder
	}
	return s.folderRepo.DeleteWithReassign(id, def.ID)
}
