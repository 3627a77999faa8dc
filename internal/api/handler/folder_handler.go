package handler

import (
	"errors"
	"strconv"

	"tubekeep/internal/api/dto"
	"tubekeep/internal/api/response"
	"tubekeep/internal/model"
	"tubekeep/internal/service"
	"tubekeep/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FolderHandler struct {
	folderService *service.FolderService
}

func NewFolderHandler(folderService *service.FolderService) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

// List 폴더 목록 조회
// @Summary 폴더 목록 조회
// @Description 폴더 목록과 각 폴더의 찜 개수
// @Tags 폴더
// @Produce json
// @Success 200 {object} map[string]interface{} "폴더 목록"
// @Router /folders [get]
func (h *FolderHandler) List(c *gin.Context) {
	folders, err := h.folderService.List()
	if err != nil {
		logger.Error("List folders failed", zap.Error(err))
		response.InternalError(c, "폴더 목록 조회에 실패했습니다")
		return
	}

	response.OK(c, gin.H{"folders": toFolderInfos(folders)})
}

// Create 폴더 생성
// @Summary 폴더 생성
// @Description 새 찜하기 폴더 생성
// @Tags 폴더
// @Accept json
// @Produce json
// @Param request body dto.CreateFolderRequest true "폴더 이름"
// @Success 200 {object} map[string]interface{} "생성된 폴더 ID"
// @Failure 400 {object} response.ErrorResponse "이름 없음 또는 중복"
// @Router /folders [post]
func (h *FolderHandler) Create(c *gin.Context) {
	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "잘못된 요청입니다")
		return
	}
	if req.Name == "" {
		response.BadRequest(c, "폴더 이름이 필요합니다")
		return
	}

	folderID, err := h.folderService.Create(req.Name)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateFolderName) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Create folder failed", zap.String("name", req.Name), zap.Error(err))
		response.InternalError(c, "폴더 생성에 실패했습니다")
		return
	}

	response.OK(c, gin.H{
		"message":   "폴더가 생성되었습니다",
		"folder_id": folderID,
	})
}

// Delete 폴더 삭제
// @Summary 폴더 삭제
// @Description 폴더를 삭제하고 찜은 기본 폴더로 이동. 기본 폴더는 삭제 불가
// @Tags 폴더
// @Produce json
// @Param id path int true "폴더 ID"
// @Success 200 {object} response.MessageResponse "삭제됨"
// @Failure 400 {object} response.ErrorResponse "기본 폴더"
// @Router /folders/{id} [delete]
func (h *FolderHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "잘못된 요청입니다")
		return
	}

	if err := h.folderService.Delete(id); err != nil {
		if errors.Is(err, service.ErrProtectedFolder) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Delete folder failed", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, "폴더 삭제에 실패했습니다")
		return
	}

	response.Message(c, "폴더가 삭제되었습니다")
}

func toFolderInfos(folders []model.Folder) []dto.FolderInfo {
	infos := make([]dto.FolderInfo, 0, len(folders))
	for i := range folders {
		f := &folders[i]
		infos = append(infos, dto.FolderInfo{
			ID:        f.ID,
			Name:      f.Name,
			CreatedAt: f.CreatedAt,
			Count:     f.Count,
		})
	}
	return infos
}
