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

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// List 찜 목록 조회
// @Summary 찜 목록 조회
// @Description 찜한 영상 목록. folder_id로 폴더 필터 가능
// @Tags 찜하기
// @Produce json
// @Param folder_id query int false "폴더 ID"
// @Success 200 {object} map[string]interface{} "찜 목록"
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	var folderID *int64
	if v := c.Query("folder_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			folderID = &id
		}
	}

	favorites, err := h.favoriteService.List(folderID)
	if err != nil {
		logger.Error("List favorites failed", zap.Error(err))
		response.InternalError(c, "찜 목록 조회에 실패했습니다")
		return
	}

	response.OK(c, gin.H{"favorites": toFavoriteInfos(favorites)})
}

// Add 찜 추가
// @Summary 찜 추가
// @Description 영상을 찜 목록에 추가. 폴더 미지정 시 기본 폴더
// @Tags 찜하기
// @Accept json
// @Produce json
// @Param request body dto.AddFavoriteRequest true "영상 정보"
// @Success 200 {object} response.MessageResponse "추가됨"
// @Failure 400 {object} response.ErrorResponse "필수 정보 없음 또는 중복"
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "잘못된 요청입니다")
		return
	}
	if req.VideoID == "" || req.Title == "" {
		response.BadRequest(c, "필수 정보가 없습니다")
		return
	}

	if err := h.favoriteService.Add(&req); err != nil {
		if errors.Is(err, service.ErrDuplicateFavorite) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Add favorite failed", zap.String("video_id", req.VideoID), zap.Error(err))
		response.InternalError(c, "찜하기 추가에 실패했습니다")
		return
	}

	response.Message(c, "찜하기에 추가되었습니다")
}

// Delete 찜 삭제
// @Summary 찜 삭제
// @Description 찜 목록에서 제거. 없는 ID라도 성공으로 응답
// @Tags 찜하기
// @Produce json
// @Param id path int true "찜 ID"
// @Success 200 {object} response.MessageResponse "삭제됨"
// @Router /favorites/{id} [delete]
func (h *FavoriteHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "잘못된 요청입니다")
		return
	}

	if err := h.favoriteService.Delete(id); err != nil {
		logger.Error("Delete favorite failed", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, "찜하기 삭제에 실패했습니다")
		return
	}

	response.Message(c, "찜하기에서 삭제되었습니다")
}

// Move 찜 이동
// @Summary 찜 이동
// @Description 찜을 다른 폴더로 이동. 폴더 미지정 시 기본 폴더로
// @Tags 찜하기
// @Accept json
// @Produce json
// @Param id path int true "찜 ID"
// @Param request body dto.MoveFavoriteRequest true "대상 폴더"
// @Success 200 {object} response.MessageResponse "이동됨"
// @Router /favorites/{id}/move [post]
func (h *FavoriteHandler) Move(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "잘못된 요청입니다")
		return
	}

	var req dto.MoveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "잘못된 요청입니다")
		return
	}

	if err := h.favoriteService.Move(id, req.FolderID); err != nil {
		logger.Error("Move favorite failed", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, "찜하기 이동에 실패했습니다")
		return
	}

	response.Message(c, "이동되었습니다")
}

func toFavoriteInfos(favorites []model.Favorite) []dto.FavoriteInfo {
	infos := make([]dto.FavoriteInfo, 0, len(favorites))
	for i := range favorites {
		f := &favorites[i]
		infos = append(infos, dto.FavoriteInfo{
			ID:         f.ID,
			VideoID:    f.VideoID,
			Title:      f.Title,
			Thumbnail:  f.Thumbnail,
			Duration:   f.Duration,
			FolderID:   f.FolderID,
			CreatedAt:  f.CreatedAt,
			FolderName: f.FolderName,
		})
	}
	return infos
}
