package handler

import (
	"tubekeep/internal/api/dto"
	"tubekeep/internal/api/response"
	"tubekeep/internal/service"

	"github.com/gin-gonic/gin"
)

type DownloadHandler struct {
	downloadService *service.DownloadService
}

func NewDownloadHandler(downloadService *service.DownloadService) *DownloadHandler {
	return &DownloadHandler{downloadService: downloadService}
}

// Start 다운로드 시작
// @Summary 다운로드 시작
// @Description 다운로드를 백그라운드로 시작하고 즉시 응답한다
// @Tags 다운로드
// @Accept json
// @Produce json
// @Param request body dto.DownloadRequest true "영상 ID와 종류"
// @Success 200 {object} response.MessageResponse "다운로드 시작됨"
// @Failure 400 {object} response.ErrorResponse "영상 ID 없음"
// @Router /download [post]
func (h *DownloadHandler) Start(c *gin.Context) {
	var req dto.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "잘못된 요청입니다")
		return
	}
	if req.VideoID == "" {
		response.BadRequest(c, "영상 ID가 필요합니다")
		return
	}

	h.downloadService.Start(req.VideoID, req.Type)

	response.Message(c, "다운로드가 시작되었습니다")
}
