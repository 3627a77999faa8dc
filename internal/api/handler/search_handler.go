package handler

import (
	"errors"

	"tubekeep/internal/api/dto"
	"tubekeep/internal/api/response"
	"tubekeep/internal/service"
	"tubekeep/internal/youtube"
	"tubekeep/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search 영상 검색
// @Summary 영상 검색
// @Description 키워드 검색 또는 YouTube URL 단건 조회
// @Tags 검색
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "검색어 또는 URL"
// @Success 200 {object} map[string]interface{} "검색 결과"
// @Failure 400 {object} response.ErrorResponse "검색어 없음"
// @Failure 404 {object} response.ErrorResponse "영상 없음"
// @Router /search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "잘못된 요청입니다")
		return
	}
	if req.Query == "" {
		response.BadRequest(c, "검색어를 입력해주세요")
		return
	}

	results, err := h.searchService.Search(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, youtube.ErrVideoNotFound) {
			response.NotFound(c, "영상을 찾을 수 없습니다")
			return
		}
		logger.Error("Search failed", zap.String("query", req.Query), zap.Error(err))
		response.InternalError(c, "검색에 실패했습니다")
		return
	}

	response.OK(c, gin.H{"results": results})
}
