package router

import (
	"tubekeep/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// Setup 모든 업무 라우트를 /api 아래에 등록한다.
func Setup(
	r *gin.Engine,
	searchHandler *handler.SearchHandler,
	downloadHandler *handler.DownloadHandler,
	favoriteHandler *handler.FavoriteHandler,
	folderHandler *handler.FolderHandler,
) {
	api := r.Group("/api")

	// --- 검색 / 다운로드 ---
	api.POST("/search", searchHandler.Search)
	api.POST("/download", downloadHandler.Start)

	// --- 찜하기 모듈 ---
	favorites := api.Group("/favorites")
	{
		favorites.GET("", favoriteHandler.List)
		favorites.POST("", favoriteHandler.Add)
		favorites.DELETE("/:id", favoriteHandler.Delete)
		favorites.POST("/:id/move", favoriteHandler.Move)
	}

	// --- 폴더 모듈 ---
	folders := api.Group("/folders")
	{
		folders.GET("", folderHandler.List)
		folders.POST("", folderHandler.Create)
		folders.DELETE("/:id", folderHandler.Delete)
	}
}
