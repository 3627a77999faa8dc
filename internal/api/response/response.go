package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse 성공 메시지 응답
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse 에러 응답
type ErrorResponse struct {
	Error string `json:"error"`
}

// OK 페이로드를 그대로 200으로 반환
func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, payload)
}

// Message 메시지만 담아 200으로 반환
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Fail 지정 상태 코드와 에러 메시지 반환
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// InternalError 500
func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
