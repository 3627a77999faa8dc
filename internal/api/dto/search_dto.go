package dto

// SearchRequest 검색 요청
type SearchRequest struct {
	Query string `json:"query"`
}
