package dto

// DownloadRequest 다운로드 요청. Type은 video, audio, subtitle 중 하나.
type DownloadRequest struct {
	VideoID string `json:"video_id"`
	Type    string `json:"type"`
}
