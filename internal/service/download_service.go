package service

import (
	"tubekeep/internal/downloader"
)

// DownloadService 다운로드 요청을 디스패처에 제출한다.
// 제출 즉시 반환하며 작업 결과는 호출자에게 전달되지 않는다.
type DownloadService struct {
	dispatcher downloader.Dispatcher
}

func NewDownloadService(dispatcher downloader.Dispatcher) *DownloadService {
	return &DownloadService{dispatcher: dispatcher}
}

// Start 다운로드를 시작하고 정규화된 종류를 반환한다.
// kind가 video/audio/subtitle 외의 값이면 video로 처리한다.
func (s *DownloadService) Start(videoID, kind string) string {
	kind = downloader.NormalizeKind(kind)
	s.dispatcher.Submit(videoID, kind)
	return kind
}
