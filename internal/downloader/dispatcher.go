// Package downloader yt-dlp 기반 백그라운드 다운로드 디스패처.
// 제출 즉시 반환하며(fire-and-forget) 결과는 로그로만 남는다.
package downloader

// 다운로드 종류
const (
	KindVideo    = "video"
	KindAudio    = "audio"
	KindSubtitle = "subtitle"
)

// Dispatcher 다운로드 작업 제출 인터페이스.
// 구현체는 호출자를 기다리게 하지 않아야 한다. 추후 추적형 작업 큐로
// 교체하더라도 HTTP 계층은 이 인터페이스만 바라본다.
type Dispatcher interface {
	Submit(videoID, kind string)
}

// NormalizeKind 알 수 없는 종류는 video로 간주한다.
func NormalizeKind(kind string) string {
	switch kind {
	case KindAudio, KindSubtitle:
		return kind
	default:
		return KindVideo
	}
}
