package youtube

import "strings"

const shortLinkSegment = "youtu.be/"

// IsVideoURL 질의가 YouTube 영상 URL인지 판별한다.
func IsVideoURL(s string) bool {
	return strings.Contains(s, "youtube.com") || strings.Contains(s, "youtu.be")
}

// ExtractVideoID URL에서 video ID를 추출한다.
// watch URL은 v= 뒤 & 이전, 단축 URL은 youtu.be/ 뒤 ? 이전까지.
// URL이 아니면 이미 ID로 보고 그대로 반환한다.
func ExtractVideoID(s string) string {
	if !IsVideoURL(s) {
		return s
	}
	if i := strings.Index(s, "v="); i >= 0 {
		id := s[i+len("v="):]
		if j := strings.Index(id, "&"); j >= 0 {
			id = id[:j]
		}
		return id
	}
	if i := strings.Index(s, shortLinkSegment); i >= 0 {
		id := s[i+len(shortLinkSegment):]
		if j := strings.Index(id, "?"); j >= 0 {
			id = id[:j]
		}
		return id
	}
	return s
}

// WatchURL video ID로 시청 URL을 만든다.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
