package service

import (
	"testing"

	"tubekeep/internal/downloader"
)

// fakeDispatcher Submit 호출을 기록만 한다
type fakeDispatcher struct {
	videoID string
	kind    string
	calls   int
}

func (f *fakeDispatcher) Submit(videoID, kind string) {
	f.videoID = videoID
	f.kind = kind
	f.calls++
}

func TestDownloadStart(t *testing.T) {
	tests := []struct {
		name string
		kind string
		want string
	}{
		{"video", downloader.KindVideo, downloader.KindVideo},
		{"audio", downloader.KindAudio, downloader.KindAudio},
		{"subtitle", downloader.KindSubtitle, downloader.KindSubtitle},
		{"empty defaults to video", "", downloader.KindVideo},
		{"unknown defaults to video", "playlist", downloader.KindVideo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := &fakeDispatcher{}
			svc := NewDownloadService(dispatcher)

			got := svc.Start("abc123", tt.kind)
			if got != tt.want {
				t.Errorf("Start returned kind %q, want %q", got, tt.want)
			}
			if dispatcher.calls != 1 {
				t.Fatalf("expected 1 Submit call, got %d", dispatcher.calls)
			}
			if dispatcher.videoID != "abc123" || dispatcher.kind != tt.want {
				t.Errorf("Submit(%q, %q), want Submit(%q, %q)",
					dispatcher.videoID, dispatcher.kind, "abc123", tt.want)
			}
		})
	}
}
