package downloader

import (
	"context"
	"os"
	"path/filepath"

	"tubekeep/internal/config"
	"tubekeep/internal/youtube"
	"tubekeep/pkg/logger"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"
)

// 파일명은 영상 제목으로 템플릿된다.
const outputTemplate = "%(title)s.%(ext)s"

// YTDLP yt-dlp를 사용하는 Dispatcher 구현체
type YTDLP struct {
	cfg *config.DownloadConfig
}

func NewYTDLP(cfg *config.DownloadConfig) *YTDLP {
	return &YTDLP{cfg: cfg}
}

// EnsureDirs 다운로드 디렉터리 트리를 생성한다. 멱등.
func (d *YTDLP) EnsureDirs() error {
	for _, dir := range []string{d.cfg.VideoDir(), d.cfg.AudioDir(), d.cfg.SubtitleDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// Submit 다운로드를 백그라운드 고루틴으로 시작하고 즉시 반환한다.
// 진행률·결과는 추적하지 않으며 실패는 로그로만 남는다.
func (d *YTDLP) Submit(videoID, kind string) {
	go d.run(videoID, NormalizeKind(kind))
}

func (d *YTDLP) run(videoID, kind string) {
	url := youtube.WatchURL(videoID)

	logger.Info("다운로드 시작",
		zap.String("video_id", videoID),
		zap.String("type", kind),
	)

	if _, err := d.build(kind).Run(context.Background(), url); err != nil {
		logger.Error("다운로드 오류",
			zap.String("video_id", videoID),
			zap.String("type", kind),
			zap.Error(err),
		)
		return
	}

	logger.Info("다운로드 완료",
		zap.String("video_id", videoID),
		zap.String("type", kind),
	)
}

// build 종류별 yt-dlp 옵션 구성
func (d *YTDLP) build(kind string) *ytdlp.Command {
	switch kind {
	case KindAudio:
		// 최고 음질 스트림을 고정 비트레이트로 추출
		return ytdlp.New().
			ExtractAudio().
			AudioFormat(d.cfg.AudioFormat).
			AudioQuality(d.cfg.AudioQuality).
			Output(filepath.Join(d.cfg.AudioDir(), outputTemplate))
	case KindSubtitle:
		// 미디어는 받지 않고 자막만. 제작 자막이 없으면 자동 생성 자막 포함
		return ytdlp.New().
			SkipDownload().
			WriteSubs().
			WriteAutoSubs().
			SubLangs(d.cfg.SubtitleLangList()).
			Output(filepath.Join(d.cfg.SubtitleDir(), outputTemplate))
	default:
		return ytdlp.New().
			Format(d.cfg.VideoFormat).
			Output(filepath.Join(d.cfg.VideoDir(), outputTemplate))
	}
}
