package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 전체 설정 구조체
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Download DownloadConfig `mapstructure:"download"`
	YouTube  YouTubeConfig  `mapstructure:"youtube"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

// AppConfig 애플리케이션 설정
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Mode    string `mapstructure:"mode"`
	Port    int    `mapstructure:"port"`
}

// DatabaseConfig SQLite 데이터베이스 설정
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DownloadConfig 다운로드 디렉터리와 yt-dlp 옵션 설정
type DownloadConfig struct {
	RootDir       string   `mapstructure:"root_dir"`
	VideoFormat   string   `mapstructure:"video_format"`
	AudioFormat   string   `mapstructure:"audio_format"`
	AudioQuality  string   `mapstructure:"audio_quality"`
	SubtitleLangs []string `mapstructure:"subtitle_langs"`
}

// VideoDir 영상 다운로드 디렉터리 경로
func (d *DownloadConfig) VideoDir() string {
	return filepath.Join(d.RootDir, "video")
}

// AudioDir 오디오 다운로드 디렉터리 경로
func (d *DownloadConfig) AudioDir() string {
	return filepath.Join(d.RootDir, "audio")
}

// SubtitleDir 자막 다운로드 디렉터리 경로
func (d *DownloadConfig) SubtitleDir() string {
	return filepath.Join(d.RootDir, "subtitles")
}

// SubtitleLangList yt-dlp --sub-langs 형식의 언어 목록
func (d *DownloadConfig) SubtitleLangList() string {
	return strings.Join(d.SubtitleLangs, ",")
}

// YouTubeConfig 검색 프로바이더(Innertube) 설정
type YouTubeConfig struct {
	Timeout     int    `mapstructure:"timeout"` // 초
	SearchLimit int    `mapstructure:"search_limit"`
	HL          string `mapstructure:"hl"`
	GL          string `mapstructure:"gl"`
}

// TimeoutDuration 요청 타임아웃
func (y *YouTubeConfig) TimeoutDuration() time.Duration {
	return time.Duration(y.Timeout) * time.Second
}

// RedisConfig 검색 캐시용 Redis 설정
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	CacheTTL int    `mapstructure:"cache_ttl"` // 초
}

// Addr Redis 주소
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// CacheTTLDuration 캐시 유효 시간
func (r *RedisConfig) CacheTTLDuration() time.Duration {
	return time.Duration(r.CacheTTL) * time.Second
}

// LogConfig 로그 설정
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// Load 설정 파일을 읽어 Config를 반환한다.
// 전역 싱글턴 없이 호출자가 핸들을 소유한다.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// 환경 변수 허용 (TUBEKEEP_APP_PORT 등)
	v.SetEnvPrefix("tubekeep")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
