package database

import (
	"fmt"

	"tubekeep/internal/config"
	"tubekeep/internal/model"
	"tubekeep/pkg/logger"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New SQLite 데이터베이스를 열고 스키마를 준비한다.
// 테이블 생성과 기본 폴더 시드는 멱등이다. 전역 없이 핸들을 반환한다.
func New(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := cfg.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&model.Folder{}, &model.Favorite{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	if err := ensureDefaultFolder(db); err != nil {
		return nil, fmt.Errorf("failed to seed default folder: %w", err)
	}

	logger.Info("Database ready", zap.String("path", cfg.Path))
	return db, nil
}

// ensureDefaultFolder 기본 폴더가 없으면 생성한다.
func ensureDefaultFolder(db *gorm.DB) error {
	folder := model.Folder{Name: model.DefaultFolderName}
	return db.Where("name = ?", model.DefaultFolderName).FirstOrCreate(&folder).Error
}

// Close 데이터베이스 연결 종료
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	logger.Info("Database connection closed")
	return sqlDB.Close()
}
