// Package db はPostgreSQLへのGORM接続を提供します。
package db

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	// defaultConnectTimeout は接続リトライを打ち切るまでの既定の待ち時間です。
	defaultConnectTimeout = 60 * time.Second
	// retryInterval は接続失敗時の再試行間隔です。
	retryInterval = 3 * time.Second
)

// Config はデータベース接続設定を保持します。
// URLが設定されている場合は個別項目より優先されます。
type Config struct {
	URL            string
	User           string
	Password       string
	Name           string
	Host           string
	Port           string
	SSLMode        string
	ConnectTimeout time.Duration
}

// Opener はDSNからgorm.DBを開く関数です。テストで差し替えるために分離しています。
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	timeout := defaultConnectTimeout
	if s := os.Getenv("DB_CONNECT_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			timeout = d
		} else {
			slog.Warn("invalid DB_CONNECT_TIMEOUT, using default", "value", s, "default", defaultConnectTimeout)
		}
	}
	return Config{
		URL:            os.Getenv("POSTGRES_URL"),
		User:           os.Getenv("DB_USER"),
		Password:       os.Getenv("DB_PASSWORD"),
		Name:           os.Getenv("DB_NAME"),
		Host:           os.Getenv("DB_HOST"),
		Port:           os.Getenv("DB_PORT"),
		SSLMode:        os.Getenv("DB_SSLMODE"),
		ConnectTimeout: timeout,
	}
}

// BuildDSN は設定からPostgreSQLのDSN文字列を組み立てます。
func BuildDSN(cfg Config) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "require"
	}
	parts := []string{
		"host=" + cfg.Host,
		"port=" + cfg.Port,
		"user=" + cfg.User,
		"password=" + cfg.Password,
		"dbname=" + cfg.Name,
		"sslmode=" + sslmode,
		"TimeZone=UTC",
	}
	return strings.Join(parts, " ")
}

// ConnectWithRetry はtimeoutに達するまで一定間隔で接続を再試行します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err)
		wait := retryInterval
		if remaining < wait {
			wait = remaining
		}
		time.Sleep(wait)
	}
}

// OpenDB はPostgreSQLへの接続を開きます。
// 呼び出し側が返されたハンドルのライフサイクル（Close）を管理します。
func OpenDB(cfg Config) (*gorm.DB, error) {
	open := func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
			TranslateError: true,
		})
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	return ConnectWithRetry(BuildDSN(cfg), timeout, open)
}

// Close は基盤となるコネクションプールを閉じます。
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
