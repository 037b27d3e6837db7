package jwtmw

import (
	"log/slog"
	"os"
	"time"
)

const (
	EnvKeyJWTSecret     = "JWT_SECRET"
	EnvKeyJWTExpiration = "JWT_EXPIRATION"

	// RoleOperator は投入などの管理操作を許可するロールです。
	RoleOperator = "operator"

	defaultExpiration = time.Hour
)

// Config はトークンの署名と有効期限の設定です。Secretが空の場合は認証を無効とみなします。
type Config struct {
	Secret     string
	Expiration time.Duration
}

// Enabled は署名用シークレットが設定されているかを返します。
func (c Config) Enabled() bool {
	return c.Secret != ""
}

// LoadConfigFromEnv は環境変数から設定を読み込みます。
// JWT_EXPIRATIONが不正な場合は1時間を使用します。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Secret:     os.Getenv(EnvKeyJWTSecret),
		Expiration: defaultExpiration,
	}
	if v := os.Getenv(EnvKeyJWTExpiration); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			slog.Warn("invalid JWT_EXPIRATION, using default", "value", v, "default", defaultExpiration)
		} else {
			cfg.Expiration = d
		}
	}
	return cfg
}
