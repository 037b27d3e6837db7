// Package adapters はseedフィーチャーのスキーマ管理と投入処理のGORM実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"invoice_backend/internal/feature/seed/usecase"
)

// postgresSchema はPostgreSQL向けのリセット用DDLです。
var postgresSchema = []string{
	`DROP TABLE IF EXISTS users, customers, invoices, revenue CASCADE`,
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,
	`CREATE TABLE customers (
		id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		image_url VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE users (
		id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE invoices (
		id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
		customer_id UUID NOT NULL REFERENCES customers (id),
		amount INT NOT NULL,
		status VARCHAR(255) NOT NULL,
		date DATE NOT NULL,
		UNIQUE (customer_id, date, amount, status)
	)`,
	`CREATE TABLE revenue (
		month VARCHAR(4) NOT NULL UNIQUE,
		revenue INT NOT NULL
	)`,
}

// sqliteSchema はSQLite向けのリセット用DDLです。
// SQLiteはDROP TABLEのCASCADEとUUID拡張を持たないため、参照元から順に削除し、
// IDの既定値はrandomblobで生成します。
var sqliteSchema = []string{
	`DROP TABLE IF EXISTS invoices`,
	`DROP TABLE IF EXISTS users`,
	`DROP TABLE IF EXISTS customers`,
	`DROP TABLE IF EXISTS revenue`,
	`CREATE TABLE customers (
		id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		image_url VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE users (
		id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		name VARCHAR(255) NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE invoices (
		id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		customer_id TEXT NOT NULL REFERENCES customers (id),
		amount INTEGER NOT NULL,
		status VARCHAR(255) NOT NULL,
		date DATE NOT NULL,
		UNIQUE (customer_id, date, amount, status)
	)`,
	`CREATE TABLE revenue (
		month VARCHAR(4) NOT NULL UNIQUE,
		revenue INTEGER NOT NULL
	)`,
}

// schemaGorm はSchemaManagerのGORM実装です。
type schemaGorm struct {
	db         *gorm.DB
	statements []string
}

var _ usecase.SchemaManager = (*schemaGorm)(nil)

// NewSchemaManager は接続先のダイアレクトに応じたDDLを持つSchemaManagerを生成します。
func NewSchemaManager(db *gorm.DB) (*schemaGorm, error) {
	statements, err := schemaFor(db.Dialector.Name())
	if err != nil {
		return nil, err
	}
	return &schemaGorm{db: db, statements: statements}, nil
}

// schemaFor はダイアレクト名に対応するDDLを返します。
func schemaFor(dialect string) ([]string, error) {
	switch dialect {
	case "postgres":
		return postgresSchema, nil
	case "sqlite":
		return sqliteSchema, nil
	default:
		return nil, fmt.Errorf("%w: unsupported dialect %q", usecase.ErrSchema, dialect)
	}
}

// Reset はテーブルを削除して作り直します。
// 途中のDDLが失敗した場合はその時点で中断し、スキーマは不完全なまま残ります。
func (m *schemaGorm) Reset(ctx context.Context) error {
	for _, stmt := range m.statements {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("%w: %w", usecase.ErrSchema, err)
		}
	}
	return nil
}
