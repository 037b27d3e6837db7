package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"invoice_backend/internal/feature/seed/domain/entity"
	"invoice_backend/internal/feature/seed/usecase"
	"invoice_backend/internal/platform/db/dberr"
)

// InsertIfAbsent は一意制約・主キー制約と衝突しない場合のみvalueを挿入します。
// 衝突した場合はエラーにせずfalseを返します。
func InsertIfAbsent(tx *gorm.DB, value any) (bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(value)
	if res.Error != nil {
		// ON CONFLICTを出力しないダイアレクトでは制約違反として返る
		if dberr.IsUniqueViolation(res.Error) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// customerSeeder はCustomerSeederのGORM実装です。
type customerSeeder struct {
	db *gorm.DB
}

var _ usecase.CustomerSeeder = (*customerSeeder)(nil)

// NewCustomerSeeder はcustomerSeederを生成します。
func NewCustomerSeeder(db *gorm.DB) *customerSeeder {
	return &customerSeeder{db: db}
}

// Seed はソース順に顧客を挿入し、新規に挿入された件数を返します。
func (s *customerSeeder) Seed(ctx context.Context, rows []entity.Customer) (int, error) {
	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range rows {
			ok, err := InsertIfAbsent(tx, &CustomerModel{
				ID:       c.ID,
				Name:     c.Name,
				Email:    c.Email,
				ImageURL: c.ImageURL,
			})
			if err != nil {
				return fmt.Errorf("insert customer %s: %w", c.ID, err)
			}
			if ok {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// PasswordHasher は平文パスワードを一方向ハッシュに変換します。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// userSeeder はUserSeederのGORM実装です。
type userSeeder struct {
	db     *gorm.DB
	hasher PasswordHasher
}

var _ usecase.UserSeeder = (*userSeeder)(nil)

// NewUserSeeder はuserSeederを生成します。
func NewUserSeeder(db *gorm.DB, hasher PasswordHasher) *userSeeder {
	return &userSeeder{db: db, hasher: hasher}
}

// Seed はパスワードをハッシュ化してユーザーを挿入し、新規に挿入された件数を返します。
// IDまたはメールアドレスが既存の行と衝突した場合は先に挿入された行を残してスキップします。
func (s *userSeeder) Seed(ctx context.Context, rows []entity.User) (int, error) {
	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range rows {
			hashed, err := s.hasher.Hash(u.Password)
			if err != nil {
				return fmt.Errorf("hash password for user %s: %w", u.ID, err)
			}
			ok, err := InsertIfAbsent(tx, &UserModel{
				ID:       u.ID,
				Name:     u.Name,
				Email:    u.Email,
				Password: hashed,
			})
			if err != nil {
				return fmt.Errorf("insert user %s: %w", u.ID, err)
			}
			if ok {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// revenueSeeder はRevenueSeederのGORM実装です。
type revenueSeeder struct {
	db *gorm.DB
}

var _ usecase.RevenueSeeder = (*revenueSeeder)(nil)

// NewRevenueSeeder はrevenueSeederを生成します。
func NewRevenueSeeder(db *gorm.DB) *revenueSeeder {
	return &revenueSeeder{db: db}
}

// Seed は月次売上を挿入し、新規に挿入された件数を返します。同じ月は最初の1件のみ残ります。
func (s *revenueSeeder) Seed(ctx context.Context, rows []entity.Revenue) (int, error) {
	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range rows {
			ok, err := InsertIfAbsent(tx, &RevenueModel{Month: r.Month, Revenue: r.Revenue})
			if err != nil {
				return fmt.Errorf("insert revenue %s: %w", r.Month, err)
			}
			if ok {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
