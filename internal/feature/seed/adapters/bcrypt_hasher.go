package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost はユーザーパスワードのbcryptコストの既定値です。
const DefaultHashCost = 10

// BcryptHasher はbcryptでパスワードをハッシュ化します。
type BcryptHasher struct {
	cost int
}

var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher はBcryptHasherを生成します。
// costがbcryptの許容範囲外の場合はDefaultHashCostを使用します。
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash はソルト付きのbcryptハッシュを返します。
func (h *BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
