package usecase

import "errors"

// ErrQuery は請求書の読み取りクエリが失敗した場合に返されます。
var ErrQuery = errors.New("invoice query failed")
