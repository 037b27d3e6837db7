// Package source はseedの投入元データセットを読み込み、検証します。
package source

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"invoice_backend/internal/feature/seed/domain/entity"
	"invoice_backend/internal/feature/seed/usecase"
)

//go:embed placeholder_data.yaml
var placeholderData []byte

var validate = validator.New(validator.WithRequiredStructEnabled())

// Loader はデータセットを組み込みデータまたは外部YAMLファイルから読み込みます。
type Loader struct {
	path string
}

var _ usecase.SourceProvider = (*Loader)(nil)

// NewLoader はLoaderを生成します。pathが空の場合は組み込みのプレースホルダーデータを使用します。
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// LoadConfig は環境変数SEED_DATA_PATHから外部データセットのパスを読み込みます。
func LoadConfig() string {
	return os.Getenv("SEED_DATA_PATH")
}

// Dataset はデータセットを読み込んで検証します。
// ファイルは呼び出しのたびに読み直すため、サーバー稼働中の差し替えも反映されます。
func (l *Loader) Dataset(_ context.Context) (*entity.Dataset, error) {
	data := placeholderData
	if l.path != "" {
		b, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", usecase.ErrInvalidSource, l.path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse はYAMLのデータセットを解析し、識別子を正規化したうえで検証します。
func Parse(data []byte) (*entity.Dataset, error) {
	var ds entity.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %w", usecase.ErrInvalidSource, err)
	}
	canonicalize(&ds)
	if err := validate.Struct(&ds); err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrInvalidSource, err)
	}
	return &ds, nil
}

// canonicalize はUUIDを小文字のハイフン区切り表記に揃えます。
// 解析できない値はそのまま残し、検証で弾きます。
func canonicalize(ds *entity.Dataset) {
	for i := range ds.Customers {
		ds.Customers[i].ID = canonicalUUID(ds.Customers[i].ID)
	}
	for i := range ds.Users {
		ds.Users[i].ID = canonicalUUID(ds.Users[i].ID)
	}
	for i := range ds.Invoices {
		ds.Invoices[i].CustomerID = canonicalUUID(ds.Invoices[i].CustomerID)
	}
}

func canonicalUUID(s string) string {
	id, err := uuid.Parse(s)
	if err != nil {
		return s
	}
	return id.String()
}
