package adapters

// CustomerModel はcustomersテーブルの行です。
type CustomerModel struct {
	ID       string `gorm:"primaryKey"`
	Name     string
	Email    string
	ImageURL string `gorm:"column:image_url"`
}

func (CustomerModel) TableName() string {
	return "customers"
}

// UserModel はusersテーブルの行です。Passwordにはハッシュ値のみを保存します。
type UserModel struct {
	ID       string `gorm:"primaryKey"`
	Name     string
	Email    string
	Password string
}

func (UserModel) TableName() string {
	return "users"
}

// RevenueModel はrevenueテーブルの行です。
type RevenueModel struct {
	Month   string `gorm:"primaryKey"`
	Revenue int
}

func (RevenueModel) TableName() string {
	return "revenue"
}
