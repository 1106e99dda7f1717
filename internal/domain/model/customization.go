package model

type SelectionMode string

const (
	SelectionModeSingle   SelectionMode = "single"
	SelectionModeMultiple SelectionMode = "multiple"
)

// 商品のカスタマイズグループ（singleは1つまで、multipleは0個以上）
type CustomizationGroup struct {
	ID        int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64         `gorm:"not null;index" json:"product_id"`
	Name      string        `gorm:"type:varchar(255);not null" json:"name"`
	Mode      SelectionMode `gorm:"type:varchar(10);not null" json:"mode"`
	SortOrder int           `gorm:"not null;default:0" json:"sort_order"`

	Options []CustomizationOption `gorm:"foreignKey:GroupID" json:"options"`
}

type CustomizationOption struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID int64  `gorm:"not null;index" json:"group_id"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	// ベース価格への加算（0円もあり）
	PriceDelta int64 `gorm:"not null;default:0" json:"price_delta"`
	// singleグループの初期選択にだけ使う
	IsDefault bool `gorm:"not null;default:false" json:"is_default"`
	SortOrder int  `gorm:"not null;default:0" json:"sort_order"`
}
