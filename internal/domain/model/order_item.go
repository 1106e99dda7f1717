package model

import "time"

// 注文明細。確定時点のカート行のコピー（後からメニューを編集しても履歴は変わらない）。
type OrderItem struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64     `gorm:"not null;index" json:"order_id"`
	ProductID           int64     `gorm:"not null;index" json:"product_id"`
	ProductNameSnapshot string    `gorm:"type:varchar(255);not null" json:"product_name_snapshot"`
	UnitPriceSnapshot   int64     `gorm:"not null" json:"unit_price_snapshot"`
	Quantity            int64     `gorm:"not null" json:"quantity"`
	CreatedAt           time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	Options []OrderItemOption `gorm:"foreignKey:OrderItemID" json:"options"`
}

// 選択済みカスタマイズのラベルスナップショット（キッチン表示用）
type OrderItemOption struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderItemID int64  `gorm:"not null;index" json:"order_item_id"`
	Label       string `gorm:"type:varchar(255);not null" json:"label"`
	PriceDelta  int64  `gorm:"not null" json:"price_delta"`
}
