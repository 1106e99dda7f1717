package model

import "time"

type TableStatus string

const (
	TableStatusFree     TableStatus = "FREE"
	TableStatusOccupied TableStatus = "OCCUPIED"
)

// 店舗のテーブル。occupancyは注文送信の副作用で、注文処理の判断には使わない。
type Table struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	TableNo   int         `gorm:"not null;uniqueIndex" json:"table_no"`
	Status    TableStatus `gorm:"type:varchar(20);not null" json:"status"`
	IsActive  bool        `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
