package model

import "time"

// 注文ステータスの変更履歴。
// 「誰が」「どの注文を」「どこからどこへ」動かしたかを残す。
type OrderStatusLog struct {
	//IDは履歴の主キー
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//対象の注文ID。
	OrderID int64 `gorm:"not null;index" json:"order_id"`

	//操作したスタッフ（キッチン/管理者）のID。
	ActorStaffID int64 `gorm:"not null;index" json:"actor_staff_id"`

	//変更前のステータス。
	FromStatus OrderStatus `gorm:"type:varchar(20);not null" json:"from_status"`

	//変更後のステータス。
	ToStatus OrderStatus `gorm:"type:varchar(20);not null" json:"to_status"`

	//作成時刻
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
