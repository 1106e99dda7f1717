package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusServed    OrderStatus = "SERVED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// 許可される遷移（PAID/CANCELLEDは終端）
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusServed, OrderStatusCancelled},
	OrderStatusServed:    {OrderStatusPaid},
	OrderStatusPaid:      {},
	OrderStatusCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusTransitions[s]
	return ok
}

// CanTransitionTo は sからnextへ進めるか。同一ステータスは呼び出し側でno-op扱い。
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range orderStatusTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return len(orderStatusTransitions[s]) == 0
}

type Order struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	TableNo         int         `gorm:"not null;index" json:"table_no"`
	CustomerName    string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerContact string      `gorm:"type:varchar(255);not null" json:"customer_contact"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	// 送信時のクライアント計算値をそのまま保存（再計算しない）
	TotalAmount int64     `gorm:"not null" json:"total_amount"`
	Paid        bool      `gorm:"not null;default:false" json:"paid"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
