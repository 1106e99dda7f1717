package repository

import (
	"context"

	"app/internal/domain/model"
)

// ステータス変更履歴の保存・取得の約束。
type OrderStatusLogRepository interface {
	//履歴を1件保存
	Create(ctx context.Context, log model.OrderStatusLog) error

	//注文単位で履歴を古い順に取得。
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderStatusLog, error)
}
