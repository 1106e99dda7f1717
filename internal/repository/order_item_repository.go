package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	// オプションラベル込みで返す
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
