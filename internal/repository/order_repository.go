package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderListFilter struct {
	Page   int
	Limit  int
	Status string
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// 新しい順
	List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	// paidはPAID遷移と同じ更新で書く
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, paid bool) error
}
