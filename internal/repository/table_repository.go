package repository

import (
	"context"

	"app/internal/domain/model"
)

type TableRepository interface {
	List(ctx context.Context) ([]model.Table, error)
	FindByNumber(ctx context.Context, tableNo int) (model.Table, error)
	// 番号重複は ErrConflict
	Create(ctx context.Context, t model.Table) (model.Table, error)
	UpdateStatus(ctx context.Context, tableID int64, status model.TableStatus) error
	Delete(ctx context.Context, tableID int64) error
}
