package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// メニュー読み取り専用。コンテンツ管理（作成・編集）は本体の外。
type ProductRepository interface {
	// 提供中の商品をカスタマイズグループ込みで返す
	ListAvailable(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
}
