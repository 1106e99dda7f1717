package repository

import (
	"context"
	"errors"
)

// 一意制約違反（テーブル番号の重複など）
var ErrConflict = errors.New("conflict")

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Tables() TableRepository
	Products() ProductRepository
	StatusLogs() OrderStatusLogRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
