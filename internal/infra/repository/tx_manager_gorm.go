package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	tables     repo.TableRepository
	products   repo.ProductRepository
	statusLogs repo.OrderStatusLogRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository              { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository      { return r.orderItems }
func (r *txReposGorm) Tables() repo.TableRepository              { return r.tables }
func (r *txReposGorm) Products() repo.ProductRepository          { return r.products }
func (r *txReposGorm) StatusLogs() repo.OrderStatusLogRepository { return r.statusLogs }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:     NewOrderGormRepository(tx),
			orderItems: NewOrderItemGormRepository(tx),
			tables:     NewTableGormRepository(tx),
			products:   NewProductGormRepository(tx),
			statusLogs: NewOrderStatusLogGormRepository(tx),
		}
		return fn(r)
	})
}
