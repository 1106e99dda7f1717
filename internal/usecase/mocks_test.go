package usecase_test

import (
	"context"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	tables     repo.TableRepository
	products   repo.ProductRepository
	statusLogs repo.OrderStatusLogRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository              { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository      { return r.orderItems }
func (r *TxReposMock) Tables() repo.TableRepository              { return r.tables }
func (r *TxReposMock) Products() repo.ProductRepository          { return r.products }
func (r *TxReposMock) StatusLogs() repo.OrderStatusLogRepository { return r.statusLogs }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, paid bool) error {
	args := m.Called(ctx, orderID, status, paid)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type TableRepoMock struct{ mock.Mock }

func (m *TableRepoMock) List(ctx context.Context) ([]model.Table, error) {
	args := m.Called(ctx)
	tables, _ := args.Get(0).([]model.Table)
	return tables, args.Error(1)
}

func (m *TableRepoMock) FindByNumber(ctx context.Context, tableNo int) (model.Table, error) {
	args := m.Called(ctx, tableNo)
	t, _ := args.Get(0).(model.Table)
	return t, args.Error(1)
}

func (m *TableRepoMock) Create(ctx context.Context, t model.Table) (model.Table, error) {
	args := m.Called(ctx, t)
	created, _ := args.Get(0).(model.Table)
	return created, args.Error(1)
}

func (m *TableRepoMock) UpdateStatus(ctx context.Context, tableID int64, status model.TableStatus) error {
	args := m.Called(ctx, tableID, status)
	return args.Error(0)
}

func (m *TableRepoMock) Delete(ctx context.Context, tableID int64) error {
	args := m.Called(ctx, tableID)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListAvailable(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

type OrderStatusLogRepoMock struct{ mock.Mock }

func (m *OrderStatusLogRepoMock) Create(ctx context.Context, log model.OrderStatusLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *OrderStatusLogRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderStatusLog, error) {
	args := m.Called(ctx, orderID)
	logs, _ := args.Get(0).([]model.OrderStatusLog)
	return logs, args.Error(1)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]model.Category)
	return categories, args.Error(1)
}

// =====================
// Helper: error contains（HTTPErrorの実装詳細に依存しない）
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}
