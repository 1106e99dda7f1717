package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"app/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// fakeSource はメモリ上の権威ストア。書き込み失敗を注入できる。
type fakeSource struct {
	mu        sync.Mutex
	orders    map[int64]usecase.OrderOutput
	failWrite bool
	getCalls  int
	listCalls int
}

func newFakeSource(orders ...usecase.OrderOutput) *fakeSource {
	m := make(map[int64]usecase.OrderOutput, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return &fakeSource{orders: m}
}

func (f *fakeSource) GetOrder(ctx context.Context, orderID int64) (usecase.OrderOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	o, ok := f.orders[orderID]
	if !ok {
		return usecase.OrderOutput{}, ErrNotFound
	}
	return o, nil
}

func (f *fakeSource) ListOrders(ctx context.Context, status string) ([]usecase.OrderOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	outs := []usecase.OrderOutput{}
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			outs = append(outs, o)
		}
	}
	return outs, nil
}

func (f *fakeSource) SetStatus(ctx context.Context, orderID int64, status string) (usecase.OrderOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite {
		return usecase.OrderOutput{}, errors.New("write refused")
	}
	o, ok := f.orders[orderID]
	if !ok {
		return usecase.OrderOutput{}, ErrNotFound
	}
	o.Status = status
	if status == "PAID" {
		o.Paid = true
	}
	f.orders[orderID] = o
	return o, nil
}

func (f *fakeSource) set(o usecase.OrderOutput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[o.ID] = o
}

func testConfig() Config {
	return Config{Interval: 10 * time.Millisecond, Logger: zerolog.Nop()}
}

// =====================
// OrderWatcher（ゲストトラッカー）
// =====================

func TestOrderWatcher_RefreshTakesSnapshot(t *testing.T) {
	src := newFakeSource(usecase.OrderOutput{ID: 1, Status: "PENDING"})
	w := NewOrderWatcher(src, 1, testConfig())

	_, ok := w.Snapshot()
	assert.False(t, ok)

	w.Refresh(context.Background())

	snap, ok := w.Snapshot()
	assert.True(t, ok)
	assert.Equal(t, "PENDING", snap.Status)
}

func TestOrderWatcher_OnChangeFiresOnStatusAndPaid(t *testing.T) {
	src := newFakeSource(usecase.OrderOutput{ID: 1, Status: "PENDING"})
	w := NewOrderWatcher(src, 1, testConfig())

	var mu sync.Mutex
	var seen []string
	w.OnChange(func(o usecase.OrderOutput) {
		mu.Lock()
		seen = append(seen, o.Status)
		mu.Unlock()
	})

	ctx := context.Background()
	w.Refresh(ctx) //初回も変化扱い

	src.set(usecase.OrderOutput{ID: 1, Status: "PREPARING"})
	w.Refresh(ctx)

	//同じ値の再観測では発火しない
	w.Refresh(ctx)

	src.set(usecase.OrderOutput{ID: 1, Status: "PAID", Paid: true})
	w.Refresh(ctx)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"PENDING", "PREPARING", "PAID"}, seen)
}

func TestOrderWatcher_PollFailureKeepsLastSnapshot(t *testing.T) {
	src := newFakeSource(usecase.OrderOutput{ID: 1, Status: "PREPARING"})
	w := NewOrderWatcher(src, 1, testConfig())

	ctx := context.Background()
	w.Refresh(ctx)

	//注文が見えなくなっても最後の観測は残る
	src.mu.Lock()
	delete(src.orders, 1)
	src.mu.Unlock()

	w.Refresh(ctx)

	snap, ok := w.Snapshot()
	assert.True(t, ok)
	assert.Equal(t, "PREPARING", snap.Status)
}

func TestOrderWatcher_RunPollsUntilStopped(t *testing.T) {
	src := newFakeSource(usecase.OrderOutput{ID: 1, Status: "PENDING"})
	w := NewOrderWatcher(src, 1, testConfig())

	done := make(chan struct{})
	go func() {
		w.Run(context.Background())
		close(done)
	}()

	assert.Eventually(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return src.getCalls >= 3
	}, time.Second, 5*time.Millisecond)

	w.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}

	//Stopは冪等
	w.Stop()
}

// =====================
// BoardWatcher（キッチン/管理ボード）
// =====================

func TestBoardWatcher_RefreshAndFilter(t *testing.T) {
	src := newFakeSource(
		usecase.OrderOutput{ID: 1, Status: "PENDING"},
		usecase.OrderOutput{ID: 2, Status: "SERVED"},
	)
	w := NewBoardWatcher(src, "PENDING", testConfig())

	w.Refresh(context.Background())

	orders := w.Orders()
	assert.Equal(t, 1, len(orders))
	assert.Equal(t, int64(1), orders[0].ID)
}

// 楽観更新: サーバー応答を待たずローカル表示が切り替わる
func TestBoardWatcher_SetStatus_OptimisticAndReconciled(t *testing.T) {
	src := newFakeSource(usecase.OrderOutput{ID: 1, Status: "SERVED"})
	w := NewBoardWatcher(src, "", testConfig())

	ctx := context.Background()
	w.Refresh(ctx)

	err := w.SetStatus(ctx, 1, "PAID")
	assert.NoError(t, err)

	orders := w.Orders()
	assert.Equal(t, "PAID", orders[0].Status)
	assert.True(t, orders[0].Paid) //PAIDで支払いフラグもローカルで立つ
}

// 既定（巻き戻し無し）: 失敗してもローカル表示は楽観値のまま、次のポーリングで回復
func TestBoardWatcher_SetStatus_FailureWithoutRollback(t *testing.T) {
	src := newFakeSource(usecase.OrderOutput{ID: 1, Status: "SERVED"})
	w := NewBoardWatcher(src, "", testConfig())

	ctx := context.Background()
	w.Refresh(ctx)

	src.mu.Lock()
	src.failWrite = true
	src.mu.Unlock()

	err := w.SetStatus(ctx, 1, "PAID")
	assert.Error(t, err)

	//楽観値が残る
	assert.Equal(t, "PAID", w.Orders()[0].Status)

	//ポーリングが権威値に直す
	src.mu.Lock()
	src.failWrite = false
	src.mu.Unlock()
	w.Refresh(ctx)
	assert.Equal(t, "SERVED", w.Orders()[0].Status)
}

func TestBoardWatcher_SetStatus_FailureWithRollback(t *testing.T) {
	src := newFakeSource(usecase.OrderOutput{ID: 1, Status: "SERVED"})
	cfg := testConfig()
	cfg.RollbackOnFailure = true
	w := NewBoardWatcher(src, "", cfg)

	ctx := context.Background()
	w.Refresh(ctx)

	src.mu.Lock()
	src.failWrite = true
	src.mu.Unlock()

	err := w.SetStatus(ctx, 1, "PAID")
	assert.Error(t, err)

	//即座に元へ戻る
	assert.Equal(t, "SERVED", w.Orders()[0].Status)
	assert.False(t, w.Orders()[0].Paid)
}

func TestBoardWatcher_OnUpdateFiresEachRefresh(t *testing.T) {
	src := newFakeSource(usecase.OrderOutput{ID: 1, Status: "PENDING"})
	w := NewBoardWatcher(src, "", testConfig())

	var mu sync.Mutex
	calls := 0
	w.OnUpdate(func(orders []usecase.OrderOutput) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	ctx := context.Background()
	w.Refresh(ctx)
	w.Refresh(ctx)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, calls)
}

func TestConfig_IntervalDefaultsWhenUnset(t *testing.T) {
	assert.Equal(t, DefaultInterval, Config{}.interval())
	assert.Equal(t, time.Second, Config{Interval: time.Second}.interval())
}
