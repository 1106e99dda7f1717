package tracker

import (
	"context"
	"sync"
	"time"

	"app/internal/usecase"

	"github.com/rs/zerolog"
)

// ポーリング間隔の既定値。プッシュ通知は無いので、観測の遅れは最大で1間隔＋リクエスト遅延。
const DefaultInterval = 5 * time.Second

// Config はwatcher共通の設定。
type Config struct {
	Interval time.Duration
	// trueなら書き込み失敗時に楽観更新を巻き戻す。
	// falseが既存挙動：失敗してもローカル表示は残り、次のtickで回復する。
	RollbackOnFailure bool
	Logger            zerolog.Logger
}

func (c Config) interval() time.Duration {
	if c.Interval <= 0 {
		return DefaultInterval
	}
	return c.Interval
}

// OrderWatcher はゲストのトラッカー。1注文を一定間隔でGetOrderし続ける。
type OrderWatcher struct {
	src     Source
	orderID int64
	cfg     Config

	mu       sync.Mutex
	snapshot usecase.OrderOutput
	hasSnap  bool
	onChange func(usecase.OrderOutput)

	stopOnce sync.Once
	stop     chan struct{}
}

func NewOrderWatcher(src Source, orderID int64, cfg Config) *OrderWatcher {
	return &OrderWatcher{
		src:     src,
		orderID: orderID,
		cfg:     cfg,
		stop:    make(chan struct{}),
	}
}

// OnChange はステータス/支払いの変化で呼ばれるコールバックを登録する。
func (w *OrderWatcher) OnChange(fn func(usecase.OrderOutput)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Run は停止かctxキャンセルまでポーリングし続ける。
func (w *OrderWatcher) Run(ctx context.Context) {
	w.Refresh(ctx)

	ticker := time.NewTicker(w.cfg.interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case <-ticker.C:
			w.Refresh(ctx)
		}
	}
}

func (w *OrderWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// Refresh は権威ストアから取り直す。失敗は次のtickまで放置（ポーリングが回復させる）。
func (w *OrderWatcher) Refresh(ctx context.Context) {
	got, err := w.src.GetOrder(ctx, w.orderID)
	if err != nil {
		w.cfg.Logger.Debug().Err(err).Int64("order_id", w.orderID).Msg("poll failed")
		return
	}
	w.apply(got)
}

// Snapshot は最後に観測した注文。まだ一度も取れていなければ第2戻り値がfalse。
func (w *OrderWatcher) Snapshot() (usecase.OrderOutput, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot, w.hasSnap
}

func (w *OrderWatcher) apply(got usecase.OrderOutput) {
	w.mu.Lock()
	changed := !w.hasSnap || w.snapshot.Status != got.Status || w.snapshot.Paid != got.Paid
	w.snapshot = got
	w.hasSnap = true
	fn := w.onChange
	w.mu.Unlock()

	if changed && fn != nil {
		fn(got)
	}
}

// BoardWatcher はキッチン/管理ボード。ListOrdersを一定間隔で叩く。
type BoardWatcher struct {
	src    Source
	status string // 絞り込み（空なら全部）
	cfg    Config

	mu       sync.Mutex
	orders   []usecase.OrderOutput
	onUpdate func([]usecase.OrderOutput)

	stopOnce sync.Once
	stop     chan struct{}
}

func NewBoardWatcher(src Source, statusFilter string, cfg Config) *BoardWatcher {
	return &BoardWatcher{
		src:    src,
		status: statusFilter,
		cfg:    cfg,
		stop:   make(chan struct{}),
	}
}

func (w *BoardWatcher) OnUpdate(fn func([]usecase.OrderOutput)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onUpdate = fn
}

func (w *BoardWatcher) Run(ctx context.Context) {
	w.Refresh(ctx)

	ticker := time.NewTicker(w.cfg.interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case <-ticker.C:
			w.Refresh(ctx)
		}
	}
}

func (w *BoardWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

func (w *BoardWatcher) Refresh(ctx context.Context) {
	got, err := w.src.ListOrders(ctx, w.status)
	if err != nil {
		w.cfg.Logger.Debug().Err(err).Msg("poll failed")
		return
	}

	w.mu.Lock()
	w.orders = got
	fn := w.onUpdate
	w.mu.Unlock()

	if fn != nil {
		fn(got)
	}
}

// Orders は最後に観測した一覧のコピー。
func (w *BoardWatcher) Orders() []usecase.OrderOutput {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]usecase.OrderOutput, len(w.orders))
	copy(out, w.orders)
	return out
}

// SetStatus は楽観更新つきの書き込み。
// 先にローカル表示を書き換えてから権威ストアへ送り、成功したらサーバー応答で突き合わせる。
// 失敗時の扱いはRollbackOnFailure次第（既定は巻き戻さない＝次のポーリングが直す）。
func (w *BoardWatcher) SetStatus(ctx context.Context, orderID int64, status string) error {
	w.mu.Lock()
	var prev *usecase.OrderOutput
	for i := range w.orders {
		if w.orders[i].ID == orderID {
			cp := w.orders[i]
			prev = &cp
			w.orders[i].Status = status
			if status == "PAID" {
				w.orders[i].Paid = true
			}
			break
		}
	}
	w.mu.Unlock()

	got, err := w.src.SetStatus(ctx, orderID, status)
	if err != nil {
		w.cfg.Logger.Warn().Err(err).Int64("order_id", orderID).Msg("status write failed")
		if w.cfg.RollbackOnFailure && prev != nil {
			w.mu.Lock()
			for i := range w.orders {
				if w.orders[i].ID == orderID {
					w.orders[i] = *prev
					break
				}
			}
			w.mu.Unlock()
		}
		return err
	}

	//照合。サーバーの答えを正とする
	w.mu.Lock()
	for i := range w.orders {
		if w.orders[i].ID == orderID {
			w.orders[i] = got
			break
		}
	}
	w.mu.Unlock()
	return nil
}
