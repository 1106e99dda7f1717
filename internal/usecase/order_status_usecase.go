package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/rs/zerolog"
)

// OrderStatusUsecase はキッチン/管理者によるステータス更新。
// 書き込みはlast-write-wins（バージョントークン無し、既存契約どおり）。
// 遷移表だけはここで強制する（PENDING→SERVED の飛び級や終端からの巻き戻しは拒否）。
type OrderStatusUsecase struct {
	tx   repo.TransactionManager
	logg zerolog.Logger
}

func NewOrderStatusUsecase(tx repo.TransactionManager, logg zerolog.Logger) *OrderStatusUsecase {
	return &OrderStatusUsecase{tx: tx, logg: logg}
}

type UpdateOrderStatusInput struct {
	Status       string
	ActorStaffID int64
}

type OrderStatusLogOutput struct {
	ActorStaffID int64     `json:"actor_staff_id"`
	FromStatus   string    `json:"from_status"`
	ToStatus     string    `json:"to_status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *OrderStatusUsecase) UpdateStatus(ctx context.Context, orderID int64, in UpdateOrderStatusInput) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := model.OrderStatus(strings.TrimSpace(in.Status))
	if !newStatus.Valid() {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//すでに同じなら何もしない（200で現状を返す）
		if o.Status == newStatus {
			out = toOrderOutput(o, items)
			return nil
		}

		if !o.Status.CanTransitionTo(newStatus) {
			if o.Status.Terminal() {
				return NewHTTPError(http.StatusBadRequest, "cannot change "+strings.ToLower(string(o.Status))+" order")
			}
			return NewHTTPError(http.StatusBadRequest, "illegal transition")
		}

		//PAIDへの遷移でpaidフラグも同じ更新で立てる
		paid := o.Paid || newStatus == model.OrderStatusPaid

		if err := r.Orders().UpdateStatus(ctx, orderID, newStatus, paid); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//履歴も同じTxで残す
		if err := r.StatusLogs().Create(ctx, model.OrderStatusLog{
			OrderID:      orderID,
			ActorStaffID: in.ActorStaffID,
			FromStatus:   o.Status,
			ToStatus:     newStatus,
			CreatedAt:    time.Now(),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o.Status = newStatus
		o.Paid = paid
		out = toOrderOutput(o, items)

		u.logg.Info().
			Int64("order_id", orderID).
			Str("status", string(newStatus)).
			Msg("order status updated")
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// History は注文のステータス変更履歴を古い順で返す。
func (u *OrderStatusUsecase) History(ctx context.Context, orderID int64) ([]OrderStatusLogOutput, error) {
	if orderID <= 0 {
		return []OrderStatusLogOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var outs []OrderStatusLogOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		logs, err := r.StatusLogs().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderStatusLogOutput, 0, len(logs))
		for _, l := range logs {
			outs = append(outs, OrderStatusLogOutput{
				ActorStaffID: l.ActorStaffID,
				FromStatus:   string(l.FromStatus),
				ToStatus:     string(l.ToStatus),
				CreatedAt:    l.CreatedAt,
			})
		}
		return nil
	})

	if err != nil {
		return []OrderStatusLogOutput{}, err
	}
	return outs, nil
}
