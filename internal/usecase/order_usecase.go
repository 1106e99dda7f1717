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

type OrderUsecase struct {
	tx   repo.TransactionManager
	logg zerolog.Logger
}

func NewOrderUsecase(tx repo.TransactionManager, logg zerolog.Logger) *OrderUsecase {
	return &OrderUsecase{tx: tx, logg: logg}
}

// ワイヤ契約どおりの注文作成入力。
// itemsはクライアントで解決済みのスナップショット（名前・単価・ラベル）。
type PlaceOrderItemOptionInput struct {
	Label      string `json:"label"`
	PriceDelta int64  `json:"price_delta"`
}

type PlaceOrderItemInput struct {
	ProductID int64                       `json:"product_id"`
	Name      string                      `json:"name"`
	Price     int64                       `json:"price"`
	Quantity  int64                       `json:"quantity"`
	Options   []PlaceOrderItemOptionInput `json:"options"`
}

type PlaceOrderInput struct {
	TableNo         int
	CustomerName    string
	CustomerContact string
	Items           []PlaceOrderItemInput
	TotalAmount     int64
}

type OrderItemOptionOutput struct {
	Label      string `json:"label"`
	PriceDelta int64  `json:"price_delta"`
}

type OrderItemOutput struct {
	ProductID int64                   `json:"product_id"`
	Name      string                  `json:"name"`
	Price     int64                   `json:"price"`
	Quantity  int64                   `json:"quantity"`
	Options   []OrderItemOptionOutput `json:"options"`
}

type OrderOutput struct {
	ID              int64             `json:"id"`
	TableNo         int               `json:"table_no"`
	CustomerName    string            `json:"customer_name"`
	CustomerContact string            `json:"customer_contact"`
	Status          string            `json:"status"`
	TotalAmount     int64             `json:"total_amount"`
	Paid            bool              `json:"paid"`
	CreatedAt       time.Time         `json:"created_at"`
	Items           []OrderItemOutput `json:"items"`
}

// PlaceOrder は確定済みカートを不変の注文に変換する。
// 副作用: テーブルを（無ければ作って）OCCUPIEDにする。既に占有でもエラーにしない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderOutput, error) {
	//入力検証。足りないフィールドを名指しで返し、永続化は一切しない
	missing := []string{}
	if in.TableNo <= 0 {
		missing = append(missing, "table_no")
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(in.CustomerContact) == "" {
		missing = append(missing, "customer_contact")
	}
	if len(missing) > 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "missing required fields: "+strings.Join(missing, ", "))
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Quantity < 1 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid item")
		}
	}

	//クライアント計算の合計はそのまま保存する（既存契約）。ズレは警告ログだけ残す
	var computed int64 = 0
	for _, it := range in.Items {
		computed += it.Price * it.Quantity
	}
	if computed != in.TotalAmount {
		u.logg.Warn().
			Int("table_no", in.TableNo).
			Int64("submitted_total", in.TotalAmount).
			Int64("computed_total", computed).
			Msg("submitted total diverges from item sum")
	}

	var out OrderOutput

	//注文作成とテーブル占有は1トランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := time.Now()

		orderID, err := r.Orders().Create(ctx, model.Order{
			TableNo:         in.TableNo,
			CustomerName:    strings.TrimSpace(in.CustomerName),
			CustomerContact: strings.TrimSpace(in.CustomerContact),
			Status:          model.OrderStatusPending,
			TotalAmount:     in.TotalAmount,
			Paid:            false,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カート行を凍結コピー
		items := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			opts := make([]model.OrderItemOption, 0, len(it.Options))
			for _, o := range it.Options {
				opts = append(opts, model.OrderItemOption{Label: o.Label, PriceDelta: o.PriceDelta})
			}
			items = append(items, model.OrderItem{
				ProductID:           it.ProductID,
				ProductNameSnapshot: it.Name,
				UnitPriceSnapshot:   it.Price,
				Quantity:            it.Quantity,
				CreatedAt:           now,
				Options:             opts,
			})
		}
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//テーブルは無ければ自動作成。作成→占有は外から2段階に見えない
		if err := occupyTable(ctx, r, in.TableNo); err != nil {
			return err
		}

		out = toOrderOutput(model.Order{
			ID:              orderID,
			TableNo:         in.TableNo,
			CustomerName:    strings.TrimSpace(in.CustomerName),
			CustomerContact: strings.TrimSpace(in.CustomerContact),
			Status:          model.OrderStatusPending,
			TotalAmount:     in.TotalAmount,
			CreatedAt:       now,
		}, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}

	u.logg.Info().Int64("order_id", out.ID).Int("table_no", out.TableNo).Msg("order placed")
	return out, nil
}

// occupyTable はテーブルをOCCUPIEDにする。既に占有でも上書きするだけ（冪等）。
func occupyTable(ctx context.Context, r repo.TxRepos, tableNo int) error {
	t, err := r.Tables().FindByNumber(ctx, tableNo)
	if err == repo.ErrNotFound {
		_, err := r.Tables().Create(ctx, model.Table{
			TableNo:  tableNo,
			Status:   model.TableStatusOccupied,
			IsActive: true,
		})
		if err == repo.ErrConflict {
			//同時送信で先に作られた。取り直して占有にする
			t2, err2 := r.Tables().FindByNumber(ctx, tableNo)
			if err2 != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err2 := r.Tables().UpdateStatus(ctx, t2.ID, model.TableStatusOccupied); err2 != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			return nil
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := r.Tables().UpdateStatus(ctx, t.ID, model.TableStatusOccupied); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// ListOrders は新しい順。キッチン/管理ボードのポーリングが叩く。
func (u *OrderUsecase) ListOrders(ctx context.Context, f repo.OrderListFilter) ([]OrderOutput, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 50
	}
	if f.Status != "" && !model.OrderStatus(f.Status).Valid() {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().List(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// GetOrder はゲストの注文トラッカーが叩く。
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
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

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		opts := make([]OrderItemOptionOutput, 0, len(it.Options))
		for _, op := range it.Options {
			opts = append(opts, OrderItemOptionOutput{Label: op.Label, PriceDelta: op.PriceDelta})
		}
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
			Options:   opts,
		})
	}

	return OrderOutput{
		ID:              o.ID,
		TableNo:         o.TableNo,
		CustomerName:    o.CustomerName,
		CustomerContact: o.CustomerContact,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		Paid:            o.Paid,
		CreatedAt:       o.CreatedAt,
		Items:           outItems,
	}
}
