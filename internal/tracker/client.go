package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"app/internal/cart"
	"app/internal/usecase"
)

var (
	ErrNotFound     = errors.New("order not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Source は観測側（ゲスト・キッチン・管理）が使う読み書き契約。
type Source interface {
	GetOrder(ctx context.Context, orderID int64) (usecase.OrderOutput, error)
	ListOrders(ctx context.Context, status string) ([]usecase.OrderOutput, error)
	SetStatus(ctx context.Context, orderID int64, status string) (usecase.OrderOutput, error)
}

// HTTPSource はワイヤ契約どおりにAPIを叩くSource実装。
// tokenはキッチン/管理用のbearer。ゲストは空でよい（公開エンドポイントしか使わない）。
type HTTPSource struct {
	baseURL string
	token   string
	hc      *http.Client
}

func NewHTTPSource(baseURL string, token string) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		token:   token,
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPSource) GetOrder(ctx context.Context, orderID int64) (usecase.OrderOutput, error) {
	var out usecase.OrderOutput
	err := s.do(ctx, http.MethodGet, "/orders/"+strconv.FormatInt(orderID, 10), nil, &out)
	return out, err
}

func (s *HTTPSource) ListOrders(ctx context.Context, status string) ([]usecase.OrderOutput, error) {
	path := "/orders"
	if status != "" {
		path += "?status=" + status
	}
	var out []usecase.OrderOutput
	err := s.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (s *HTTPSource) SetStatus(ctx context.Context, orderID int64, status string) (usecase.OrderOutput, error) {
	body := map[string]string{"status": status}
	var out usecase.OrderOutput
	err := s.do(ctx, http.MethodPatch, "/orders/"+strconv.FormatInt(orderID, 10)+"/status", body, &out)
	return out, err
}

// Submit はカートを注文として送信する。成功したときだけカートを空にする（明示クリア）。
func (s *HTTPSource) Submit(ctx context.Context, c *cart.Cart, customerName string, customerContact string) (usecase.OrderOutput, error) {
	items := make([]usecase.PlaceOrderItemInput, 0, len(c.Lines()))
	for _, l := range c.Lines() {
		opts := make([]usecase.PlaceOrderItemOptionInput, 0, len(l.Labels))
		for _, lb := range l.Labels {
			opts = append(opts, usecase.PlaceOrderItemOptionInput{Label: lb.Label, PriceDelta: lb.PriceDelta})
		}
		items = append(items, usecase.PlaceOrderItemInput{
			ProductID: l.ProductID,
			Name:      l.ProductName,
			Price:     l.UnitPrice,
			Quantity:  l.Quantity,
			Options:   opts,
		})
	}

	//合計はクライアント側で計算して送る（ワイヤ契約）
	payload := map[string]interface{}{
		"table_no":         c.TableNo,
		"customer_name":    customerName,
		"customer_contact": customerContact,
		"items":            items,
		"total_amount":     c.TotalPrice(),
	}

	var out usecase.OrderOutput
	if err := s.do(ctx, http.MethodPost, "/orders", payload, &out); err != nil {
		return usecase.OrderOutput{}, err
	}

	c.Clear()
	return out, nil
}

func (s *HTTPSource) do(ctx context.Context, method string, path string, body interface{}, dest interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case res.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case res.StatusCode >= 400:
		var er struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&er)
		if er.Error != "" {
			return errors.New(er.Error)
		}
		return fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	if dest == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(dest)
}
