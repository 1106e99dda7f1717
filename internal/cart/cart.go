package cart

import (
	"errors"

	"app/internal/domain/model"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrLineNotFound    = errors.New("cart line not found")
)

// OptionLabel は行に解決済みで持たせる表示用ラベル。
type OptionLabel struct {
	Label      string `json:"label"`
	PriceDelta int64  `json:"price_delta"`
}

// Line は (商品, カスタマイズ選択) 1組。数量と単価を持つ。
type Line struct {
	Key         string        `json:"key"`
	ProductID   int64         `json:"product_id"`
	ProductName string        `json:"product_name"`
	ImageURL    string        `json:"image_url"`
	UnitPrice   int64         `json:"unit_price"`
	Quantity    int64         `json:"quantity"`
	Labels      []OptionLabel `json:"labels"`
}

// Cart は1テーブルセッション分のカート。
// ゲスト1人のローカル状態なのでロックは持たない。サーバー永続化もしない。
type Cart struct {
	SessionID string
	TableNo   int
	lines     []Line
}

func New(tableNo int) *Cart {
	return &Cart{
		SessionID: uuid.NewString(),
		TableNo:   tableNo,
		lines:     []Line{},
	}
}

// AddLine は商品を追加する。同じ商品＋同じ選択なら数量加算、違う選択なら別行。
func (c *Cart) AddLine(p model.Product, qty int64, sel Selection) (Line, error) {
	if qty < 1 {
		return Line{}, ErrInvalidQuantity
	}
	if err := Validate(p, sel); err != nil {
		return Line{}, err
	}

	key := lineKey(p.ID, sel)

	for i := range c.lines {
		if c.lines[i].Key == key {
			c.lines[i].Quantity += qty
			return c.lines[i], nil
		}
	}

	line := Line{
		Key:         key,
		ProductID:   p.ID,
		ProductName: p.Name,
		ImageURL:    p.ImageURL,
		UnitPrice:   UnitPrice(p, sel),
		Quantity:    qty,
		Labels:      Labels(p, sel),
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// DecrementLine は数量を1減らす。0になったら行ごと消える（削除はこの経路だけ）。
func (c *Cart) DecrementLine(key string) error {
	for i := range c.lines {
		if c.lines[i].Key != key {
			continue
		}
		c.lines[i].Quantity--
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return nil
	}
	return ErrLineNotFound
}

// Clear は全行を空にする。テーブル紐付けは残す。
func (c *Cart) Clear() {
	c.lines = []Line{}
}

// Lines は行のコピーを返す（外から直接いじらせない）。
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// TotalPrice は毎回行から再計算する（キャッシュしない）。
func (c *Cart) TotalPrice() int64 {
	var total int64 = 0
	for _, l := range c.lines {
		total += l.UnitPrice * l.Quantity
	}
	return total
}

// TotalQuantity も毎回再計算。
func (c *Cart) TotalQuantity() int64 {
	var total int64 = 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}
