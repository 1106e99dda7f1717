package cart

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"app/internal/domain/model"
)

var (
	// 商品に存在しないグループ
	ErrUnknownGroup = errors.New("unknown customization group")
	// グループに存在しないオプション
	ErrUnknownOption = errors.New("unknown customization option")
	// singleグループで2つ以上選択
	ErrTooManySelections = errors.New("single group allows at most one option")
)

// GroupSelection は1グループ分の選択。
// singleはOptionIDsが0〜1件、multipleは0件以上。
type GroupSelection struct {
	GroupID   int64
	Mode      model.SelectionMode
	OptionIDs []int64
}

// Selection は商品1つに対する全グループの選択。
type Selection []GroupSelection

// DefaultSelection は初期選択を作る。
// singleはdefaultフラグ（無ければ先頭）を選び、multipleは空で始まる。
func DefaultSelection(p model.Product) Selection {
	sel := make(Selection, 0, len(p.CustomizationGroups))
	for _, g := range p.CustomizationGroups {
		gs := GroupSelection{GroupID: g.ID, Mode: g.Mode}
		if g.Mode == model.SelectionModeSingle && len(g.Options) > 0 {
			chosen := g.Options[0]
			for _, o := range g.Options {
				if o.IsDefault {
					chosen = o
					break
				}
			}
			gs.OptionIDs = []int64{chosen.ID}
		}
		sel = append(sel, gs)
	}
	return sel
}

// Validate は選択が商品定義に収まっているかを確認する。
func Validate(p model.Product, sel Selection) error {
	groups := make(map[int64]model.CustomizationGroup, len(p.CustomizationGroups))
	for _, g := range p.CustomizationGroups {
		groups[g.ID] = g
	}

	for _, gs := range sel {
		g, ok := groups[gs.GroupID]
		if !ok {
			return ErrUnknownGroup
		}
		if g.Mode == model.SelectionModeSingle && len(gs.OptionIDs) > 1 {
			return ErrTooManySelections
		}
		for _, oid := range gs.OptionIDs {
			if _, ok := findOption(g, oid); !ok {
				return ErrUnknownOption
			}
		}
	}
	return nil
}

// UnitPrice は基本価格＋選択deltaの合計。グループ無しなら基本価格そのまま。
func UnitPrice(p model.Product, sel Selection) int64 {
	price := p.Price
	for _, gs := range sel {
		g, ok := findGroup(p, gs.GroupID)
		if !ok {
			continue
		}
		for _, oid := range gs.OptionIDs {
			if o, ok := findOption(g, oid); ok {
				price += o.PriceDelta
			}
		}
	}
	return price
}

// Labels は選択済みオプションの表示用ラベル（キッチン可読）。
func Labels(p model.Product, sel Selection) []OptionLabel {
	labels := make([]OptionLabel, 0)
	for _, gs := range sel {
		g, ok := findGroup(p, gs.GroupID)
		if !ok {
			continue
		}
		for _, oid := range gs.OptionIDs {
			if o, ok := findOption(g, oid); ok {
				labels = append(labels, OptionLabel{Label: o.Name, PriceDelta: o.PriceDelta})
			}
		}
	}
	return labels
}

// lineKey は (productID, 選択内容) の正規化キー。
// multipleはoption idをソートするので、クリック順が違っても同じ選択は同じキーになる。
func lineKey(productID int64, sel Selection) string {
	parts := make([]string, 0, len(sel))
	for _, gs := range sel {
		if len(gs.OptionIDs) == 0 {
			continue
		}
		ids := append([]int64(nil), gs.OptionIDs...)
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		opts := make([]string, 0, len(ids))
		for _, id := range ids {
			opts = append(opts, strconv.FormatInt(id, 10))
		}
		parts = append(parts, strconv.FormatInt(gs.GroupID, 10)+":"+strings.Join(opts, ","))
	}
	sort.Strings(parts)

	return strconv.FormatInt(productID, 10) + "|" + strings.Join(parts, "|")
}

func findGroup(p model.Product, groupID int64) (model.CustomizationGroup, bool) {
	for _, g := range p.CustomizationGroups {
		if g.ID == groupID {
			return g, true
		}
	}
	return model.CustomizationGroup{}, false
}

func findOption(g model.CustomizationGroup, optionID int64) (model.CustomizationOption, bool) {
	for _, o := range g.Options {
		if o.ID == optionID {
			return o, true
		}
	}
	return model.CustomizationOption{}, false
}
