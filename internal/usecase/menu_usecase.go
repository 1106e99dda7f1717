package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// MenuUsecase はメニューの読み取りだけ。編集は本体の外（管理画面）の仕事。
type MenuUsecase struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
}

func NewMenuUsecase(products repo.ProductRepository, categories repo.CategoryRepository) *MenuUsecase {
	return &MenuUsecase{products: products, categories: categories}
}

type MenuCategoryOutput struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Products []model.Product `json:"products"`
}

type MenuOutput struct {
	Categories []MenuCategoryOutput `json:"categories"`
}

// GetMenu は提供中の商品をカテゴリごとにまとめて返す。
func (u *MenuUsecase) GetMenu(ctx context.Context) (MenuOutput, error) {
	categories, err := u.categories.List(ctx)
	if err != nil {
		return MenuOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.products.ListAvailable(ctx)
	if err != nil {
		return MenuOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	byCategory := make(map[int64][]model.Product, len(categories))
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}

	outs := make([]MenuCategoryOutput, 0, len(categories))
	for _, c := range categories {
		outs = append(outs, MenuCategoryOutput{
			ID:       c.ID,
			Name:     c.Name,
			Products: byCategory[c.ID],
		})
	}
	return MenuOutput{Categories: outs}, nil
}
