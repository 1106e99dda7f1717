package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// TableUsecase はフロア管理用。occupancyは参照情報で、注文処理のゲートではない。
type TableUsecase struct {
	tables repo.TableRepository
}

func NewTableUsecase(tables repo.TableRepository) *TableUsecase {
	return &TableUsecase{tables: tables}
}

type TableOutput struct {
	ID      int64  `json:"id"`
	TableNo int    `json:"table_no"`
	Status  string `json:"status"`
}

func (u *TableUsecase) List(ctx context.Context) ([]TableOutput, error) {
	tables, err := u.tables.List(ctx)
	if err != nil {
		return []TableOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]TableOutput, 0, len(tables))
	for _, t := range tables {
		outs = append(outs, toTableOutput(t))
	}
	return outs, nil
}

// Create は手動登録。番号重複は409。
func (u *TableUsecase) Create(ctx context.Context, tableNo int) (TableOutput, error) {
	if tableNo <= 0 {
		return TableOutput{}, NewHTTPError(http.StatusBadRequest, "invalid table_no")
	}

	t, err := u.tables.Create(ctx, model.Table{
		TableNo:  tableNo,
		Status:   model.TableStatusFree,
		IsActive: true,
	})
	if err == repo.ErrConflict {
		return TableOutput{}, NewHTTPError(http.StatusConflict, "table_no already exists")
	}
	if err != nil {
		return TableOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toTableOutput(t), nil
}

// Free は会計後にテーブルを空席へ戻す。
func (u *TableUsecase) Free(ctx context.Context, tableID int64) error {
	if tableID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.tables.UpdateStatus(ctx, tableID, model.TableStatusFree)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *TableUsecase) Delete(ctx context.Context, tableID int64) error {
	if tableID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.tables.Delete(ctx, tableID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func toTableOutput(t model.Table) TableOutput {
	return TableOutput{
		ID:      t.ID,
		TableNo: t.TableNo,
		Status:  string(t.Status),
	}
}
