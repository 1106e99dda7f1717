package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type TableGormRepository struct {
	db *gorm.DB
}

func NewTableGormRepository(db *gorm.DB) *TableGormRepository {
	return &TableGormRepository{db: db}
}

func (r *TableGormRepository) List(ctx context.Context) ([]model.Table, error) {
	var tables []model.Table
	err := r.db.WithContext(ctx).Order("table_no asc").Find(&tables).Error
	if err != nil {
		return []model.Table{}, err
	}
	return tables, nil
}

func (r *TableGormRepository) FindByNumber(ctx context.Context, tableNo int) (model.Table, error) {
	var t model.Table
	err := r.db.WithContext(ctx).Where("table_no = ?", tableNo).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Table{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Table{}, err
	}
	return t, nil
}

func (r *TableGormRepository) Create(ctx context.Context, t model.Table) (model.Table, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		//番号のuniqueIndex違反はConflictへ寄せる
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Table{}, repo.ErrConflict
		}
		return model.Table{}, err
	}
	return t, nil
}

func (r *TableGormRepository) UpdateStatus(ctx context.Context, tableID int64, status model.TableStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Table{}).
		Where("id = ?", tableID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *TableGormRepository) Delete(ctx context.Context, tableID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Table{}, tableID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
