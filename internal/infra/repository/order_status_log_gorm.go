package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type orderStatusLogGormRepository struct {
	db *gorm.DB
}

func NewOrderStatusLogGormRepository(db *gorm.DB) repo.OrderStatusLogRepository {
	return &orderStatusLogGormRepository{db: db}
}

func (r *orderStatusLogGormRepository) Create(ctx context.Context, log model.OrderStatusLog) error {
	if err := r.db.WithContext(ctx).Create(&log).Error; err != nil {
		return err
	}
	return nil
}

func (r *orderStatusLogGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderStatusLog, error) {
	var logs []model.OrderStatusLog

	//履歴は時系列で読むので古い順
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
