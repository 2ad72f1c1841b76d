package order

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"waiterman-system/internal/database/models"
)

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) InsertOrder(ctx context.Context, o *models.Order) error {
	return s.db.WithContext(ctx).Create(o).Error
}

func (s *gormStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *gormStore) ListOrders(ctx context.Context, f Filter) ([]models.Order, error) {
	query := s.db.WithContext(ctx).Model(&models.Order{})
	if f.Status != "" {
		query = query.Where("order_status = ?", f.Status)
	}
	if f.TableID != "" {
		query = query.Where("table_id = ?", f.TableID)
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *gormStore) SetOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("order_status", status).Error
}

func (s *gormStore) SetTableStatus(ctx context.Context, tableID string, status models.TableStatus) error {
	return s.db.WithContext(ctx).Model(&models.Table{}).
		Where("id = ?", tableID).
		Update("status", status).Error
}
