package orderrepo

import (
	"context"
	"errors"
	"time"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM. The aggregate's
// quotes are upserted (resubmission rewrites the row) and messages are
// insert-only, matching the domain rules.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its quotes and messages.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. The order row is rewritten, quote rows are
// upserted by primary key, and message rows not yet present are inserted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Omit(clause.Associations).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.Quotes) > 0 {
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto.Quotes).Error; err != nil {
			return err
		}
	}

	if len(dto.Messages) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Messages).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its quotes and messages by id.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByBuyer retrieves every order owned by the buyer.
func (r *GormOrderRepository) GetAllByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error) {
	if err := buyerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.preloaded(ctx).Find(&dtos, "buyer_id = ?", buyerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllPostedBefore retrieves posted orders whose expected delivery date
// lies strictly before the cutoff.
func (r *GormOrderRepository) GetAllPostedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.preloaded(ctx).
		Find(&dtos, "status = ? AND expected_delivery_date < ?", order.Posted, cutoff).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// preloaded returns a query with the aggregate's child rows eagerly loaded in
// submission order.
func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Quotes", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp")
		}).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp")
		})
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
