package implementation

import (
	"context"
	"errors"
	"time"

	"bookverse-be/internal/entity"
	"bookverse-be/internal/mapper"
	"bookverse-be/internal/model"
	"bookverse-be/internal/repository/contract"
	"bookverse-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PurchaseMapper
}

func NewPurchaseRepository(db *gorm.DB) contract.PurchaseRepository {
	return &PurchaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewPurchaseMapper(),
	}
}

func (r *PurchaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PurchaseRepositoryImpl) Upsert(ctx context.Context, purchase *entity.UserPurchase) error {
	m := r.mapper.ToModel(purchase)
	// ON CONFLICT on the natural key keeps duplicate webhook deliveries
	// and poll/webhook races down to a refresh of the same row.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "purchasable_type"},
			{Name: "purchasable_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"transaction_id", "purchased_at", "expires_at", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*purchase = *r.mapper.ToEntity(m)
	return nil
}

func (r *PurchaseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserPurchase, error) {
	var m model.UserPurchase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PurchaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserPurchase, error) {
	var models []*model.UserPurchase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UserPurchase, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *PurchaseRepositoryImpl) FindActive(ctx context.Context, userId uuid.UUID, item entity.Purchasable, now time.Time) (*entity.UserPurchase, error) {
	return r.FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Filter("purchasable_type", string(item.Type)),
		specification.Filter("purchasable_id", item.Id),
		specification.ActivePurchasesAt{Now: now},
	)
}
