package implementation

import (
	"context"
	"errors"

	"bookverse-be/internal/entity"
	"bookverse-be/internal/mapper"
	"bookverse-be/internal/model"
	"bookverse-be/internal/repository/contract"
	"bookverse-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TransactionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TransactionMapper
}

func NewTransactionRepository(db *gorm.DB) contract.TransactionRepository {
	return &TransactionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTransactionMapper(),
	}
}

func (r *TransactionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, txn *entity.Transaction) error {
	m := r.mapper.ToModel(txn)
	// Items ride along through the association; one insert statement per
	// table, same transaction.
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*txn = *r.mapper.ToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) Update(ctx context.Context, txn *entity.Transaction) error {
	m := r.mapper.ToModel(txn)
	// Save without the items association; line items are immutable
	// snapshots once written.
	if err := r.db.WithContext(ctx).Omit("Items").Save(m).Error; err != nil {
		return err
	}
	return nil
}

func (r *TransactionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error) {
	var m model.Transaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	query = query.Preload("Items")
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TransactionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	var models []*model.Transaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	query = query.Preload("Items")
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Transaction, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *TransactionRepositoryImpl) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *TransactionRepositoryImpl) AppendStatusLog(ctx context.Context, log *contract.StatusLogEntry) error {
	m := &model.TransactionStatusLog{
		TransactionId: log.TransactionId,
		Source:        log.Source,
		GatewayStatus: log.GatewayStatus,
		FraudStatus:   log.FraudStatus,
		FromStatus:    string(log.FromStatus),
		ToStatus:      string(log.ToStatus),
		Conflict:      log.Conflict,
		RawPayload:    log.RawPayload,
	}
	return r.db.WithContext(ctx).Create(m).Error
}
