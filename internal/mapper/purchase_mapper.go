package mapper

import (
	"bookverse-be/internal/entity"
	"bookverse-be/internal/model"
)

type PurchaseMapper struct{}

func NewPurchaseMapper() *PurchaseMapper {
	return &PurchaseMapper{}
}

func (m *PurchaseMapper) ToEntity(p *model.UserPurchase) *entity.UserPurchase {
	if p == nil {
		return nil
	}
	return &entity.UserPurchase{
		Id:     p.Id,
		UserId: p.UserId,
		Item: entity.Purchasable{
			Type: entity.PurchasableType(p.PurchasableType),
			Id:   p.PurchasableId,
		},
		TransactionId: p.TransactionId,
		PurchasedAt:   p.PurchasedAt,
		ExpiresAt:     p.ExpiresAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *PurchaseMapper) ToModel(p *entity.UserPurchase) *model.UserPurchase {
	if p == nil {
		return nil
	}
	return &model.UserPurchase{
		Id:              p.Id,
		UserId:          p.UserId,
		PurchasableType: string(p.Item.Type),
		PurchasableId:   p.Item.Id,
		TransactionId:   p.TransactionId,
		PurchasedAt:     p.PurchasedAt,
		ExpiresAt:       p.ExpiresAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
