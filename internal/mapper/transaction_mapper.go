package mapper

import (
	"bookverse-be/internal/entity"
	"bookverse-be/internal/model"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	items := make([]*entity.TransactionItem, len(t.Items))
	for i, item := range t.Items {
		items[i] = m.ItemToEntity(item)
	}
	return &entity.Transaction{
		Id:                   t.Id,
		UserId:               t.UserId,
		Code:                 t.Code,
		Type:                 entity.TransactionType(t.Type),
		TotalAmount:          t.TotalAmount,
		PaymentMethod:        t.PaymentMethod,
		Status:               entity.TransactionStatus(t.Status),
		GatewayTransactionId: t.GatewayTransactionId,
		SnapToken:            t.SnapToken,
		SnapRedirectURL:      t.SnapRedirectURL,
		PaidAt:               t.PaidAt,
		ExpiresAt:            t.ExpiresAt,
		Notes:                t.Notes,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
		Items:                items,
	}
}

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	items := make([]*model.TransactionItem, len(t.Items))
	for i, item := range t.Items {
		items[i] = m.ItemToModel(item)
	}
	return &model.Transaction{
		Id:                   t.Id,
		UserId:               t.UserId,
		Code:                 t.Code,
		Type:                 string(t.Type),
		TotalAmount:          t.TotalAmount,
		PaymentMethod:        t.PaymentMethod,
		Status:               string(t.Status),
		GatewayTransactionId: t.GatewayTransactionId,
		SnapToken:            t.SnapToken,
		SnapRedirectURL:      t.SnapRedirectURL,
		PaidAt:               t.PaidAt,
		ExpiresAt:            t.ExpiresAt,
		Notes:                t.Notes,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
		Items:                items,
	}
}

func (m *TransactionMapper) ItemToEntity(i *model.TransactionItem) *entity.TransactionItem {
	if i == nil {
		return nil
	}
	return &entity.TransactionItem{
		Id:            i.Id,
		TransactionId: i.TransactionId,
		Item: entity.Purchasable{
			Type: entity.PurchasableType(i.ItemType),
			Id:   i.ItemId,
		},
		Title:     i.Title,
		Price:     i.Price,
		Quantity:  i.Quantity,
		CreatedAt: i.CreatedAt,
	}
}

func (m *TransactionMapper) ItemToModel(i *entity.TransactionItem) *model.TransactionItem {
	if i == nil {
		return nil
	}
	return &model.TransactionItem{
		Id:            i.Id,
		TransactionId: i.TransactionId,
		ItemType:      string(i.Item.Type),
		ItemId:        i.Item.Id,
		Title:         i.Title,
		Price:         i.Price,
		Quantity:      i.Quantity,
		CreatedAt:     i.CreatedAt,
	}
}
