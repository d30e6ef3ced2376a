package handler

import (
	"github.com/farmchainx/farmchainx/internal/apiserver/database"
	"github.com/farmchainx/farmchainx/internal/common/dto"
)

const dateLayout = "2006-01-02"

func toUserInfo(u *database.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         string(u.Role),
		Approved:     u.Approved,
		Phone:        u.Phone,
		Address:      u.Address,
		FarmName:     u.FarmName,
		FarmSize:     u.FarmSize,
		CompanyName:  u.CompanyName,
		DeliveryArea: u.DeliveryArea,
		Preferences:  u.Preferences,
		CreatedAt:    u.CreatedAt,
	}
}

func toUserInfos(users []*database.User) []*dto.UserInfo {
	out := make([]*dto.UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, toUserInfo(u))
	}
	return out
}

func toCropInfo(c *database.Crop) *dto.CropInfo {
	return &dto.CropInfo{
		ID:            c.ID,
		Name:          c.Name,
		Type:          c.Type,
		Soil:          c.Soil,
		Place:         c.Place,
		Comments:      c.Comments,
		Image:         c.Image,
		SowedDate:     c.SowedDate.UTC().Format(dateLayout),
		HarvestPeriod: c.HarvestPeriod,
		ApproxHarvest: c.ApproxHarvest.UTC().Format(dateLayout),
		Status:        c.Status,
		UserID:        c.UserID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toCropInfos(crops []*database.Crop) []*dto.CropInfo {
	out := make([]*dto.CropInfo, 0, len(crops))
	for _, c := range crops {
		out = append(out, toCropInfo(c))
	}
	return out
}

func toOrderInfo(o *database.Order) *dto.OrderInfo {
	info := &dto.OrderInfo{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		ConsumerID:      o.ConsumerID,
		DistributorID:   o.DistributorID,
		OrderItems:      make([]dto.OrderItemInfo, 0, len(o.Items)),
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		PaymentMethod:   o.PaymentMethod,
		OrderDate:       o.OrderDate,
		DeliveryDate:    o.DeliveryDate,
	}
	if o.Consumer != nil {
		info.ConsumerName = o.Consumer.FullName
	}
	if o.Distributor != nil {
		info.DistributorName = o.Distributor.FullName
	}
	for _, it := range o.Items {
		info.OrderItems = append(info.OrderItems, dto.OrderItemInfo{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return info
}

func toOrderInfos(orders []*database.Order) []*dto.OrderInfo {
	out := make([]*dto.OrderInfo, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderInfo(o))
	}
	return out
}
