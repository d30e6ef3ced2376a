package dto

import "time"

// OrderItemRequest is one line of a new order
type OrderItemRequest struct {
	ProductID   *uint   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// CreateOrderRequest places an order with a distributor
type CreateOrderRequest struct {
	DistributorID   uint               `json:"distributorId"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	ShippingAddress string             `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	Items           []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest moves an order to another status
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemInfo is the response view of an order line
type OrderItemInfo struct {
	ID          uint    `json:"id"`
	ProductID   *uint   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// OrderInfo is the response view of an order
type OrderInfo struct {
	ID              uint            `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	ConsumerID      uint            `json:"consumerId"`
	ConsumerName    string          `json:"consumerName"`
	DistributorID   uint            `json:"distributorId"`
	DistributorName string          `json:"distributorName"`
	OrderItems      []OrderItemInfo `json:"orderItems"`
	TotalAmount     float64         `json:"totalAmount"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shippingAddress"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	PaymentMethod   string          `json:"paymentMethod"`
	OrderDate       time.Time       `json:"orderDate"`
	DeliveryDate    *time.Time      `json:"deliveryDate"`
}
