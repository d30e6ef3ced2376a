package database

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// CropStatus values used by the dashboard. Other values are stored as given.
const (
	CropStatusActive    = "Active"
	CropStatusHarvested = "Harvested"
)

// UpcomingHarvestWindow is how far ahead an Active crop counts as upcoming
const UpcomingHarvestWindow = 30 * 24 * time.Hour

// MaxHarvestPeriod bounds harvestPeriod in days so approxHarvest stays a
// date every dialect can store and read back
const MaxHarvestPeriod = 3650

// OrderStatus is the fulfilment state of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// User represents an account of any role
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"not null"`
	FullName     string    `json:"fullName" gorm:"type:varchar(255);not null"`
	Phone        string    `json:"phone" gorm:"type:varchar(50)"`
	Address      string    `json:"address" gorm:"type:text"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;index"`
	Approved     bool      `json:"approved" gorm:"not null"`
	FarmName     string    `json:"farmName" gorm:"type:varchar(255)"`
	FarmSize     string    `json:"farmSize" gorm:"type:varchar(100)"`
	CompanyName  string    `json:"companyName" gorm:"type:varchar(255)"`
	DeliveryArea string    `json:"deliveryArea" gorm:"type:varchar(255)"`
	Preferences  string    `json:"preferences" gorm:"type:text"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeSave keeps email and role in their canonical form on every write
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	u.Role = NormalizeRole(string(u.Role))
	return nil
}

// UserStats holds account counts for the admin dashboard
type UserStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	PendingApprovals  int64 `json:"pendingApprovals"`
	ApprovedUsers     int64 `json:"approvedUsers"`
	TotalFarmers      int64 `json:"totalFarmers"`
	TotalDistributors int64 `json:"totalDistributors"`
	TotalConsumers    int64 `json:"totalConsumers"`
	TotalAdmins       int64 `json:"totalAdmins"`
}

// Crop is a planting record owned by a user. ApproxHarvest is derived from
// SowedDate and HarvestPeriod on every save.
type Crop struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        uint      `json:"userId" gorm:"not null;index:idx_crops_user_status,priority:1"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	Type          string    `json:"type" gorm:"type:varchar(100);not null"`
	Soil          string    `json:"soil" gorm:"type:varchar(100);not null"`
	Place         string    `json:"place" gorm:"type:varchar(255);not null"`
	Comments      string    `json:"comments" gorm:"type:text"`
	Image         string    `json:"image" gorm:"type:text"`
	SowedDate     time.Time `json:"sowedDate" gorm:"not null"`
	HarvestPeriod int       `json:"harvestPeriod" gorm:"not null"`
	ApproxHarvest time.Time `json:"approxHarvest" gorm:"not null;index"`
	Status        string    `json:"status" gorm:"type:varchar(30);not null;index:idx_crops_user_status,priority:2"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DateOnly truncates t to midnight UTC of its calendar day
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ComputeHarvest normalizes the sowing date and derives ApproxHarvest
func (c *Crop) ComputeHarvest() {
	c.SowedDate = DateOnly(c.SowedDate)
	c.ApproxHarvest = c.SowedDate.AddDate(0, 0, c.HarvestPeriod)
}

// BeforeSave derives the harvest date and applies the default status
func (c *Crop) BeforeSave(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = CropStatusActive
	}
	c.ComputeHarvest()
	return nil
}

// CropStats is the farmer dashboard summary
type CropStats struct {
	TotalCrops       int64 `json:"totalCrops"`
	ActiveCrops      int64 `json:"activeCrops"`
	HarvestedCrops   int64 `json:"harvestedCrops"`
	UpcomingHarvests int64 `json:"upcomingHarvests"`
}

// Order is a purchase placed by a consumer with a distributor
type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderNumber     string      `json:"orderNumber" gorm:"type:varchar(40);uniqueIndex;not null"`
	ConsumerID      uint        `json:"consumerId" gorm:"not null;index"`
	Consumer        *User       `json:"-" gorm:"foreignKey:ConsumerID"`
	DistributorID   uint        `json:"distributorId" gorm:"not null;index"`
	Distributor     *User       `json:"-" gorm:"foreignKey:DistributorID"`
	CustomerName    string      `json:"customerName" gorm:"type:varchar(255)"`
	CustomerPhone   string      `json:"customerPhone" gorm:"type:varchar(50)"`
	ShippingAddress string      `json:"shippingAddress" gorm:"type:text"`
	PaymentMethod   string      `json:"paymentMethod" gorm:"type:varchar(50)"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	TotalAmount     float64     `json:"totalAmount" gorm:"not null"`
	OrderDate       time.Time   `json:"orderDate" gorm:"not null"`
	DeliveryDate    *time.Time  `json:"deliveryDate"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// OrderItem is one line of an order
type OrderItem struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID     uint    `json:"orderId" gorm:"not null;index"`
	ProductID   *uint   `json:"productId"`
	ProductName string  `json:"productName" gorm:"type:varchar(255);not null"`
	Quantity    int     `json:"quantity" gorm:"not null"`
	UnitPrice   float64 `json:"unitPrice" gorm:"not null"`
	Subtotal    float64 `json:"subtotal" gorm:"not null"`
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// RecalculateTotal sets every item subtotal and the order total
func (o *Order) RecalculateTotal() {
	var total float64
	for i := range o.Items {
		o.Items[i].Subtotal = roundCents(float64(o.Items[i].Quantity) * o.Items[i].UnitPrice)
		total += o.Items[i].Subtotal
	}
	o.TotalAmount = roundCents(total)
}

// BeforeCreate stamps the order number, defaults and totals
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNumber == "" {
		o.OrderNumber = NextOrderNumber()
	}
	if o.Status == "" {
		o.Status = OrderPending
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now().UTC()
	}
	o.RecalculateTotal()
	return nil
}
