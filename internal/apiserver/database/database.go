package database

import (
	"context"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a looked up record does not exist
	ErrNotFound = gorm.ErrRecordNotFound
	// ErrDuplicate is returned when a unique index rejects a write
	ErrDuplicate = gorm.ErrDuplicatedKey
)

// Database defines the methods for database operations.
type Database interface {
	// Close closes the database connection.
	Close() error

	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error

	// Transaction runs fn in a transaction carried by ctx. Nested calls join
	// the outer transaction.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	// CreateUser inserts a new user.
	CreateUser(ctx context.Context, user *User) error

	// UpdateUser saves every field of user.
	UpdateUser(ctx context.Context, user *User) error

	// DeleteUser removes a user together with their crops and the orders
	// they placed or received.
	DeleteUser(ctx context.Context, id uint) error

	// GetUserByID gets a user by id.
	GetUserByID(ctx context.Context, id uint) (*User, error)

	// GetUserByEmail gets a user by normalized email.
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// EmailExists reports whether an account uses email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// ListUsers lists all users, newest first.
	ListUsers(ctx context.Context) ([]*User, error)

	// ListUsersByApproval lists users with the given approval flag.
	ListUsersByApproval(ctx context.Context, approved bool) ([]*User, error)

	// SetUserApproved updates the approval flag of a user.
	SetUserApproved(ctx context.Context, id uint, approved bool) error

	// CountUsers returns the number of accounts.
	CountUsers(ctx context.Context) (int64, error)

	// GetUserStats counts users by role and approval.
	GetUserStats(ctx context.Context) (*UserStats, error)

	// CreateCrop inserts a crop.
	CreateCrop(ctx context.Context, crop *Crop) error

	// UpdateCrop saves every field of crop.
	UpdateCrop(ctx context.Context, crop *Crop) error

	// DeleteCrop removes a crop.
	DeleteCrop(ctx context.Context, id uint) error

	// GetCrop gets a crop by id.
	GetCrop(ctx context.Context, id uint) (*Crop, error)

	// ListCropsByUser lists a user's crops, optionally filtered by status.
	ListCropsByUser(ctx context.Context, userID uint, status string) ([]*Crop, error)

	// GetCropStats summarizes a user's crops as of the given day.
	GetCropStats(ctx context.Context, userID uint, today time.Time) (*CropStats, error)

	// CreateOrder inserts an order and its items.
	CreateOrder(ctx context.Context, order *Order) error

	// GetOrder gets an order with items and both parties.
	GetOrder(ctx context.Context, id uint) (*Order, error)

	// ListOrdersByConsumer lists orders placed by a consumer.
	ListOrdersByConsumer(ctx context.Context, consumerID uint) ([]*Order, error)

	// ListOrdersByDistributor lists orders addressed to a distributor.
	ListOrdersByDistributor(ctx context.Context, distributorID uint) ([]*Order, error)

	// UpdateOrderStatus sets the status and delivery date of an order.
	UpdateOrderStatus(ctx context.Context, id uint, status OrderStatus, deliveryDate *time.Time) error

	// DeleteOrder removes an order and its items.
	DeleteOrder(ctx context.Context, id uint) error
}
