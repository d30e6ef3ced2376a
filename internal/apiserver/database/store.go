package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// store is the gorm-backed implementation shared by every dialect
type store struct {
	db *gorm.DB
}

// openStore opens a connection through dialector and migrates the schema
func openStore(dialector gorm.Dialector) (*store, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := gormDB.AutoMigrate(&User{}, &Crop{}, &Order{}, &OrderItem{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &store{db: gormDB}, nil
}

// Close closes the database connection
func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks the underlying connection
func (s *store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Transaction executes fn within a database transaction
func (s *store) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}

func (s *store) CreateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, s.db).Create(user).Error
}

func (s *store) UpdateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, s.db).Save(user).Error
}

// DeleteUser removes the user and everything that references it
func (s *store) DeleteUser(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(ctx context.Context) error {
		db := getDBFromContext(ctx, s.db)

		orders := db.Model(&Order{}).Select("id").Where("consumer_id = ? OR distributor_id = ?", id, id)
		if err := db.Where("order_id IN (?)", orders).Delete(&OrderItem{}).Error; err != nil {
			return err
		}
		if err := db.Where("consumer_id = ? OR distributor_id = ?", id, id).Delete(&Order{}).Error; err != nil {
			return err
		}
		if err := db.Where("user_id = ?", id).Delete(&Crop{}).Error; err != nil {
			return err
		}

		res := db.Delete(&User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *store) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := getDBFromContext(ctx, s.db).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := getDBFromContext(ctx, s.db).
		Where("email = ?", NormalizeEmail(email)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *store) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := getDBFromContext(ctx, s.db).
		Model(&User{}).
		Where("email = ?", NormalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

func (s *store) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	err := getDBFromContext(ctx, s.db).
		Order("created_at desc, id desc").
		Find(&users).Error
	return users, err
}

func (s *store) ListUsersByApproval(ctx context.Context, approved bool) ([]*User, error) {
	var users []*User
	err := getDBFromContext(ctx, s.db).
		Where("approved = ?", approved).
		Order("created_at desc, id desc").
		Find(&users).Error
	return users, err
}

func (s *store) SetUserApproved(ctx context.Context, id uint, approved bool) error {
	res := getDBFromContext(ctx, s.db).
		Model(&User{}).
		Where("id = ?", id).
		Update("approved", approved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *store) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := getDBFromContext(ctx, s.db).Model(&User{}).Count(&count).Error
	return count, err
}

// GetUserStats aggregates users in a single grouped query
func (s *store) GetUserStats(ctx context.Context) (*UserStats, error) {
	var rows []struct {
		Role     Role
		Approved bool
		Total    int64
	}
	err := getDBFromContext(ctx, s.db).
		Model(&User{}).
		Select("role, approved, COUNT(*) AS total").
		Group("role, approved").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &UserStats{}
	for _, r := range rows {
		stats.TotalUsers += r.Total
		if r.Approved {
			stats.ApprovedUsers += r.Total
		} else {
			stats.PendingApprovals += r.Total
		}
		switch r.Role {
		case RoleFarmer:
			stats.TotalFarmers += r.Total
		case RoleDistributor:
			stats.TotalDistributors += r.Total
		case RoleConsumer:
			stats.TotalConsumers += r.Total
		case RoleAdmin:
			stats.TotalAdmins += r.Total
		}
	}
	return stats, nil
}

func (s *store) CreateCrop(ctx context.Context, crop *Crop) error {
	return getDBFromContext(ctx, s.db).Create(crop).Error
}

func (s *store) UpdateCrop(ctx context.Context, crop *Crop) error {
	return getDBFromContext(ctx, s.db).Save(crop).Error
}

func (s *store) DeleteCrop(ctx context.Context, id uint) error {
	res := getDBFromContext(ctx, s.db).Delete(&Crop{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *store) GetCrop(ctx context.Context, id uint) (*Crop, error) {
	var crop Crop
	if err := getDBFromContext(ctx, s.db).First(&crop, id).Error; err != nil {
		return nil, err
	}
	return &crop, nil
}

func (s *store) ListCropsByUser(ctx context.Context, userID uint, status string) ([]*Crop, error) {
	var crops []*Crop
	query := getDBFromContext(ctx, s.db).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at desc, id desc").Find(&crops).Error
	return crops, err
}

func (s *store) GetCropStats(ctx context.Context, userID uint, today time.Time) (*CropStats, error) {
	db := getDBFromContext(ctx, s.db)
	stats := &CropStats{}

	if err := db.Model(&Crop{}).Where("user_id = ?", userID).Count(&stats.TotalCrops).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Crop{}).
		Where("user_id = ? AND status = ?", userID, CropStatusActive).
		Count(&stats.ActiveCrops).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Crop{}).
		Where("user_id = ? AND status = ?", userID, CropStatusHarvested).
		Count(&stats.HarvestedCrops).Error; err != nil {
		return nil, err
	}

	from := DateOnly(today)
	to := from.Add(UpcomingHarvestWindow)
	if err := db.Model(&Crop{}).
		Where("user_id = ? AND status = ?", userID, CropStatusActive).
		Where("approx_harvest >= ? AND approx_harvest <= ?", from, to).
		Count(&stats.UpcomingHarvests).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *store) CreateOrder(ctx context.Context, order *Order) error {
	return getDBFromContext(ctx, s.db).
		Omit("Consumer", "Distributor").
		Create(order).Error
}

func (s *store) preloadOrders(ctx context.Context) *gorm.DB {
	return getDBFromContext(ctx, s.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Consumer").
		Preload("Distributor")
}

func (s *store) GetOrder(ctx context.Context, id uint) (*Order, error) {
	var order Order
	if err := s.preloadOrders(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *store) ListOrdersByConsumer(ctx context.Context, consumerID uint) ([]*Order, error) {
	var orders []*Order
	err := s.preloadOrders(ctx).
		Where("consumer_id = ?", consumerID).
		Order("order_date desc, id desc").
		Find(&orders).Error
	return orders, err
}

func (s *store) ListOrdersByDistributor(ctx context.Context, distributorID uint) ([]*Order, error) {
	var orders []*Order
	err := s.preloadOrders(ctx).
		Where("distributor_id = ?", distributorID).
		Order("order_date desc, id desc").
		Find(&orders).Error
	return orders, err
}

func (s *store) UpdateOrderStatus(ctx context.Context, id uint, status OrderStatus, deliveryDate *time.Time) error {
	res := getDBFromContext(ctx, s.db).
		Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        status,
			"delivery_date": deliveryDate,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *store) DeleteOrder(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(ctx context.Context) error {
		db := getDBFromContext(ctx, s.db)
		if err := db.Where("order_id = ?", id).Delete(&OrderItem{}).Error; err != nil {
			return err
		}
		res := db.Delete(&Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
