package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Users(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	u := &User{Email: "  Alice@Farm.IO ", Password: "hash", FullName: "Alice", Role: "fawber", Approved: true}
	require.NoError(t, db.CreateUser(ctx, u))
	assert.Equal(t, "alice@farm.io", u.Email)
	assert.Equal(t, RoleFarmer, u.Role)

	got, err := db.GetUserByEmail(ctx, "ALICE@farm.io")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	exists, err := db.EmailExists(ctx, "alice@FARM.io")
	require.NoError(t, err)
	assert.True(t, exists)

	dup := &User{Email: "alice@farm.io", Password: "x", FullName: "Dup", Role: RoleConsumer}
	err = db.CreateUser(ctx, dup)
	assert.True(t, errors.Is(err, ErrDuplicate), "got %v", err)

	got.Role = "consume"
	got.Phone = "123"
	require.NoError(t, db.UpdateUser(ctx, got))
	reloaded, err := db.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleConsumer, reloaded.Role)
	assert.Equal(t, "123", reloaded.Phone)

	_, err = db.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Approval(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	a := createUser(t, db, "a@x.io", RoleFarmer)
	b := &User{Email: "b@x.io", Password: "h", FullName: "B", Role: RoleConsumer, Approved: false}
	require.NoError(t, db.CreateUser(ctx, b))

	pending, err := db.ListUsersByApproval(ctx, false)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, b.ID, pending[0].ID)

	require.NoError(t, db.SetUserApproved(ctx, b.ID, true))
	pending, err = db.ListUsersByApproval(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.ErrorIs(t, db.SetUserApproved(ctx, 999, true), ErrNotFound)

	all, err := db.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	n, err := db.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	_ = a
}

func TestStore_UserStats(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	createUser(t, db, "f1@x.io", RoleFarmer)
	createUser(t, db, "f2@x.io", RoleFarmer)
	createUser(t, db, "d@x.io", RoleDistributor)
	createUser(t, db, "admin@x.io", RoleAdmin)
	require.NoError(t, db.CreateUser(ctx, &User{Email: "c@x.io", Password: "h", FullName: "C", Role: RoleConsumer}))

	stats, err := db.GetUserStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &UserStats{
		TotalUsers:        5,
		PendingApprovals:  1,
		ApprovedUsers:     4,
		TotalFarmers:      2,
		TotalDistributors: 1,
		TotalConsumers:    1,
		TotalAdmins:       1,
	}, stats)
}

func TestStore_Crops(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()
	farmer := createUser(t, db, "f@x.io", RoleFarmer)
	other := createUser(t, db, "o@x.io", RoleFarmer)

	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	c1 := &Crop{UserID: farmer.ID, Name: "Rice", Type: "Grain", Soil: "Clay", Place: "North", SowedDate: today.AddDate(0, 0, -80), HarvestPeriod: 90}
	c2 := &Crop{UserID: farmer.ID, Name: "Corn", Type: "Grain", Soil: "Loam", Place: "East", SowedDate: today.AddDate(0, 0, -10), HarvestPeriod: 120}
	c3 := &Crop{UserID: farmer.ID, Name: "Wheat", Type: "Grain", Soil: "Sand", Place: "West", SowedDate: today.AddDate(0, 0, -200), HarvestPeriod: 100, Status: CropStatusHarvested}
	c4 := &Crop{UserID: other.ID, Name: "Tea", Type: "Leaf", Soil: "Clay", Place: "Hill", SowedDate: today, HarvestPeriod: 5}
	for _, c := range []*Crop{c1, c2, c3, c4} {
		require.NoError(t, db.CreateCrop(ctx, c))
	}
	assert.Equal(t, CropStatusActive, c1.Status)
	assert.Equal(t, today.AddDate(0, 0, 10), c1.ApproxHarvest)

	crops, err := db.ListCropsByUser(ctx, farmer.ID, "")
	require.NoError(t, err)
	assert.Len(t, crops, 3)

	active, err := db.ListCropsByUser(ctx, farmer.ID, CropStatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	stats, err := db.GetCropStats(ctx, farmer.ID, today)
	require.NoError(t, err)
	assert.Equal(t, &CropStats{TotalCrops: 3, ActiveCrops: 2, HarvestedCrops: 1, UpcomingHarvests: 1}, stats)

	c2.HarvestPeriod = 20
	require.NoError(t, db.UpdateCrop(ctx, c2))
	got, err := db.GetCrop(ctx, c2.ID)
	require.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, 10), got.ApproxHarvest.UTC())

	require.NoError(t, db.DeleteCrop(ctx, c1.ID))
	assert.ErrorIs(t, db.DeleteCrop(ctx, c1.ID), ErrNotFound)
	_, err = db.GetCrop(ctx, c1.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func newTestOrder(consumer, distributor *User) *Order {
	return &Order{
		ConsumerID:      consumer.ID,
		DistributorID:   distributor.ID,
		CustomerName:    consumer.FullName,
		ShippingAddress: "1 Farm Road",
		PaymentMethod:   "COD",
		Items: []OrderItem{
			{ProductName: "Rice", Quantity: 2, UnitPrice: 10.5},
			{ProductName: "Beans", Quantity: 1, UnitPrice: 4},
		},
	}
}

func TestStore_Orders(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()
	consumer := createUser(t, db, "c@x.io", RoleConsumer)
	distributor := createUser(t, db, "d@x.io", RoleDistributor)

	o := newTestOrder(consumer, distributor)
	require.NoError(t, db.CreateOrder(ctx, o))
	assert.NotZero(t, o.ID)
	assert.Regexp(t, `^ORD-\d+$`, o.OrderNumber)
	assert.Equal(t, OrderPending, o.Status)
	assert.Equal(t, 25.0, o.TotalAmount)
	assert.False(t, o.OrderDate.IsZero())

	o2 := newTestOrder(consumer, distributor)
	require.NoError(t, db.CreateOrder(ctx, o2))
	assert.NotEqual(t, o.OrderNumber, o2.OrderNumber)

	got, err := db.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 21.0, got.Items[0].Subtotal)
	require.NotNil(t, got.Consumer)
	assert.Equal(t, consumer.Email, got.Consumer.Email)
	require.NotNil(t, got.Distributor)
	assert.Equal(t, distributor.Email, got.Distributor.Email)

	mine, err := db.ListOrdersByConsumer(ctx, consumer.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	assert.Equal(t, o2.ID, mine[0].ID)

	theirs, err := db.ListOrdersByDistributor(ctx, distributor.ID)
	require.NoError(t, err)
	assert.Len(t, theirs, 2)

	none, err := db.ListOrdersByDistributor(ctx, consumer.ID)
	require.NoError(t, err)
	assert.Empty(t, none)

	delivered := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, db.UpdateOrderStatus(ctx, o.ID, OrderDelivered, &delivered))
	got, err = db.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, OrderDelivered, got.Status)
	require.NotNil(t, got.DeliveryDate)
	assert.True(t, delivered.Equal(*got.DeliveryDate))
	assert.ErrorIs(t, db.UpdateOrderStatus(ctx, 999, OrderShipped, nil), ErrNotFound)

	require.NoError(t, db.DeleteOrder(ctx, o.ID))
	_, err = db.GetOrder(ctx, o.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, db.DeleteOrder(ctx, o.ID), ErrNotFound)

	var items int64
	require.NoError(t, db.db.Model(&OrderItem{}).Where("order_id = ?", o.ID).Count(&items).Error)
	assert.Zero(t, items)
}

func TestStore_DeleteUserCascades(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()
	consumer := createUser(t, db, "c@x.io", RoleConsumer)
	distributor := createUser(t, db, "d@x.io", RoleDistributor)
	farmer := createUser(t, db, "f@x.io", RoleFarmer)

	require.NoError(t, db.CreateOrder(ctx, newTestOrder(consumer, distributor)))
	require.NoError(t, db.CreateCrop(ctx, &Crop{UserID: farmer.ID, Name: "Rice", Type: "Grain", Soil: "Clay", Place: "N", SowedDate: time.Now(), HarvestPeriod: 10}))

	require.NoError(t, db.DeleteUser(ctx, distributor.ID))
	orders, err := db.ListOrdersByConsumer(ctx, consumer.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	var items int64
	require.NoError(t, db.db.Model(&OrderItem{}).Count(&items).Error)
	assert.Zero(t, items)

	require.NoError(t, db.DeleteUser(ctx, farmer.ID))
	crops, err := db.ListCropsByUser(ctx, farmer.ID, "")
	require.NoError(t, err)
	assert.Empty(t, crops)

	assert.ErrorIs(t, db.DeleteUser(ctx, farmer.ID), ErrNotFound)
}

func TestStore_Transaction(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	boom := errors.New("boom")
	assert.False(t, InTransaction(ctx))
	err := db.Transaction(ctx, func(txCtx context.Context) error {
		assert.True(t, InTransaction(txCtx))
		return db.CreateUser(txCtx, &User{Email: "tx@x.io", Password: "h", FullName: "T", Role: RoleFarmer})
	})
	require.NoError(t, err)

	err = db.Transaction(ctx, func(txCtx context.Context) error {
		require.NoError(t, db.CreateUser(txCtx, &User{Email: "rollback@x.io", Password: "h", FullName: "R", Role: RoleFarmer}))
		return db.Transaction(txCtx, func(inner context.Context) error {
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)

	exists, err := db.EmailExists(ctx, "rollback@x.io")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = db.EmailExists(ctx, "tx@x.io")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, db.Ping(ctx))
}
