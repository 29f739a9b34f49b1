package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/PremPrakashCodes/preplate/entity"
	"github.com/PremPrakashCodes/preplate/pkg/apperr"
	"github.com/PremPrakashCodes/preplate/utils"
)

func TestCreateOrderComputesTotals(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, soupID := seedVenue(t, db)
	svc := newOrderServiceForTest(db)

	order, err := svc.Create(1, &CreateOrderReq{
		RestaurantID: rest.ID,
		Items: []OrderItemIn{
			{MenuItemID: pastaID, Quantity: 2},
			{MenuItemID: soupID, Quantity: 1},
		},
		BookingDateTime: time.Now().Add(24 * time.Hour),
		Guests:          2,
	})
	require.NoError(t, err)

	// 2 x 10.00 + 1 x 5.00 = 25.00; 20% fee = 5.00; total 30.00.
	assert.True(t, order.Subtotal.Equal(dec("25.00")), "subtotal = %s", order.Subtotal)
	assert.True(t, order.PlatformFee.Equal(dec("5.00")), "fee = %s", order.PlatformFee)
	assert.True(t, order.Total.Equal(dec("30.00")), "total = %s", order.Total)

	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"), "order number %q", order.OrderNumber)
	assert.Len(t, order.OrderItems, 2)
	assert.Equal(t, 2, order.Guests)
}

func TestCreateOrderSnapshotsPrice(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, _ := seedVenue(t, db)
	svc := newOrderServiceForTest(db)

	order, err := svc.Create(1, &CreateOrderReq{
		RestaurantID:    rest.ID,
		Items:           []OrderItemIn{{MenuItemID: pastaID, Quantity: 1}},
		BookingDateTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	// Raising the menu price later must not touch the existing order.
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", pastaID).
		Update("price", dec("99.00")).Error)

	reloaded, err := svc.Get(1, utils.KindUser, order.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.OrderItems[0].Price.Equal(dec("10.00")))
	assert.True(t, reloaded.Subtotal.Equal(dec("10.00")))
}

func TestCreateOrderRejectsMissingItemAtomically(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, _ := seedVenue(t, db)
	svc := newOrderServiceForTest(db)

	_, err := svc.Create(1, &CreateOrderReq{
		RestaurantID: rest.ID,
		Items: []OrderItemIn{
			{MenuItemID: pastaID, Quantity: 1},
			{MenuItemID: 9999, Quantity: 1},
		},
		BookingDateTime: time.Now().Add(time.Hour),
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// The whole order is rejected: no Order and no OrderItem rows.
	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCreateOrderRejectsUnavailableItem(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, _ := seedVenue(t, db)
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", pastaID).
		Update("is_available", false).Error)
	svc := newOrderServiceForTest(db)

	_, err := svc.Create(1, &CreateOrderReq{
		RestaurantID:    rest.ID,
		Items:           []OrderItemIn{{MenuItemID: pastaID, Quantity: 1}},
		BookingDateTime: time.Now().Add(time.Hour),
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreateOrderRejectsClosedOrMissingRestaurant(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, _ := seedVenue(t, db)
	svc := newOrderServiceForTest(db)

	_, err := svc.Create(1, &CreateOrderReq{
		RestaurantID:    9999,
		Items:           []OrderItemIn{{MenuItemID: pastaID, Quantity: 1}},
		BookingDateTime: time.Now().Add(time.Hour),
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, db.Model(&entity.Restaurant{}).Where("id = ?", rest.ID).
		Update("is_open", false).Error)
	_, err = svc.Create(1, &CreateOrderReq{
		RestaurantID:    rest.ID,
		Items:           []OrderItemIn{{MenuItemID: pastaID, Quantity: 1}},
		BookingDateTime: time.Now().Add(time.Hour),
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func createTestOrder(t *testing.T, svc *OrderService, userID uint, restID, itemID uint) *entity.Order {
	t.Helper()
	order, err := svc.Create(userID, &CreateOrderReq{
		RestaurantID:    restID,
		Items:           []OrderItemIn{{MenuItemID: itemID, Quantity: 1}},
		BookingDateTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	return order
}

func TestUpdateOrderRejectsUnknownStatusUnchanged(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, _ := seedVenue(t, db)
	svc := newOrderServiceForTest(db)
	order := createTestOrder(t, svc, 1, rest.ID, pastaID)

	bogus := "DELIVERED"
	_, err := svc.Update(1, utils.KindUser, order.ID, &UpdateOrderReq{Status: &bogus})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// Stored status must be untouched.
	reloaded, err := svc.Get(1, utils.KindUser, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, reloaded.Status)
}

func TestUpdateOrderRejectsPartialWriteOnMixedPatch(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, _ := seedVenue(t, db)
	svc := newOrderServiceForTest(db)
	order := createTestOrder(t, svc, 1, rest.ID, pastaID)

	// Valid status together with an invalid payment status: nothing written.
	confirmed := string(entity.OrderConfirmed)
	bogus := "CHARGEBACK"
	_, err := svc.Update(1, utils.KindUser, order.ID, &UpdateOrderReq{
		Status:        &confirmed,
		PaymentStatus: &bogus,
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	reloaded, err := svc.Get(1, utils.KindUser, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, reloaded.Status)
	assert.Equal(t, entity.PaymentPending, reloaded.PaymentStatus)
}

func TestUpdateOrderWalksLifecycle(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, _ := seedVenue(t, db)
	svc := newOrderServiceForTest(db)
	order := createTestOrder(t, svc, 1, rest.ID, pastaID)

	for _, next := range []string{"CONFIRMED", "PREPARING", "READY", "COMPLETED"} {
		updated, err := svc.Update(rest.ID, utils.KindRestaurant, order.ID, &UpdateOrderReq{Status: &next})
		require.NoError(t, err, "to %s", next)
		assert.Equal(t, entity.OrderStatus(next), updated.Status)
	}

	// Terminal state: no way out.
	cancelled := string(entity.OrderCancelled)
	_, err := svc.Update(rest.ID, utils.KindRestaurant, order.ID, &UpdateOrderReq{Status: &cancelled})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUpdateOrderRejectsIllegalTransition(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, _ := seedVenue(t, db)
	svc := newOrderServiceForTest(db)
	order := createTestOrder(t, svc, 1, rest.ID, pastaID)

	// PENDING cannot jump straight to READY.
	ready := string(entity.OrderReady)
	_, err := svc.Update(1, utils.KindUser, order.ID, &UpdateOrderReq{Status: &ready})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUpdatePaymentStatusIndependentOfStatus(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, _ := seedVenue(t, db)
	svc := newOrderServiceForTest(db)
	order := createTestOrder(t, svc, 1, rest.ID, pastaID)

	// Payment axis moves while the booking axis stays PENDING.
	paid := string(entity.PaymentPaid)
	updated, err := svc.Update(1, utils.KindUser, order.ID, &UpdateOrderReq{PaymentStatus: &paid})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, entity.OrderPending, updated.Status)

	refunded := string(entity.PaymentRefunded)
	updated, err = svc.Update(1, utils.KindUser, order.ID, &UpdateOrderReq{PaymentStatus: &refunded})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentRefunded, updated.PaymentStatus)

	// REFUNDED is terminal on the payment axis.
	pending := string(entity.PaymentPending)
	_, err = svc.Update(1, utils.KindUser, order.ID, &UpdateOrderReq{PaymentStatus: &pending})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUpdateStatusesFromGuardsOnPriorValue(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, _ := seedVenue(t, db)
	svc := newOrderServiceForTest(db)
	order := createTestOrder(t, svc, 1, rest.ID, pastaID)

	repo := svc.Repo

	// Stale expectation: no write happens.
	ok, err := repo.UpdateStatusesFrom(order.ID,
		map[string]any{"status": entity.OrderConfirmed},
		map[string]any{"status": entity.OrderPreparing})
	require.NoError(t, err)
	assert.False(t, ok)

	reloaded, err := repo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, reloaded.Status)

	// Matching expectation: exactly one row moves.
	ok, err = repo.UpdateStatusesFrom(order.ID,
		map[string]any{"status": entity.OrderPending},
		map[string]any{"status": entity.OrderConfirmed})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdateConflictsWithInterleavedWriter(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, _ := seedVenue(t, db)
	svc := newOrderServiceForTest(db)
	order := createTestOrder(t, svc, 1, rest.ID, pastaID)

	for _, next := range []string{"CONFIRMED", "PREPARING", "READY"} {
		_, err := svc.Update(rest.ID, utils.KindRestaurant, order.ID, &UpdateOrderReq{Status: &next})
		require.NoError(t, err)
	}

	// Another request completes the order between this request's read of the
	// READY state and its write.
	fired := false
	err := db.Callback().Update().Before("gorm:begin_transaction").
		Register("test:interleaved_complete", func(tx *gorm.DB) {
			if fired {
				return
			}
			fired = true
			require.NoError(t, db.Model(&entity.Order{}).
				Where("id = ?", order.ID).
				Update("status", entity.OrderCompleted).Error)
		})
	require.NoError(t, err)

	// CANCELLED was legal from READY, but READY is gone by write time; the
	// guarded write must refuse rather than overwrite the terminal state.
	cancelled := string(entity.OrderCancelled)
	_, err = svc.Update(rest.ID, utils.KindRestaurant, order.ID, &UpdateOrderReq{Status: &cancelled})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	var stored entity.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, entity.OrderCompleted, stored.Status)
}

func TestOrderOwnership(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, _ := seedVenue(t, db)
	svc := newOrderServiceForTest(db)
	order := createTestOrder(t, svc, 1, rest.ID, pastaID)

	// Another user cannot read it.
	_, err := svc.Get(2, utils.KindUser, order.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// A different restaurant cannot read it either.
	_, err = svc.Get(rest.ID+1, utils.KindRestaurant, order.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// The owning restaurant can.
	_, err = svc.Get(rest.ID, utils.KindRestaurant, order.ID)
	require.NoError(t, err)

	// Absent orders are 404, not 403.
	_, err = svc.Get(1, utils.KindUser, 9999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestListOrdersScopedByKindAndStatus(t *testing.T) {
	db := newTestDB(t)
	rest, pastaID, soupID := seedVenue(t, db)
	svc := newOrderServiceForTest(db)

	createTestOrder(t, svc, 1, rest.ID, pastaID)
	o2 := createTestOrder(t, svc, 1, rest.ID, soupID)
	createTestOrder(t, svc, 2, rest.ID, pastaID)

	confirmed := string(entity.OrderConfirmed)
	_, err := svc.Update(1, utils.KindUser, o2.ID, &UpdateOrderReq{Status: &confirmed})
	require.NoError(t, err)

	out, err := svc.List(1, utils.KindUser, nil, 1, 10)
	require.NoError(t, err)
	assert.Len(t, out.Orders, 2)
	assert.EqualValues(t, 2, out.Pagination.Total)

	// Restaurant sees all three.
	out, err = svc.List(rest.ID, utils.KindRestaurant, nil, 1, 10)
	require.NoError(t, err)
	assert.Len(t, out.Orders, 3)

	// Status filter.
	out, err = svc.List(1, utils.KindUser, &confirmed, 1, 10)
	require.NoError(t, err)
	assert.Len(t, out.Orders, 1)

	// Unknown status filter is a validation error.
	bogus := "DELIVERED"
	_, err = svc.List(1, utils.KindUser, &bogus, 1, 10)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
