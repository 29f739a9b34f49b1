package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PremPrakashCodes/preplate/entity"
	"github.com/PremPrakashCodes/preplate/pkg/apperr"
	"github.com/PremPrakashCodes/preplate/pkg/pricing"
	"github.com/PremPrakashCodes/preplate/repository"
	"github.com/PremPrakashCodes/preplate/utils"
)

// OrderNotifier receives order events for the live restaurant feed. May be
// nil (tests, setups without the ws hub).
type OrderNotifier interface {
	OrderEvent(eventType string, o *entity.Order)
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	Restaurants *repository.RestaurantRepository
	Notifier    OrderNotifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, restaurants *repository.RestaurantRepository, notifier OrderNotifier) *OrderService {
	return &OrderService{DB: db, Repo: repo, Restaurants: restaurants, Notifier: notifier}
}

type OrderItemIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

type CreateOrderReq struct {
	RestaurantID    uint          `json:"restaurantId" binding:"required"`
	Items           []OrderItemIn `json:"items" binding:"required,min=1,dive"`
	BookingDateTime time.Time     `json:"bookingDateTime" binding:"required"`
	Guests          int           `json:"guests" binding:"omitempty,min=1"`
	SpecialRequests string        `json:"specialRequests"`
}

type UpdateOrderReq struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

type OrderListOut struct {
	Orders     []entity.Order `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

// Create runs the booking protocol: restaurant must exist and be open, every
// line item must reference a live available menu item, prices are snapshotted
// at current menu values, and order plus items are persisted in one
// transaction so a failure never leaves a partial order.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	rest, err := s.Restaurants.FindByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}
	if !rest.IsOpen {
		return nil, apperr.Validation("restaurant is currently closed")
	}

	guests := req.Guests
	if guests < 1 {
		guests = 1
	}

	lines := make([]pricing.Line, 0, len(req.Items))
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		mi, err := s.Repo.MenuItemByID(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Validation(fmt.Sprintf("menu item %d is not available", it.MenuItemID))
			}
			return nil, err
		}
		if !mi.IsAvailable {
			return nil, apperr.Validation(fmt.Sprintf("menu item %q is not available", mi.Name))
		}
		ok, err := s.Repo.MenuItemBelongsToRestaurant(mi, req.RestaurantID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.Validation(fmt.Sprintf("menu item %q does not belong to this restaurant", mi.Name))
		}

		lines = append(lines, pricing.Line{UnitPrice: mi.Price, Quantity: it.Quantity, Discount: mi.Discount})
		items = append(items, entity.OrderItem{
			Quantity:   it.Quantity,
			Price:      mi.Price,
			Discount:   mi.Discount,
			Notes:      it.Notes,
			MenuItemID: mi.ID,
		})
	}

	subtotal := pricing.Subtotal(lines)
	fee := pricing.PlatformFee(subtotal)
	total := pricing.Total(subtotal, fee)

	var orderID uint
	// One retry with a fresh number covers the negligible suffix collision.
	for attempt := 0; attempt < 2; attempt++ {
		order := entity.Order{
			OrderNumber:     newOrderNumber(),
			Status:          entity.OrderPending,
			PaymentStatus:   entity.PaymentPending,
			Subtotal:        subtotal,
			PlatformFee:     fee,
			Total:           total,
			BookingDateTime: req.BookingDateTime,
			Guests:          guests,
			SpecialRequests: req.SpecialRequests,
			UserID:          userID,
			RestaurantID:    req.RestaurantID,
		}
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := s.Repo.CreateOrder(tx, &order); err != nil {
				return err
			}
			for i := range items {
				oi := items[i]
				oi.OrderID = order.ID
				if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			orderID = order.ID
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	out, err := s.Repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.OrderEvent("order_created", out)
	}
	return out, nil
}

func (s *OrderService) List(accountID uint, kind string, status *string, page, limit int) (*OrderListOut, error) {
	f := repository.OrderFilter{Page: page, Limit: limit}
	if kind == utils.KindUser {
		f.UserID = &accountID
	} else {
		f.RestaurantID = &accountID
	}
	if status != nil && *status != "" && *status != "all" {
		if !entity.ValidOrderStatus(*status) {
			return nil, apperr.Validation("invalid status filter")
		}
		st := entity.OrderStatus(*status)
		f.Status = &st
	}

	orders, total, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}
	return &OrderListOut{Orders: orders, Pagination: NewPagination(page, limit, total)}, nil
}

// Get enforces ownership: a user-kind caller must own the order, a
// restaurant-kind caller must be its venue. Absent orders are 404 before any
// ownership reasoning; wrong owner is 403.
func (s *OrderService) Get(accountID uint, kind string, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	if err := checkOrderOwnership(o, accountID, kind); err != nil {
		return nil, err
	}
	return o, nil
}

// Update mutates status and/or paymentStatus, nothing else. Both values are
// validated against their enum before any write; an unknown value rejects the
// whole request with no partial update. A known value that is an illegal move
// in the lifecycle graph is a conflict. Setting the current value is a no-op.
func (s *OrderService) Update(accountID uint, kind string, orderID uint, req *UpdateOrderReq) (*entity.Order, error) {
	if req.Status == nil && req.PaymentStatus == nil {
		return nil, apperr.Validation("nothing to update")
	}
	if req.Status != nil && !entity.ValidOrderStatus(*req.Status) {
		return nil, apperr.Validation("invalid status")
	}
	if req.PaymentStatus != nil && !entity.ValidPaymentStatus(*req.PaymentStatus) {
		return nil, apperr.Validation("invalid payment status")
	}

	o, err := s.Repo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	if err := checkOrderOwnership(o, accountID, kind); err != nil {
		return nil, err
	}

	// expect carries the values each transition was validated against; the
	// write is guarded on them so a concurrent updater makes this a conflict
	// instead of a blind overwrite.
	updates := map[string]any{}
	expect := map[string]any{}
	if req.Status != nil {
		next := entity.OrderStatus(*req.Status)
		if next != o.Status {
			if !o.Status.CanTransitionTo(next) {
				return nil, apperr.Conflict(fmt.Sprintf("cannot change order status from %s to %s", o.Status, next))
			}
			updates["status"] = next
			expect["status"] = o.Status
		}
	}
	if req.PaymentStatus != nil {
		next := entity.PaymentStatus(*req.PaymentStatus)
		if next != o.PaymentStatus {
			if !o.PaymentStatus.CanTransitionTo(next) {
				return nil, apperr.Conflict(fmt.Sprintf("cannot change payment status from %s to %s", o.PaymentStatus, next))
			}
			updates["payment_status"] = next
			expect["payment_status"] = o.PaymentStatus
		}
	}

	if len(updates) > 0 {
		ok, err := s.Repo.UpdateStatusesFrom(o.ID, expect, updates)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.Conflict("order was changed by another request, reload and retry")
		}
	}

	out, err := s.Repo.GetByID(o.ID)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 && s.Notifier != nil {
		s.Notifier.OrderEvent("order_updated", out)
	}
	return out, nil
}

func checkOrderOwnership(o *entity.Order, accountID uint, kind string) error {
	switch kind {
	case utils.KindUser:
		if o.UserID != accountID {
			return apperr.Forbidden("you can only access your own orders")
		}
	case utils.KindRestaurant:
		if o.RestaurantID != accountID {
			return apperr.Forbidden("you can only access orders for your restaurant")
		}
	default:
		return apperr.Forbidden("forbidden")
	}
	return nil
}

// newOrderNumber combines a millisecond timestamp with a random suffix, e.g.
// ORD-1735689600000-3F2A19BC4.
func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
