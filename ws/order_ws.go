package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/PremPrakashCodes/preplate/entity"
	"github.com/PremPrakashCodes/preplate/utils"
)

// OrderEvent is pushed to a restaurant's live feed when one of its orders is
// created or changes status.
type OrderEvent struct {
	Type  string        `json:"type"` // order_created | order_updated
	Order *entity.Order `json:"order"`
}

type subscription struct {
	conn         *websocket.Conn
	restaurantID uint
}

type broadcast struct {
	restaurantID uint
	event        OrderEvent
}

// OrderHub fans order events out to the connected restaurant accounts.
// Connections are grouped by restaurant id; a restaurant only ever receives
// its own orders.
type OrderHub struct {
	clients map[uint]map[*websocket.Conn]bool

	register   chan subscription
	unregister chan subscription
	events     chan broadcast

	mu  sync.Mutex
	log *zap.Logger
}

func NewOrderHub(log *zap.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		events:     make(chan broadcast, 64),
		log:        log,
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.restaurantID] == nil {
				h.clients[sub.restaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.restaurantID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.restaurantID][sub.conn]; ok {
				delete(h.clients[sub.restaurantID], sub.conn)
				sub.conn.Close()
			}
			h.mu.Unlock()

		case b := <-h.events:
			h.mu.Lock()
			for conn := range h.clients[b.restaurantID] {
				if err := conn.WriteJSON(b.event); err != nil {
					h.log.Warn("ws write failed", zap.Error(err))
					conn.Close()
					delete(h.clients[b.restaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderEvent implements services.OrderNotifier. Buffered send; if the hub is
// saturated the event is dropped rather than stalling the request.
func (h *OrderHub) OrderEvent(eventType string, o *entity.Order) {
	select {
	case h.events <- broadcast{restaurantID: o.RestaurantID, event: OrderEvent{Type: eventType, Order: o}}:
	default:
		h.log.Warn("ws event dropped", zap.String("type", eventType), zap.Uint("orderId", o.ID))
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handle upgrades GET /ws/orders for an authenticated restaurant account.
// The read loop only watches for the client closing.
func (h *OrderHub) Handle(c *gin.Context) {
	restaurantID := utils.CurrentAccountID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	sub := subscription{conn: conn, restaurantID: restaurantID}
	h.register <- sub

	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
