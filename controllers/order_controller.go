package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PremPrakashCodes/preplate/pkg/resp"
	"github.com/PremPrakashCodes/preplate/services"
	"github.com/PremPrakashCodes/preplate/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// POST /orders (user kind only; the route enforces it)
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Create(utils.CurrentAccountID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Order created successfully", "order": order})
}

// GET /orders — own orders for either kind, filterable by status.
func (oc *OrderController) List(c *gin.Context) {
	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}

	out, err := oc.Service.List(
		utils.CurrentAccountID(c),
		utils.CurrentKind(c),
		status,
		queryInt(c, "page", 1),
		queryInt(c, "limit", 10),
	)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Service.Get(utils.CurrentAccountID(c), utils.CurrentKind(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// PATCH /orders/:id — status/paymentStatus only.
func (oc *OrderController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Update(utils.CurrentAccountID(c), utils.CurrentKind(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order updated successfully", "order": order})
}
