package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PremPrakashCodes/preplate/pkg/resp"
	"github.com/PremPrakashCodes/preplate/services"
	"github.com/PremPrakashCodes/preplate/utils"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{Service: service}
}

// GET /restaurants/reviews
func (rc *ReviewController) List(c *gin.Context) {
	var restaurantID *uint
	if v := c.Query("restaurantId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid restaurant id")
			return
		}
		rid := uint(id)
		restaurantID = &rid
	}

	out, err := rc.Service.List(
		utils.CurrentAccountID(c),
		utils.CurrentKind(c),
		restaurantID,
		queryInt(c, "page", 1),
		queryInt(c, "limit", 10),
	)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /restaurants/reviews (user kind only)
func (rc *ReviewController) Create(c *gin.Context) {
	var req services.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.Service.Create(utils.CurrentAccountID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Review submitted", "review": review})
}
