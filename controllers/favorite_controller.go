package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PremPrakashCodes/preplate/pkg/resp"
	"github.com/PremPrakashCodes/preplate/services"
	"github.com/PremPrakashCodes/preplate/utils"
)

type FavoriteController struct {
	Service *services.FavoriteService
}

func NewFavoriteController(service *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Service: service}
}

// GET /favorites
func (fc *FavoriteController) List(c *gin.Context) {
	favorites, err := fc.Service.List(utils.CurrentAccountID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"favorites": favorites})
}

type AddFavoriteRequest struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
}

// POST /favorites
func (fc *FavoriteController) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fav, err := fc.Service.Add(utils.CurrentAccountID(c), req.RestaurantID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Restaurant added to favorites", "favorite": fav})
}

// DELETE /favorites?restaurantId=
func (fc *FavoriteController) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("restaurantId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "restaurantId is required")
		return
	}

	if err := fc.Service.Remove(utils.CurrentAccountID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Restaurant removed from favorites"})
}
