package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PremPrakashCodes/preplate/pkg/resp"
	"github.com/PremPrakashCodes/preplate/repository"
	"github.com/PremPrakashCodes/preplate/services"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: service}
}

// GET /restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	f := repository.RestaurantFilter{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}

	if v := c.Query("cuisine"); v != "" && v != "All" {
		f.Cuisine = &v
	}
	if v := c.Query("isOpen"); v != "" {
		open := v == "true"
		f.IsOpen = &open
	}
	if v := c.Query("featured"); v == "true" {
		featured := true
		f.Featured = &featured
	}
	if v := c.Query("search"); v != "" {
		f.Search = &v
	}

	out, err := rc.Service.List(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	out, err := rc.Service.Detail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
