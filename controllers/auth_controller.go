package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PremPrakashCodes/preplate/pkg/resp"
	"github.com/PremPrakashCodes/preplate/services"
	"github.com/PremPrakashCodes/preplate/utils"
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=user restaurant"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Cuisine     string `json:"cuisine"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=user restaurant"`
}

type AuthController struct {
	Service    *services.AuthService
	Production bool
}

func NewAuthController(service *services.AuthService, production bool) *AuthController {
	return &AuthController{Service: service, Production: production}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := a.Service.Register(services.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Kind:        req.Type,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		Cuisine:     req.Cuisine,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.Created(c, gin.H{
		"message": "Registration successful",
		"token":   result.Token,
		"account": result.Account,
		"type":    result.Kind,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := a.Service.Login(req.Email, req.Password, req.Type)
	if err != nil {
		resp.Error(c, err)
		return
	}

	// Cookie mirrors the bearer token for browser clients; same 7-day life.
	c.SetCookie("token", result.Token, int(utils.TokenTTL.Seconds()), "/", "", a.Production, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"account": result.Account,
		"type":    result.Kind,
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	account, err := a.Service.Profile(utils.CurrentAccountID(c), utils.CurrentKind(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"account": account, "type": utils.CurrentKind(c)})
}
