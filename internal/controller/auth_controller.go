package controller

import (
	"errors"
	"language_tutor_backend/internal/service"
	"language_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Register godoc
// @Summary 注册新用户
// @Description 注册成功后直接返回 token 和用户信息
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.RegisterRequest true "用户注册信息"
// @Success 201 {object} util.Response{data=service.AuthResult} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误或邮箱已被注册"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badBinding(ctx, err)
		return
	}

	result, err := c.AuthService.Register(req)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.FieldError(ctx, "email", "This email is already registered")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// Login godoc
// @Summary 用户登录
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.LoginRequest true "登录信息"
// @Success 200 {object} util.Response{data=service.AuthResult}
// @Failure 400 {object} util.Response "Invalid credentials"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badBinding(ctx, err)
		return
	}

	result, err := c.AuthService.Login(req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.BadRequest(ctx, "Invalid credentials")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// Profile godoc
// @Summary 当前用户信息
// @Tags 认证
// @Security ApiKeyAuth
// @Produce  json
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Failure 401 {object} util.Response
// @Router /api/auth/profile [get]
// @Router /api/auth/me [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	user, err := c.AuthService.FindUser(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, user.Profile())
}
