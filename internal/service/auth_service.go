package service

import (
	"errors"
	"language_tutor_backend/internal/config"
	"language_tutor_backend/internal/model"
	"language_tutor_backend/internal/repository"
	"language_tutor_backend/internal/util"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResult struct {
	Token string            `json:"token"`
	User  model.UserProfile `json:"user"`
}

func (s *AuthService) Register(req RegisterRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageError("find user by email", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.UserRepo.Create(user); err != nil {
		// 并发注册时唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, util.ErrEmailRegistered
		}
		return nil, storageError("create user", err)
	}

	return s.issue(user)
}

func (s *AuthService) Login(req LoginRequest) (*AuthResult, error) {
	user, err := s.UserRepo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, storageError("find user by email", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *model.User) (*AuthResult, error) {
	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user.Profile()}, nil
}

// FindUser 供认证中间件确认 token 对应的用户仍然存在
func (s *AuthService) FindUser(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, lookupError("find user", err, util.ErrUserNotFound)
	}
	return user, nil
}
