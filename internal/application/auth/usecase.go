package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcamargo/inventario-backend/internal/application/dto"
	"github.com/jcamargo/inventario-backend/internal/domain"
	"github.com/jcamargo/inventario-backend/internal/domain/entity"
	"github.com/jcamargo/inventario-backend/internal/domain/repository"
	"github.com/jcamargo/inventario-backend/pkg/jwt"
)

// JWTConfig configuración para la emisión de tokens.
type JWTConfig struct {
	Secret        string
	AccessMinutes int
	RefreshHours  int
	Issuer        string
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh y
// validación de tokens.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrDuplicate si el username o el email ya existen.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(in.Username) == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.userRepo.FindByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Email != "" {
		if existing, err := uc.userRepo.FindByEmail(ctx, in.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	switch role {
	case "":
		role = entity.RoleVendedor
	case entity.RoleAdmin, entity.RoleBodeguero, entity.RoleVendedor:
	default:
		return nil, domain.ErrInvalidInput
	}
	name := in.Name
	if name == "" {
		name = in.Username
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password y emite el par de tokens.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	return uc.tokenPair(user)
}

// Refresh valida un refresh token y emite un par nuevo. El estado del
// usuario se reconsulta: un usuario desactivado no renueva.
func (uc *AuthUseCase) Refresh(ctx context.Context, in dto.RefreshRequest) (*dto.TokenPairResponse, error) {
	userID, err := jwt.ParseRefresh(uc.jwtCfg.Secret, in.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	return uc.tokenPair(user)
}

// Validate verifica un access token y devuelve sus claims principales.
func (uc *AuthUseCase) Validate(in dto.ValidateRequest) *dto.ValidateResponse {
	userID, role, err := jwt.Parse(uc.jwtCfg.Secret, in.Token)
	if err != nil {
		return &dto.ValidateResponse{Valid: false}
	}
	return &dto.ValidateResponse{Valid: true, UserID: userID, Role: role}
}

func (uc *AuthUseCase) tokenPair(user *entity.User) (*dto.TokenPairResponse, error) {
	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.AccessMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshHours)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
