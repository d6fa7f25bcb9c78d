package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/inventario-backend/internal/application/auth"
	"github.com/jcamargo/inventario-backend/internal/application/dto"
	"github.com/jcamargo/inventario-backend/internal/domain"
	"github.com/jcamargo/inventario-backend/internal/domain/entity"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || (user.Email != "" && u.Email == user.Email) {
			return domain.ErrDuplicate
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) deactivate(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[id].Active = false
}

func newAuthUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:        "test-secret-key-for-unit-tests",
		AccessMinutes: 60,
		RefreshHours:  24,
		Issuer:        "inventario-backend-test",
	})
	return uc, repo
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "jlopez",
		Email:    "jlopez@example.com",
		Password: "contraseña-segura",
		Name:     "Juana López",
		Role:     entity.RoleBodeguero,
	}
}

func TestRegister_Exitoso(t *testing.T) {
	uc, repo := newAuthUseCase()

	resp, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "jlopez", resp.Username)
	assert.Equal(t, entity.RoleBodeguero, resp.Role)
	assert.True(t, resp.Active)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "contraseña-segura", stored.PasswordHash,
		"el password nunca se guarda en claro")
}

func TestRegister_RolVacio_AsumeVendedor(t *testing.T) {
	uc, _ := newAuthUseCase()

	in := registerRequest()
	in.Role = ""
	resp, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, resp.Role)
}

func TestRegister_RolDesconocido_Rechazado(t *testing.T) {
	uc, _ := newAuthUseCase()

	in := registerRequest()
	in.Role = "superusuario"
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_PasswordCorto_Rechazado(t *testing.T) {
	uc, _ := newAuthUseCase()

	in := registerRequest()
	in.Password = "corto"
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsernameOEmailDuplicado_Rechazado(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	in := registerRequest()
	in.Email = "otro@example.com"
	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "mismo username debe rechazarse")

	in = registerRequest()
	in.Username = "otrousuario"
	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "mismo email debe rechazarse")
}

func TestLogin_CredencialesValidas_EmiteTokens(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	pair, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "jlopez",
		Password: "contraseña-segura",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "jlopez", pair.User.Username)

	validated := uc.Validate(dto.ValidateRequest{Token: pair.AccessToken})
	assert.True(t, validated.Valid)
	assert.Equal(t, entity.RoleBodeguero, validated.Role)
}

func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Username: "jlopez",
		Password: "password-equivocado",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_Retorna401(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "fantasma",
		Password: "lo-que-sea-123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"no se distingue usuario inexistente de password malo")
}

func TestLogin_UsuarioInactivo_Retorna403(t *testing.T) {
	uc, repo := newAuthUseCase()
	resp, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	repo.deactivate(resp.ID)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Username: "jlopez",
		Password: "contraseña-segura",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRefresh_EmiteParNuevo(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	pair, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "jlopez",
		Password: "contraseña-segura",
	})
	require.NoError(t, err)

	renewed, err := uc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)
	assert.NotEmpty(t, renewed.RefreshToken)
}

func TestRefresh_AccessTokenComoRefresh_Rechazado(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	pair, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "jlopez",
		Password: "contraseña-segura",
	})
	require.NoError(t, err)

	_, err = uc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: pair.AccessToken})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_UsuarioDesactivado_Rechazado(t *testing.T) {
	uc, repo := newAuthUseCase()
	resp, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	pair, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "jlopez",
		Password: "contraseña-segura",
	})
	require.NoError(t, err)

	repo.deactivate(resp.ID)

	_, err = uc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: pair.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"un usuario desactivado no renueva tokens")
}

func TestValidate_TokenInvalido_ValidFalse(t *testing.T) {
	uc, _ := newAuthUseCase()

	resp := uc.Validate(dto.ValidateRequest{Token: "token.invalido.aqui"})
	assert.False(t, resp.Valid)
	assert.Empty(t, resp.UserID)
}
