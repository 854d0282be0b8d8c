package auth_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gleikstore/gleikstore-api/internal/application/auth"
	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/domain"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/testutil"
	pkgjwt "github.com/gleikstore/gleikstore-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuth(store *testutil.Store) *auth.AuthUseCase {
	return auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"}).
		WithBcryptCost(bcrypt.MinCost)
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     "Maria Silva",
		Email:    "Maria@Example.com ",
		Password: "segredo123",
		CPF:      "123.456.789-00",
		Phone:    "+55 11 99999-0000",
		Address:  "Rua A, 100",
	}
}

func TestRegister_CreaUsuarioConRolUSERyToken(t *testing.T) {
	store := testutil.NewStore()
	res, err := newAuth(store).Register(context.Background(), validRegister())
	require.NoError(t, err)

	assert.Equal(t, "maria@example.com", res.User.Email, "el email se normaliza")
	assert.Equal(t, entity.RoleUser, res.User.Role)

	userID, err := pkgjwt.Parse(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, userID)
}

func TestRegister_CampoFaltante_ErrInvalidInput(t *testing.T) {
	in := validRegister()
	in.Address = "  "
	_, err := newAuth(testutil.NewStore()).Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	store := testutil.NewStore()
	uc := newAuth(store)
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	again := validRegister()
	again.CPF = "999.999.999-99"
	_, err = uc.Register(context.Background(), again)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CPFDuplicado(t *testing.T) {
	store := testutil.NewStore()
	uc := newAuth(store)
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	again := validRegister()
	again.Email = "outra@example.com"
	_, err = uc.Register(context.Background(), again)
	assert.ErrorIs(t, err, domain.ErrCPFAlreadyExists)
}

func TestLogin_OKNoExponeHash(t *testing.T) {
	store := testutil.NewStore()
	uc := newAuth(store)
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Email: "maria@example.com", Password: "segredo123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$", "el hash bcrypt nunca sale en la respuesta")
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	store := testutil.NewStore()
	uc := newAuth(store)
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "maria@example.com", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "email desconocido responde igual que password incorrecto")

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "maria@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSeedAdmin_CreaYPromueve(t *testing.T) {
	store := testutil.NewStore()
	uc := newAuth(store)
	ctx := context.Background()

	res, created, err := uc.SeedAdmin(ctx, dto.RegisterRequest{Name: "Admin", Email: "Admin@Loja.com", Password: "admin123", CPF: "000"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.RoleAdmin, res.Role)
	assert.Equal(t, "admin@loja.com", res.Email)

	_, err = uc.Register(ctx, validRegister())
	require.NoError(t, err)
	res, created, err = uc.SeedAdmin(ctx, dto.RegisterRequest{Email: "maria@example.com", Password: "nova-senha"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, entity.RoleAdmin, res.Role)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "maria@example.com", Password: "nova-senha"})
	assert.NoError(t, err, "el password se reemplaza al promover")
}

func TestSeedAdmin_SinDatosParaCrear(t *testing.T) {
	uc := newAuth(testutil.NewStore())
	_, _, err := uc.SeedAdmin(context.Background(), dto.RegisterRequest{Email: "nuevo@loja.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_PasswordDeMasDe72Bytes(t *testing.T) {
	store := testutil.NewStore()
	in := validRegister()
	in.Password = strings.Repeat("a", auth.MaxPasswordBytes+1)

	_, err := newAuth(store).Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrPasswordTooLong)

	u, err := store.Users().GetByEmail(context.Background(), "maria@example.com")
	require.NoError(t, err)
	assert.Nil(t, u, "no se crea el usuario")

	in.Password = strings.Repeat("a", auth.MaxPasswordBytes)
	_, err = newAuth(store).Register(context.Background(), in)
	assert.NoError(t, err, "72 bytes justos se aceptan")
}
