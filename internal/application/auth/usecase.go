package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/domain"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/domain/repository"
	"github.com/gleikstore/gleikstore-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	cost     int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, cost: bcrypt.DefaultCost}
}

// WithBcryptCost cambia el costo de bcrypt (tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// Register crea un cliente con rol USER y devuelve su token.
// Email y CPF se consultan antes de insertar; la restricción única cubre la carrera.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)
	in.CPF = strings.TrimSpace(in.CPF)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	if in.Name == "" || in.Email == "" || in.Password == "" || in.CPF == "" || in.Phone == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.create(ctx, in, entity.RoleUser)
	if err != nil {
		return nil, err
	}
	return uc.issue(user, "Usuário criado com sucesso")
}

// Login verifica email/password y genera el JWT.
// Email desconocido y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(user, "Login realizado com sucesso")
}

// SeedAdmin crea un ADMIN o, si el email ya existe, lo promueve (y cambia el password si viene).
// Para crear exige nombre, email, password y CPF; teléfono y dirección son opcionales.
func (uc *AuthUseCase) SeedAdmin(ctx context.Context, in dto.RegisterRequest) (res *dto.UserResponse, created bool, err error) {
	in.Email = NormalizeEmail(in.Email)
	if in.Email == "" {
		return nil, false, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, false, err
	}
	if user != nil {
		user.Role = entity.RoleAdmin
		if in.Password != "" {
			hash, err := HashPassword(in.Password, uc.cost)
			if err != nil {
				return nil, false, err
			}
			user.PasswordHash = hash
		}
		user.UpdatedAt = time.Now()
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, false, err
		}
		out := ToUserResponse(user)
		return &out, false, nil
	}

	in.Name = strings.TrimSpace(in.Name)
	in.CPF = strings.TrimSpace(in.CPF)
	if in.Name == "" || in.Password == "" || in.CPF == "" {
		return nil, false, domain.ErrInvalidInput
	}
	user, err = uc.create(ctx, in, entity.RoleAdmin)
	if err != nil {
		return nil, false, err
	}
	out := ToUserResponse(user)
	return &out, true, nil
}

// create valida unicidad de email y CPF, hashea el password e inserta.
func (uc *AuthUseCase) create(ctx context.Context, in dto.RegisterRequest, role string) (*entity.User, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	existing, err = uc.userRepo.GetByCPF(ctx, in.CPF)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCPFAlreadyExists
	}

	hash, err := HashPassword(in.Password, uc.cost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CPF:          in.CPF,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) issue(user *entity.User, message string) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: message,
		User:    ToUserResponse(user),
		Token:   token,
	}, nil
}

// MaxPasswordBytes bcrypt ignora lo que pasa de 72 bytes y GenerateFromPassword lo rechaza.
const MaxPasswordBytes = 72

// HashPassword genera el hash bcrypt; más de MaxPasswordBytes es domain.ErrPasswordTooLong.
func HashPassword(password string, cost int) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", domain.ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// NormalizeEmail recorta y pasa a minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ToUserResponse proyección pública del usuario; nunca incluye el hash.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CPF:       u.CPF,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
