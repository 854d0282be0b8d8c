package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gleikstore/gleikstore-api/internal/application/auth"
	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/domain"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/domain/repository"
)

// UserUseCase perfil del cliente autenticado.
type UserUseCase struct {
	users     repository.UserRepository
	devices   repository.DeviceRepository
	documents repository.DocumentRepository
	photos    repository.ProfilePhotoRepository
	cost      int
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(
	users repository.UserRepository,
	devices repository.DeviceRepository,
	documents repository.DocumentRepository,
	photos repository.ProfilePhotoRepository,
) *UserUseCase {
	return &UserUseCase{users: users, devices: devices, documents: documents, photos: photos, cost: bcrypt.DefaultCost}
}

// WithBcryptCost cambia el costo de bcrypt para el cambio de contraseña.
func (uc *UserUseCase) WithBcryptCost(cost int) *UserUseCase {
	uc.cost = cost
	return uc
}

// GetPublic carga el usuario sin hash; lo usa el middleware de auth. (nil, nil) si no existe.
func (uc *UserUseCase) GetPublic(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}
	out := auth.ToUserResponse(user)
	return &out, nil
}

// Role rol actual del usuario leído de la DB; "" si no existe. Lo usa el guard de admin.
func (uc *UserUseCase) Role(ctx context.Context, id string) (string, error) {
	return uc.users.GetRole(ctx, id)
}

// Profile usuario con su foto de perfil.
func (uc *UserUseCase) Profile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := uc.mustGet(ctx, userID)
	if err != nil {
		return nil, err
	}
	photo, err := uc.photos.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{
		UserResponse: auth.ToUserResponse(user),
		ProfilePhoto: toProfilePhotoResponse(photo),
	}, nil
}

// Me perfil completo para el dashboard: foto, aparelhos y documentos.
func (uc *UserUseCase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	profile, err := uc.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	devices, err := uc.devices.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	docs, err := uc.documents.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.MeResponse{
		ProfileResponse: *profile,
		Devices:         toDeviceResponses(devices),
		Documents:       toDocumentResponses(docs),
	}, nil
}

// Update modifica nombre, teléfono y dirección; con NewPassword exige CurrentPassword válido.
// Email, CPF y rol no se modifican por esta vía.
func (uc *UserUseCase) Update(ctx context.Context, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.mustGet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(in.Name); v != "" {
		user.Name = v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		user.Phone = v
	}
	if v := strings.TrimSpace(in.Address); v != "" {
		user.Address = v
	}
	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, domain.ErrInvalidInput
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return nil, domain.ErrInvalidPassword
		}
		hash, err := auth.HashPassword(in.NewPassword, uc.cost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	out := auth.ToUserResponse(user)
	return &out, nil
}

func (uc *UserUseCase) mustGet(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
