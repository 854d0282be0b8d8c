package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/domain"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/domain/repository"
)

// CatalogUseCase vitrine pública de aparelhos y su mantenimiento desde el admin.
type CatalogUseCase struct {
	repo    repository.ProductRepository
	printer *message.Printer
}

// NewCatalogUseCase construye el caso de uso; los precios se formatean en pt-BR.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, printer: message.NewPrinter(language.BrazilianPortuguese)}
}

// List productos disponibles.
func (uc *CatalogUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, uc.toProductResponse(p))
	}
	return out, nil
}

// Save crea el producto, o lo actualiza cuando in.ID viene informado. created indica si fue alta.
func (uc *CatalogUseCase) Save(ctx context.Context, in dto.SaveProductRequest) (res *dto.ProductResponse, created bool, err error) {
	model := strings.TrimSpace(in.Model)
	if model == "" || !in.Price.IsPositive() {
		return nil, false, domain.ErrInvalidInput
	}
	now := time.Now()

	var p *entity.Product
	if in.ID != "" {
		if _, err := uuid.Parse(in.ID); err != nil {
			return nil, false, domain.ErrNotFound
		}
		p, err = uc.repo.GetByID(ctx, in.ID)
		if err != nil {
			return nil, false, err
		}
		if p == nil {
			return nil, false, domain.ErrNotFound
		}
	} else {
		p = &entity.Product{ID: uuid.New().String(), Available: true, CreatedAt: now}
		created = true
	}

	p.Model = model
	p.Storage = strings.TrimSpace(in.Storage)
	p.Color = strings.TrimSpace(in.Color)
	p.Condition = strings.TrimSpace(in.Condition)
	p.Price = in.Price.Round(2)
	p.ImageURL = strings.TrimSpace(in.ImageURL)
	if in.Available != nil {
		p.Available = *in.Available
	}
	p.UpdatedAt = now

	if created {
		err = uc.repo.Create(ctx, p)
	} else {
		err = uc.repo.Update(ctx, p)
	}
	if err != nil {
		return nil, false, err
	}
	out := uc.toProductResponse(p)
	return &out, created, nil
}

// FormatPrice precio en reales con separadores pt-BR, ej. "R$ 7.499,00".
func (uc *CatalogUseCase) FormatPrice(p entity.Product) string {
	return uc.printer.Sprintf("R$ %v", number.Decimal(p.Price.InexactFloat64(), number.Scale(2)))
}

func (uc *CatalogUseCase) toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		Model:          p.Model,
		Storage:        p.Storage,
		Color:          p.Color,
		Condition:      p.Condition,
		Price:          p.Price,
		PriceFormatted: uc.FormatPrice(*p),
		ImageURL:       p.ImageURL,
		Available:      p.Available,
		UpdatedAt:      p.UpdatedAt,
	}
}
