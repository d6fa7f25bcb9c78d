package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcamargo/inventario-backend/internal/application/dto"
	"github.com/jcamargo/inventario-backend/internal/domain"
	"github.com/jcamargo/inventario-backend/internal/domain/entity"
	"github.com/jcamargo/inventario-backend/internal/domain/repository"
	"github.com/jcamargo/inventario-backend/pkg/normalize"
)

// CategoryUseCase casos de uso CRUD para categorías. La unicidad del nombre
// no distingue mayúsculas ni acentos; una categoría con productos activos no
// puede desactivarse ni eliminarse.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría si no existe otra con el mismo nombre normalizado.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := validateCategoryFields(in.Name, in.Description); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByNormalizedName(ctx, normalize.Name(in.Name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update actualiza nombre, descripción o el flag activo. Desactivar una
// categoría con productos activos asociados falla con ErrCategoryInUse.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && normalize.Name(*in.Name) != normalize.Name(category.Name) {
		other, err := uc.repo.GetByNormalizedName(ctx, normalize.Name(*in.Name))
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != category.ID {
			return nil, domain.ErrDuplicate
		}
		category.Name = strings.TrimSpace(*in.Name)
	} else if in.Name != nil {
		category.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Active != nil && !*in.Active && category.Active {
		inUse, err := uc.repo.HasActiveProducts(ctx, id)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, domain.ErrCategoryInUse
		}
		category.Active = false
	} else if in.Active != nil {
		category.Active = *in.Active
	}
	if err := validateCategoryFields(category.Name, category.Description); err != nil {
		return nil, err
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete marca la categoría como inactiva (soft delete), solo si ningún
// producto activo la referencia.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	inUse, err := uc.repo.HasActiveProducts(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrCategoryInUse
	}
	return uc.repo.SetActive(ctx, id, false)
}

// List lista categorías activas con paginación.
func (uc *CategoryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.ListActive(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func validateCategoryFields(name, description string) error {
	n := strings.TrimSpace(name)
	if len(n) < 2 || len(n) > 50 {
		return domain.ErrInvalidInput
	}
	if len(description) > 200 {
		return domain.ErrInvalidInput
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
