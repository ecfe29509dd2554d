package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// LayoutUseCase guarda y recupera las preferencias de presentación del SPA
// por usuario y página. El backend no interpreta el JSON de config.
type LayoutUseCase struct {
	repo repository.LayoutRepository
}

// NewLayoutUseCase construye el caso de uso.
func NewLayoutUseCase(repo repository.LayoutRepository) *LayoutUseCase {
	return &LayoutUseCase{repo: repo}
}

// Get recupera el layout de una página para el usuario autenticado.
func (uc *LayoutUseCase) Get(userID, page string) (*dto.LayoutResponse, error) {
	layout, err := uc.repo.Get(userID, page)
	if err != nil {
		return nil, err
	}
	if layout == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.LayoutResponse{
		Page:      layout.Page,
		Config:    layout.Config,
		UpdatedAt: layout.UpdatedAt,
	}, nil
}

// Save guarda (upsert) el layout de una página. Config debe ser JSON válido.
func (uc *LayoutUseCase) Save(userID, page string, in dto.SaveLayoutRequest) (*dto.LayoutResponse, error) {
	if page == "" {
		return nil, domain.NewValidationError("página vacía")
	}
	if len(in.Config) == 0 || !json.Valid(in.Config) {
		return nil, domain.NewValidationError("config debe ser JSON válido")
	}
	now := time.Now()
	layout := &entity.Layout{
		ID:        uuid.New().String(),
		UserID:    userID,
		Page:      page,
		Config:    in.Config,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Upsert(layout); err != nil {
		return nil, err
	}
	return &dto.LayoutResponse{
		Page:      layout.Page,
		Config:    layout.Config,
		UpdatedAt: layout.UpdatedAt,
	}, nil
}

// Delete descarta el layout guardado de una página (vuelve al por defecto).
func (uc *LayoutUseCase) Delete(userID, page string) error {
	return uc.repo.Delete(userID, page)
}
