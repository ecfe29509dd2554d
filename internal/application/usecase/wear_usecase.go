package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// WearUseCase casos de uso para equipos con desgaste (herramientas, EPP)
// y su informe agregado por estado.
type WearUseCase struct {
	repo repository.WearEquipmentRepository
}

// NewWearUseCase construye el caso de uso.
func NewWearUseCase(repo repository.WearEquipmentRepository) *WearUseCase {
	return &WearUseCase{repo: repo}
}

func validCondition(c string) bool {
	switch c {
	case entity.ConditionNew, entity.ConditionGood, entity.ConditionWorn, entity.ConditionDefective:
		return true
	}
	return false
}

// Create registra un equipo. Si no se indica condición se asume new.
func (uc *WearUseCase) Create(in dto.CreateWearEquipmentRequest) (*dto.WearEquipmentResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("el nombre del equipo es obligatorio")
	}
	condition := in.Condition
	if condition == "" {
		condition = entity.ConditionNew
	}
	if !validCondition(condition) {
		return nil, domain.NewValidationError("condición inválida: %s", condition)
	}
	now := time.Now()
	eq := &entity.WearEquipment{
		ID:           uuid.New().String(),
		Name:         in.Name,
		AssignedTo:   in.AssignedTo,
		Condition:    condition,
		PurchaseDate: in.PurchaseDate,
		PurchaseCost: in.PurchaseCost,
		Notes:        in.Notes,
		ImageURL:     in.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(eq); err != nil {
		return nil, err
	}
	return toWearResponse(eq), nil
}

// GetByID obtiene un equipo por ID.
func (uc *WearUseCase) GetByID(id string) (*dto.WearEquipmentResponse, error) {
	eq, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	return toWearResponse(eq), nil
}

// Update actualiza un equipo; campos nil quedan sin cambio. Registrar una
// inspección es actualizar condition + last_inspection en la misma llamada.
func (uc *WearUseCase) Update(id string, in dto.UpdateWearEquipmentRequest) (*dto.WearEquipmentResponse, error) {
	eq, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		eq.Name = *in.Name
	}
	if in.AssignedTo != nil {
		eq.AssignedTo = *in.AssignedTo
	}
	if in.Condition != nil {
		if !validCondition(*in.Condition) {
			return nil, domain.NewValidationError("condición inválida: %s", *in.Condition)
		}
		eq.Condition = *in.Condition
	}
	if in.LastInspection != nil {
		eq.LastInspection = in.LastInspection
	}
	if in.Notes != nil {
		eq.Notes = *in.Notes
	}
	if in.ImageURL != nil {
		eq.ImageURL = *in.ImageURL
	}
	eq.UpdatedAt = time.Now()
	if err := uc.repo.Update(eq); err != nil {
		return nil, err
	}
	return toWearResponse(eq), nil
}

// List lista equipos, opcionalmente filtrados por condición.
func (uc *WearUseCase) List(condition string, page dto.PageRequest) (*dto.WearEquipmentListResponse, error) {
	if condition != "" && !validCondition(condition) {
		return nil, domain.NewValidationError("condición inválida: %s", condition)
	}
	page.DefaultPage()
	list, err := uc.repo.List(condition, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WearEquipmentResponse, 0, len(list))
	for _, eq := range list {
		items = append(items, *toWearResponse(eq))
	}
	return &dto.WearEquipmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Report agrega el parque de equipos por estado de desgaste.
func (uc *WearUseCase) Report() (*dto.WearReportResponse, error) {
	byCondition, err := uc.repo.CountByCondition()
	if err != nil {
		return nil, err
	}
	total := 0
	for _, n := range byCondition {
		total += n
	}
	return &dto.WearReportResponse{
		Total:       total,
		ByCondition: byCondition,
		GeneratedAt: time.Now(),
	}, nil
}

// Delete da de baja un equipo.
func (uc *WearUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toWearResponse(eq *entity.WearEquipment) *dto.WearEquipmentResponse {
	if eq == nil {
		return nil
	}
	return &dto.WearEquipmentResponse{
		ID:             eq.ID,
		Name:           eq.Name,
		AssignedTo:     eq.AssignedTo,
		Condition:      eq.Condition,
		PurchaseDate:   eq.PurchaseDate,
		PurchaseCost:   eq.PurchaseCost,
		LastInspection: eq.LastInspection,
		Notes:          eq.Notes,
		ImageURL:       eq.ImageURL,
		CreatedAt:      eq.CreatedAt,
		UpdatedAt:      eq.UpdatedAt,
	}
}
