package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// EmailFormatUseCase CRUD de plantillas de correo editables por el admin.
type EmailFormatUseCase struct {
	repo repository.EmailFormatRepository
}

// NewEmailFormatUseCase construye el caso de uso.
func NewEmailFormatUseCase(repo repository.EmailFormatRepository) *EmailFormatUseCase {
	return &EmailFormatUseCase{repo: repo}
}

func validFormatKind(kind string) bool {
	return kind == entity.EmailFormatPurchaseOrder || kind == entity.EmailFormatLowStock
}

// Create crea una plantilla de correo.
func (uc *EmailFormatUseCase) Create(in dto.CreateEmailFormatRequest) (*dto.EmailFormatResponse, error) {
	if !validFormatKind(in.Kind) {
		return nil, domain.NewValidationError("tipo de plantilla inválido: %s", in.Kind)
	}
	if in.Subject == "" || in.Body == "" {
		return nil, domain.NewValidationError("subject y body son obligatorios")
	}
	now := time.Now()
	format := &entity.EmailFormat{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		Subject:   in.Subject,
		Body:      in.Body,
		IsDefault: in.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(format); err != nil {
		return nil, err
	}
	return toEmailFormatResponse(format), nil
}

// GetByID obtiene una plantilla por ID.
func (uc *EmailFormatUseCase) GetByID(id string) (*dto.EmailFormatResponse, error) {
	format, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if format == nil {
		return nil, domain.ErrNotFound
	}
	return toEmailFormatResponse(format), nil
}

// Update actualiza una plantilla; campos nil quedan sin cambio.
func (uc *EmailFormatUseCase) Update(id string, in dto.UpdateEmailFormatRequest) (*dto.EmailFormatResponse, error) {
	format, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if format == nil {
		return nil, domain.ErrNotFound
	}
	if in.Subject != nil {
		format.Subject = *in.Subject
	}
	if in.Body != nil {
		format.Body = *in.Body
	}
	if in.IsDefault != nil {
		format.IsDefault = *in.IsDefault
	}
	format.UpdatedAt = time.Now()
	if err := uc.repo.Update(format); err != nil {
		return nil, err
	}
	return toEmailFormatResponse(format), nil
}

// List lista plantillas con paginación.
func (uc *EmailFormatUseCase) List(page dto.PageRequest) ([]dto.EmailFormatResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmailFormatResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toEmailFormatResponse(f))
	}
	return items, nil
}

// Delete elimina una plantilla por ID.
func (uc *EmailFormatUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toEmailFormatResponse(f *entity.EmailFormat) *dto.EmailFormatResponse {
	if f == nil {
		return nil
	}
	return &dto.EmailFormatResponse{
		ID:        f.ID,
		Kind:      f.Kind,
		Subject:   f.Subject,
		Body:      f.Body,
		IsDefault: f.IsDefault,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
