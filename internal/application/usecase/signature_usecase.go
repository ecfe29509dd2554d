package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// SignatureUseCase registro de firmas manuscritas. La imagen la guarda el
// handler bajo /uploads; aquí solo se persiste la referencia.
type SignatureUseCase struct {
	repo repository.SignatureRepository
}

// NewSignatureUseCase construye el caso de uso.
func NewSignatureUseCase(repo repository.SignatureRepository) *SignatureUseCase {
	return &SignatureUseCase{repo: repo}
}

// Create registra una firma ya almacenada en disco.
func (uc *SignatureUseCase) Create(signerName, imagePath string) (*dto.SignatureResponse, error) {
	if signerName == "" {
		return nil, domain.NewValidationError("el nombre del firmante es obligatorio")
	}
	if imagePath == "" {
		return nil, domain.NewValidationError("la imagen de la firma es obligatoria")
	}
	sig := &entity.Signature{
		ID:         uuid.New().String(),
		SignerName: signerName,
		ImagePath:  imagePath,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(sig); err != nil {
		return nil, err
	}
	return toSignatureResponse(sig), nil
}

// GetByID obtiene una firma por ID.
func (uc *SignatureUseCase) GetByID(id string) (*dto.SignatureResponse, error) {
	sig, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sig == nil {
		return nil, domain.ErrNotFound
	}
	return toSignatureResponse(sig), nil
}

// List lista firmas con paginación.
func (uc *SignatureUseCase) List(page dto.PageRequest) ([]dto.SignatureResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SignatureResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSignatureResponse(s))
	}
	return items, nil
}

func toSignatureResponse(s *entity.Signature) *dto.SignatureResponse {
	if s == nil {
		return nil
	}
	return &dto.SignatureResponse{
		ID:         s.ID,
		SignerName: s.SignerName,
		ImagePath:  s.ImagePath,
		CreatedAt:  s.CreatedAt,
	}
}
