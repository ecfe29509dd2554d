package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DeliveryNoteUseCase casos de uso de notas de entrega: emisión con número
// consecutivo anual, firma y datos para el PDF.
type DeliveryNoteUseCase struct {
	noteRepo repository.DeliveryNoteRepository
	itemRepo repository.ItemRepository
	sigRepo  repository.SignatureRepository
}

// NewDeliveryNoteUseCase construye el caso de uso.
func NewDeliveryNoteUseCase(
	noteRepo repository.DeliveryNoteRepository,
	itemRepo repository.ItemRepository,
	sigRepo repository.SignatureRepository,
) *DeliveryNoteUseCase {
	return &DeliveryNoteUseCase{noteRepo: noteRepo, itemRepo: itemRepo, sigRepo: sigRepo}
}

// Create emite una nota de entrega con número DN-YYYY-NNN (consecutivo por
// año a partir del conteo actual) y la deja en estado issued.
func (uc *DeliveryNoteUseCase) Create(userID string, in dto.CreateDeliveryNoteRequest) (*dto.DeliveryNoteResponse, error) {
	if in.Recipient == "" {
		return nil, domain.NewValidationError("el receptor de la nota es obligatorio")
	}
	if len(in.Lines) == 0 {
		return nil, domain.NewValidationError("la nota necesita al menos una línea")
	}

	noteID := uuid.New().String()
	lines := make([]*entity.DeliveryNoteLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return nil, domain.NewValidationError("la cantidad debe ser positiva")
		}
		item, err := uc.itemRepo.GetByID(l.InventoryID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.NewValidationError("artículo no encontrado: %s", l.InventoryID)
		}
		lines = append(lines, &entity.DeliveryNoteLine{
			ID:          uuid.New().String(),
			NoteID:      noteID,
			InventoryID: l.InventoryID,
			Quantity:    l.Quantity,
		})
	}

	now := time.Now()
	year := now.Year()
	count, err := uc.noteRepo.CountByYear(year)
	if err != nil {
		return nil, err
	}
	note := &entity.DeliveryNote{
		ID:        noteID,
		Number:    fmt.Sprintf("DN-%d-%03d", year, count+1),
		Recipient: in.Recipient,
		CreatedBy: userID,
		Status:    entity.DeliveryNoteIssued,
		IssuedAt:  &now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.noteRepo.Create(note, lines); err != nil {
		return nil, err
	}
	return uc.toNoteResponse(note, lines), nil
}

// GetByID obtiene una nota con sus líneas.
func (uc *DeliveryNoteUseCase) GetByID(id string) (*dto.DeliveryNoteResponse, error) {
	note, lines, err := uc.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toNoteResponse(note, lines), nil
}

// List lista notas, opcionalmente filtradas por estado.
func (uc *DeliveryNoteUseCase) List(status string, page dto.PageRequest) (*dto.DeliveryNoteListResponse, error) {
	page.DefaultPage()
	list, err := uc.noteRepo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryNoteResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *uc.toNoteResponse(n, nil))
	}
	return &dto.DeliveryNoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Sign asocia una firma a una nota emitida y la marca como signed.
// Una nota firmada no se firma dos veces.
func (uc *DeliveryNoteUseCase) Sign(id string, in dto.SignDeliveryNoteRequest) (*dto.DeliveryNoteResponse, error) {
	if in.SignatureID == "" {
		return nil, domain.NewValidationError("signature_id es obligatorio")
	}
	note, lines, err := uc.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	if note.Status == entity.DeliveryNoteSigned {
		return nil, domain.ErrConflict
	}
	sig, err := uc.sigRepo.GetByID(in.SignatureID)
	if err != nil {
		return nil, err
	}
	if sig == nil {
		return nil, domain.NewValidationError("firma no encontrada: %s", in.SignatureID)
	}
	note.SignatureID = sig.ID
	note.Status = entity.DeliveryNoteSigned
	note.UpdatedAt = time.Now()
	if err := uc.noteRepo.Update(note); err != nil {
		return nil, err
	}
	return uc.toNoteResponse(note, lines), nil
}

// PDFData reúne lo necesario para renderizar el PDF de la nota: la nota con
// sus líneas (nombres resueltos) y la ruta de la imagen de firma si existe.
func (uc *DeliveryNoteUseCase) PDFData(id string) (*dto.DeliveryNoteResponse, string, error) {
	note, lines, err := uc.noteRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if note == nil {
		return nil, "", domain.ErrNotFound
	}
	resp := uc.toNoteResponse(note, lines)
	signaturePath := ""
	if note.SignatureID != "" {
		sig, err := uc.sigRepo.GetByID(note.SignatureID)
		if err != nil {
			return nil, "", err
		}
		if sig != nil {
			signaturePath = sig.ImagePath
		}
	}
	return resp, signaturePath, nil
}

func (uc *DeliveryNoteUseCase) toNoteResponse(n *entity.DeliveryNote, lines []*entity.DeliveryNoteLine) *dto.DeliveryNoteResponse {
	if n == nil {
		return nil
	}
	resp := &dto.DeliveryNoteResponse{
		ID:          n.ID,
		Number:      n.Number,
		Recipient:   n.Recipient,
		CreatedBy:   n.CreatedBy,
		Status:      n.Status,
		SignatureID: n.SignatureID,
		IssuedAt:    n.IssuedAt,
		CreatedAt:   n.CreatedAt,
	}
	for _, l := range lines {
		line := dto.DeliveryNoteLineResponse{
			InventoryID: l.InventoryID,
			Quantity:    l.Quantity,
		}
		if item, err := uc.itemRepo.GetByID(l.InventoryID); err == nil && item != nil {
			line.ItemName = item.Name
		}
		resp.Lines = append(resp.Lines, line)
	}
	return resp
}
