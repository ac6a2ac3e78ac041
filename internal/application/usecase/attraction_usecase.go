package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vyoo/qr-dashboard-api/internal/application/dto"
	"github.com/vyoo/qr-dashboard-api/internal/domain"
	"github.com/vyoo/qr-dashboard-api/internal/domain/entity"
	"github.com/vyoo/qr-dashboard-api/internal/domain/repository"
)

// AttractionUseCase CRUD de la dimensión Attraction.
type AttractionUseCase struct {
	attractions repository.AttractionRepository
	records     repository.DailyDataRepository
}

// NewAttractionUseCase construye el caso de uso.
func NewAttractionUseCase(attractions repository.AttractionRepository, records repository.DailyDataRepository) *AttractionUseCase {
	return &AttractionUseCase{attractions: attractions, records: records}
}

// List devuelve todas las atracciones ordenadas por nombre ascendente.
func (uc *AttractionUseCase) List() ([]dto.AttractionResponse, error) {
	list, err := uc.attractions.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttractionResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.AttractionResponse{ID: a.ID, Name: a.Name, CreatedAt: a.CreatedAt})
	}
	return out, nil
}

// Create valida y persiste una atracción. El nombre se recorta; vacío tras
// el trim es ErrInvalidInput.
func (uc *AttractionUseCase) Create(in dto.CreateAttractionRequest) (*dto.CreateAttractionResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name no puede estar vacío", domain.ErrInvalidInput)
	}
	attraction := &entity.Attraction{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.attractions.Create(attraction); err != nil {
		return nil, err
	}
	return &dto.CreateAttractionResponse{ID: attraction.ID, Name: attraction.Name}, nil
}

// Delete elimina una atracción. Retorna ErrConflict si tiene registros
// diarios asociados y ErrNotFound si no existía.
func (uc *AttractionUseCase) Delete(id string) error {
	count, err := uc.records.CountByAttraction(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: la atracción tiene %d registros diarios asociados", domain.ErrConflict, count)
	}
	rows, err := uc.attractions.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAttractionNotFound
	}
	return nil
}
