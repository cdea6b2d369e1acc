package shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/restolab/staffpoint-backend-go/internal/domain/shift"
)

type Service interface {
	List(ctx context.Context) (shift.ListShiftResponse, error)
	Create(ctx context.Context, req shift.UpsertShiftRequest) (shift.ShiftResponse, error)
	Update(ctx context.Context, code string, req shift.UpsertShiftRequest) (shift.ShiftResponse, error)
	Delete(ctx context.Context, code string) error
}

type ServiceImpl struct {
	shiftRepo shift.Repository
}

func NewShiftService(shiftRepo shift.Repository) Service {
	return &ServiceImpl{shiftRepo: shiftRepo}
}

// List implements Service.
func (s *ServiceImpl) List(ctx context.Context) (shift.ListShiftResponse, error) {
	defs, err := s.shiftRepo.List(ctx)
	if err != nil {
		return shift.ListShiftResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(defs))
	for _, def := range defs {
		responses = append(responses, mapShiftToResponse(def))
	}

	return shift.ListShiftResponse{Shifts: responses}, nil
}

// Create implements Service.
func (s *ServiceImpl) Create(ctx context.Context, req shift.UpsertShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, shift.Definition{
		Code:         req.Code,
		Name:         req.Name,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsSplitShift: req.IsSplitShift,
		BreakStart:   req.BreakStart,
		BreakEnd:     req.BreakEnd,
	})
	if err != nil {
		if errors.Is(err, shift.ErrShiftCodeExists) {
			return shift.ShiftResponse{}, shift.ErrShiftCodeExists
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return mapShiftToResponse(created), nil
}

// Update implements Service.
func (s *ServiceImpl) Update(ctx context.Context, code string, req shift.UpsertShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	def, err := s.shiftRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	def.Code = req.Code
	def.Name = req.Name
	def.StartTime = req.StartTime
	def.EndTime = req.EndTime
	def.IsSplitShift = req.IsSplitShift
	def.BreakStart = req.BreakStart
	def.BreakEnd = req.BreakEnd

	if err := s.shiftRepo.Update(ctx, def); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return mapShiftToResponse(def), nil
}

// Delete implements Service.
func (s *ServiceImpl) Delete(ctx context.Context, code string) error {
	if err := s.shiftRepo.Delete(ctx, code); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func mapShiftToResponse(def shift.Definition) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:           def.ID,
		Code:         def.Code,
		Name:         def.Name,
		StartTime:    def.StartTime,
		EndTime:      def.EndTime,
		IsSplitShift: def.IsSplitShift,
		BreakStart:   def.BreakStart,
		BreakEnd:     def.BreakEnd,
	}
}
