package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/csi515/beautyhub-backend-go/internal/domain/staff"
)

type StaffServiceImpl struct {
	staff.StaffRepository
}

func NewStaffService(staffRepository staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{
		StaffRepository: staffRepository,
	}
}

// Create implements staff.StaffService.
func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.StaffRepository.Create(ctx, staff.Staff{
		Name:   req.Name,
		Role:   req.Role,
		Active: active,
	})
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to create staff: %w", err)
	}

	return toStaffResponse(created), nil
}

// Get implements staff.StaffService.
func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	found, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return toStaffResponse(found), nil
}

// Update implements staff.StaffService.
func (s *StaffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	existing, err := s.StaffRepository.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Role != nil {
		existing.Role = req.Role
	}
	if req.Active != nil {
		existing.Active = *req.Active
	}

	if err := s.StaffRepository.Update(ctx, existing); err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to update staff: %w", err)
	}
	existing.UpdatedAt = time.Now()

	return toStaffResponse(existing), nil
}

// Delete implements staff.StaffService.
func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	return s.StaffRepository.Delete(ctx, id)
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context, onlyActive bool) (staff.ListStaffResponse, error) {
	roster, err := s.StaffRepository.List(ctx, onlyActive)
	if err != nil {
		return staff.ListStaffResponse{}, fmt.Errorf("failed to list staff: %w", err)
	}

	resp := staff.ListStaffResponse{
		TotalCount: len(roster),
		Staff:      make([]staff.StaffResponse, 0, len(roster)),
	}
	for _, member := range roster {
		resp.Staff = append(resp.Staff, toStaffResponse(member))
	}

	return resp, nil
}

func toStaffResponse(s staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		Role:      s.Role,
		Active:    s.Active,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}
