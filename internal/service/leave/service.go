package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewLeaveService(leaveRepository leave.LeaveRequestRepository, employeeRepository employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepository,
		EmployeeRepository:     employeeRepository,
	}
}

// ListByYear implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByYear(ctx context.Context, year int, status string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByYear(ctx, year, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}
	return responses, nil
}

// GetStats implements leave.LeaveService.
func (s *LeaveServiceImpl) GetStats(ctx context.Context, year int) (leave.LeaveStats, error) {
	requests, err := s.LeaveRequestRepository.ListByYear(ctx, year, "")
	if err != nil {
		return leave.LeaveStats{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.CountByStatus(requests), nil
}

// CreateLeaveRequest implements leave.LeaveService. The day count is
// computed once here and stored with the request.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	e, err := s.EmployeeRepository.GetByID(ctx, req.MitarbeiterID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startdatum, _ := time.Parse("2006-01-02", req.Startdatum)
	enddatum, _ := time.Parse("2006-01-02", req.Enddatum)

	gesamttage, err := leave.TotalDays(startdatum, enddatum)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request := leave.LeaveRequest{
		MitarbeiterID: req.MitarbeiterID,
		Urlaubsart:    leave.Urlaubsart(req.Urlaubsart),
		Startdatum:    startdatum,
		Enddatum:      enddatum,
		Gesamttage:    gesamttage,
		Status:        leave.LeaveStatusAusstehend,
		Notizen:       req.Notizen,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	name := e.FullName()
	created.MitarbeiterName = &name
	return leave.ToResponse(created), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateLeaveStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, id, leave.LeaveStatus(req.Status)); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToResponse(updated), nil
}

// DeleteLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteLeaveRequest(ctx context.Context, id string) error {
	return s.LeaveRequestRepository.Delete(ctx, id)
}
