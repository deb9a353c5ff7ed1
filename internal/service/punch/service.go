package punch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/punch"
)

// TimeLayout renders clock times the way the activity feed shows them.
const TimeLayout = "15:04:05"

type PunchServiceImpl struct {
	punch.Repository
	employeeRepo employee.Repository

	// now is swapped out in tests to pin punch timestamps.
	now func() time.Time
}

func NewPunchService(repo punch.Repository, employeeRepo employee.Repository) *PunchServiceImpl {
	return &PunchServiceImpl{
		Repository:   repo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// SubmitPunch implements punch.Service.
//
// The id+email pair must jointly match one directory record. This is a
// lookup-match, not an authentication check: the caller selects who they are
// punching for, and any mismatch is user-correctable.
func (s *PunchServiceImpl) SubmitPunch(ctx context.Context, req punch.SubmitPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	// A non-numeric id can never match a directory record, which is the same
	// outcome as a wrong one.
	id, err := strconv.Atoi(strings.TrimSpace(req.EmployeeID))
	if err != nil {
		return punch.PunchResponse{}, punch.ErrInvalidCredentials
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return punch.PunchResponse{}, punch.ErrInvalidCredentials
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}
	if emp.Email != req.Email {
		return punch.PunchResponse{}, punch.ErrInvalidCredentials
	}

	now := s.now()
	event, err := s.Repository.Append(ctx, punch.Event{
		EmployeeID: emp.ID,
		Type:       req.Action,
		Timestamp:  now,
		Date:       now.Format(punch.DateLayout),
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to append punch event: %w", err)
	}

	return punch.PunchResponse{
		ID:           event.ID,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Action:       event.Type,
		ActionLabel:  event.Type.Label(),
		Message:      event.Type.SuccessMessage(),
		Time:         event.Timestamp.Format(TimeLayout),
		Date:         event.Date,
	}, nil
}

// GetStatus implements punch.Service.
func (s *PunchServiceImpl) GetStatus(ctx context.Context, employeeID int, date string) (punch.StatusResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return punch.StatusResponse{}, err
	}

	events, err := s.Repository.ListByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return punch.StatusResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	return punch.StatusResponse{
		EmployeeID: employeeID,
		Date:       date,
		Status:     punch.DeriveStatus(events),
	}, nil
}

// GetWorkedHours implements punch.Service.
func (s *PunchServiceImpl) GetWorkedHours(ctx context.Context, employeeID int, date string) (punch.WorkedHoursResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return punch.WorkedHoursResponse{}, err
	}

	events, err := s.Repository.ListByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return punch.WorkedHoursResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	worked := punch.ComputeWorkedHours(events)
	return punch.WorkedHoursResponse{
		EmployeeID: employeeID,
		Date:       date,
		Complete:   worked.Complete,
		Hours:      worked.Hours,
		Display:    worked.String(),
	}, nil
}
