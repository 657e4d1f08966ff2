package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"hr-records/internal/attachment"
	"hr-records/internal/model"
)

// EmployeeStore is the record store the employee service consumes.
type EmployeeStore interface {
	List(ctx context.Context) ([]model.Employee, error)
	Search(ctx context.Context, department string, position string) ([]model.Employee, error)
	FindByID(ctx context.Context, id string) (model.Employee, error)
	Create(ctx context.Context, e model.Employee) error
	Update(ctx context.Context, id string, patch model.EmployeePatch) (model.Employee, error)
	Delete(ctx context.Context, id string) error
}

// Upload carries an optional profile image accompanying a create or
// update request.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

type EmployeeService struct {
	store       EmployeeStore
	attachments attachment.Store
}

func NewEmployeeService(store EmployeeStore, attachments attachment.Store) *EmployeeService {
	return &EmployeeService{store: store, attachments: attachments}
}

func (s *EmployeeService) List(ctx context.Context) ([]model.EmployeeView, error) {
	employees, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return project(employees), nil
}

func (s *EmployeeService) Search(ctx context.Context, department string, position string) ([]model.EmployeeView, error) {
	employees, err := s.store.Search(ctx, department, position)
	if err != nil {
		return nil, err
	}
	return project(employees), nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (model.EmployeeView, error) {
	employee, err := s.store.FindByID(ctx, id)
	if err != nil {
		return model.EmployeeView{}, err
	}
	return employee.View(), nil
}

// Create coerces the validated payload, stores the attachment when one
// was supplied, and persists the record. A failed attachment store aborts
// the whole operation so no record carries a dangling reference.
func (s *EmployeeService) Create(ctx context.Context, in model.EmployeeInput, up *Upload) (model.EmployeeView, error) {
	salary, err := parseSalary(*in.Salary)
	if err != nil {
		return model.EmployeeView{}, err
	}
	joined, err := parseDate(*in.DateOfJoining)
	if err != nil {
		return model.EmployeeView{}, err
	}

	var imageRef *string
	if up != nil {
		ref, err := s.attachments.Save(ctx, up.Reader, up.Filename, up.ContentType)
		if err != nil {
			return model.EmployeeView{}, err
		}
		imageRef = &ref
	}

	now := time.Now().UTC()
	employee := model.Employee{
		ID:              uuid.NewString(),
		FirstName:       strings.TrimSpace(*in.FirstName),
		LastName:        strings.TrimSpace(*in.LastName),
		Email:           strings.TrimSpace(*in.Email),
		Position:        strings.TrimSpace(*in.Position),
		Department:      strings.TrimSpace(*in.Department),
		Salary:          salary,
		DateOfJoining:   joined,
		ProfileImageURL: imageRef,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.Create(ctx, employee); err != nil {
		return model.EmployeeView{}, err
	}

	return employee.View(), nil
}

// Update merges only the supplied fields into the stored record. The
// image reference is replaced only when a new attachment accompanies the
// request; attachment failure aborts the update.
func (s *EmployeeService) Update(ctx context.Context, id string, in model.EmployeeInput, up *Upload) (model.EmployeeView, error) {
	patch := model.EmployeePatch{
		FirstName:  trimmed(in.FirstName),
		LastName:   trimmed(in.LastName),
		Email:      trimmed(in.Email),
		Position:   trimmed(in.Position),
		Department: trimmed(in.Department),
	}

	if in.Salary != nil {
		salary, err := parseSalary(*in.Salary)
		if err != nil {
			return model.EmployeeView{}, err
		}
		patch.Salary = &salary
	}
	if in.DateOfJoining != nil {
		joined, err := parseDate(*in.DateOfJoining)
		if err != nil {
			return model.EmployeeView{}, err
		}
		patch.DateOfJoining = &joined
	}

	if up != nil {
		ref, err := s.attachments.Save(ctx, up.Reader, up.Filename, up.ContentType)
		if err != nil {
			return model.EmployeeView{}, err
		}
		patch.ProfileImageURL = &ref
	}

	employee, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return model.EmployeeView{}, err
	}

	return employee.View(), nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func project(employees []model.Employee) []model.EmployeeView {
	views := make([]model.EmployeeView, 0, len(employees))
	for _, e := range employees {
		views = append(views, e.View())
	}
	return views
}

func parseSalary(raw string) (float64, error) {
	salary, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse salary %q: %w", raw, err)
	}
	return salary, nil
}

func parseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if t, err := time.Parse(model.DateOnly, trimmed); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date_of_joining %q: %w", raw, err)
	}
	return t.UTC().Truncate(24 * time.Hour), nil
}

func trimmed(raw *string) *string {
	if raw == nil {
		return nil
	}
	v := strings.TrimSpace(*raw)
	return &v
}
