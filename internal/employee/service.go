package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=employee
type Repository interface {
	CreateEmployee(ctx context.Context, emp *Employee) error
	GetEmployee(ctx context.Context, id, storeID uuid.UUID) (*Employee, error)
	ListEmployees(ctx context.Context, storeID uuid.UUID) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, emp *Employee) error
	DeactivateEmployee(ctx context.Context, id, storeID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name  string
	Email string
	Role  Role
}

func (p CreateParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name: %w", ErrMissingField)
	}

	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("email: %w", ErrMissingField)
	}

	if !p.Role.Valid() {
		return fmt.Errorf("role %q: %w", p.Role, ErrInvalidRole)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, ac auth.Context, params CreateParams) (*Employee, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	emp := &Employee{
		StoreID: ac.StoreID,
		Name:    strings.TrimSpace(params.Name),
		Email:   strings.ToLower(strings.TrimSpace(params.Email)),
		Role:    params.Role,
		Active:  true,
	}

	if err := s.repo.CreateEmployee(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *Service) List(ctx context.Context, ac auth.Context) ([]*Employee, error) {
	return s.repo.ListEmployees(ctx, ac.StoreID)
}

func (s *Service) Get(ctx context.Context, ac auth.Context, id uuid.UUID) (*Employee, error) {
	return s.repo.GetEmployee(ctx, id, ac.StoreID)
}

type UpdateParams struct {
	Name  *string
	Email *string
	Role  *Role
}

func (s *Service) Update(ctx context.Context, ac auth.Context, id uuid.UUID, params UpdateParams) (*Employee, error) {
	emp, err := s.repo.GetEmployee(ctx, id, ac.StoreID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return nil, fmt.Errorf("name: %w", ErrMissingField)
		}

		emp.Name = strings.TrimSpace(*params.Name)
	}

	if params.Email != nil {
		if strings.TrimSpace(*params.Email) == "" {
			return nil, fmt.Errorf("email: %w", ErrMissingField)
		}

		emp.Email = strings.ToLower(strings.TrimSpace(*params.Email))
	}

	if params.Role != nil {
		if !params.Role.Valid() {
			return nil, fmt.Errorf("role %q: %w", *params.Role, ErrInvalidRole)
		}

		emp.Role = *params.Role
	}

	if err := s.repo.UpdateEmployee(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *Service) Deactivate(ctx context.Context, ac auth.Context, id uuid.UUID) error {
	return s.repo.DeactivateEmployee(ctx, id, ac.StoreID)
}
