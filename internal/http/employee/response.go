package employee

import (
	"time"

	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/employee"
)

type employeeResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Role      employee.Role `json:"role"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}

func toResponse(emp *employee.Employee) employeeResponse {
	return employeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		Email:     emp.Email,
		Role:      emp.Role,
		Active:    emp.Active,
		CreatedAt: emp.CreatedAt,
		UpdatedAt: emp.UpdatedAt,
	}
}

func toResponseList(emps []*employee.Employee) []employeeResponse {
	resp := make([]employeeResponse, len(emps))
	for i, emp := range emps {
		resp[i] = toResponse(emp)
	}

	return resp
}
