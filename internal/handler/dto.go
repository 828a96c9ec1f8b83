package handler

import (
	"github.com/Sayed24/Employee-Management-System/internal/domain"
)

// EmployeeRequest is the add/edit form payload. Full name and email are the
// only validated fields in the whole system.
type EmployeeRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Notes      string `json:"notes"`
}

func (r EmployeeRequest) fields() domain.EmployeeFields {
	return domain.EmployeeFields{
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		Department: r.Department,
		Position:   r.Position,
		Notes:      r.Notes,
	}
}

// PaginationDTO describes the pagination controls for the current view.
type PaginationDTO struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
	Window     []int `json:"window"`
}

// RosterViewModel is everything the page needs to render: the visible rows,
// the pagination controls, the department option list and the echoed filter
// state.
type RosterViewModel struct {
	Rows              []domain.Employee `json:"rows"`
	Pagination        PaginationDTO     `json:"pagination"`
	DepartmentOptions []string          `json:"department_options"`
	PageSizeOptions   []int             `json:"page_size_options"`
	SearchTerm        string            `json:"search_term"`
	Department        string            `json:"department"`
	FilteredCount     int               `json:"filtered_count"`
	TotalCount        int               `json:"total_count"`
}
