package domain

// Employee represents one roster entry. All attributes are stored as plain
// strings; only FullName and Email are required (enforced at the edge, not here).
type Employee struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Notes      string `json:"notes"`
}

// EmployeeFields carries the editable attributes of a record, i.e. everything
// except the identifier. Used for add and update operations.
type EmployeeFields struct {
	FullName   string
	Email      string
	Phone      string
	Department string
	Position   string
	Notes      string
}

// Apply copies the editable fields onto an existing record, keeping its ID.
func (f EmployeeFields) Apply(e *Employee) {
	e.FullName = f.FullName
	e.Email = f.Email
	e.Phone = f.Phone
	e.Department = f.Department
	e.Position = f.Position
	e.Notes = f.Notes
}

// FilterState is the current search/department selection. It is owned by the
// presentation layer and only read by the query functions.
type FilterState struct {
	SearchTerm string
	Department string
}

// PageState is the current 1-based page number and page size.
type PageState struct {
	Page     int
	PageSize int
}

// SeedEmployees returns the fixed sample records written when the persistent
// store is empty. A fresh slice every call; callers may mutate the result.
func SeedEmployees() []Employee {
	return []Employee{
		{
			ID:         "seed-1",
			FullName:   "Amina Torres",
			Email:      "amina.torres@example.com",
			Phone:      "+1 555 010 7733",
			Department: "Engineering",
			Position:   "Backend Developer",
			Notes:      "Sample record",
		},
		{
			ID:         "seed-2",
			FullName:   "Carlos Nguyen",
			Email:      "carlos.nguyen@example.com",
			Phone:      "+1 555 010 8844",
			Department: "Sales",
			Position:   "Account Manager",
			Notes:      "Sample record",
		},
	}
}
