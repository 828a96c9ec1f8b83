package service

import (
	"sort"
	"strings"

	"github.com/Sayed24/Employee-Management-System/internal/domain"
)

// Filter derives the filtered view: a record passes when the search term is
// empty or found case-insensitively as a substring in its full name, email,
// phone or position, and the department either is empty or matches exactly.
// Pure function; the full view is recomputed on every call, which is fine for
// a wholly memory-resident collection of this size.
func Filter(records []domain.Employee, searchTerm, department string) []domain.Employee {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	out := make([]domain.Employee, 0, len(records))
	for _, e := range records {
		if term != "" && !matchesTerm(e, term) {
			continue
		}
		if department != "" && e.Department != department {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesTerm(e domain.Employee, term string) bool {
	for _, field := range []string{e.FullName, e.Email, e.Phone, e.Position} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// DepartmentOptions returns the distinct non-empty department values across
// the full collection, sorted ascending. Recomputed after every mutation so
// new departments appear and removed ones disappear from the option list.
func DepartmentOptions(records []domain.Employee) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range records {
		if e.Department == "" {
			continue
		}
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		out = append(out, e.Department)
	}
	sort.Strings(out)
	return out
}
