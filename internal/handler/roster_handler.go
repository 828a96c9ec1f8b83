package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Sayed24/Employee-Management-System/internal/domain"
	"github.com/Sayed24/Employee-Management-System/internal/logger"
	"github.com/Sayed24/Employee-Management-System/internal/service"
	"github.com/Sayed24/Employee-Management-System/internal/service/serviceutils"
	"github.com/Sayed24/Employee-Management-System/pkg/debounce"
)

// uiState is the application state owned by the presentation layer: what the
// user is currently searching for, which department is selected and where in
// the paged view they are. The core packages never see this struct.
type uiState struct {
	domain.FilterState
	domain.PageState
}

// Options configures the presentation layer.
type Options struct {
	PageSizeOptions  []int
	DefaultPageSize  int
	SearchDebounce   time.Duration
	ReportConfigPath string
}

// RosterHandler translates user intents into core operations and core state
// into renderable view models.
type RosterHandler struct {
	svc      *service.RosterService
	validate *validator.Validate
	opts     Options

	mu            sync.Mutex
	state         uiState
	pendingSearch string
	searchTimer   *debounce.Debouncer
}

func NewRosterHandler(svc *service.RosterService, opts Options) *RosterHandler {
	if opts.DefaultPageSize < 1 {
		opts.DefaultPageSize = 10
	}
	if len(opts.PageSizeOptions) == 0 {
		opts.PageSizeOptions = []int{5, 10, 25, 50}
	}

	h := &RosterHandler{
		svc:      svc,
		validate: validator.New(),
		opts:     opts,
		state: uiState{
			PageState: domain.PageState{Page: 1, PageSize: opts.DefaultPageSize},
		},
	}
	h.searchTimer = debounce.New(opts.SearchDebounce, h.applyPendingSearch)
	return h
}

// =============================================================================
// Rendering
// =============================================================================

// RenderHandler returns the view model for the current filter/page state.
func (h *RosterHandler) RenderHandler(c echo.Context) error {
	h.mu.Lock()
	vm := h.buildViewModel()
	h.mu.Unlock()

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Roster rendered", vm)
}

// buildViewModel runs the recompute pipeline in order: department options,
// filter reset check, filter, page. Callers must hold h.mu. The clamped page
// number is written back so the state invariant holds after shrinking views.
func (h *RosterHandler) buildViewModel() RosterViewModel {
	records := h.svc.All()

	options := service.DepartmentOptions(records)
	if h.state.Department != "" && !containsString(options, h.state.Department) {
		// The selected department no longer exists; back to "no filter".
		h.state.Department = ""
	}

	filtered := service.Filter(records, h.state.SearchTerm, h.state.Department)
	page := service.Page(filtered, h.state.Page, h.state.PageSize)
	h.state.Page = page.PageNumber

	return RosterViewModel{
		Rows: page.Items,
		Pagination: PaginationDTO{
			Page:       page.PageNumber,
			PageSize:   page.PageSize,
			TotalPages: page.TotalPages,
			HasPrev:    page.HasPrev(),
			HasNext:    page.HasNext(),
			Window:     service.PageWindow(page.PageNumber, page.TotalPages),
		},
		DepartmentOptions: options,
		PageSizeOptions:   h.opts.PageSizeOptions,
		SearchTerm:        h.state.SearchTerm,
		Department:        h.state.Department,
		FilteredCount:     page.TotalItems,
		TotalCount:        len(records),
	}
}

// =============================================================================
// Record mutations
// =============================================================================

func (h *RosterHandler) CreateHandler(c echo.Context) error {
	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Full name and email are required", err)
	}

	created, err := h.svc.Add(c.Request().Context(), req.fields())
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to create employee", err)
	}

	h.mu.Lock()
	vm := h.buildViewModel()
	h.mu.Unlock()

	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Employee "+created.ID+" created", vm)
}

func (h *RosterHandler) UpdateHandler(c echo.Context) error {
	id := c.Param("id")

	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Full name and email are required", err)
	}

	found, err := h.svc.Update(c.Request().Context(), id, req.fields())
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to update employee", err)
	}
	if !found {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Employee not found", nil)
	}

	h.mu.Lock()
	vm := h.buildViewModel()
	h.mu.Unlock()

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employee updated", vm)
}

func (h *RosterHandler) DeleteHandler(c echo.Context) error {
	// The confirmation dialog lives here, not in the store: deletes must be
	// explicitly confirmed by the caller.
	if c.QueryParam("confirm") != "true" {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Deletion requires confirmation", nil)
	}
	id := c.Param("id")

	found, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to delete employee", err)
	}
	if !found {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Employee not found", nil)
	}

	h.mu.Lock()
	vm := h.buildViewModel()
	h.mu.Unlock()

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employee deleted", vm)
}

func (h *RosterHandler) ClearHandler(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Clearing the roster requires confirmation", nil)
	}

	if err := h.svc.ClearAll(c.Request().Context()); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to clear roster", err)
	}

	h.mu.Lock()
	h.state.Page = 1
	vm := h.buildViewModel()
	h.mu.Unlock()

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Roster cleared", vm)
}

// =============================================================================
// Filter & page intents
// =============================================================================

// SearchHandler records the new search term and arms the debounce timer. A
// keystroke arriving while a previous one is pending simply supersedes it;
// the term is applied to the view once input pauses.
func (h *RosterHandler) SearchHandler(c echo.Context) error {
	term := c.FormValue("term")
	if term == "" {
		term = c.QueryParam("term")
	}

	h.mu.Lock()
	h.pendingSearch = term
	h.mu.Unlock()
	h.searchTimer.Trigger()

	return serviceutils.ResponseSuccess(c, http.StatusAccepted, "Search scheduled", nil)
}

// applyPendingSearch is the debounce callback: commit the pending term and
// jump back to the first page.
func (h *RosterHandler) applyPendingSearch() {
	h.mu.Lock()
	h.state.SearchTerm = h.pendingSearch
	h.state.Page = 1
	h.mu.Unlock()
}

func (h *RosterHandler) DepartmentHandler(c echo.Context) error {
	h.mu.Lock()
	h.state.Department = c.FormValue("value")
	h.state.Page = 1
	vm := h.buildViewModel()
	h.mu.Unlock()

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Department filter applied", vm)
}

func (h *RosterHandler) PageSizeHandler(c echo.Context) error {
	size, err := strconv.Atoi(c.FormValue("value"))
	if err != nil || !containsInt(h.opts.PageSizeOptions, size) {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid page size", err)
	}

	h.mu.Lock()
	h.state.PageSize = size
	h.state.Page = 1
	vm := h.buildViewModel()
	h.mu.Unlock()

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Page size changed", vm)
}

// GotoPageHandler accepts a page number, or "prev"/"next" for the navigation
// arrows. Out-of-range values are clamped by the pager.
func (h *RosterHandler) GotoPageHandler(c echo.Context) error {
	value := c.FormValue("value")

	h.mu.Lock()
	switch value {
	case "prev":
		if h.state.Page > 1 {
			h.state.Page--
		}
	case "next":
		h.state.Page++ // clamped by the pager on recompute
	default:
		n, err := strconv.Atoi(value)
		if err != nil {
			h.mu.Unlock()
			return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid page number", err)
		}
		h.state.Page = n
	}
	vm := h.buildViewModel()
	h.mu.Unlock()

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Page changed", vm)
}

// =============================================================================
// Import & export
// =============================================================================

// ImportHandler reads an uploaded JSON document and imports it as one batch.
// Anything that is not an array of record-like objects fails the whole batch
// and leaves the collection untouched.
func (h *RosterHandler) ImportHandler(c echo.Context) error {
	raw, err := h.importPayload(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Could not read import file", err)
	}

	var incoming []domain.Employee
	if err := json.Unmarshal(raw, &incoming); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, domain.ErrInvalidImport.Error(), err)
	}

	count, err := h.svc.ImportBatch(c.Request().Context(), incoming)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to import employees", err)
	}

	h.mu.Lock()
	vm := h.buildViewModel()
	h.mu.Unlock()

	return serviceutils.ResponseSuccess(c, http.StatusOK, fmt.Sprintf("Imported %d employees", count), vm)
}

// importPayload takes the uploaded "file" form part when present, otherwise
// the raw request body.
func (h *RosterHandler) importPayload(c echo.Context) ([]byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return io.ReadAll(c.Request().Body)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// ExportJSONHandler downloads the full collection as pretty-printed JSON,
// ignoring the current filter and page state.
func (h *RosterHandler) ExportJSONHandler(c echo.Context) error {
	records := h.svc.ExportAll()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to encode roster", err)
	}

	filename := fmt.Sprintf("employees_%s.json", time.Now().Format("2006-01-02"))
	c.Response().Header().Set("Content-Type", "application/json")
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	logger.InfoLog(c.Request().Context(), "Exporting %d employees as %s", len(records), filename)
	_, err = c.Response().Write(data)
	return err
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}
