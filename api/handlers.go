/*
handlers.go - HTTP API handlers

PURPOSE:
  Exposes the record store and the computation engine over REST. Handlers
  parse requests, load snapshots from the store, hand them to the engine,
  and serialize results. No wage arithmetic lives here.

ENDPOINTS:
  Establishments:
    GET    /api/establishments                     List
    POST   /api/establishments                     Create
    GET    /api/establishments/{id}                Get
    PUT    /api/establishments/{id}                Update
    DELETE /api/establishments/{id}                Delete
    GET    /api/establishments/{id}/employees      List employees
    POST   /api/establishments/{id}/employees      Create employee
    GET    /api/establishments/{id}/summary        Roll-up across employees

  Employees:
    GET    /api/employees/{id}                     Get
    PUT    /api/employees/{id}                     Update
    DELETE /api/employees/{id}                     Delete
    GET    /api/employees/{id}/violations          Stored document (or template)
    PUT    /api/employees/{id}/violations          Wholesale replace
    GET    /api/employees/{id}/summary             Computed totals + breakdowns
    GET    /api/employees/{id}/report              PDF export

  Reference data:
    GET/POST        /api/wage-orders               Timeline
    DELETE          /api/wage-orders/{id}
    GET/POST        /api/holidays                  Calendar
    DELETE          /api/holidays/{id}

  Computation helpers:
    POST   /api/classify                           Auto-fill day-count suggestion

  Scenarios:
    GET    /api/scenarios                          List demo datasets
    POST   /api/scenarios/load                     Load one

ERROR HANDLING:
  - 400: invalid input (unknown size, bad seed data, malformed JSON)
  - 404: unknown establishment/employee
  - 500: store failures
  Engine calls never fail; malformed periods compute to zero by design.

SEE ALSO:
  - dto.go: request/response shapes
  - server.go: routing and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mosesalcantara/wagecalc/factory"
	"github.com/mosesalcantara/wagecalc/report"
	"github.com/mosesalcantara/wagecalc/store/sqlite"
	"github.com/mosesalcantara/wagecalc/wage"
	"github.com/shopspring/decimal"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
	Seeds *factory.SeedFactory
}

func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store: store,
		Seeds: factory.NewSeedFactory(),
	}
}

// engine builds a computation engine from the current wage-order and
// holiday snapshots. Rebuilt per request: the engine is cheap and callers
// must see reference-data edits immediately.
func (h *Handler) engine(ctx context.Context) (*wage.Engine, error) {
	orders, err := h.Store.ListWageOrders(ctx)
	if err != nil {
		return nil, err
	}
	holidays, err := h.Store.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}
	return wage.NewEngine(orders, holidays), nil
}

// =============================================================================
// ESTABLISHMENT HANDLERS
// =============================================================================

func (h *Handler) ListEstablishments(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.ListEstablishments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list establishments", err)
		return
	}

	dtos := make([]EstablishmentDTO, len(list))
	for i, e := range list {
		dtos[i] = toEstablishmentDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateEstablishment(w http.ResponseWriter, r *http.Request) {
	var req CreateEstablishmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	size, ok := parseSize(req.Size)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown establishment size %q", req.Size), nil)
		return
	}

	est := wage.Establishment{ID: uuid.NewString(), Name: req.Name, Size: size}
	if err := h.Store.CreateEstablishment(r.Context(), est); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create establishment", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEstablishmentDTO(est))
}

func (h *Handler) GetEstablishment(w http.ResponseWriter, r *http.Request) {
	est, ok := h.loadEstablishment(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toEstablishmentDTO(*est))
}

func (h *Handler) UpdateEstablishment(w http.ResponseWriter, r *http.Request) {
	est, ok := h.loadEstablishment(w, r)
	if !ok {
		return
	}

	var req CreateEstablishmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	size, sizeOK := parseSize(req.Size)
	if !sizeOK {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown establishment size %q", req.Size), nil)
		return
	}

	est.Name = req.Name
	est.Size = size
	if err := h.Store.UpdateEstablishment(r.Context(), *est); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update establishment", err)
		return
	}
	writeJSON(w, http.StatusOK, toEstablishmentDTO(*est))
}

func (h *Handler) DeleteEstablishment(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteEstablishment(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete establishment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetEstablishmentSummary rolls every employee's totals up into the
// establishment grand total.
func (h *Handler) GetEstablishmentSummary(w http.ResponseWriter, r *http.Request) {
	est, ok := h.loadEstablishment(w, r)
	if !ok {
		return
	}

	employees, err := h.Store.ListEmployees(r.Context(), est.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	docs := make(map[string]wage.ViolationValues, len(employees))
	for _, emp := range employees {
		doc, err := h.Store.GetViolations(r.Context(), emp.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load violation documents", err)
			return
		}
		if doc != nil {
			docs[emp.ID] = doc
		}
	}

	engine, err := h.engine(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load reference data", err)
		return
	}
	writeJSON(w, http.StatusOK, toEstablishmentSummaryDTO(
		engine.SummarizeEstablishment(*est, employees, docs)))
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	est, ok := h.loadEstablishment(w, r)
	if !ok {
		return
	}

	employees, err := h.Store.ListEmployees(r.Context(), est.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	est, ok := h.loadEstablishment(w, r)
	if !ok {
		return
	}

	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rate, err := decimal.NewFromString(req.Rate)
	if err != nil || rate.IsNegative() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid daily rate %q", req.Rate), nil)
		return
	}

	emp := wage.Employee{
		ID:              uuid.NewString(),
		EstablishmentID: est.ID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Rate:            rate,
		StartDay:        req.StartDay,
		EndDay:          req.EndDay,
	}
	if err := h.Store.CreateEmployee(r.Context(), emp); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}

	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	rate, err := decimal.NewFromString(req.Rate)
	if err != nil || rate.IsNegative() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid daily rate %q", req.Rate), nil)
		return
	}

	emp.FirstName = req.FirstName
	emp.LastName = req.LastName
	emp.Rate = rate
	emp.StartDay = req.StartDay
	emp.EndDay = req.EndDay
	if err := h.Store.UpdateEmployee(r.Context(), *emp); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete employee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// VIOLATION DOCUMENT HANDLERS
// =============================================================================

// GetViolations returns the stored document, or a fresh template document
// when the employee has never saved one.
func (h *Handler) GetViolations(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}

	doc, err := h.Store.GetViolations(r.Context(), emp.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load violation document", err)
		return
	}
	if doc == nil {
		doc = wage.NewViolationValues(emp.Rate)
	}
	writeJSON(w, http.StatusOK, doc)
}

// PutViolations replaces the employee's document wholesale. Half-filled
// periods are stored as-is; the engine treats them as zero contributions.
func (h *Handler) PutViolations(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}

	var doc wage.ViolationValues
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid violation document", err)
		return
	}
	if err := h.Store.ReplaceViolations(r.Context(), emp.ID, doc); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save violation document", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// =============================================================================
// COMPUTATION HANDLERS
// =============================================================================

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.computeSummary(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.computeSummary(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "violations-"+summary.Employee.ID+".pdf"))
	if err := report.WritePDF(w, summary); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render report", err)
	}
}

func (h *Handler) computeSummary(w http.ResponseWriter, r *http.Request) (wage.Summary, bool) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return wage.Summary{}, false
	}
	est, err := h.Store.GetEstablishment(r.Context(), emp.EstablishmentID)
	if err != nil || est == nil {
		writeError(w, http.StatusInternalServerError, "Failed to load establishment", err)
		return wage.Summary{}, false
	}

	doc, err := h.Store.GetViolations(r.Context(), emp.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load violation document", err)
		return wage.Summary{}, false
	}

	engine, err := h.engine(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load reference data", err)
		return wage.Summary{}, false
	}
	return engine.Summarize(*emp, *est, doc), true
}

// Classify returns the editable auto-fill suggestion for a date range.
// The user's typed count always remains the value of record.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	emp, err := h.Store.GetEmployee(r.Context(), req.EmployeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}

	engine, err := h.engine(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load reference data", err)
		return
	}
	suggested := engine.SuggestCount(*emp, wage.Category(req.Category), req.StartDate, req.EndDate)
	writeJSON(w, http.StatusOK, ClassifyResponse{Suggested: suggested})
}

// =============================================================================
// REFERENCE DATA HANDLERS
// =============================================================================

func (h *Handler) ListWageOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Store.ListWageOrders(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list wage orders", err)
		return
	}
	dtos := make([]WageOrderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = toWageOrderDTO(o)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateWageOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateWageOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, ok := wage.ParseDate(req.Date)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid effective date %q", req.Date), nil)
		return
	}
	lessThanTen, err1 := decimal.NewFromString(req.LessThanTen)
	tenOrMore, err2 := decimal.NewFromString(req.TenOrMore)
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "Invalid minimum rate", nil)
		return
	}

	order := wage.WageOrder{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Date:        date,
		LessThanTen: lessThanTen,
		TenOrMore:   tenOrMore,
	}
	if err := h.Store.CreateWageOrder(r.Context(), order); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create wage order", err)
		return
	}
	writeJSON(w, http.StatusCreated, toWageOrderDTO(order))
}

func (h *Handler) DeleteWageOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteWageOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete wage order", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Store.ListHolidays(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}
	dtos := make([]HolidayDTO, len(holidays))
	for i, hd := range holidays {
		dtos[i] = toHolidayDTO(hd)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, ok := wage.ParseDate(req.Date)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid date %q", req.Date), nil)
		return
	}
	typ := wage.HolidayType(req.Type)
	if typ != wage.HolidayRegular && typ != wage.HolidaySpecial {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown holiday type %q", req.Type), nil)
		return
	}

	holiday := wage.Holiday{ID: uuid.NewString(), Name: req.Name, Date: date, Type: typ}
	if err := h.Store.CreateHoliday(r.Context(), holiday); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create holiday", err)
		return
	}
	writeJSON(w, http.StatusCreated, toHolidayDTO(holiday))
}

func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete holiday", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) loadEstablishment(w http.ResponseWriter, r *http.Request) (*wage.Establishment, bool) {
	est, err := h.Store.GetEstablishment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get establishment", err)
		return nil, false
	}
	if est == nil {
		writeError(w, http.StatusNotFound, "Establishment not found", nil)
		return nil, false
	}
	return est, true
}

func (h *Handler) loadEmployee(w http.ResponseWriter, r *http.Request) (*wage.Employee, bool) {
	emp, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return nil, false
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return nil, false
	}
	return emp, true
}

// parseSize accepts both the storage enum and the labels the source forms
// used ("1-9 workers", "10 or more workers").
func parseSize(s string) (wage.Size, bool) {
	switch s {
	case string(wage.SizeLessThanTen), "1-9 workers", "fewer than ten":
		return wage.SizeLessThanTen, true
	case string(wage.SizeTenOrMore), "10 or more workers", "ten or more":
		return wage.SizeTenOrMore, true
	default:
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
