/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupled from the engine's
  internal types. Amounts cross the wire twice: as plain decimal strings
  for clients that do math, and as formatted peso strings for clients
  that only display.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
  - wage/aggregate.go: The summary types these mirror
*/
package api

import "github.com/mosesalcantara/wagecalc/wage"

// =============================================================================
// ENTITY TYPES
// =============================================================================

type EstablishmentDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size string `json:"size"`
}

type CreateEstablishmentRequest struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

type EmployeeDTO struct {
	ID              string `json:"id"`
	EstablishmentID string `json:"establishment_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Rate            string `json:"rate"`
	StartDay        string `json:"start_day"`
	EndDay          string `json:"end_day"`
}

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Rate      string `json:"rate"`
	StartDay  string `json:"start_day"`
	EndDay    string `json:"end_day"`
}

type WageOrderDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	LessThanTen string `json:"less_than_ten"`
	TenOrMore   string `json:"ten_or_more"`
}

type CreateWageOrderRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	LessThanTen string `json:"less_than_ten"`
	TenOrMore   string `json:"ten_or_more"`
}

type HolidayDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

type CreateHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

// =============================================================================
// COMPUTATION TYPES
// =============================================================================

// TermDTO is one multiplicative component of a period amount, exposed so
// exports can print the arithmetic.
type TermDTO struct {
	Label      string `json:"label"`
	Base       string `json:"base"`
	Divisor    string `json:"divisor"`
	Multiplier string `json:"multiplier"`
	Count      string `json:"count"`
	Amount     string `json:"amount"`
}

type PeriodResultDTO struct {
	Period    wage.Period `json:"period"`
	Valid     bool        `json:"valid"`
	Minimum   string      `json:"minimum_rate"`
	RateUsed  string      `json:"rate_used"`
	Terms     []TermDTO   `json:"terms,omitempty"`
	Amount    string      `json:"amount"`
	Formatted string      `json:"formatted"`
}

type CategoryResultDTO struct {
	Category  string            `json:"category"`
	Periods   []PeriodResultDTO `json:"periods"`
	Subtotal  string            `json:"subtotal"`
	Received  string            `json:"received"`
	Total     string            `json:"total"`
	Formatted string            `json:"formatted"`
}

type SummaryDTO struct {
	EmployeeID string              `json:"employee_id"`
	Employee   string              `json:"employee"`
	Categories []CategoryResultDTO `json:"categories"`
	GrandTotal string              `json:"grand_total"`
	Formatted  string              `json:"formatted"`
	Reportable bool                `json:"reportable"`
}

type EstablishmentSummaryDTO struct {
	EstablishmentID string       `json:"establishment_id"`
	Establishment   string       `json:"establishment"`
	Employees       []SummaryDTO `json:"employees"`
	GrandTotal      string       `json:"grand_total"`
	Formatted       string       `json:"formatted"`
}

// ClassifyRequest asks for the auto-fill day-count suggestion for a
// period's date range.
type ClassifyRequest struct {
	EmployeeID string `json:"employee_id"`
	Category   string `json:"category"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

type ClassifyResponse struct {
	Suggested int `json:"suggested"`
}

// ScenarioDTO describes a loadable demo dataset.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LoadScenarioRequest struct {
	ID string `json:"id"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toEstablishmentDTO(e wage.Establishment) EstablishmentDTO {
	return EstablishmentDTO{ID: e.ID, Name: e.Name, Size: string(e.Size)}
}

func toEmployeeDTO(e wage.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:              e.ID,
		EstablishmentID: e.EstablishmentID,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Rate:            e.Rate.String(),
		StartDay:        e.StartDay,
		EndDay:          e.EndDay,
	}
}

func toWageOrderDTO(w wage.WageOrder) WageOrderDTO {
	return WageOrderDTO{
		ID:          w.ID,
		Name:        w.Name,
		Date:        w.Date.String(),
		LessThanTen: w.LessThanTen.String(),
		TenOrMore:   w.TenOrMore.String(),
	}
}

func toHolidayDTO(h wage.Holiday) HolidayDTO {
	return HolidayDTO{ID: h.ID, Name: h.Name, Date: h.Date.String(), Type: string(h.Type)}
}

func toTermDTO(t wage.Term) TermDTO {
	return TermDTO{
		Label:      t.Label,
		Base:       t.Base.String(),
		Divisor:    t.Divisor.String(),
		Multiplier: t.Multiplier.String(),
		Count:      t.Count.String(),
		Amount:     t.Amount.String(),
	}
}

func toPeriodResultDTO(pr wage.PeriodResult) PeriodResultDTO {
	dto := PeriodResultDTO{
		Period:    pr.Period,
		Valid:     pr.Valid,
		Minimum:   pr.Minimum.String(),
		RateUsed:  pr.RateUsed.String(),
		Amount:    pr.Amount.String(),
		Formatted: wage.FormatPeso(pr.Amount),
	}
	for _, term := range pr.Terms {
		dto.Terms = append(dto.Terms, toTermDTO(term))
	}
	return dto
}

func toCategoryResultDTO(cr wage.CategoryResult) CategoryResultDTO {
	dto := CategoryResultDTO{
		Category:  string(cr.Category),
		Subtotal:  cr.Subtotal.String(),
		Received:  cr.Received.String(),
		Total:     cr.Total.String(),
		Formatted: wage.FormatPeso(cr.Total),
	}
	for _, pr := range cr.Periods {
		dto.Periods = append(dto.Periods, toPeriodResultDTO(pr))
	}
	return dto
}

func toSummaryDTO(s wage.Summary) SummaryDTO {
	dto := SummaryDTO{
		EmployeeID: s.Employee.ID,
		Employee:   s.Employee.FullName(),
		GrandTotal: s.GrandTotal.String(),
		Formatted:  wage.FormatPeso(s.GrandTotal),
		Reportable: s.HasReportableViolation(),
	}
	for _, cr := range s.Categories {
		dto.Categories = append(dto.Categories, toCategoryResultDTO(cr))
	}
	return dto
}

func toEstablishmentSummaryDTO(s wage.EstablishmentSummary) EstablishmentSummaryDTO {
	dto := EstablishmentSummaryDTO{
		EstablishmentID: s.Establishment.ID,
		Establishment:   s.Establishment.Name,
		GrandTotal:      s.GrandTotal.String(),
		Formatted:       wage.FormatPeso(s.GrandTotal),
	}
	for _, es := range s.Employees {
		dto.Employees = append(dto.Employees, toSummaryDTO(es))
	}
	return dto
}
