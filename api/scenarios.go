/*
scenarios.go - Loadable demo datasets

PURPOSE:
  Ships ready-made reference data so a fresh install is usable without
  typing in a wage-order timeline by hand. Each scenario is a seed
  document parsed through the factory plus an optional sample
  establishment and employee. Loading is additive for reference data and
  creates the sample records with fixed ids so repeated loads do not
  duplicate them.

SEE ALSO:
  - factory/seed.go: seed document format and validation
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/mosesalcantara/wagecalc/wage"
	"github.com/shopspring/decimal"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

type scenario struct {
	ID          string
	Name        string
	Description string
	Seed        string
	// Sample records, optional. Fixed ids keep loads idempotent.
	Establishment *wage.Establishment
	Employees     []wage.Employee
}

// mimaropaSeed carries the Region IV-B wage-order timeline and the 2024
// proclaimed holidays.
const mimaropaSeed = `{
	"wage_orders": [
		{"id": "wo-mimaropa-12", "name": "RB-MIMAROPA-12", "date": "2022-06-10", "less_than_ten": "329", "ten_or_more": "355"},
		{"id": "wo-mimaropa-13", "name": "RB-MIMAROPA-13", "date": "2023-12-07", "less_than_ten": "369", "ten_or_more": "395"},
		{"id": "wo-mimaropa-14", "name": "RB-MIMAROPA-14", "date": "2024-12-23", "less_than_ten": "404", "ten_or_more": "430"}
	],
	"holidays": [
		{"id": "hol-2024-new-year", "name": "New Year's Day", "date": "2024-01-01", "type": "Regular Holiday"},
		{"id": "hol-2024-cny", "name": "Chinese New Year", "date": "2024-02-10", "type": "Special (Non-Working) Holiday"},
		{"id": "hol-2024-edsa", "name": "EDSA People Power Anniversary", "date": "2024-02-25", "type": "Special (Non-Working) Holiday"},
		{"id": "hol-2024-maundy", "name": "Maundy Thursday", "date": "2024-03-28", "type": "Regular Holiday"},
		{"id": "hol-2024-good-friday", "name": "Good Friday", "date": "2024-03-29", "type": "Regular Holiday"},
		{"id": "hol-2024-black-sat", "name": "Black Saturday", "date": "2024-03-30", "type": "Special (Non-Working) Holiday"},
		{"id": "hol-2024-araw-kagitingan", "name": "Araw ng Kagitingan", "date": "2024-04-09", "type": "Regular Holiday"},
		{"id": "hol-2024-eidl-fitr", "name": "Eid'l Fitr", "date": "2024-04-10", "type": "Regular Holiday"},
		{"id": "hol-2024-labor-day", "name": "Labor Day", "date": "2024-05-01", "type": "Regular Holiday"},
		{"id": "hol-2024-independence", "name": "Independence Day", "date": "2024-06-12", "type": "Regular Holiday"},
		{"id": "hol-2024-eidl-adha", "name": "Eid'l Adha", "date": "2024-06-17", "type": "Regular Holiday"},
		{"id": "hol-2024-ninoy", "name": "Ninoy Aquino Day", "date": "2024-08-21", "type": "Special (Non-Working) Holiday"},
		{"id": "hol-2024-heroes", "name": "National Heroes Day", "date": "2024-08-26", "type": "Regular Holiday"},
		{"id": "hol-2024-all-saints", "name": "All Saints' Day", "date": "2024-11-01", "type": "Special (Non-Working) Holiday"},
		{"id": "hol-2024-bonifacio", "name": "Bonifacio Day", "date": "2024-11-30", "type": "Regular Holiday"},
		{"id": "hol-2024-immaculate", "name": "Feast of the Immaculate Conception", "date": "2024-12-08", "type": "Special (Non-Working) Holiday"},
		{"id": "hol-2024-christmas-eve", "name": "Christmas Eve", "date": "2024-12-24", "type": "Special (Non-Working) Holiday"},
		{"id": "hol-2024-christmas", "name": "Christmas Day", "date": "2024-12-25", "type": "Regular Holiday"},
		{"id": "hol-2024-rizal", "name": "Rizal Day", "date": "2024-12-30", "type": "Regular Holiday"},
		{"id": "hol-2024-new-year-eve", "name": "Last Day of the Year", "date": "2024-12-31", "type": "Special (Non-Working) Holiday"}
	]
}`

func builtinScenarios() []scenario {
	return []scenario{
		{
			ID:          "mimaropa-2024",
			Name:        "MIMAROPA 2024",
			Description: "Region IV-B wage orders 12-14 and the 2024 proclaimed holidays",
			Seed:        mimaropaSeed,
		},
		{
			ID:          "mimaropa-2024-demo",
			Name:        "MIMAROPA 2024 with sample records",
			Description: "Same reference data plus a demo establishment and employee",
			Seed:        mimaropaSeed,
			Establishment: &wage.Establishment{
				ID:   "est-demo",
				Name: "Island Traders Inc.",
				Size: wage.SizeTenOrMore,
			},
			Employees: []wage.Employee{
				{
					ID:              "emp-demo",
					EstablishmentID: "est-demo",
					FirstName:       "Juan",
					LastName:        "Dela Cruz",
					Rate:            decimal.RequireFromString("380"),
					StartDay:        "Monday",
					EndDay:          "Friday",
				},
			},
		},
	}
}

func findScenario(id string) *scenario {
	for _, sc := range builtinScenarios() {
		if sc.ID == id {
			return &sc
		}
	}
	return nil
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	var dtos []ScenarioDTO
	for _, sc := range builtinScenarios() {
		dtos = append(dtos, ScenarioDTO{ID: sc.ID, Name: sc.Name, Description: sc.Description})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// LoadScenario parses the scenario's seed through the factory and writes
// everything into the store. Records with already-present ids are skipped
// rather than treated as failures, so reloading is harmless.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sc := findScenario(req.ID)
	if sc == nil {
		writeError(w, http.StatusNotFound, "Unknown scenario", nil)
		return
	}

	orders, holidays, err := h.Seeds.ParseSeed(sc.Seed)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Scenario seed is invalid", err)
		return
	}

	ctx := r.Context()
	existingOrders, err := h.Store.ListWageOrders(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load wage orders", err)
		return
	}
	haveOrder := make(map[string]bool, len(existingOrders))
	for _, o := range existingOrders {
		haveOrder[o.ID] = true
	}
	for _, o := range orders {
		if haveOrder[o.ID] {
			continue
		}
		if err := h.Store.CreateWageOrder(ctx, o); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to seed wage orders", err)
			return
		}
	}

	existingHolidays, err := h.Store.ListHolidays(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}
	haveHoliday := make(map[string]bool, len(existingHolidays))
	for _, hd := range existingHolidays {
		haveHoliday[hd.ID] = true
	}
	for _, hd := range holidays {
		if haveHoliday[hd.ID] {
			continue
		}
		if err := h.Store.CreateHoliday(ctx, hd); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to seed holidays", err)
			return
		}
	}

	if sc.Establishment != nil {
		existing, err := h.Store.GetEstablishment(ctx, sc.Establishment.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to seed establishment", err)
			return
		}
		if existing == nil {
			if err := h.Store.CreateEstablishment(ctx, *sc.Establishment); err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to seed establishment", err)
				return
			}
		}
	}
	for _, emp := range sc.Employees {
		existing, err := h.Store.GetEmployee(ctx, emp.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to seed employee", err)
			return
		}
		if existing != nil {
			continue
		}
		if err := h.Store.CreateEmployee(ctx, emp); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to seed employee", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, ScenarioDTO{ID: sc.ID, Name: sc.Name, Description: sc.Description})
}
