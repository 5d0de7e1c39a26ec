/*
Package factory converts JSON seed definitions into engine snapshots.

PURPOSE:
  Wage-order timelines and holiday calendars are published data, not code.
  Keeping them as JSON lets a regional office swap in its own wage board's
  timeline without recompiling, and lets the demo scenarios ship realistic
  presets.

JSON SCHEMA:
  {
    "wage_orders": [
      {"name": "RB-MIMAROPA-13", "date": "2023-12-07",
       "less_than_ten": "369", "ten_or_more": "395"}
    ],
    "holidays": [
      {"name": "New Year's Day", "date": "2024-01-01", "type": "Regular Holiday"}
    ]
  }

VALIDATION:
  Parsing is strict where the engine would otherwise be silently wrong:
  malformed dates, unparsable rates, and unknown holiday types are errors
  here, unlike in the engine's permissive period handling. Seed data is
  curated, not typed live.

SEE ALSO:
  - api/scenarios.go: the shipped presets
  - wage/orders.go, wage/calendar.go: the snapshot consumers
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mosesalcantara/wagecalc/wage"
	"github.com/shopspring/decimal"
)

// =============================================================================
// SEED JSON TYPES
// =============================================================================

type SeedJSON struct {
	WageOrders []WageOrderJSON `json:"wage_orders"`
	Holidays   []HolidayJSON   `json:"holidays"`
}

type WageOrderJSON struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	LessThanTen string `json:"less_than_ten"`
	TenOrMore   string `json:"ten_or_more"`
}

type HolidayJSON struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

// =============================================================================
// SEED FACTORY
// =============================================================================

type SeedFactory struct{}

func NewSeedFactory() *SeedFactory {
	return &SeedFactory{}
}

// ParseSeed decodes a seed document into engine snapshots. Records without
// an explicit id get a generated one.
func (f *SeedFactory) ParseSeed(raw string) ([]wage.WageOrder, []wage.Holiday, error) {
	var seed SeedJSON
	if err := json.Unmarshal([]byte(raw), &seed); err != nil {
		return nil, nil, fmt.Errorf("invalid seed JSON: %w", err)
	}

	orders := make([]wage.WageOrder, 0, len(seed.WageOrders))
	for _, o := range seed.WageOrders {
		order, err := f.parseWageOrder(o)
		if err != nil {
			return nil, nil, err
		}
		orders = append(orders, order)
	}

	holidays := make([]wage.Holiday, 0, len(seed.Holidays))
	for _, h := range seed.Holidays {
		holiday, err := f.parseHoliday(h)
		if err != nil {
			return nil, nil, err
		}
		holidays = append(holidays, holiday)
	}

	return orders, holidays, nil
}

func (f *SeedFactory) parseWageOrder(o WageOrderJSON) (wage.WageOrder, error) {
	date, ok := wage.ParseDate(o.Date)
	if !ok {
		return wage.WageOrder{}, fmt.Errorf("wage order %q: invalid date %q", o.Name, o.Date)
	}
	lessThanTen, err := decimal.NewFromString(o.LessThanTen)
	if err != nil {
		return wage.WageOrder{}, fmt.Errorf("wage order %q: invalid less_than_ten rate %q", o.Name, o.LessThanTen)
	}
	tenOrMore, err := decimal.NewFromString(o.TenOrMore)
	if err != nil {
		return wage.WageOrder{}, fmt.Errorf("wage order %q: invalid ten_or_more rate %q", o.Name, o.TenOrMore)
	}

	id := o.ID
	if id == "" {
		id = uuid.NewString()
	}
	return wage.WageOrder{
		ID:          id,
		Name:        o.Name,
		Date:        date,
		LessThanTen: lessThanTen,
		TenOrMore:   tenOrMore,
	}, nil
}

func (f *SeedFactory) parseHoliday(h HolidayJSON) (wage.Holiday, error) {
	date, ok := wage.ParseDate(h.Date)
	if !ok {
		return wage.Holiday{}, fmt.Errorf("holiday %q: invalid date %q", h.Name, h.Date)
	}

	typ := wage.HolidayType(h.Type)
	if typ != wage.HolidayRegular && typ != wage.HolidaySpecial {
		return wage.Holiday{}, fmt.Errorf("holiday %q: unknown type %q", h.Name, h.Type)
	}

	id := h.ID
	if id == "" {
		id = uuid.NewString()
	}
	return wage.Holiday{ID: id, Name: h.Name, Date: date, Type: typ}, nil
}
