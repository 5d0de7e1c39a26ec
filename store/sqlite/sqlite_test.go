package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/mosesalcantara/wagecalc/store/sqlite"
	"github.com/mosesalcantara/wagecalc/wage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedEstablishment(t *testing.T, store *sqlite.Store) wage.Establishment {
	est := wage.Establishment{ID: "est-1", Name: "Island Traders", Size: wage.SizeTenOrMore}
	require.NoError(t, store.CreateEstablishment(context.Background(), est))
	return est
}

func seedEmployee(t *testing.T, store *sqlite.Store, estID string) wage.Employee {
	emp := wage.Employee{
		ID:              "emp-1",
		EstablishmentID: estID,
		FirstName:       "Juan",
		LastName:        "Dela Cruz",
		Rate:            decimal.RequireFromString("380"),
		StartDay:        "Monday",
		EndDay:          "Friday",
	}
	require.NoError(t, store.CreateEmployee(context.Background(), emp))
	return emp
}

// =============================================================================
// ESTABLISHMENT / EMPLOYEE TESTS
// =============================================================================

func TestEstablishmentCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	est := seedEstablishment(t, store)

	got, err := store.GetEstablishment(ctx, est.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, est, *got)

	est.Name = "Island Traders Inc."
	est.Size = wage.SizeLessThanTen
	require.NoError(t, store.UpdateEstablishment(ctx, est))

	got, err = store.GetEstablishment(ctx, est.ID)
	require.NoError(t, err)
	assert.Equal(t, "Island Traders Inc.", got.Name)
	assert.Equal(t, wage.SizeLessThanTen, got.Size)

	require.NoError(t, store.DeleteEstablishment(ctx, est.ID))
	got, err = store.GetEstablishment(ctx, est.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetEstablishment_UnknownIDReturnsNil(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetEstablishment(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEmployeeRoundTrip_PreservesRateAndWorkWeek(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	est := seedEstablishment(t, store)
	emp := seedEmployee(t, store, est.ID)

	got, err := store.GetEmployee(ctx, emp.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Rate.Equal(decimal.RequireFromString("380")))
	assert.Equal(t, "Monday", got.StartDay)
	assert.Equal(t, "Friday", got.EndDay)

	list, err := store.ListEmployees(ctx, est.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// =============================================================================
// WAGE ORDER / HOLIDAY TESTS
// =============================================================================

func TestListWageOrders_SortedByEffectiveDate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Insert out of order on purpose.
	orders := []wage.WageOrder{
		{ID: "wo-14", Name: "RB-MIMAROPA-14", Date: wage.NewDate(2024, time.December, 23),
			LessThanTen: decimal.RequireFromString("404"), TenOrMore: decimal.RequireFromString("430")},
		{ID: "wo-12", Name: "RB-MIMAROPA-12", Date: wage.NewDate(2022, time.June, 10),
			LessThanTen: decimal.RequireFromString("329"), TenOrMore: decimal.RequireFromString("355")},
	}
	for _, w := range orders {
		require.NoError(t, store.CreateWageOrder(ctx, w))
	}

	got, err := store.ListWageOrders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "wo-12", got[0].ID)
	assert.Equal(t, "wo-14", got[1].ID)
	assert.True(t, got[1].TenOrMore.Equal(decimal.RequireFromString("430")))
}

func TestHolidayRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	h := wage.Holiday{
		ID:   "h-1",
		Name: "New Year's Day",
		Date: wage.NewDate(2024, time.January, 1),
		Type: wage.HolidayRegular,
	}
	require.NoError(t, store.CreateHoliday(ctx, h))

	got, err := store.ListHolidays(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, h, got[0])

	require.NoError(t, store.DeleteHoliday(ctx, h.ID))
	got, err = store.ListHolidays(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// =============================================================================
// VIOLATION DOCUMENT TESTS
// =============================================================================

func TestViolations_WholesaleReplaceRoundTrip(t *testing.T) {
	// GIVEN: a saved document
	// WHEN: replacing it with a new one
	// THEN: only the latest document survives, structurally identical

	store := newTestStore(t)
	ctx := context.Background()

	est := seedEstablishment(t, store)
	emp := seedEmployee(t, store, est.ID)

	first := wage.NewViolationValues(decimal.RequireFromString("380"))
	require.NoError(t, store.ReplaceViolations(ctx, emp.ID, first))

	second := wage.ViolationValues{
		wage.CategoryBasicWage: {
			Periods: []wage.Period{
				{StartDate: "2024-01-01", EndDate: "2024-01-31", DaysOrHours: "26", Rate: "380"},
			},
		},
		wage.CategoryThirteenthMonth: {
			Periods:  []wage.Period{{StartDate: "2024-01-01", EndDate: "2024-12-31", DaysOrHours: "300", Rate: "400"}},
			Received: "3000",
		},
	}
	require.NoError(t, store.ReplaceViolations(ctx, emp.ID, second))

	got, err := store.GetViolations(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestGetViolations_NeverSavedReturnsNil(t *testing.T) {
	store := newTestStore(t)
	est := seedEstablishment(t, store)
	emp := seedEmployee(t, store, est.ID)

	got, err := store.GetViolations(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteEmployee_CascadesViolationDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	est := seedEstablishment(t, store)
	emp := seedEmployee(t, store, est.ID)
	require.NoError(t, store.ReplaceViolations(ctx, emp.ID, wage.NewViolationValues(decimal.Zero)))

	require.NoError(t, store.DeleteEmployee(ctx, emp.ID))

	got, err := store.GetViolations(ctx, emp.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
