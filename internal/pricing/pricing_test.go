package pricing

import (
	"testing"
	"time"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig())
}

func TestDiscountedPrice_Percent(t *testing.T) {
	e := newTestEngine()

	// 20% off 500 = 400
	assert.Equal(t, int64(400), e.DiscountedPrice(500, model.DiscountPercent, 20))

	// rounding half-up: 15% off 333 = 283.05 -> 283, 25% off 502 = 376.5 -> 377
	assert.Equal(t, int64(283), e.DiscountedPrice(333, model.DiscountPercent, 15))
	assert.Equal(t, int64(377), e.DiscountedPrice(502, model.DiscountPercent, 25))

	// 90% off a cheap item clamps to the floor
	assert.Equal(t, int64(50), e.DiscountedPrice(100, model.DiscountPercent, 90))
}

func TestDiscountedPrice_Flat(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, int64(450), e.DiscountedPrice(500, model.DiscountFlatLkr, 50))

	// flat 600 off 600 would be zero; clamps to the 50 floor
	assert.Equal(t, int64(50), e.DiscountedPrice(600, model.DiscountFlatLkr, 600))
}

// A discount never raises the price and never goes below the floor.
func TestDiscountedPrice_Bounds(t *testing.T) {
	e := newTestEngine()

	prices := []int64{50, 60, 100, 333, 500, 1999, 50000}
	for _, p := range prices {
		for _, pct := range []int64{1, 10, 50, 90} {
			got := e.DiscountedPrice(p, model.DiscountPercent, pct)
			assert.LessOrEqual(t, got, p, "percent %d on %d", pct, p)
			assert.GreaterOrEqual(t, got, int64(50), "percent %d on %d", pct, p)
		}
		for _, flat := range []int64{10, 100, 1000, 100000} {
			got := e.DiscountedPrice(p, model.DiscountFlatLkr, flat)
			assert.LessOrEqual(t, got, p, "flat %d on %d", flat, p)
			assert.GreaterOrEqual(t, got, int64(50), "flat %d on %d", flat, p)
		}
	}
}

func TestResolveDealPrices_FirstDealWins(t *testing.T) {
	e := newTestEngine()

	items := []model.MenuItem{
		{ID: 1, PriceLkr: 500},
		{ID: 2, PriceLkr: 300},
	}

	// deals arrive already sorted (start_at, id); both reference item 1
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	deals := []model.FlashDeal{
		{
			ID: 7, DiscountType: model.DiscountPercent, DiscountValue: 20,
			StartAt: base,
			Items:   []model.FlashDealItem{{MenuItemID: 1}},
		},
		{
			ID: 8, DiscountType: model.DiscountPercent, DiscountValue: 50,
			StartAt: base.Add(time.Hour),
			Items:   []model.FlashDealItem{{MenuItemID: 1}, {MenuItemID: 2}},
		},
	}

	resolved := e.ResolveDealPrices(deals, items)

	// item 1 keeps the earlier (smaller) discount; the 50% deal is ignored
	assert.Equal(t, DealPrice{PriceLkr: 400, DealID: 7}, resolved[1])
	// item 2 only appears in the second deal
	assert.Equal(t, DealPrice{PriceLkr: 150, DealID: 8}, resolved[2])
}

func TestResolveDealPrices_IgnoresForeignItems(t *testing.T) {
	e := newTestEngine()

	items := []model.MenuItem{{ID: 1, PriceLkr: 500}}
	deals := []model.FlashDeal{
		{ID: 7, DiscountType: model.DiscountPercent, DiscountValue: 20,
			Items: []model.FlashDealItem{{MenuItemID: 99}}},
	}

	resolved := e.ResolveDealPrices(deals, items)
	assert.Empty(t, resolved)
}

func TestBuildLineItems(t *testing.T) {
	e := newTestEngine()

	byID := map[int64]model.MenuItem{
		1: {ID: 1, Name: "Rice & Curry (Chicken)", PriceLkr: 500},
		2: {ID: 2, Name: "Pol Sambol", PriceLkr: 150},
	}
	dealPrices := map[int64]DealPrice{
		1: {PriceLkr: 400, DealID: 7},
	}

	requested := []RequestedItem{
		{MenuItemID: 1, Qty: 2},
		{MenuItemID: 2, Qty: 2},
	}

	lineItems, subtotal, err := e.BuildLineItems(requested, byID, dealPrices)
	assert.NoError(t, err)
	assert.Len(t, lineItems, 2)

	// deal price is snapshotted, not the list price
	assert.Equal(t, int64(400), lineItems[0].UnitPriceLkrSnapshot)
	assert.Equal(t, "Rice & Curry (Chicken)", lineItems[0].NameSnapshot)
	assert.Equal(t, int64(800), lineItems[0].LineTotalLkr)

	assert.Equal(t, int64(150), lineItems[1].UnitPriceLkrSnapshot)
	assert.Equal(t, int64(300), lineItems[1].LineTotalLkr)

	// subtotal is the sum of line totals
	assert.Equal(t, int64(1100), subtotal)
}

func TestBuildLineItems_UnknownItem(t *testing.T) {
	e := newTestEngine()

	byID := map[int64]model.MenuItem{1: {ID: 1, PriceLkr: 500}}
	_, _, err := e.BuildLineItems([]RequestedItem{{MenuItemID: 2, Qty: 1}}, byID, nil)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

// Placement scenario: 2x500 + 1x300 = 1300 subtotal, commission 130 at 10%,
// rider fee 100 for 4km at 25/km. The student still pays subtotal only.
func TestPlacementScenarioAmounts(t *testing.T) {
	e := newTestEngine()

	byID := map[int64]model.MenuItem{
		1: {ID: 1, Name: "Rice & Curry", PriceLkr: 500},
		2: {ID: 2, Name: "Watalappan", PriceLkr: 300},
	}
	requested := []RequestedItem{
		{MenuItemID: 1, Qty: 2},
		{MenuItemID: 2, Qty: 1},
	}

	_, subtotal, err := e.BuildLineItems(requested, byID, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1300), subtotal)
	assert.Equal(t, int64(130), e.Commission(subtotal))
	assert.Equal(t, int64(100), e.RiderFee(4))
}

func TestCommissionRounding(t *testing.T) {
	e := newTestEngine()

	// 10% of 1305 = 130.5 -> 131 (half-up)
	assert.Equal(t, int64(131), e.Commission(1305))
	// 10% of 1304 = 130.4 -> 130
	assert.Equal(t, int64(130), e.Commission(1304))
	assert.Equal(t, int64(0), e.Commission(0))
}

func TestRiderFeeRounding(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, int64(0), e.RiderFee(0))
	// 1.5km * 25 = 37.5 -> 38
	assert.Equal(t, int64(38), e.RiderFee(1.5))
	// 3.01km * 25 = 75.25 -> 75
	assert.Equal(t, int64(75), e.RiderFee(3.01))
	assert.Equal(t, int64(5000), e.RiderFee(200))
}
