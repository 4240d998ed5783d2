package pricing

import (
	"errors"
	"fmt"
	"math"

	"app/internal/domain/model"
)

var ErrUnknownItem = errors.New("unknown menu item in request")

// Config carries the money constants so tests can inject their own instead
// of reading ambient globals.
type Config struct {
	MinPriceLkr      int64
	CommissionRate   float64
	RiderFeePerKmLkr int64
}

func DefaultConfig() Config {
	return Config{
		MinPriceLkr:      50,
		CommissionRate:   0.10,
		RiderFeePerKmLkr: 25,
	}
}

// Engine computes line totals, deal discounts, commission and rider fee.
// All functions are pure; money is integer LKR, rounding half-up.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the constants the engine was built with, for callers that
// record them on the order.
func (e *Engine) Config() Config {
	return e.cfg
}

// DiscountedPrice applies one deal to one list price. The result is clamped
// to [MinPriceLkr, original].
func (e *Engine) DiscountedPrice(original int64, dtype model.DiscountType, value int64) int64 {
	discounted := original
	switch dtype {
	case model.DiscountPercent:
		discounted = roundHalfUp(float64(original) * (1 - float64(value)/100))
	case model.DiscountFlatLkr:
		discounted = original - value
	}
	if discounted < e.cfg.MinPriceLkr {
		discounted = e.cfg.MinPriceLkr
	}
	if discounted > original {
		discounted = original
	}
	return discounted
}

// DealPrice is the resolved discount for one menu item.
type DealPrice struct {
	PriceLkr int64
	DealID   int64
}

// ResolveDealPrices builds itemID -> discounted price for the given deals.
// Deals must already be filtered to the current validity window and sorted
// deterministically (start_at, then id); the first deal referencing an item
// wins, later deals are ignored for that item. The result is used once at
// placement and never persisted.
func (e *Engine) ResolveDealPrices(activeDeals []model.FlashDeal, items []model.MenuItem) map[int64]DealPrice {
	byID := make(map[int64]model.MenuItem, len(items))
	for _, m := range items {
		byID[m.ID] = m
	}

	result := make(map[int64]DealPrice)
	for _, deal := range activeDeals {
		for _, it := range deal.Items {
			if _, done := result[it.MenuItemID]; done {
				continue
			}
			m, ok := byID[it.MenuItemID]
			if !ok {
				continue
			}
			result[it.MenuItemID] = DealPrice{
				PriceLkr: e.DiscountedPrice(m.PriceLkr, deal.DiscountType, deal.DiscountValue),
				DealID:   deal.ID,
			}
		}
	}
	return result
}

// RequestedItem is one {menuItemId, qty} pair from the placement request.
type RequestedItem struct {
	MenuItemID int64
	Qty        int64
}

// BuildLineItems snapshots name and unit price per requested item and sums
// the subtotal. The caller must already have restricted byID to the target
// shop, available items and the enforced food scope.
func (e *Engine) BuildLineItems(
	requested []RequestedItem,
	byID map[int64]model.MenuItem,
	dealPrices map[int64]DealPrice,
) ([]model.OrderItem, int64, error) {
	lineItems := make([]model.OrderItem, 0, len(requested))
	var subtotal int64

	for _, r := range requested {
		m, ok := byID[r.MenuItemID]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %d", ErrUnknownItem, r.MenuItemID)
		}
		unit := m.PriceLkr
		if dp, ok := dealPrices[r.MenuItemID]; ok {
			unit = dp.PriceLkr
		}
		lineTotal := unit * r.Qty
		lineItems = append(lineItems, model.OrderItem{
			MenuItemID:           m.ID,
			NameSnapshot:         m.Name,
			UnitPriceLkrSnapshot: unit,
			Qty:                  r.Qty,
			LineTotalLkr:         lineTotal,
		})
		subtotal += lineTotal
	}

	return lineItems, subtotal, nil
}

// Commission is the platform's cut of the subtotal, recorded but not added
// to what the student pays.
func (e *Engine) Commission(subtotal int64) int64 {
	return roundHalfUp(float64(subtotal) * e.cfg.CommissionRate)
}

// RiderFee is the distance-based amount owed to the rider.
func (e *Engine) RiderFee(distanceKm float64) int64 {
	return roundHalfUp(distanceKm * float64(e.cfg.RiderFeePerKmLkr))
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
