// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItineraryAnalytics holds cumulative counters for one itinerary.
// Views are bumped by a store-side atomic increment; purchase count and
// revenue are bumped inside the same transaction that records the purchase,
// so the counters never drift from the ledger.
type ItineraryAnalytics struct {
	ItineraryID   uuid.UUID `json:"itinerary_id"`
	ViewCount     int64     `json:"view_count"`
	PurchaseCount int64     `json:"purchase_count"`
	Revenue       float64   `json:"revenue"` // Gross revenue in major currency units.
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreatorAnalyticsSummary rolls up counters across every itinerary a creator
// owns. A creator with no itineraries gets a zero-valued summary, not an error.
type CreatorAnalyticsSummary struct {
	TotalViews     int64                 `json:"total_views"`
	TotalPurchases int64                 `json:"total_purchases"`
	TotalRevenue   float64               `json:"total_revenue"`
	Itineraries    []*ItineraryAnalytics `json:"itineraries"`
}
