package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoricalPoint is one observed value snapshot of an asset
type HistoricalPoint struct {
	Timestamp time.Time
	Value     decimal.Decimal
}

// HistoryEntry is a persisted historical point, keyed by its own ID
// Tracks the real-world value of an asset at a point in time
type HistoryEntry struct {
	ID        uuid.UUID
	AssetID   string
	Timestamp time.Time
	Value     decimal.Decimal
}

// Point strips the persistence identity from the entry
func (e HistoryEntry) Point() HistoricalPoint {
	return HistoricalPoint{Timestamp: e.Timestamp, Value: e.Value}
}
