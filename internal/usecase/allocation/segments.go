package allocation

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthdash/internal/domain"
)

// Segment is one slice of the allocation ring, in percent of the full circle
type Segment struct {
	Category    domain.Category
	ColorIndex  int
	StartOffset decimal.Decimal
	Length      decimal.Decimal
}

// Segments folds sorted buckets into consecutive ring segments.
// Each segment starts where the previous one ended.
func Segments(buckets []domain.AllocationBucket) []Segment {
	segments := make([]Segment, 0, len(buckets))
	offset := decimal.Zero
	for _, b := range buckets {
		segments = append(segments, Segment{
			Category:    b.Category,
			ColorIndex:  b.ColorIndex,
			StartOffset: offset,
			Length:      b.Percentage,
		})
		offset = offset.Add(b.Percentage)
	}
	return segments
}
