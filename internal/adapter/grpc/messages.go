package grpc

import "time"

// Amounts and percentages travel as decimal strings to avoid float rounding

type GetViewModelRequest struct {
	Period     string   `json:"period"`
	SortKey    string   `json:"sort_key,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

type AssetView struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Value       string `json:"value"`
	Performance string `json:"performance"`
}

type AllocationView struct {
	Category   string `json:"category"`
	ShortLabel string `json:"short_label"`
	Value      string `json:"value"`
	Percentage string `json:"percentage"`
	ColorIndex int    `json:"color_index"`
	Color      string `json:"color"`
}

type SegmentView struct {
	Category    string `json:"category"`
	ColorIndex  int    `json:"color_index"`
	StartOffset string `json:"start_offset"`
	Length      string `json:"length"`
}

type SeriesPointView struct {
	Timestamp time.Time `json:"timestamp"`
	Value     string    `json:"value"`
}

type GetViewModelResponse struct {
	Period                  string            `json:"period"`
	TotalValue              string            `json:"total_value"`
	TotalPerformancePercent string            `json:"total_performance_percent"`
	TotalPerformanceValue   string            `json:"total_performance_value"`
	Assets                  []AssetView       `json:"assets"`
	Allocation              []AllocationView  `json:"allocation"`
	Segments                []SegmentView     `json:"segments"`
	Series                  []SeriesPointView `json:"series"`
}

type RecordValueRequest struct {
	AssetId   string     `json:"asset_id"`
	Value     string     `json:"value"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type RecordValueResponse struct {
	EntryId   string    `json:"entry_id"`
	Timestamp time.Time `json:"timestamp"`
}

type GetCorrelationRequest struct {
	Period string `json:"period"`
}

type CorrelationPair struct {
	AssetA      string  `json:"asset_a"`
	AssetB      string  `json:"asset_b"`
	Coefficient float64 `json:"coefficient"`
	Points      int     `json:"points"`
}

type GetCorrelationResponse struct {
	Pairs []CorrelationPair `json:"pairs"`
	Mean  float64           `json:"mean"`
	Min   float64           `json:"min"`
	Max   float64           `json:"max"`
}

type PlanContributionRequest struct {
	Contribution string            `json:"contribution"`
	Targets      map[string]string `json:"targets"`
}

type PlanContributionResponse struct {
	Contributions map[string]string `json:"contributions"`
	After         map[string]string `json:"after"`
}

type TrackAssetRequest struct {
	Id       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Value    string `json:"value"`
}

type TrackAssetResponse struct {
	Asset AssetView `json:"asset"`
}

type UntrackAssetRequest struct {
	AssetId string `json:"asset_id"`
}

type UntrackAssetResponse struct{}
