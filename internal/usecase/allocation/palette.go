package allocation

// DefaultPalette is the dashboard's category palette, indexed by ColorIndex
var DefaultPalette = []string{
	"#4F46E5",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#06B6D4",
	"#EC4899",
	"#84CC16",
}

// ColorFor returns the palette color of a rank. The palette must not be empty.
func ColorFor(palette []string, rank int) string {
	return palette[ColorIndex(rank, len(palette))]
}
