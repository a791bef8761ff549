package parameter

// Viewport-derived cell sizing
const (
	// ReferenceCellSize is the cell size all *Base speeds are tuned for
	ReferenceCellSize = 60.0

	// CompactCellSize is used when the viewport is narrower than CompactViewportWidth
	CompactCellSize      = 30.0
	CompactViewportWidth = 1000.0
)

// Scale holds every size and speed that follows the cell size
// One value per viewport; recomputed on resize
type Scale struct {
	CellSize   float64
	SafeRadius float64

	BuilderSpeed  float64
	BuilderRadius float64
	HelperSpeed   float64
	HelperRadius  float64
	CursorSpeed   float64

	BulletSpeed float64
	ArrowSpeed  float64
	OrbSpeed    float64
}

// NewScale derives the scale from viewport width
func NewScale(viewportWidth float64) Scale {
	if viewportWidth < CompactViewportWidth {
		return ScaleForCellSize(CompactCellSize)
	}
	return ScaleForCellSize(ReferenceCellSize)
}

// ScaleForCellSize derives the scale from an explicit cell size
// Non-positive sizes fall back to the reference size
func ScaleForCellSize(cellSize float64) Scale {
	if cellSize <= 0 {
		cellSize = ReferenceCellSize
	}
	ratio := cellSize / ReferenceCellSize
	return Scale{
		CellSize:      cellSize,
		SafeRadius:    cellSize * SafeRadiusCells,
		BuilderSpeed:  BuilderSpeedBase * ratio,
		BuilderRadius: BuilderRadiusBase * ratio,
		HelperSpeed:   HelperSpeedBase * ratio,
		HelperRadius:  cellSize * HelperRadiusCells,
		CursorSpeed:   CursorSpeedBase * ratio,
		BulletSpeed:   BulletSpeedBase * ratio,
		ArrowSpeed:    ArrowSpeedBase * ratio,
		OrbSpeed:      OrbSpeedBase * ratio,
	}
}

// Cells converts a cell count to world units
func (s Scale) Cells(n float64) float64 {
	return n * s.CellSize
}
