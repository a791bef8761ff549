package parameter

// Player cursor
const (
	// CursorSpeedBase is held-key cursor travel per tick at reference scale
	CursorSpeedBase = 9.0
)
