package config

// Layout constants.
const (
	// CellAspect is the height of a terminal cell divided by its width.
	CellAspect = 2.0

	// MinDonutRows is the smallest square side, in rows, that still fits the ring and text.
	MinDonutRows = 12

	// ProgressWidth is the width of the compact progress bar.
	ProgressWidth = 30

	// SettingsPanelWidth is the width of the settings panel.
	SettingsPanelWidth = 34
)

// Glyphs drawn for the ring and the controls.
const (
	RingGlyph  = "█"
	TrackGlyph = "░"
	PlayGlyph  = "▶"
	PauseGlyph = "⏸"
	ResetGlyph = "↺"
)
