package parameter

// Speed slider
const (
	SpeedMin  = 0.001
	SpeedMax  = 0.05
	SpeedStep = 0.001

	// SpeedLabelSuffix follows the planet name in every slider label
	SpeedLabelSuffix = " Speed: "
)

// Layout & Margins
const (
	// PanelWidth is the side panel width in cells including its border column
	PanelWidth = 30

	// PanelRowsPerSlider is label row + track row + spacer row
	PanelRowsPerSlider = 3

	// PanelRowsCompact drops the spacer row when the full layout does not fit
	PanelRowsCompact = 2

	// BottomMargin for the status bar
	BottomMargin = 1

	// MinSceneWidth below which the panel is hidden
	MinSceneWidth = 20
)

// Status bar
const (
	StatusHelp        = "space:rotation  tab:focus  ←/→:speed  q:quit"
	StatusRotationOn  = " ORBIT "
	StatusRotationOff = " PAUSE "

	// AudioStr marks the status bar when sound is enabled
	AudioStr = "♫ "
)

// Glyphs
const (
	GlyphStar       = '·'
	GlyphStarBright = '*'
	GlyphRing       = '·'
	GlyphBody       = '█'
	GlyphTrack      = '─'
	GlyphKnob       = '●'
)
