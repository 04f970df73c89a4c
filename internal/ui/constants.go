package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSearch   = "🔍"
	IconFilter   = "⏷"
	IconAsc      = "▲"
	IconDesc     = "▼"
	IconStats    = "📊"
	IconFolder   = "📁"
)

// Window sizing
const (
	WindowWidth  float32 = 1000
	WindowHeight float32 = 600
)

// Table sizing
const (
	NameColumnWidth       float32 = 320
	PopulationColumnWidth float32 = 140
	AreaColumnWidth       float32 = 140
	ContinentColumnWidth  float32 = 140
	SidePanelWidth        float32 = 220
)

// Dialog sizing
const (
	FilterDialogWidth    float32 = 420
	FilterDialogHeight   float32 = 380
	StatsDialogWidth     float32 = 460
	StatsDialogHeight    float32 = 560
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 260
	ChartWidth                   = 420
	ChartHeight                  = 220
)
