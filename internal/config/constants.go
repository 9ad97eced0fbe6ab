package config

import "time"

// Timer defaults.
const (
	TickInterval   = time.Second
	DefaultHours   = 0
	DefaultMinutes = 10
	DefaultSeconds = 0
)

// Colour defaults.
const (
	DefaultForeground = "#000000"
	DefaultBackground = "#ffffff"
	DefaultThemeName  = "light"
)

// Application settings.
const (
	AppName        = "donut"
	ConfigFileName = "config.yml"
	ThemesFileName = "themes.yml"
	LogFileName    = "debug.log"
	EnvPrefix      = "DONUT"
	DebugEnv       = "DONUT_DEBUG"
)

// Export defaults.
const (
	DefaultExportSize = 720
	MinExportSize     = 64
)
