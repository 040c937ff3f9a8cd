package config

import "time"

// Timer defaults.
const (
	DefaultStandMinutes = 10
	DefaultSitMinutes   = 10
	MinPhaseMinutes     = 1
	MaxPhaseMinutes     = 999
	TickInterval        = time.Second
)

// Display strings.
const (
	IdleTitle = "Stand Up Reminder"
)

// Audio.
const (
	DefaultVolume = 0.0
	MinVolume     = -5.0
	MaxVolume     = 2.0
)

// Application settings.
const (
	AppName        = "standup"
	DBFileName     = "history.db"
	ConfigFileName = "config.yml"
	LogFileName    = "standup.log"
	EnvPrefix      = "STANDUP"
)
