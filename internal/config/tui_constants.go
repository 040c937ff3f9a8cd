package config

// Layout constants.
const (
	// ProgressWidth is the preferred width of the phase progress bar.
	ProgressWidth = 40

	// MinProgressWidth is the smallest progress bar worth drawing.
	MinProgressWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// InputWidth is the width of the minute inputs.
	InputWidth = 6
)

// Input constraints.
const (
	// MinuteCharLimit caps the minute inputs at three digits.
	MinuteCharLimit = 3
)
