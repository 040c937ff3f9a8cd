package reminder

import (
	"fmt"

	"github.com/akyairhashvil/standup/internal/models"
)

// FormatTime renders seconds as m:ss. Minutes are not padded; negative input
// is shown as 0:00.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Title is the window title shown while a phase is counting down.
func Title(phase models.Phase, seconds int) string {
	return fmt.Sprintf("%s - Time to %s", FormatTime(seconds), phase.Label())
}
