package config

import "testing"

func TestConstants(t *testing.T) {
	if DefaultStandMinutes < MinPhaseMinutes {
		t.Fatalf("DefaultStandMinutes must be at least %d", MinPhaseMinutes)
	}
	if DefaultSitMinutes < MinPhaseMinutes {
		t.Fatalf("DefaultSitMinutes must be at least %d", MinPhaseMinutes)
	}
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if IdleTitle == "" {
		t.Fatalf("IdleTitle should not be empty")
	}
	if AppName == "" || DBFileName == "" || ConfigFileName == "" {
		t.Fatalf("file names should not be empty")
	}
	if MinVolume >= MaxVolume {
		t.Fatalf("volume range is empty")
	}
	if MinProgressWidth > ProgressWidth {
		t.Fatalf("MinProgressWidth exceeds ProgressWidth")
	}
}
