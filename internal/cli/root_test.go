package cli

import "testing"

func TestSetVersion(t *testing.T) {
	tests := []struct {
		name                  string
		version, commit, date string
	}{
		{"release build", "v1.2.0", "8f3a9c1", "2026-08-27T00:00:00Z"},
		{"dev build", "dev", "none", "unknown"},
		{"empty ldflags", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.version, tt.commit, tt.date)

			if version != tt.version {
				t.Errorf("version = %q, want %q", version, tt.version)
			}
			if commit != tt.commit {
				t.Errorf("commit = %q, want %q", commit, tt.commit)
			}
			if date != tt.date {
				t.Errorf("date = %q, want %q", date, tt.date)
			}
		})
	}
}
