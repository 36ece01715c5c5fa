package loop

import "testing"

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                         string
		termWidth, termHeight        int
		wantWidth, wantHeight        int
		wantOffsetCol, wantOffsetRow int
	}{
		{"small terminal fills", 80, 24, 80, 24, 0, 0},
		{"exact max no offset", maxRenderWidth, maxRenderHeight, maxRenderWidth, maxRenderHeight, 0, 0},
		{"wide terminal centers horizontally", 200, 50, maxRenderWidth, 50, 20, 0},
		{"tall terminal centers vertically", 120, 80, 120, maxRenderHeight, 0, 10},
		{"oversized both axes", 240, 100, maxRenderWidth, maxRenderHeight, 40, 20},
		{"odd surplus floors", 163, 61, maxRenderWidth, maxRenderHeight, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := clampTermSize(tt.termWidth, tt.termHeight)
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("render area %dx%d, want %dx%d", w, h, tt.wantWidth, tt.wantHeight)
			}
			if oc != tt.wantOffsetCol || or != tt.wantOffsetRow {
				t.Errorf("offset (%d,%d), want (%d,%d)", oc, or, tt.wantOffsetCol, tt.wantOffsetRow)
			}
		})
	}
}
