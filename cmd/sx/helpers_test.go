package main

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		precision int
		value     float64
		want      string
	}{
		{-1, 3, "3"},
		{-1, 3.75, "3.75"},
		{-1, 1215, "1215"},
		{0, 3.75, "4"},
		{2, 3, "3.00"},
		{2, 3.456, "3.46"},
	}
	for _, tt := range tests {
		ctx := &cmdContext{cfg: defaultConfig()}
		ctx.cfg.Output.Precision = tt.precision
		if got := ctx.formatValue(tt.value); got != tt.want {
			t.Errorf("precision %d, value %g: expected %q, got %q",
				tt.precision, tt.value, tt.want, got)
		}
	}
}

func TestShouldUseTUI(t *testing.T) {
	tests := []struct {
		mode    string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"ON", true, false},
		{"off", false, false},
		{" off ", false, false},
		{"bogus", false, true},
	}
	for _, tt := range tests {
		got, err := shouldUseTUI(tt.mode)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Mode %q: expected error", tt.mode)
			}
			continue
		}
		if err != nil {
			t.Errorf("Mode %q: unexpected error: %v", tt.mode, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Mode %q: expected %v, got %v", tt.mode, tt.want, got)
		}
	}
}

func TestUseColor_ExplicitModes(t *testing.T) {
	ctx := &cmdContext{cfg: defaultConfig()}

	ctx.cfg.Output.Color = "on"
	if !ctx.useColor(nil) {
		t.Error("Mode on must force color")
	}
	ctx.cfg.Output.Color = "off"
	if ctx.useColor(nil) {
		t.Error("Mode off must disable color")
	}
}

func TestCollectVersionInfo(t *testing.T) {
	info := collectVersionInfo()
	if info.Version == "" {
		t.Error("Expected a non-empty version")
	}
}
