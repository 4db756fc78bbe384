package pipeline

import (
	"errors"
	"reflect"
	"testing"

	"github.com/user/syncwall/pkg/ports"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"albumImage", ModeSplit, false},
		{"split", ModeSplit, false},
		{"gradient", ModeGradient, false},
		{"Blurred", ModeBlurred, false},
		{"blur", ModeBlurred, false},
		{"waveform", ModeWaveform, false},
		{"lyric", ModeLyric, false},
		{"lyricCard", ModeLyric, false},
		{"controllerImage", ModeController, false},
		{" controller ", ModeController, false},
		{"slideshow", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseMode_AllModesRoundTrip(t *testing.T) {
	for _, m := range AllModes {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("expected %s to parse to itself, got %s (%v)", m, got, err)
		}
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input   string
		want    GradientVariant
		wantErr bool
	}{
		{"", VariantAuto, false},
		{"auto", VariantAuto, false},
		{"linear", VariantLinear, false},
		{"RADIAL", VariantRadial, false},
		{"ellipse", VariantRadial, false},
		{"conic", VariantAuto, true},
	}

	for _, tt := range tests {
		got, err := ParseVariant(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVariant(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseVariant(%q): expected %s, got %s", tt.input, tt.want, got)
		}
	}
}

func TestDisplay(t *testing.T) {
	d := Display{Width: 1920, Height: 1080}
	if err := d.Validate(); err != nil {
		t.Errorf("expected valid display, got %v", err)
	}
	if d.MinDim() != 1080 || d.MaxDim() != 1920 {
		t.Errorf("expected min 1080 max 1920, got %d %d", d.MinDim(), d.MaxDim())
	}

	for _, bad := range []Display{{0, 1080}, {1920, 0}, {-1, 5}} {
		if err := bad.Validate(); !errors.Is(err, ports.ErrDegenerateInput) {
			t.Errorf("expected ErrDegenerateInput for %v, got %v", bad, err)
		}
	}
}

func TestRenderRequest_Lines(t *testing.T) {
	tests := []struct {
		title, artist string
		want          []string
	}{
		{"Song", "Artist", []string{"Song", "Artist"}},
		{"Song", "", []string{"Song"}},
		{"", "Artist", []string{"Artist"}},
		{"", "", []string{}},
		{"Bohemian\nRhapsody", "Queen", []string{"Bohemian", "Rhapsody", "Queen"}},
		{"Song", "Simon\r\nGarfunkel", []string{"Song", "Simon", "Garfunkel"}},
	}
	for _, tt := range tests {
		req := RenderRequest{Title: tt.title, Artist: tt.artist}
		if got := req.Lines(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lines(%q, %q): expected %q, got %q", tt.title, tt.artist, tt.want, got)
		}
	}
}
