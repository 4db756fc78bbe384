package syncwall

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/syncwall/pkg/adapters/logger"
	"github.com/user/syncwall/pkg/adapters/osfilesystem"
	"github.com/user/syncwall/pkg/mocks"
	"github.com/user/syncwall/pkg/orchestrator"
	"github.com/user/syncwall/pkg/palette"
	"github.com/user/syncwall/pkg/pipeline"
	"github.com/user/syncwall/pkg/ports"
)

func encodeCover(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if y < 20 {
				img.Set(x, y, color.RGBA{R: 220, G: 40, B: 40, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 30, G: 30, B: 120, A: 255})
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode cover: %v", err)
	}
	return buf.Bytes()
}

func newTestEngine(t *testing.T, build func(*ConfigBuilder)) (*Engine, string) {
	t.Helper()
	dir := t.TempDir()
	b := NewConfigBuilder().
		WithDisplay(320, 180).
		WithOutputPath(filepath.Join(dir, "ImageCache", "finalImage.png"))
	if build != nil {
		build(b)
	}
	e, err := New(b.Build(), osfilesystem.New(), rand.New(rand.NewSource(3)), logger.NewNoop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e, dir
}

func TestEngine_RenderSplitFromLocalCover(t *testing.T) {
	e, dir := newTestEngine(t, nil)

	coverPath := filepath.Join(dir, "cover.png")
	if err := os.WriteFile(coverPath, encodeCover(t), 0644); err != nil {
		t.Fatalf("write cover: %v", err)
	}

	cover, err := e.LoadCover(context.Background(), coverPath)
	if err != nil {
		t.Fatalf("LoadCover failed: %v", err)
	}

	result, err := e.Render(context.Background(), pipeline.RenderRequest{
		Mode:   pipeline.ModeSplit,
		Cover:  cover,
		Title:  "Song",
		Artist: "Artist",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if result.Colors.Flat() {
		t.Errorf("expected two distinct colors from a two-tone cover, got %v", result.Colors)
	}

	data, err := os.ReadFile(e.OutputPath())
	if err != nil {
		t.Fatalf("expected wallpaper file: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("expected PNG wallpaper: %v", err)
	}
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 180 {
		t.Errorf("expected 320x180, got %v", img.Bounds())
	}
}

func TestEngine_FixedColors(t *testing.T) {
	pair := palette.NewPair(palette.Color{R: 10, G: 200, B: 10}, palette.Color{R: 10, G: 10, B: 200})
	e, _ := newTestEngine(t, func(b *ConfigBuilder) {
		b.WithColors(pair).WithModes(pipeline.ModeBlurred)
	})

	cover, err := e.renderer.DecodeImage(encodeCover(t), ports.FormatPNG)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	result, err := e.Render(context.Background(), pipeline.RenderRequest{Cover: cover})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if result.Mode != pipeline.ModeBlurred {
		t.Errorf("expected the only enabled mode, got %s", result.Mode)
	}
	if result.Colors != pair {
		t.Errorf("expected configured colors, got %v", result.Colors)
	}
}

func TestEngine_LoadCoverFromURL(t *testing.T) {
	cover := encodeCover(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(cover)
	}))
	defer srv.Close()

	e, _ := newTestEngine(t, nil)
	img, err := e.LoadCover(context.Background(), srv.URL+"/cover.png")
	if err != nil {
		t.Fatalf("LoadCover failed: %v", err)
	}
	if img.Bounds().Dx() != 40 {
		t.Errorf("expected 40px cover, got %v", img.Bounds())
	}
}

func TestEngine_LoadCoverWithFetcher(t *testing.T) {
	const url = "https://i.scdn.co/image/cover"
	fetcher := &mocks.AssetFetcher{Assets: map[string][]byte{url: encodeCover(t)}}

	e, _ := newTestEngine(t, nil)
	e.WithFetcher(fetcher)

	if _, err := e.LoadCover(context.Background(), url); err != nil {
		t.Fatalf("LoadCover failed: %v", err)
	}
	if _, err := e.LoadCover(context.Background(), "https://example.com/missing"); err == nil {
		t.Error("expected error for unknown asset")
	}
	if len(fetcher.Requested) != 2 {
		t.Errorf("expected 2 fetches, got %d", len(fetcher.Requested))
	}
}

func TestEngine_LoadCoverErrors(t *testing.T) {
	e, dir := newTestEngine(t, nil)

	if _, err := e.LoadCover(context.Background(), filepath.Join(dir, "missing.png")); !errors.Is(err, ports.ErrMissingAsset) {
		t.Errorf("expected ErrMissingAsset for missing file, got %v", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	os.WriteFile(garbage, []byte("not an image"), 0644)
	if _, err := e.LoadCover(context.Background(), garbage); !errors.Is(err, ports.ErrMissingAsset) {
		t.Errorf("expected ErrMissingAsset for undecodable file, got %v", err)
	}
}

func TestEngine_DebugOutput(t *testing.T) {
	debugDir := filepath.Join(t.TempDir(), "debug")
	e, _ := newTestEngine(t, func(b *ConfigBuilder) {
		b.WithDebugDir(debugDir)
	})

	cover, _ := e.renderer.DecodeImage(encodeCover(t), ports.FormatPNG)
	pair := palette.NewPair(palette.Black, palette.White)
	_, err := e.Render(context.Background(), pipeline.RenderRequest{
		Mode:   pipeline.ModeSplit,
		Colors: &pair,
		Cover:  cover,
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(debugDir, "request.json")); err != nil {
		t.Errorf("expected request.json in debug dir: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(debugDir, "layers"))
	if err != nil || len(entries) == 0 {
		t.Errorf("expected saved layers, got %d (%v)", len(entries), err)
	}
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"https://i.scdn.co/image/abc": true,
		"HTTP://example.com/a.jpg":    true,
		"/home/me/cover.jpg":          false,
		"cover.png":                   false,
		"ftp://example.com/a.jpg":     false,
	}
	for source, want := range tests {
		if got := IsURL(source); got != want {
			t.Errorf("IsURL(%q): expected %v, got %v", source, want, got)
		}
	}
}

func TestParseAnalysis(t *testing.T) {
	data := []byte(`{
		"track": {"duration": 10},
		"segments": [
			{"start": 0, "duration": 5, "loudness_max": -20},
			{"start": 5, "duration": 5, "loudness_max": 0}
		]
	}`)

	series, err := ParseAnalysis(data)
	if err != nil {
		t.Fatalf("ParseAnalysis failed: %v", err)
	}
	if len(series) != pipeline.SamplePoints {
		t.Fatalf("expected %d samples, got %d", pipeline.SamplePoints, len(series))
	}
	if series[99] != 1 {
		t.Errorf("expected loudest sample normalized to 1, got %v", series[99])
	}
	if series[0] < 0.099 || series[0] > 0.101 {
		t.Errorf("expected -20 dB to be 0.1 of the max, got %v", series[0])
	}

	if _, err := ParseAnalysis([]byte("{")); !errors.Is(err, ports.ErrDegenerateInput) {
		t.Errorf("expected ErrDegenerateInput for bad JSON, got %v", err)
	}
	if _, err := ParseAnalysis([]byte(`{"track": {"duration": 0}}`)); !errors.Is(err, ports.ErrDegenerateInput) {
		t.Errorf("expected ErrDegenerateInput for zero duration, got %v", err)
	}
}

func TestLyricExcerpt(t *testing.T) {
	excerpt, err := LyricExcerpt("[Verse 1]\nhello\n\n[Chorus]\nla la\nsing along\n")
	if err != nil {
		t.Fatalf("LyricExcerpt failed: %v", err)
	}
	if excerpt != "la la\nsing along" {
		t.Errorf("expected chorus, got %q", excerpt)
	}

	if _, err := LyricExcerpt("   "); !errors.Is(err, ports.ErrNoContent) {
		t.Errorf("expected ErrNoContent, got %v", err)
	}
}

func TestTextColor(t *testing.T) {
	light := palette.Color{R: 240, G: 240, B: 240}
	dark := palette.Color{R: 20, G: 20, B: 20}
	pair := palette.NewPair(light, dark)

	tests := []struct {
		name    string
		result  orchestrator.RunResult
		want    palette.Color
		hasText bool
	}{
		{"split on light", orchestrator.RunResult{Mode: pipeline.ModeSplit, Colors: pair}, palette.Black, true},
		{"linear on light", orchestrator.RunResult{Mode: pipeline.ModeGradient, Variant: pipeline.VariantLinear, Colors: pair}, palette.Black, true},
		{"radial uses darker", orchestrator.RunResult{Mode: pipeline.ModeGradient, Variant: pipeline.VariantRadial, Colors: pair}, palette.White, true},
		{"blurred has none", orchestrator.RunResult{Mode: pipeline.ModeBlurred, Colors: pair}, palette.Color{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TextColor(tt.result)
			if ok != tt.hasText || got != tt.want {
				t.Errorf("expected %v/%v, got %v/%v", tt.want, tt.hasText, got, ok)
			}
		})
	}
}
