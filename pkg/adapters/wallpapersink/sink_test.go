package wallpapersink

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/user/syncwall/pkg/adapters/ggrenderer"
	"github.com/user/syncwall/pkg/adapters/logger"
	"github.com/user/syncwall/pkg/adapters/osfilesystem"
	"github.com/user/syncwall/pkg/mocks"
	"github.com/user/syncwall/pkg/ports"
)

var testPath = filepath.Join("out", "wallpaper.png")

func TestSink_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return []byte("new"), nil
		},
	}
	sink := New(testPath, fs, renderer, logger.NewNoop())

	if sink.Path() != testPath {
		t.Errorf("expected path %s, got %s", testPath, sink.Path())
	}
	if err := sink.Write(image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile(testPath)
	if !ok || string(data) != "new" {
		t.Errorf("expected wallpaper content %q, got %q (exists=%v)", "new", data, ok)
	}
	if _, ok := fs.GetFile(testPath + ".tmp"); ok {
		t.Error("expected temporary file to be gone")
	}
}

func TestSink_RenameFailureKeepsPreviousWallpaper(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile(testPath, []byte("old"))
	fs.RenameFunc = func(oldPath, newPath string) error {
		return errors.New("disk full")
	}
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return []byte("new"), nil
		},
	}
	sink := New(testPath, fs, renderer, logger.NewNoop())

	err := sink.Write(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if !errors.Is(err, ports.ErrIOFailure) {
		t.Fatalf("expected ErrIOFailure, got %v", err)
	}

	data, _ := fs.GetFile(testPath)
	if string(data) != "old" {
		t.Errorf("expected previous wallpaper to survive, got %q", data)
	}
	if _, ok := fs.GetFile(testPath + ".tmp"); ok {
		t.Error("expected temporary file to be cleaned up")
	}
}

func TestSink_EncodeFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, errors.New("bad image")
		},
	}
	sink := New(testPath, fs, renderer, logger.NewNoop())

	err := sink.Write(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if !errors.Is(err, ports.ErrIOFailure) {
		t.Fatalf("expected ErrIOFailure, got %v", err)
	}
	if len(fs.GetAllFiles()) != 0 {
		t.Error("expected nothing to be written")
	}
}

func TestSink_NilImage(t *testing.T) {
	sink := New(testPath, mocks.NewFileSystem(), &mocks.Renderer{}, logger.NewNoop())

	if err := sink.Write(nil); !errors.Is(err, ports.ErrIOFailure) {
		t.Errorf("expected ErrIOFailure, got %v", err)
	}
}

func TestSink_WritesDecodablePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wallpaper.png")
	fs := osfilesystem.New()
	sink := New(path, fs, ggrenderer.New(), logger.NewNoop())

	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(3, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	if err := sink.Write(img); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("expected a valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 6 {
		t.Errorf("expected 8x6, got %v", decoded.Bounds())
	}
	r, g, b, _ := decoded.At(3, 2).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("expected pixel (10,20,30), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}
