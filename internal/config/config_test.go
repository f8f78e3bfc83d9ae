package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/casi-opea/ringed-laser-visualizer/internal/optics"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Render.CanvasWidth != 800 || cfg.Render.CanvasHeight != 400 {
		t.Errorf("unexpected canvas size %dx%d", cfg.Render.CanvasWidth, cfg.Render.CanvasHeight)
	}
	if cfg.Render.BaseScale != 4000 {
		t.Errorf("expected base scale 4000, got %g", cfg.Render.BaseScale)
	}
	if cfg.Params.Material != "lycopodium" {
		t.Errorf("expected lycopodium, got %s", cfg.Params.Material)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "laserdiff.yaml")

	cfg := DefaultConfig()
	cfg.Render.BaseScale = 2500
	cfg.Params.Material = "silica"
	cfg.Params.Zoom = 2.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Render.BaseScale != 2500 {
		t.Errorf("expected base scale 2500, got %g", loaded.Render.BaseScale)
	}
	if loaded.Params.Material != "silica" {
		t.Errorf("expected silica, got %s", loaded.Params.Material)
	}
	if loaded.Params.Zoom != 2.5 {
		t.Errorf("expected zoom 2.5, got %g", loaded.Params.Zoom)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("render:\n  base_scale: 1000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Render.BaseScale != 1000 {
		t.Errorf("expected base scale 1000, got %g", cfg.Render.BaseScale)
	}
	if cfg.Render.CanvasWidth != DefaultCanvasWidth {
		t.Errorf("expected default canvas width, got %d", cfg.Render.CanvasWidth)
	}
	if cfg.Params.WavelengthNm != 650 {
		t.Errorf("expected default wavelength, got %g", cfg.Params.WavelengthNm)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParameters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Material = "silica"
	cfg.Params.ParticleSizeUm = 99

	p, err := cfg.Parameters()
	if err != nil {
		t.Fatalf("parameters failed: %v", err)
	}
	if p.Material != optics.Silica {
		t.Errorf("expected silica, got %v", p.Material)
	}
	// Preset wins over whatever the file says.
	if p.ParticleSizeUm != 5 {
		t.Errorf("expected preset size 5, got %g", p.ParticleSizeUm)
	}
}

func TestParametersBadMaterial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Material = "adamantium"
	if _, err := cfg.Parameters(); err == nil {
		t.Error("expected error for unknown material")
	}
}
