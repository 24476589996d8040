package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hamzaanis/openedx-client/internal/model"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.APIBaseURL == "" {
		t.Error("APIBaseURL should have a default")
	}
	if settings.MaxConcurrentDownloads <= 0 {
		t.Error("MaxConcurrentDownloads should be positive")
	}
	if settings.Quality() != model.QualityAuto {
		t.Errorf("default quality = %v, want auto", settings.Quality())
	}
	if !settings.UseVideoPipeline {
		t.Error("UseVideoPipeline should default to true")
	}
	if settings.Language != "en" {
		t.Errorf("Language = %q, want en", settings.Language)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	settings := DefaultSettings()
	settings.APIBaseURL = "https://courses.example.org"
	settings.SetQuality(model.QualityMobileHigh)
	settings.EnablePrograms = true

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.APIBaseURL != "https://courses.example.org" {
		t.Errorf("APIBaseURL = %q", loaded.APIBaseURL)
	}
	if loaded.Quality() != model.QualityMobileHigh {
		t.Errorf("Quality = %v, want mobile_high", loaded.Quality())
	}
	if !loaded.ProgramsEnabled() {
		t.Error("ProgramsEnabled should be true after round trip")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.MaxConcurrentDownloads != DefaultSettings().MaxConcurrentDownloads {
		t.Error("missing file should fall back to defaults")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("EDX_API_BASE_URL", "https://override.example.org")
	t.Setenv("EDX_VIDEO_QUALITY", "desktop_mp4")

	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if settings.APIBaseURL != "https://override.example.org" {
		t.Errorf("APIBaseURL = %q, env override not applied", settings.APIBaseURL)
	}
	if settings.Quality() != model.QualityDesktop {
		t.Errorf("Quality = %v, want desktop", settings.Quality())
	}
}

func TestLoadDefault_EnvOverride(t *testing.T) {
	t.Setenv("EDX_ACCESS_TOKEN", "token-123")
	t.Setenv("EDX_API_BASE_URL", "https://env.example.org")

	settings := LoadDefault()
	if settings.AccessToken != "token-123" {
		t.Errorf("AccessToken = %q, env override not applied", settings.AccessToken)
	}
	if settings.APIBaseURL != "https://env.example.org" {
		t.Errorf("APIBaseURL = %q, env override not applied", settings.APIBaseURL)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestQuality_UnknownTagFallsBack(t *testing.T) {
	settings := DefaultSettings()
	settings.VideoDownloadQuality = "8k"

	if settings.Quality() != model.QualityAuto {
		t.Errorf("Quality = %v, want auto fallback", settings.Quality())
	}
}

func TestToPathConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.PlaylistFormat = "pls"

	cfg := settings.ToPathConfig()
	if cfg.PlaylistExtension != ".pls" {
		t.Errorf("PlaylistExtension = %q, want .pls", cfg.PlaylistExtension)
	}

	settings.PlaylistFormat = "m3u"
	if settings.ToPathConfig().PlaylistExtension != ".m3u" {
		t.Errorf("PlaylistExtension should be .m3u for m3u format")
	}
}
