package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hamzaanis/openedx-client/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Platform settings
	APIBaseURL  string `json:"api_base_url"`
	AccessToken string `json:"access_token"`

	// Download settings
	DownloadsPath             string  `json:"downloads_path"`
	MaxConcurrentDownloads    int     `json:"max_concurrent_downloads"`
	DownloadMaxRetries        int     `json:"download_max_retries"`
	DownloadRetryCooldown     float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent     float64 `json:"download_retry_exponent"`
	AllowedFileSizeDifference float64 `json:"allowed_file_size_difference"`

	// Video settings
	VideoDownloadQuality string `json:"video_download_quality"` // hls, mobile_low, mobile_high, desktop_mp4
	UseVideoPipeline     bool   `json:"use_video_pipeline"`
	VideoFileNameFormat  string `json:"video_file_name_format"`

	// Thumbnail settings
	SaveThumbnails        bool `json:"save_thumbnails"`
	ThumbnailMaxSize      int  `json:"thumbnail_max_size"`
	ConvertThumbnailToJPG bool `json:"convert_thumbnail_to_jpg"`

	// Playlist settings
	CreatePlaylist         bool   `json:"create_playlist"`
	PlaylistFormat         string `json:"playlist_format"` // m3u, pls
	PlaylistFileNameFormat string `json:"playlist_file_name_format"`
	M3UExtended            bool   `json:"m3u_extended"`

	// Feature flags
	EnablePrograms bool `json:"enable_programs"`

	// Display settings
	Language string `json:"language"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		APIBaseURL: "https://courses.edx.org",

		DownloadsPath:             filepath.Join(homeDir, "Videos", "edX", "{org}", "{course}"),
		MaxConcurrentDownloads:    4,
		DownloadMaxRetries:        7,
		DownloadRetryCooldown:     0.2,
		DownloadRetryExponent:     4.0,
		AllowedFileSizeDifference: 0.05,

		VideoDownloadQuality: model.QualityAuto.Tag(),
		UseVideoPipeline:     true,
		VideoFileNameFormat:  "{num} {title}.mp4",

		SaveThumbnails:        false,
		ThumbnailMaxSize:      1000,
		ConvertThumbnailToJPG: true,

		CreatePlaylist:         false,
		PlaylistFormat:         "m3u",
		PlaylistFileNameFormat: "{course}",
		M3UExtended:            true,

		EnablePrograms: false,

		Language: "en",
	}
}

// Load reads settings from a JSON file and applies environment
// overrides on top.
//
// A missing file is not an error: defaults are used. A .env file in
// the working directory is honored when present, mirroring how the
// platform tooling passes credentials.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	settings.applyEnv()

	return settings, nil
}

// LoadDefault returns default settings with environment overrides
// applied, for callers that have no settings file. Load does the same
// on top of a file.
func LoadDefault() *Settings {
	settings := DefaultSettings()
	settings.applyEnv()
	return settings
}

// applyEnv overlays environment variables on the loaded settings.
// The access token in particular usually arrives this way rather than
// through the settings file.
func (s *Settings) applyEnv() {
	// Ignore the error: a missing .env file just means plain
	// environment variables.
	_ = godotenv.Load()

	s.APIBaseURL = getEnv("EDX_API_BASE_URL", s.APIBaseURL)
	s.AccessToken = getEnv("EDX_ACCESS_TOKEN", s.AccessToken)
	s.DownloadsPath = getEnv("EDX_DOWNLOADS_PATH", s.DownloadsPath)
	s.VideoDownloadQuality = getEnv("EDX_VIDEO_QUALITY", s.VideoDownloadQuality)
	s.Language = getEnv("EDX_LANGUAGE", s.Language)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Quality returns the persisted video download quality preference.
// Unknown or empty values fall back to Auto.
func (s *Settings) Quality() model.DownloadQuality {
	quality, ok := model.ParseDownloadQuality(s.VideoDownloadQuality)
	if !ok {
		return model.QualityAuto
	}
	return quality
}

// SetQuality updates the persisted video download quality preference.
func (s *Settings) SetQuality(quality model.DownloadQuality) {
	s.VideoDownloadQuality = quality.Tag()
}

// ProgramsEnabled reports whether program deep links are enabled.
// Satisfies the deep link resolver's feature-flag interface.
func (s *Settings) ProgramsEnabled() bool {
	return s.EnablePrograms
}

// ToPathConfig converts settings to a model.PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	ext := ".m3u"
	if s.PlaylistFormat == "pls" {
		ext = ".pls"
	}

	return &model.PathConfig{
		DownloadsPath:          s.DownloadsPath,
		PlaylistFileNameFormat: s.PlaylistFileNameFormat,
		PlaylistExtension:      ext,
	}
}

// ToVideoFileConfig converts settings to a model.VideoFileConfig.
func (s *Settings) ToVideoFileConfig() *model.VideoFileConfig {
	return &model.VideoFileConfig{
		FileNameFormat: s.VideoFileNameFormat,
	}
}
