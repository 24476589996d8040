// Package config provides configuration management for the client.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Environment and .env overrides for platform credentials
//   - Default configuration values
//   - Conversion to the path/file configs other packages consume
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Downloads to ~/Videos/edX/{org}/{course}
//	// Auto video quality ("hls")
//	// Concurrent downloads enabled
//
// # Loading
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Environment variables override the file: EDX_API_BASE_URL,
// EDX_ACCESS_TOKEN, EDX_DOWNLOADS_PATH, EDX_VIDEO_QUALITY and
// EDX_LANGUAGE. A .env file in the working directory is honored.
//
// # Video quality preference
//
// The learner's download quality is persisted under
// "video_download_quality" with the wire values hls, mobile_low,
// mobile_high and desktop_mp4 (default "hls"):
//
//	settings.SetQuality(model.QualityMobileHigh)
//	err := settings.Save(path)
package config
