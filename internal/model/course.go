package model

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Course groups the videos of one enrolled course together with the
// computed directory its downloads are saved under.
//
// Paths are computed when the course is created via NewCourse, using
// placeholders like {org} and {course}.
//
// Example:
//
//	cfg := &PathConfig{
//	    DownloadsPath:          "/videos/{org}/{course}",
//	    PlaylistFileNameFormat: "{course}",
//	    PlaylistExtension:      ".m3u",
//	}
//	course := NewCourse("course-v1:edX+DemoX+2024", "edX", "Demo Course", cfg)
//	// course.Path = "/videos/edX/Demo Course"
type Course struct {
	// ID is the course run identifier, e.g. "course-v1:edX+DemoX+2024".
	ID string

	// Org is the organization that published the course.
	Org string

	// Name is the course display name.
	Name string

	// Videos contains the downloadable videos of the course outline.
	Videos []*VideoSummary

	// Path is the computed local directory downloads are saved under.
	Path string

	// PlaylistPath is the computed local file path for the playlist.
	PlaylistPath string
}

// PathConfig holds path formatting settings for course downloads.
//
// DownloadsPath supports the placeholders {org}, {course} and
// {course_id}; invalid filename characters are replaced with
// underscores and over-long paths are truncated for Windows.
type PathConfig struct {
	// DownloadsPath is the base directory template for a course.
	// Example: "/videos/{org}/{course}"
	DownloadsPath string

	// PlaylistFileNameFormat is the playlist filename template
	// (without extension). Example: "{course}"
	PlaylistFileNameFormat string

	// PlaylistExtension is the playlist file extension including the
	// dot, e.g. ".m3u".
	PlaylistExtension string
}

// VideoFileConfig holds video file naming settings.
//
// FileNameFormat supports {num}, {title}, {course} and {org} and must
// include the file extension.
//
// Example:
//
//	cfg := &VideoFileConfig{FileNameFormat: "{num} {title}.mp4"}
//	// Results in filenames like "03 Welcome to the Course.mp4"
type VideoFileConfig struct {
	// FileNameFormat is the template for video filenames.
	FileNameFormat string
}

// NewCourse creates a Course with computed paths based on settings.
func NewCourse(id, org, name string, cfg *PathConfig) *Course {
	course := &Course{
		ID:   id,
		Org:  org,
		Name: name,
	}

	course.Path = course.parseFolderPath(cfg)
	course.PlaylistPath = course.parsePlaylistPath(cfg)

	return course
}

// AddVideo computes the video's local paths and appends it to the
// course. Videos are numbered by their position in the outline, so the
// caller must add them in outline order.
func (c *Course) AddVideo(v *VideoSummary, cfg *VideoFileConfig) {
	v.Number = len(c.Videos) + 1
	v.Path = c.parseVideoFilePath(v, cfg)
	v.ThumbnailPath = c.parseThumbnailPath(v)
	c.Videos = append(c.Videos, v)
}

// parseFolderPath computes the course folder path from the config
// template.
func (c *Course) parseFolderPath(cfg *PathConfig) string {
	path := cfg.DownloadsPath
	path = strings.ReplaceAll(path, "{org}", sanitizeFileName(c.Org))
	path = strings.ReplaceAll(path, "{course}", sanitizeFileName(c.Name))
	path = strings.ReplaceAll(path, "{course_id}", sanitizeFileName(c.ID))

	// Limit path length for cross-platform compatibility (Windows MAX_PATH)
	if len(path) >= 248 {
		path = path[:247]
	}

	return path
}

// parsePlaylistPath computes the full playlist file path.
func (c *Course) parsePlaylistPath(cfg *PathConfig) string {
	fileName := cfg.PlaylistFileNameFormat
	fileName = strings.ReplaceAll(fileName, "{org}", c.Org)
	fileName = strings.ReplaceAll(fileName, "{course}", c.Name)
	fileName = strings.ReplaceAll(fileName, "{course_id}", c.ID)
	fileName = sanitizeFileName(fileName)

	ext := cfg.PlaylistExtension
	filePath := filepath.Join(c.Path, fileName+ext)

	// Limit total path length for Windows compatibility
	if len(filePath) >= 260 {
		maxLen := 11 - len(ext)
		if maxLen > 0 && maxLen < len(fileName) {
			filePath = filepath.Join(c.Path, fileName[:maxLen]+ext)
		}
	}

	return filePath
}

// parseVideoFilePath computes the full file path for one video.
func (c *Course) parseVideoFilePath(v *VideoSummary, cfg *VideoFileConfig) string {
	fileName := cfg.FileNameFormat
	fileName = strings.ReplaceAll(fileName, "{org}", c.Org)
	fileName = strings.ReplaceAll(fileName, "{course}", c.Name)
	fileName = strings.ReplaceAll(fileName, "{title}", v.Name)
	fileName = strings.ReplaceAll(fileName, "{num}", fmt.Sprintf("%02d", v.Number))
	fileName = sanitizeFileName(fileName)

	filePath := filepath.Join(c.Path, fileName)

	// Limit total path length for Windows compatibility (MAX_PATH = 260)
	if len(filePath) >= 260 {
		ext := filepath.Ext(filePath)
		maxLen := 11 - len(ext)
		if maxLen > 0 && maxLen < len(fileName) {
			filePath = filepath.Join(c.Path, fileName[:maxLen]+ext)
		}
	}

	return filePath
}

// parseThumbnailPath computes the poster image path for one video,
// reusing the video's base name with the thumbnail's own extension.
func (c *Course) parseThumbnailPath(v *VideoSummary) string {
	if !v.HasThumbnail() {
		return ""
	}

	ext := filepath.Ext(v.ThumbnailURL)
	if ext == "" {
		ext = ".jpg"
	}
	base := strings.TrimSuffix(filepath.Base(v.Path), filepath.Ext(v.Path))

	return filepath.Join(c.Path, base+ext)
}

// sanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
func sanitizeFileName(name string) string {
	// Replace invalid path/file characters
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
