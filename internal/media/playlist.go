package media

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hamzaanis/openedx-client/internal/model"
)

// PlaylistFormat represents supported playlist file formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, understood by most video players
//   - PLS: INI-style format with per-entry title and length
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files.
	// INI-style format with file, title, and length info.
	FormatPLS
)

// PlaylistCreator generates playlist files for downloaded course
// videos, so a whole course can be watched in outline order.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist(course)
//	os.WriteFile(course.PlaylistPath, []byte(content), 0644)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:540,Demo Course - Welcome
//	// 01 Welcome.mp4
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// Parameters:
//   - format: The playlist format to generate
//   - extended: For M3U format, whether to include #EXTINF lines
//     (ignored for other formats)
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// CreatePlaylist generates playlist content for a course.
//
// Returns the playlist as a string, ready to be written to a file.
// Video paths in the playlist are relative (just the filename),
// assuming the playlist file sits in the course download directory.
func (p *PlaylistCreator) CreatePlaylist(course *model.Course) string {
	switch p.format {
	case FormatPLS:
		return p.createPLS(course)
	default:
		return p.createM3U(course)
	}
}

// createM3U generates an M3U playlist.
//
// Standard M3U format is one filename per line. Extended M3U (when
// extended=true) prefixes each entry with duration and title:
//
//	#EXTM3U
//	#EXTINF:540,Demo Course - Welcome
//	01 Welcome.mp4
func (p *PlaylistCreator) createM3U(course *model.Course) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, video := range course.Videos {
		if p.extended {
			duration := int(video.Duration)
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s - %s\n", duration, course.Name, video.Name))
		}
		sb.WriteString(filepath.Base(video.Path) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
// PLS format is an INI-style text file:
//
//	[playlist]
//	File1=01 Welcome.mp4
//	Title1=Welcome
//	Length1=540
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(course *model.Course) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, video := range course.Videos {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, filepath.Base(video.Path)))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, video.Name))
		sb.WriteString(fmt.Sprintf("Length%d=%d\n", idx, int(video.Duration)))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(course.Videos)))
	sb.WriteString("Version=2\n")

	return sb.String()
}
