package media

import (
	"strings"
	"testing"

	"github.com/hamzaanis/openedx-client/internal/model"
)

func createTestCourse() *model.Course {
	course := model.NewCourse("course-v1:edX+DemoX+2024", "edX", "Demo Course", &model.PathConfig{
		DownloadsPath:          "/videos/{org}/{course}",
		PlaylistFileNameFormat: "{course}",
		PlaylistExtension:      ".m3u",
	})
	fileCfg := &model.VideoFileConfig{FileNameFormat: "{num} {title}.mp4"}

	course.AddVideo(&model.VideoSummary{Name: "Welcome", Duration: 185}, fileCfg)
	course.AddVideo(&model.VideoSummary{Name: "Getting Started", Duration: 540}, fileCfg)

	return course
}

func TestPlaylistCreator_M3U(t *testing.T) {
	course := createTestCourse()
	creator := NewPlaylistCreator(FormatM3U, false)

	content := creator.CreatePlaylist(course)

	// Plain M3U: filenames only, in outline order
	if strings.Contains(content, "#EXTM3U") {
		t.Error("plain M3U should not contain the extended header")
	}
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0] != "01 Welcome.mp4" || lines[1] != "02 Getting Started.mp4" {
		t.Errorf("lines = %v", lines)
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	course := createTestCourse()
	creator := NewPlaylistCreator(FormatM3U, true)

	content := creator.CreatePlaylist(course)

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:185,Demo Course - Welcome") {
		t.Errorf("missing EXTINF line in:\n%s", content)
	}
	if !strings.Contains(content, "01 Welcome.mp4") {
		t.Error("extended M3U should contain the video filename")
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	course := createTestCourse()
	creator := NewPlaylistCreator(FormatPLS, false)

	content := creator.CreatePlaylist(course)

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=01 Welcome.mp4") {
		t.Errorf("missing File1 entry in:\n%s", content)
	}
	if !strings.Contains(content, "Title2=Getting Started") {
		t.Errorf("missing Title2 entry in:\n%s", content)
	}
	if !strings.Contains(content, "Length2=540") {
		t.Errorf("missing Length2 entry in:\n%s", content)
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries=2")
	}
}

func TestPlaylistCreator_EmptyCourse(t *testing.T) {
	course := model.NewCourse("course-v1:edX+Empty+2024", "edX", "Empty", &model.PathConfig{
		DownloadsPath:          "/videos/{course}",
		PlaylistFileNameFormat: "{course}",
		PlaylistExtension:      ".m3u",
	})

	content := NewPlaylistCreator(FormatPLS, false).CreatePlaylist(course)
	if !strings.Contains(content, "NumberOfEntries=0") {
		t.Errorf("empty PLS should report zero entries:\n%s", content)
	}
}
