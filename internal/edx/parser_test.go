package edx

import (
	"testing"
	"time"

	"github.com/hamzaanis/openedx-client/internal/model"
)

func newTestParser() *Parser {
	return NewParser(
		&model.PathConfig{
			DownloadsPath:          "/videos/{org}/{course}",
			PlaylistFileNameFormat: "{course}",
			PlaylistExtension:      ".m3u",
		},
		&model.VideoFileConfig{FileNameFormat: "{num} {title}.mp4"},
	)
}

func TestParseCourseDates(t *testing.T) {
	payload := []byte(`{
		"course_date_blocks": [
			{
				"complete": true,
				"date": "2023-05-10T09:00:00Z",
				"date_type": "assignment-due-date",
				"learner_has_access": true,
				"link": "https://example.com/homework-1",
				"link_text": "Homework 1",
				"title": "Homework 1"
			},
			{
				"complete": false,
				"date": "2023-05-20T23:59:00Z",
				"date_type": "assignment-due-date",
				"learner_has_access": true,
				"link": "https://example.com/homework-2",
				"title": "Homework 2"
			},
			{
				"complete": false,
				"date": "2023-06-01T00:00:00Z",
				"date_type": "course-end-date",
				"learner_has_access": true,
				"title": "Course ends"
			}
		],
		"dates_banner_info": {
			"content_type_gating_enabled": true,
			"missed_deadlines": false
		},
		"learner_is_full_access": true,
		"user_timezone": "America/New_York"
	}`)

	today := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)

	parser := newTestParser()
	dates, err := parser.ParseCourseDates(payload, today)
	if err != nil {
		t.Fatalf("ParseCourseDates: %v", err)
	}

	if len(dates.Blocks) != 3 {
		t.Fatalf("len(Blocks) = %d, want 3", len(dates.Blocks))
	}
	if !dates.LearnerIsFullAccess {
		t.Error("LearnerIsFullAccess should be true")
	}
	if dates.UserTimezone != "America/New_York" {
		t.Errorf("UserTimezone = %q", dates.UserTimezone)
	}
	if dates.BannerInfo == nil || !dates.BannerInfo.ContentTypeGatingEnabled {
		t.Error("BannerInfo should be present with gating enabled")
	}

	statuses := []model.StatusType{
		dates.Blocks[0].Status(),
		dates.Blocks[1].Status(),
		dates.Blocks[2].Status(),
	}
	want := []model.StatusType{model.StatusCompleted, model.StatusDueNext, model.StatusCourseEnd}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("Blocks[%d].Status() = %s, want %s", i, statuses[i].Tag(), want[i].Tag())
		}
	}
}

func TestParseCourseDates_TolerantDate(t *testing.T) {
	payload := []byte(`{
		"course_date_blocks": [
			{
				"date": "not-a-date",
				"date_type": "assignment-due-date",
				"learner_has_access": true,
				"title": "Broken date"
			}
		]
	}`)

	parser := newTestParser()
	dates, err := parser.ParseCourseDates(payload, time.Now())
	if err != nil {
		t.Fatalf("ParseCourseDates: %v", err)
	}

	if len(dates.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1", len(dates.Blocks))
	}

	// An unparseable date degrades to the current day, which classifies
	// as today.
	if got := dates.Blocks[0].Status(); got != model.StatusToday {
		t.Errorf("Status() = %s, want today", got.Tag())
	}
}

func TestParseCourseDates_InvalidJSON(t *testing.T) {
	parser := newTestParser()
	if _, err := parser.ParseCourseDates([]byte("not json"), time.Now()); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestParseVideoOutline(t *testing.T) {
	payload := []byte(`{
		"course_id": "course-v1:edX+DemoX+2024",
		"course_org": "edX",
		"course_name": "Demo Course",
		"videos": [
			{
				"id": "block-v1:edX+DemoX+2024+type@video+block@welcome",
				"name": "Welcome",
				"duration": 185.5,
				"video_url": "https://cdn.example.com/welcome.mp4",
				"video_thumbnail_url": "https://cdn.example.com/welcome.jpg",
				"all_sources": ["https://cdn.example.com/welcome.mp4"],
				"supported_encodings": ["mobile_low", "desktop_mp4"],
				"encoded_videos": {
					"mobile_low": {"url": "https://cdn.example.com/welcome-low.mp4", "file_size": 1048576},
					"desktop_mp4": {"url": "https://cdn.example.com/welcome-hd.mp4", "file_size": 4194304}
				}
			},
			{
				"id": "block-v1:edX+DemoX+2024+type@video+block@empty",
				"name": "No sources"
			}
		]
	}`)

	parser := newTestParser()
	course, err := parser.ParseVideoOutline(payload)
	if err != nil {
		t.Fatalf("ParseVideoOutline: %v", err)
	}

	if course.ID != "course-v1:edX+DemoX+2024" || course.Org != "edX" || course.Name != "Demo Course" {
		t.Errorf("course = %q / %q / %q", course.ID, course.Org, course.Name)
	}
	if course.Path != "/videos/edX/Demo Course" {
		t.Errorf("course.Path = %q", course.Path)
	}

	// The entry without any source is skipped
	if len(course.Videos) != 1 {
		t.Fatalf("len(Videos) = %d, want 1", len(course.Videos))
	}

	video := course.Videos[0]
	if video.Name != "Welcome" || video.Duration != 185.5 {
		t.Errorf("video = %q, %v", video.Name, video.Duration)
	}
	if video.Path != "/videos/edX/Demo Course/01 Welcome.mp4" {
		t.Errorf("video.Path = %q", video.Path)
	}
	if video.ThumbnailPath != "/videos/edX/Demo Course/01 Welcome.jpg" {
		t.Errorf("video.ThumbnailPath = %q", video.ThumbnailPath)
	}

	enc, ok := video.Encodings["mobile_low"]
	if !ok || enc.URL != "https://cdn.example.com/welcome-low.mp4" || enc.FileSize != 1048576 {
		t.Errorf("Encodings[mobile_low] = %+v, %v", enc, ok)
	}
}

func TestParseVideoOutline_InvalidJSON(t *testing.T) {
	parser := newTestParser()
	if _, err := parser.ParseVideoOutline([]byte("{")); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestServiceURLs(t *testing.T) {
	service := NewService("https://courses.example.com", nil, newTestParser())

	datesURL := service.DatesURL("course-v1:edX+DemoX+2024")
	if datesURL != "https://courses.example.com/api/course_home/v1/dates/course-v1:edX+DemoX+2024" {
		t.Errorf("DatesURL = %q", datesURL)
	}

	outlineURL := service.VideoOutlineURL("course-v1:edX+DemoX+2024")
	if outlineURL != "https://courses.example.com/api/mobile/v1/video_outlines/courses/course-v1:edX+DemoX+2024" {
		t.Errorf("VideoOutlineURL = %q", outlineURL)
	}
}
