package model

import (
	"testing"
	"time"
)

var testToday = time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)

func newTestBlock(rec BlockRecord, date time.Time) *CourseDateBlock {
	return NewCourseDateBlock(rec, date, testToday)
}

func TestCourseDateBlock_Status(t *testing.T) {
	yesterday := testToday.AddDate(0, 0, -1)
	tomorrow := testToday.AddDate(0, 0, 1)

	tests := []struct {
		name string
		rec  BlockRecord
		date time.Time
		want StatusType
	}{
		{
			"assignment due yesterday",
			BlockRecord{DateType: DateTypeAssignmentDue, LearnerHasAccess: true, Link: "https://example.com/a"},
			yesterday,
			StatusPastDue,
		},
		{
			"assignment due tomorrow",
			BlockRecord{DateType: DateTypeAssignmentDue, LearnerHasAccess: true, Link: "https://example.com/a"},
			tomorrow,
			StatusDueNext,
		},
		{
			"assignment due today",
			BlockRecord{DateType: DateTypeAssignmentDue, LearnerHasAccess: true},
			testToday,
			StatusToday,
		},
		{
			// Today wins over everything, even completed items without access.
			"completed gated item today",
			BlockRecord{DateType: DateTypeAssignmentDue, Complete: true, LearnerHasAccess: false},
			testToday,
			StatusToday,
		},
		{
			"completed assignment yesterday",
			BlockRecord{DateType: DateTypeAssignmentDue, Complete: true, LearnerHasAccess: true},
			yesterday,
			StatusCompleted,
		},
		{
			"gated assignment tomorrow",
			BlockRecord{DateType: DateTypeAssignmentDue, LearnerHasAccess: false},
			tomorrow,
			StatusVerifiedOnly,
		},
		{
			"upgrade deadline tomorrow",
			BlockRecord{DateType: DateTypeVerifiedUpgradeDeadline, LearnerHasAccess: true},
			tomorrow,
			StatusVerifiedUpgradeDeadline,
		},
		{
			"course expired date",
			BlockRecord{DateType: DateTypeCourseExpired, LearnerHasAccess: true},
			tomorrow,
			StatusCourseExpired,
		},
		{
			"verification deadline",
			BlockRecord{DateType: DateTypeVerificationDeadline, LearnerHasAccess: true},
			tomorrow,
			StatusVerificationDeadline,
		},
		{
			"certificate available",
			BlockRecord{DateType: DateTypeCertificateAvailable, LearnerHasAccess: true},
			yesterday,
			StatusCertificateAvailable,
		},
		{
			"course start",
			BlockRecord{DateType: DateTypeCourseStart, LearnerHasAccess: true},
			yesterday,
			StatusCourseStart,
		},
		{
			"course end",
			BlockRecord{DateType: DateTypeCourseEnd, LearnerHasAccess: true},
			tomorrow,
			StatusCourseEnd,
		},
		{
			"plain event",
			BlockRecord{DateType: DateTypeEvent, LearnerHasAccess: true},
			tomorrow,
			StatusEvent,
		},
		{
			"unknown date type",
			BlockRecord{DateType: "something-new", LearnerHasAccess: true},
			tomorrow,
			StatusEvent,
		},
		{
			// Blocks without a date type count as today regardless of date.
			"missing date type",
			BlockRecord{LearnerHasAccess: true},
			yesterday,
			StatusToday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := newTestBlock(tt.rec, tt.date)
			if got := block.Status(); got != tt.want {
				t.Errorf("Status() = %v (%s), want %v (%s)", got, got.Tag(), tt.want, tt.want.Tag())
			}
		})
	}
}

func TestCourseDateBlock_DayGranularity(t *testing.T) {
	// A due time earlier today is still "today", never past due
	lateYesterday := time.Date(2023, 5, 14, 23, 59, 0, 0, time.UTC)
	earlyToday := time.Date(2023, 5, 15, 0, 1, 0, 0, time.UTC)

	rec := BlockRecord{DateType: DateTypeAssignmentDue, LearnerHasAccess: true}

	if got := newTestBlock(rec, earlyToday).Status(); got != StatusToday {
		t.Errorf("Status() for early-today due = %v, want StatusToday", got)
	}
	if got := newTestBlock(rec, lateYesterday).Status(); got != StatusPastDue {
		t.Errorf("Status() for late-yesterday due = %v, want StatusPastDue", got)
	}
}

func TestCourseDateBlock_Predicates(t *testing.T) {
	rec := BlockRecord{
		DateType:         DateTypeAssignmentDue,
		LearnerHasAccess: true,
		Link:             "https://example.com/block",
		Description:      "Read chapter 3",
	}
	block := newTestBlock(rec, testToday.AddDate(0, 0, 1))

	if !block.IsAssignment() {
		t.Error("IsAssignment() should be true for assignment-due-date")
	}
	if !block.IsLearnerAssignment() {
		t.Error("IsLearnerAssignment() should be true with access")
	}
	if !block.ShowLink() {
		t.Error("ShowLink() should be true for an accessible assignment with a link")
	}
	if !block.Available() {
		t.Error("Available() should be true")
	}
	if !block.HasDescription() {
		t.Error("HasDescription() should be true")
	}
	if block.IsUnreleased() {
		t.Error("IsUnreleased() should be false when a link exists")
	}

	gated := newTestBlock(BlockRecord{DateType: DateTypeAssignmentDue}, testToday.AddDate(0, 0, 1))
	if gated.ShowLink() {
		t.Error("ShowLink() should be false without access")
	}
	if gated.Available() {
		t.Error("Available() should be false without access")
	}
}

func TestCourseDateBlock_DateText(t *testing.T) {
	block := newTestBlock(BlockRecord{DateType: DateTypeEvent}, time.Date(2023, 5, 15, 18, 0, 0, 0, time.UTC))

	if block.DateText != "Monday, May 15, 2023" {
		t.Errorf("DateText = %q, want %q", block.DateText, "Monday, May 15, 2023")
	}
	// The block date is stored at midnight
	if !block.Date.Equal(testToday) {
		t.Errorf("Date = %v, want %v", block.Date, testToday)
	}
}

func TestCourseDateModel_BannerStatus(t *testing.T) {
	tests := []struct {
		name  string
		model CourseDateModel
		want  BannerStatus
	}{
		{
			"no banner info",
			CourseDateModel{MissedDeadlines: true},
			BannerNone,
		},
		{
			"no missed deadlines",
			CourseDateModel{BannerInfo: &DatesBannerInfo{ContentTypeGatingEnabled: true}},
			BannerNone,
		},
		{
			"gated learner missed gated content",
			CourseDateModel{
				BannerInfo:         &DatesBannerInfo{ContentTypeGatingEnabled: true},
				MissedDeadlines:    true,
				MissedGatedContent: true,
			},
			BannerUpgradeToReset,
		},
		{
			"full access learner missed deadlines",
			CourseDateModel{
				BannerInfo:          &DatesBannerInfo{ContentTypeGatingEnabled: true},
				LearnerIsFullAccess: true,
				MissedDeadlines:     true,
				MissedGatedContent:  true,
			},
			BannerResetDates,
		},
		{
			"missed deadlines without gated content",
			CourseDateModel{
				BannerInfo:      &DatesBannerInfo{ContentTypeGatingEnabled: true},
				MissedDeadlines: true,
			},
			BannerResetDates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.BannerStatus(); got != tt.want {
				t.Errorf("BannerStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusType_Tags(t *testing.T) {
	// Tags are persisted and used for display lookups; they must not drift.
	tags := map[StatusType]string{
		StatusCompleted:               "completed",
		StatusToday:                   "today",
		StatusPastDue:                 "past-due",
		StatusDueNext:                 "due-next",
		StatusUnreleased:              "unreleased",
		StatusVerifiedOnly:            "verified-only",
		StatusAssignment:              "assignment",
		StatusVerifiedUpgradeDeadline: "verified-upgrade-deadline",
		StatusCourseExpired:           "course-expired",
		StatusVerificationDeadline:    "verification-deadline",
		StatusCertificateAvailable:    "certificate-available",
		StatusCourseStart:             "course-start",
		StatusCourseEnd:               "course-end",
		StatusEvent:                   "event",
	}

	for status, want := range tags {
		if got := status.Tag(); got != want {
			t.Errorf("Tag(%d) = %q, want %q", status, got, want)
		}
	}
}
