package model

import (
	"time"

	"github.com/hamzaanis/openedx-client/internal/dateutil"
)

// Date type tags carried by course date blocks in the course-dates
// payload. Anything outside this set is treated as a plain event.
const (
	DateTypeAssignmentDue           = "assignment-due-date"
	DateTypeVerifiedUpgradeDeadline = "verified-upgrade-deadline"
	DateTypeCourseExpired           = "course-expired-date"
	DateTypeVerificationDeadline    = "verification-deadline-date"
	DateTypeCertificateAvailable    = "certificate-available-date"
	DateTypeCourseStart             = "course-start-date"
	DateTypeCourseEnd               = "course-end-date"
	DateTypeEvent                   = "event"
)

// StatusType is the classification computed for a course date block.
// It drives the badge shown next to the entry on the dates screen.
type StatusType int

const (
	StatusCompleted StatusType = iota
	StatusToday
	StatusPastDue
	StatusDueNext
	StatusUnreleased
	StatusVerifiedOnly
	StatusAssignment
	StatusVerifiedUpgradeDeadline
	StatusCourseExpired
	StatusVerificationDeadline
	StatusCertificateAvailable
	StatusCourseStart
	StatusCourseEnd
	StatusEvent
)

// Tag returns a stable identifier for the status, suitable for logs
// and for looking up display strings.
func (s StatusType) Tag() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusToday:
		return "today"
	case StatusPastDue:
		return "past-due"
	case StatusDueNext:
		return "due-next"
	case StatusUnreleased:
		return "unreleased"
	case StatusVerifiedOnly:
		return "verified-only"
	case StatusAssignment:
		return "assignment"
	case StatusVerifiedUpgradeDeadline:
		return "verified-upgrade-deadline"
	case StatusCourseExpired:
		return "course-expired"
	case StatusVerificationDeadline:
		return "verification-deadline"
	case StatusCertificateAvailable:
		return "certificate-available"
	case StatusCourseStart:
		return "course-start"
	case StatusCourseEnd:
		return "course-end"
	default:
		return "event"
	}
}

// StatusOfDateType maps a block's date_type tag to a status. Unknown
// tags map to StatusEvent.
func StatusOfDateType(dateType string) StatusType {
	switch dateType {
	case DateTypeAssignmentDue:
		return StatusAssignment
	case DateTypeVerifiedUpgradeDeadline:
		return StatusVerifiedUpgradeDeadline
	case DateTypeCourseExpired:
		return StatusCourseExpired
	case DateTypeVerificationDeadline:
		return StatusVerificationDeadline
	case DateTypeCertificateAvailable:
		return StatusCertificateAvailable
	case DateTypeCourseStart:
		return StatusCourseStart
	case DateTypeCourseEnd:
		return StatusCourseEnd
	default:
		return StatusEvent
	}
}

// CourseDateBlock is one calendar-relevant entry for a course: an
// assignment due date, a course milestone, or a plain event.
//
// A block captures its reference day ("today") once at construction so
// that every temporal classification within one load of the dates
// screen is consistent. Blocks are immutable after construction and
// discarded wholesale when the owning CourseDateModel is refetched.
//
// Example:
//
//	today := dateutil.StripTime(time.Now())
//	block := NewCourseDateBlock(raw, due, today)
//	if block.Status() == StatusPastDue {
//	    // show the past-due badge
//	}
type CourseDateBlock struct {
	// Complete reports whether the learner finished this item.
	Complete bool

	// Date is the block's date, truncated to midnight.
	Date time.Time

	// DateType is the raw date_type tag from the payload.
	DateType string

	// Description is the free-form description text.
	Description string

	// LearnerHasAccess is false when the item is gated behind the
	// verified track.
	LearnerHasAccess bool

	// Link is an optional action URL. Empty means the item has no
	// released content to open.
	Link string

	// LinkText is the label for Link.
	LinkText string

	// Title is the display title.
	Title string

	// DateText is the human-readable date, computed once at
	// construction.
	DateText string

	today time.Time
}

// BlockRecord carries the raw field values for one date block, already
// decoded from the payload.
type BlockRecord struct {
	Complete         bool
	DateType         string
	Description      string
	LearnerHasAccess bool
	Link             string
	LinkText         string
	Title            string
}

// NewCourseDateBlock builds a block from decoded payload fields.
//
// The date must already be resolved by the caller (including the
// tolerant fallback for unparseable strings). The reference day is an
// explicit parameter so one normalized "today" can be shared by every
// block of a single fetch, keeping classification stable across a
// render pass.
func NewCourseDateBlock(rec BlockRecord, date, today time.Time) *CourseDateBlock {
	blockDate := dateutil.StripTime(date)
	return &CourseDateBlock{
		Complete:         rec.Complete,
		Date:             blockDate,
		DateType:         rec.DateType,
		Description:      rec.Description,
		LearnerHasAccess: rec.LearnerHasAccess,
		Link:             rec.Link,
		LinkText:         rec.LinkText,
		Title:            rec.Title,
		DateText:         dateutil.FormatWeekDayMonthDateYear(blockDate),
		today:            dateutil.StripTime(today),
	}
}

// IsInPast reports whether the block falls on an earlier calendar day
// than the captured reference day.
func (b *CourseDateBlock) IsInPast() bool {
	return dateutil.CompareDays(b.Date, b.today) == dateutil.DayBefore
}

// IsInToday reports whether the block falls on the reference day.
// A block with no date type always counts as today.
func (b *CourseDateBlock) IsInToday() bool {
	if b.DateType == "" {
		return true
	}
	return dateutil.CompareDays(b.Date, b.today) == dateutil.SameDay
}

// IsInFuture reports whether the block falls on a later calendar day
// than the captured reference day.
func (b *CourseDateBlock) IsInFuture() bool {
	return dateutil.CompareDays(b.Date, b.today) == dateutil.DayAfter
}

// Status classifies the block. First match wins:
//
//  1. on the reference day -> StatusToday
//  2. complete -> StatusCompleted
//  3. accessible assignments -> past due / due next by date
//  4. other accessible blocks -> mapped from their date type
//  5. no access -> StatusVerifiedOnly
func (b *CourseDateBlock) Status() StatusType {
	if b.IsInToday() {
		return StatusToday
	}

	if b.Complete {
		return StatusCompleted
	}

	if !b.LearnerHasAccess {
		return StatusVerifiedOnly
	}

	if b.IsAssignment() {
		if !b.Complete {
			switch {
			case b.IsInPast():
				return StatusPastDue
			case b.IsInToday():
				return StatusToday
			case b.IsInFuture():
				return StatusDueNext
			}
		} else if b.IsUnreleased() {
			// Unreachable: complete blocks return above. Kept because
			// the dates screen documents this as the unreleased badge
			// trigger for completed assignments without a link.
			return StatusUnreleased
		}
		return StatusEvent
	}

	return StatusOfDateType(b.DateType)
}

// IsAssignment reports whether the block is an assignment due date.
func (b *CourseDateBlock) IsAssignment() bool {
	return b.DateType == DateTypeAssignmentDue
}

// IsLearnerAssignment reports whether the block is an assignment the
// learner can access.
func (b *CourseDateBlock) IsLearnerAssignment() bool {
	return b.LearnerHasAccess && b.IsAssignment()
}

// IsPastDue reports whether an incomplete block's day has passed.
func (b *CourseDateBlock) IsPastDue() bool {
	return !b.Complete && b.Date.Before(b.today)
}

// IsUnreleased reports whether the block has no content link yet.
func (b *CourseDateBlock) IsUnreleased() bool {
	return b.Link == ""
}

// ShowLink reports whether the entry should render its link.
func (b *CourseDateBlock) ShowLink() bool {
	return b.Link != "" && b.IsLearnerAssignment()
}

// Available reports whether the entry is actionable for the learner.
func (b *CourseDateBlock) Available() bool {
	return b.LearnerHasAccess && (b.Link != "" || !b.IsLearnerAssignment())
}

// HasDescription reports whether the block carries description text.
func (b *CourseDateBlock) HasDescription() bool {
	return b.Description != ""
}

// DatesBannerInfo describes the deadline/upgrade banner state for a
// course, as reported by the course-dates endpoint.
type DatesBannerInfo struct {
	ContentTypeGatingEnabled bool
	MissedDeadlines          bool
	MissedGatedContent       bool
	VerifiedUpgradeLink      string
}

// BannerStatus selects which banner, if any, the dates screen shows.
type BannerStatus int

const (
	// BannerNone hides the banner.
	BannerNone BannerStatus = iota

	// BannerUpgradeToReset prompts a gated learner to upgrade in order
	// to shift missed deadlines.
	BannerUpgradeToReset

	// BannerResetDates offers to shift missed deadlines directly.
	BannerResetDates
)

// CourseDateModel aggregates every date block for a course along with
// the banner state and per-course access flags. The model owns its
// blocks exclusively and is replaced wholesale on refetch.
type CourseDateModel struct {
	Blocks              []*CourseDateBlock
	BannerInfo          *DatesBannerInfo
	LearnerIsFullAccess bool
	MissedDeadlines     bool
	MissedGatedContent  bool
	UserTimezone        string
	VerifiedUpgradeLink string
}

// BannerStatus resolves the deadline banner for the course. Learners
// who missed gated content behind the upgrade wall are prompted to
// upgrade; everyone else who missed deadlines can shift them directly.
func (m *CourseDateModel) BannerStatus() BannerStatus {
	if m.BannerInfo == nil || !m.MissedDeadlines {
		return BannerNone
	}
	if !m.LearnerIsFullAccess && m.BannerInfo.ContentTypeGatingEnabled && m.MissedGatedContent {
		return BannerUpgradeToReset
	}
	return BannerResetDates
}
