package dto

import (
	"time"

	"github.com/hamzaanis/openedx-client/internal/dateutil"
	"github.com/hamzaanis/openedx-client/internal/model"
)

// JSONCourseDates represents the deserialized course-dates payload from
// the course home API.
type JSONCourseDates struct {
	CourseDateBlocks    []JSONDateBlock `json:"course_date_blocks"`
	DatesBannerInfo     *JSONBannerInfo `json:"dates_banner_info"`
	LearnerIsFullAccess bool            `json:"learner_is_full_access"`
	MissedDeadlines     bool            `json:"missed_deadlines"`
	MissedGatedContent  bool            `json:"missed_gated_content"`
	UserTimezone        string          `json:"user_timezone"`
	VerifiedUpgradeLink string          `json:"verified_upgrade_link"`
}

// JSONBannerInfo carries the deadline-banner flags for a course.
type JSONBannerInfo struct {
	ContentTypeGatingEnabled bool   `json:"content_type_gating_enabled"`
	MissedDeadlines          bool   `json:"missed_deadlines"`
	MissedGatedContent       bool   `json:"missed_gated_content"`
	VerifiedUpgradeLink      string `json:"verified_upgrade_link"`
}

// JSONDateBlock represents one raw date entry from the payload.
type JSONDateBlock struct {
	Complete         bool   `json:"complete"`
	Date             string `json:"date"`
	DateType         string `json:"date_type"`
	Description      string `json:"description"`
	LearnerHasAccess bool   `json:"learner_has_access"`
	Link             string `json:"link"`
	LinkText         string `json:"link_text"`
	Title            string `json:"title"`
}

// ToModel converts the payload to a model.CourseDateModel. The
// caller-supplied reference day is shared by every block so one fetch
// classifies consistently.
func (jd *JSONCourseDates) ToModel(today time.Time) *model.CourseDateModel {
	dates := &model.CourseDateModel{
		LearnerIsFullAccess: jd.LearnerIsFullAccess,
		MissedDeadlines:     jd.MissedDeadlines,
		MissedGatedContent:  jd.MissedGatedContent,
		UserTimezone:        jd.UserTimezone,
		VerifiedUpgradeLink: jd.VerifiedUpgradeLink,
	}

	if jd.DatesBannerInfo != nil {
		dates.BannerInfo = &model.DatesBannerInfo{
			ContentTypeGatingEnabled: jd.DatesBannerInfo.ContentTypeGatingEnabled,
			MissedDeadlines:          jd.DatesBannerInfo.MissedDeadlines,
			MissedGatedContent:       jd.DatesBannerInfo.MissedGatedContent,
			VerifiedUpgradeLink:      jd.DatesBannerInfo.VerifiedUpgradeLink,
		}
	}

	for _, jb := range jd.CourseDateBlocks {
		dates.Blocks = append(dates.Blocks, jb.ToBlock(today))
	}

	return dates
}

// ToBlock converts one raw entry to a model.CourseDateBlock.
//
// An unparseable date string degrades to the current moment rather
// than rejecting the record; the dates screen prefers a block pinned
// to today over a hole in the schedule.
func (jb *JSONDateBlock) ToBlock(today time.Time) *model.CourseDateBlock {
	date, ok := dateutil.ParseServerDate(jb.Date)
	if !ok {
		date = time.Now()
	}

	return model.NewCourseDateBlock(model.BlockRecord{
		Complete:         jb.Complete,
		DateType:         jb.DateType,
		Description:      jb.Description,
		LearnerHasAccess: jb.LearnerHasAccess,
		Link:             jb.Link,
		LinkText:         jb.LinkText,
		Title:            jb.Title,
	}, date, today)
}
