// Package model defines the core data structures of the client: course
// date blocks with their status classification, course videos with
// their encoding descriptors and download-URL resolution, and the path
// configuration for locally saved files.
//
// # Course dates
//
// CourseDateBlock is one dated entry of a course. Its Status method
// classifies the entry for the dates screen:
//
//	today := dateutil.StripTime(time.Now())
//	block := model.NewCourseDateBlock(rec, due, today)
//	switch block.Status() {
//	case model.StatusPastDue:
//	    // red badge
//	case model.StatusDueNext:
//	    // highlighted badge
//	}
//
// The reference day is captured once per fetch and shared by all blocks
// so a single render pass classifies consistently.
//
// # Videos
//
// VideoSummary resolves the download URL for the learner's preferred
// quality with tier fallback:
//
//	url, ok := video.DownloadURL(true, model.QualityMobileHigh, isDownloadable)
//
// # Paths
//
// Course and video file paths are computed from templates with
// placeholders: {org}, {course}, {course_id}, {num}, {title}.
// Invalid filename characters are replaced with underscores.
package model
