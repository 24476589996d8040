// Package deeplink routes inbound link payloads, typically from push
// notifications or external URLs, to the matching client screen.
//
// A payload is an untyped key/value map; NewLink resolves it into a
// typed Link and Resolver dispatches it against the currently displayed
// screen, suppressing navigation that would only re-open what is
// already on top.
package deeplink

import "strconv"

// Payload keys recognized in an inbound link.
const (
	keyScreenName = "screen_name"
	keyCourseID   = "course_id"
	keyEmailOptIn = "email_opt_in"
)

// Type identifies the screen a deep link targets.
type Type int

const (
	// TypeNone marks an unknown or missing screen name. Links of this
	// type are ignored.
	TypeNone Type = iota

	// TypeCourseDashboard targets the course home tab.
	TypeCourseDashboard

	// TypeCourseVideos targets the course videos tab.
	TypeCourseVideos

	// TypeDiscussions targets the course discussions tab.
	TypeDiscussions

	// TypePrograms targets the programs screen. Requires the programs
	// feature flag.
	TypePrograms

	// TypeAccount targets the account screen.
	TypeAccount
)

// ParseType converts a screen_name tag into a Type. Unknown tags map
// to TypeNone.
func ParseType(tag string) Type {
	switch tag {
	case "course_dashboard":
		return TypeCourseDashboard
	case "course_videos":
		return TypeCourseVideos
	case "discussions":
		return TypeDiscussions
	case "programs":
		return TypePrograms
	case "account":
		return TypeAccount
	default:
		return TypeNone
	}
}

// Tag returns the screen_name value for the type.
func (t Type) Tag() string {
	switch t {
	case TypeCourseDashboard:
		return "course_dashboard"
	case TypeCourseVideos:
		return "course_videos"
	case TypeDiscussions:
		return "discussions"
	case TypePrograms:
		return "programs"
	case TypeAccount:
		return "account"
	default:
		return "none"
	}
}

// IsCourseType reports whether the type is one of the course dashboard
// tabs. These share the same containing screen and are switched in
// place rather than navigated to.
func (t Type) IsCourseType() bool {
	switch t {
	case TypeCourseDashboard, TypeCourseVideos, TypeDiscussions:
		return true
	default:
		return false
	}
}

// Link is one resolved inbound request. Links are transient: built per
// incoming payload and discarded after dispatch.
type Link struct {
	Type       Type
	CourseID   string
	EmailOptIn bool
}

// NewLink resolves an untyped payload into a Link. Missing keys
// degrade to zero values; an unrecognized screen name yields TypeNone.
func NewLink(params map[string]string) Link {
	optIn, _ := strconv.ParseBool(params[keyEmailOptIn])
	return Link{
		Type:       ParseType(params[keyScreenName]),
		CourseID:   params[keyCourseID],
		EmailOptIn: optIn,
	}
}
