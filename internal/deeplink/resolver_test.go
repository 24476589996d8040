package deeplink

import (
	"reflect"
	"testing"
)

type fakeSession struct{ loggedIn bool }

func (s fakeSession) IsLoggedIn() bool { return s.loggedIn }

type fakeFlags struct{ programs bool }

func (f fakeFlags) ProgramsEnabled() bool { return f.programs }

type fakeScreen struct {
	linkType Type
	courseID string
}

func (s fakeScreen) LinkType() Type   { return s.linkType }
func (s fakeScreen) CourseID() string { return s.courseID }

// fakeRouter records every navigation call in order.
type fakeRouter struct {
	top   Screen
	calls []string
}

func (r *fakeRouter) TopScreen() Screen { return r.top }
func (r *fakeRouter) ShowLogin()        { r.calls = append(r.calls, "login") }
func (r *fakeRouter) ShowCourse(t Type, courseID string) {
	r.calls = append(r.calls, "course:"+t.Tag()+":"+courseID)
}
func (r *fakeRouter) SwitchCourseTab(t Type) { r.calls = append(r.calls, "switch:"+t.Tag()) }
func (r *fakeRouter) ShowPrograms()          { r.calls = append(r.calls, "programs") }
func (r *fakeRouter) ShowAccount()           { r.calls = append(r.calls, "account") }
func (r *fakeRouter) DismissPresented()      { r.calls = append(r.calls, "dismiss") }

func newTestResolver(loggedIn, programs bool, top Screen) (*Resolver, *fakeRouter) {
	router := &fakeRouter{top: top}
	resolver := NewResolver(fakeSession{loggedIn}, fakeFlags{programs}, router, router)
	return resolver, router
}

func TestResolve_NoneIgnored(t *testing.T) {
	resolver, router := newTestResolver(true, true, nil)

	resolver.Resolve(map[string]string{})
	resolver.Resolve(map[string]string{"screen_name": "something_else"})

	if len(router.calls) != 0 {
		t.Errorf("calls = %v, want none", router.calls)
	}
}

func TestResolve_LoggedOutRedirectsToLogin(t *testing.T) {
	resolver, router := newTestResolver(false, true, nil)

	resolver.Resolve(map[string]string{
		"screen_name": "course_dashboard",
		"course_id":   "course-v1:edX+DemoX+2024",
	})

	want := []string{"dismiss", "login"}
	if !reflect.DeepEqual(router.calls, want) {
		t.Errorf("calls = %v, want %v", router.calls, want)
	}
}

func TestResolve_CourseNavigation(t *testing.T) {
	const courseID = "course-v1:edX+DemoX+2024"

	tests := []struct {
		name string
		top  Screen
		link Link
		want []string
	}{
		{
			"no screen on top navigates",
			nil,
			Link{Type: TypeCourseVideos, CourseID: courseID},
			[]string{"dismiss", "course:course_videos:" + courseID},
		},
		{
			"same course different tab switches in place",
			fakeScreen{TypeCourseDashboard, courseID},
			Link{Type: TypeCourseVideos, CourseID: courseID},
			[]string{"switch:course_videos"},
		},
		{
			"same course same tab is a no-op",
			fakeScreen{TypeCourseVideos, courseID},
			Link{Type: TypeCourseVideos, CourseID: courseID},
			nil,
		},
		{
			"different course navigates fresh",
			fakeScreen{TypeCourseDashboard, "course-v1:edX+Other+2024"},
			Link{Type: TypeCourseDashboard, CourseID: courseID},
			[]string{"dismiss", "course:course_dashboard:" + courseID},
		},
		{
			"non-course screen on top navigates",
			fakeScreen{TypeAccount, ""},
			Link{Type: TypeDiscussions, CourseID: courseID},
			[]string{"dismiss", "course:discussions:" + courseID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, router := newTestResolver(true, true, tt.top)
			resolver.ResolveLink(tt.link)
			if !reflect.DeepEqual(router.calls, tt.want) {
				t.Errorf("calls = %v, want %v", router.calls, tt.want)
			}
		})
	}
}

func TestResolve_Programs(t *testing.T) {
	// Flag disabled: the link is dropped entirely
	resolver, router := newTestResolver(true, false, nil)
	resolver.ResolveLink(Link{Type: TypePrograms})
	if len(router.calls) != 0 {
		t.Errorf("calls with flag disabled = %v, want none", router.calls)
	}

	// Flag enabled: navigates
	resolver, router = newTestResolver(true, true, nil)
	resolver.ResolveLink(Link{Type: TypePrograms})
	want := []string{"dismiss", "programs"}
	if !reflect.DeepEqual(router.calls, want) {
		t.Errorf("calls = %v, want %v", router.calls, want)
	}

	// Already on top: suppressed
	resolver, router = newTestResolver(true, true, fakeScreen{TypePrograms, ""})
	resolver.ResolveLink(Link{Type: TypePrograms})
	if len(router.calls) != 0 {
		t.Errorf("calls with programs on top = %v, want none", router.calls)
	}
}

func TestResolve_Account(t *testing.T) {
	resolver, router := newTestResolver(true, false, nil)
	resolver.ResolveLink(Link{Type: TypeAccount})
	want := []string{"dismiss", "account"}
	if !reflect.DeepEqual(router.calls, want) {
		t.Errorf("calls = %v, want %v", router.calls, want)
	}

	resolver, router = newTestResolver(true, false, fakeScreen{TypeAccount, ""})
	resolver.ResolveLink(Link{Type: TypeAccount})
	if len(router.calls) != 0 {
		t.Errorf("calls with account on top = %v, want none", router.calls)
	}
}

func TestNewLink(t *testing.T) {
	link := NewLink(map[string]string{
		"screen_name":  "course_videos",
		"course_id":    "course-v1:edX+DemoX+2024",
		"email_opt_in": "true",
	})

	if link.Type != TypeCourseVideos {
		t.Errorf("Type = %v, want TypeCourseVideos", link.Type)
	}
	if link.CourseID != "course-v1:edX+DemoX+2024" {
		t.Errorf("CourseID = %q", link.CourseID)
	}
	if !link.EmailOptIn {
		t.Error("EmailOptIn should be true")
	}

	empty := NewLink(nil)
	if empty.Type != TypeNone || empty.CourseID != "" || empty.EmailOptIn {
		t.Errorf("NewLink(nil) = %+v, want zero link", empty)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		tag  string
		want Type
	}{
		{"course_dashboard", TypeCourseDashboard},
		{"course_videos", TypeCourseVideos},
		{"discussions", TypeDiscussions},
		{"programs", TypePrograms},
		{"account", TypeAccount},
		{"", TypeNone},
		{"unknown_screen", TypeNone},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := ParseType(tt.tag); got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestType_IsCourseType(t *testing.T) {
	courseTypes := map[Type]bool{
		TypeNone:            false,
		TypeCourseDashboard: true,
		TypeCourseVideos:    true,
		TypeDiscussions:     true,
		TypePrograms:        false,
		TypeAccount:         false,
	}

	for linkType, want := range courseTypes {
		if got := linkType.IsCourseType(); got != want {
			t.Errorf("IsCourseType(%s) = %v, want %v", linkType.Tag(), got, want)
		}
	}
}
