package deeplink

// Session exposes the one thing the resolver needs to know about the
// user session.
type Session interface {
	// IsLoggedIn reports whether a user session is active.
	IsLoggedIn() bool
}

// FeatureFlags gates screens that are not enabled on every deployment.
type FeatureFlags interface {
	// ProgramsEnabled reports whether the programs screen exists.
	ProgramsEnabled() bool
}

// Screen describes the screen currently on top, as far as link
// dispatch cares: which link type it would satisfy and, for course
// screens, which course it shows.
type Screen interface {
	// LinkType returns the link type the screen satisfies, TypeNone if
	// no deep link maps to it.
	LinkType() Type

	// CourseID returns the course the screen shows, empty for
	// non-course screens.
	CourseID() string
}

// ScreenObserver reports the top-most displayed screen. Owned by the
// surrounding UI layer; the resolver only reads it.
type ScreenObserver interface {
	// TopScreen returns the currently displayed screen, nil when
	// nothing is shown yet.
	TopScreen() Screen
}

// Router performs the navigation the resolver decides on.
type Router interface {
	// ShowLogin presents the login flow. The pending link is dropped:
	// re-authentication does not replay it.
	ShowLogin()

	// ShowCourse navigates to a course screen opened on the given tab.
	ShowCourse(t Type, courseID string)

	// SwitchCourseTab switches the tab of the course screen already on
	// top, without fresh navigation.
	SwitchCourseTab(t Type)

	// ShowPrograms presents the programs screen.
	ShowPrograms()

	// ShowAccount presents the account screen.
	ShowAccount()

	// DismissPresented closes any modally presented screen before a
	// fresh navigation.
	DismissPresented()
}

// Resolver dispatches inbound deep links against the current UI state.
//
// Dispatch rules:
//   - TypeNone links are ignored
//   - without an active session every link redirects to login and is
//     dropped
//   - a link whose screen is already on top is suppressed
//   - course links for the course already on top switch tabs in place
//   - program links require the programs feature flag
//
// The resolver holds no state of its own; everything it consults is
// owned by its collaborators.
type Resolver struct {
	session Session
	flags   FeatureFlags
	screens ScreenObserver
	router  Router
}

// NewResolver creates a Resolver with its collaborators injected.
func NewResolver(session Session, flags FeatureFlags, screens ScreenObserver, router Router) *Resolver {
	return &Resolver{
		session: session,
		flags:   flags,
		screens: screens,
		router:  router,
	}
}

// Resolve handles one inbound payload end to end.
func (r *Resolver) Resolve(params map[string]string) {
	r.ResolveLink(NewLink(params))
}

// ResolveLink dispatches an already-parsed link.
func (r *Resolver) ResolveLink(link Link) {
	if link.Type == TypeNone {
		return
	}

	if !r.session.IsLoggedIn() {
		r.router.DismissPresented()
		r.router.ShowLogin()
		return
	}

	switch link.Type {
	case TypeCourseDashboard, TypeCourseVideos, TypeDiscussions:
		r.showCourseScreen(link)
	case TypePrograms:
		if !r.flags.ProgramsEnabled() {
			return
		}
		if !r.alreadyDisplayed(TypePrograms) {
			r.router.DismissPresented()
			r.router.ShowPrograms()
		}
	case TypeAccount:
		if !r.alreadyDisplayed(TypeAccount) {
			r.router.DismissPresented()
			r.router.ShowAccount()
		}
	}
}

// showCourseScreen routes a course link. When the course already on
// top matches the link's course, the tab is switched in place; showing
// the exact tab again is a no-op.
func (r *Resolver) showCourseScreen(link Link) {
	top := r.screens.TopScreen()
	if top != nil && top.LinkType().IsCourseType() && top.CourseID() == link.CourseID {
		if top.LinkType() != link.Type {
			r.router.SwitchCourseTab(link.Type)
		}
		return
	}

	r.router.DismissPresented()
	r.router.ShowCourse(link.Type, link.CourseID)
}

// alreadyDisplayed reports whether the top screen satisfies the link
// type.
func (r *Resolver) alreadyDisplayed(t Type) bool {
	top := r.screens.TopScreen()
	return top != nil && top.LinkType() == t
}
