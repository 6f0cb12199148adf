package templates

// NoticeKind selects notice presentation.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a localized outcome message shown above the form.
type Notice struct {
	Kind    NoticeKind
	Message string
	Code    string
}

// LandingStats holds the three aggregate counters.
type LandingStats struct {
	Pools   int64
	Guesses int64
	Users   int64
}

// LandingView is the render model of the landing page. A nil Stats
// omits the counters.
type LandingView struct {
	Stats     *LandingStats
	Title     string
	FormToken string
	Notice    *Notice
}

// LandingPageTitle returns the document title for the landing page.
func LandingPageTitle(loc Localizer) string {
	return T(loc, "title.landing", T(loc, "app.name"))
}
