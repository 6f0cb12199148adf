package templates

// ErrorPageTitle returns the document title for error pages.
func ErrorPageTitle(loc Localizer) string {
	return T(loc, "error.title") + " | " + T(loc, "app.name")
}
