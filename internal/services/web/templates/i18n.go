package templates

import platformi18n "github.com/nlwcopa/bolao/internal/platform/i18n"

// Localizer is the catalog printer pages render with.
type Localizer = platformi18n.Localizer

var defaultLocalizer = platformi18n.Printer(platformi18n.DefaultTag())

// T formats key from loc's catalog. A nil loc renders in the default
// language, so a page built without request context still reads as Portuguese.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		loc = defaultLocalizer
	}
	return loc.Sprintf(key, args...)
}
