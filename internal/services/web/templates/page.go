// Package templates renders the HTML pages served by the web service.
package templates

import (
	"net/url"
	"strings"

	platformi18n "github.com/nlwcopa/bolao/internal/platform/i18n"
	"github.com/nlwcopa/bolao/internal/services/web/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LanguageOptions returns supported language options with the active one marked.
func LanguageOptions(page PageContext) []LanguageOption {
	tags := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(tags))
	for _, tag := range tags {
		value := tag.String()
		options = append(options, LanguageOption{
			Tag:    value,
			Label:  T(page.Loc, languageLabelKey(value)),
			URL:    LanguageURL(page, value),
			Active: strings.EqualFold(value, page.Lang),
		})
	}
	return options
}

func languageLabelKey(tag string) string {
	if strings.HasPrefix(strings.ToLower(tag), "en") {
		return "nav.lang_en"
	}
	return "nav.lang_pt_br"
}

// LanguageURL returns the current URL with the language param replaced.
func LanguageURL(page PageContext, tag string) string {
	path := strings.TrimSpace(page.CurrentPath)
	if path == "" {
		path = routepath.Root
	}
	values, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(platformi18n.LangParam, tag)
	return path + "?" + values.Encode()
}
