// Package i18n resolves request languages and exposes message printers.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "bolao_lang"
)

var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
}

var matcher = language.NewMatcher(supported)

// Localizer formats catalog messages for one language.
type Localizer interface {
	Sprintf(key message.Reference, a ...any) string
}

// SupportedTags returns the languages with registered catalogs. The first
// entry is the default.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return supported[0]
}

// ParseTag parses value and reports whether it maps to a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence < language.High {
		return language.Und, false
	}
	return supported[idx], true
}

// MatchTags picks the best supported language for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[idx]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return DefaultTag(), false
	}

	if r.URL != nil {
		if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
			if tag, ok := ParseTag(value); ok {
				return tag, true
			}
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return MatchTags(tags), false
		}
	}

	return DefaultTag(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves the request language, persists an explicit
// choice, and returns the matching printer.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag
}
