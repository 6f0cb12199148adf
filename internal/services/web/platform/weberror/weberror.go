// Package weberror renders shared error responses for web modules.
package weberror

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	platformi18n "github.com/nlwcopa/bolao/internal/platform/i18n"
	apperrors "github.com/nlwcopa/bolao/internal/services/web/platform/errors"
	"github.com/nlwcopa/bolao/internal/services/web/platform/httpx"
	webtemplates "github.com/nlwcopa/bolao/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the full error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc platformi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	return StatusMessage(loc, apperrors.HTTPStatus(err))
}

// StatusMessage returns the localized default message for statusCode.
func StatusMessage(loc platformi18n.Localizer, statusCode int) string {
	key := "error.internal"
	switch {
	case statusCode == http.StatusNotFound:
		key = "error.not_found"
	case statusCode == http.StatusServiceUnavailable:
		key = "error.unavailable"
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		if text := http.StatusText(statusCode); text != "" {
			return text
		}
	}
	return webtemplates.T(loc, key)
}

// WriteAppError writes a localized full-page error. JSON clients get {"error": message}.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := platformi18n.ResolveLocalizer(w, r)
	if strings.TrimSpace(message) == "" {
		message = StatusMessage(loc, statusCode)
	}
	if httpx.WantsJSON(r) {
		_ = httpx.WriteJSONError(w, statusCode, message)
		return
	}

	page := webtemplates.PageContext{Lang: lang.String(), Loc: loc}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
	}
	body := webtemplates.ErrorState(page, statusCode, message)
	var buf bytes.Buffer
	if err := webtemplates.Layout(page, webtemplates.ErrorPageTitle(loc)).Render(templ.WithChildren(httpx.RequestContext(r), body), &buf); err != nil {
		http.Error(w, message, statusCode)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

// WriteNotFound writes the localized 404 page.
func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	WriteAppError(w, r, http.StatusNotFound, "")
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	loc, _ := platformi18n.ResolveLocalizer(w, r)
	message := PublicMessage(loc, err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, message)
		return
	}
	if httpx.WantsJSON(r) {
		_ = httpx.WriteJSONError(w, statusCode, message)
		return
	}
	http.Error(w, message, statusCode)
}
