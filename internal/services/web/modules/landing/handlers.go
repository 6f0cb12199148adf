package landing

import (
	"bytes"
	"errors"
	"net/http"

	platformi18n "github.com/nlwcopa/bolao/internal/platform/i18n"
	apperrors "github.com/nlwcopa/bolao/internal/services/web/platform/errors"
	"github.com/nlwcopa/bolao/internal/services/web/platform/httpx"
	"github.com/nlwcopa/bolao/internal/services/web/platform/weberror"
	"github.com/nlwcopa/bolao/internal/services/web/poolform"
	webtemplates "github.com/nlwcopa/bolao/internal/services/web/templates"
	"go.uber.org/zap"
)

const (
	titleField = "title"
	tokenField = "form_id"
)

type handlers struct {
	service service
	gate    *poolform.Gate
	logger  *zap.Logger
}

func newHandlers(s service, gate *poolform.Gate, logger *zap.Logger) handlers {
	if gate == nil {
		gate = poolform.NewGate()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return handlers{service: s, gate: gate, logger: logger}
}

// createdResponse is the JSON body returned to script clients.
type createdResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// noticeLogger records submit outcomes. Failures are logged with their cause
// by the handler, so only created pools are reported here.
type noticeLogger struct {
	logger    *zap.Logger
	requestID string
}

func (n noticeLogger) Notify(notice poolform.Notice) {
	if notice.Kind != poolform.NoticeCreated {
		return
	}
	n.logger.Info("pool created", zap.String("code", notice.Code), zap.String("request_id", n.requestID))
}

// bindForm returns the form shared by every request carrying token. Posts
// without a valid token get a form of their own.
func (h handlers) bindForm(r *http.Request, token string) (*poolform.Form, func()) {
	newForm := func() *poolform.Form {
		// The browser owns the clipboard; the code travels back in the response.
		return poolform.NewForm(h.service, nil, noticeLogger{logger: h.logger, requestID: httpx.RequestIDFrom(r)})
	}
	if !poolform.ValidToken(token) {
		return newForm(), func() {}
	}
	return h.gate.Bind(token, newForm)
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	stats, err := h.service.loadStats(ctx)
	if err != nil {
		h.logFailure(r, "load landing stats", err)
		weberror.WriteModuleError(w, r, err)
		return
	}
	h.renderLanding(w, r, http.StatusOK, &stats, "", nil)
}

func (h handlers) handleCreatePool(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeCreateError(w, r, "", apperrors.Wrap(apperrors.KindInvalidInput, "notice.pool_failed", "parse pool form", err))
		return
	}
	title := r.PostFormValue(titleField)
	form, release := h.bindForm(r, r.PostFormValue(tokenField))
	defer release()
	form.UpdateTitle(title)

	ctx := httpx.RequestContext(r)
	code, err := form.Submit(ctx)
	switch {
	case errors.Is(err, poolform.ErrTitleRequired):
		h.writeCreateError(w, r, title, apperrors.EK(apperrors.KindInvalidInput, "notice.title_required", "pool title is required"))
		return
	case errors.Is(err, poolform.ErrSubmitInProgress):
		h.logger.Info("pool form already submitting",
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Int("bound_forms", h.gate.Pending()),
		)
		h.writeCreateError(w, r, title, apperrors.EK(apperrors.KindConflict, "notice.pool_in_progress", "pool form already submitting"))
		return
	case err != nil:
		h.logFailure(r, "create pool", err)
		h.writeCreateError(w, r, title, err)
		return
	}

	loc, _ := platformi18n.ResolveLocalizer(w, r)
	message := webtemplates.T(loc, "notice.pool_created")
	if httpx.WantsJSON(r) {
		_ = httpx.WriteJSON(w, http.StatusCreated, createdResponse{Code: code, Message: message})
		return
	}
	notice := &webtemplates.Notice{Kind: webtemplates.NoticeSuccess, Message: message, Code: code}
	// The pool exists upstream, so a failed counter reload must not hide
	// its code: render without counters instead.
	var counters *Stats
	if stats, statsErr := h.service.loadStats(ctx); statsErr != nil {
		h.logFailure(r, "reload landing stats after create", statsErr)
	} else {
		counters = &stats
	}
	h.renderLanding(w, r, http.StatusCreated, counters, "", notice)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteNotFound(w, r)
}

// writeCreateError answers a failed submit. Script clients get a JSON error;
// form posts get the landing page again with the title kept.
func (h handlers) writeCreateError(w http.ResponseWriter, r *http.Request, title string, err error) {
	statusCode := apperrors.HTTPStatus(err)
	loc, _ := platformi18n.ResolveLocalizer(w, r)
	message := weberror.PublicMessage(loc, err)
	if httpx.WantsJSON(r) {
		_ = httpx.WriteJSONError(w, statusCode, message)
		return
	}
	stats, statsErr := h.service.loadStats(httpx.RequestContext(r))
	if statsErr != nil {
		h.logFailure(r, "load landing stats", statsErr)
		weberror.WriteModuleError(w, r, statsErr)
		return
	}
	notice := &webtemplates.Notice{Kind: webtemplates.NoticeError, Message: message}
	h.renderLanding(w, r, statusCode, &stats, title, notice)
}

// renderLanding writes the landing page. A nil stats leaves the counters out.
func (h handlers) renderLanding(w http.ResponseWriter, r *http.Request, statusCode int, stats *Stats, title string, notice *webtemplates.Notice) {
	loc, lang := platformi18n.ResolveLocalizer(w, r)
	page := webtemplates.PageContext{
		Lang:         lang.String(),
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
	}
	view := webtemplates.LandingView{
		Title:     title,
		FormToken: poolform.NewToken(),
		Notice:    notice,
	}
	if stats != nil {
		view.Stats = &webtemplates.LandingStats{
			Pools:   stats.PoolCount,
			Guesses: stats.GuessCount,
			Users:   stats.UsersCount,
		}
	}
	var buf bytes.Buffer
	if err := webtemplates.LandingPage(page, view).Render(httpx.RequestContext(r), &buf); err != nil {
		h.logFailure(r, "render landing page", err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, "")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

func (h handlers) logFailure(r *http.Request, msg string, err error) {
	fields := []zap.Field{
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.String("kind", string(apperrors.KindOf(err))),
		zap.Error(err),
	}
	var counterErr *CounterError
	if errors.As(err, &counterErr) {
		fields = append(fields, zap.String("counter", string(counterErr.Counter)))
	}
	h.logger.Error(msg, fields...)
}
