package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	platformi18n "github.com/nlwcopa/bolao/internal/platform/i18n"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
)

func renderDocument(t *testing.T, render func(*bytes.Buffer) error) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		t.Fatalf("render error = %v", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && match(node) {
			out = append(out, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func withAttr(key, value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		got, ok := attr(n, key)
		return ok && got == value
	}
}

func TestLandingPageRendersCountsUnchanged(t *testing.T) {
	t.Parallel()

	page := PageContext{Lang: "pt-BR", Loc: platformi18n.Printer(language.BrazilianPortuguese), CurrentPath: "/"}
	view := LandingView{
		Stats:     &LandingStats{Pools: 0, Guesses: 1234567, Users: 42},
		FormToken: "token-1",
	}
	doc := renderDocument(t, func(buf *bytes.Buffer) error {
		return LandingPage(page, view).Render(context.Background(), buf)
	})

	want := map[string]string{"pools": "0", "guesses": "1234567", "users": "42"}
	for stat, value := range want {
		nodes := findAll(doc, withAttr("data-stat", stat))
		if len(nodes) != 1 {
			t.Fatalf("stat %q nodes = %d, want 1", stat, len(nodes))
		}
		if got := textContent(nodes[0]); got != value {
			t.Fatalf("stat %q = %q, want %q", stat, got, value)
		}
	}

	tokens := findAll(doc, withAttr("name", "form_id"))
	if len(tokens) != 1 {
		t.Fatalf("form_id inputs = %d, want 1", len(tokens))
	}
	if got, _ := attr(tokens[0], "value"); got != "token-1" {
		t.Fatalf("form_id = %q, want %q", got, "token-1")
	}
	if len(findAll(doc, withAttr("role", "status"))) != 0 {
		t.Fatal("notice rendered without a notice")
	}
	buttons := findAll(doc, func(n *html.Node) bool { return n.Data == "button" })
	if len(buttons) != 1 || textContent(buttons[0]) != "Criar meu bolão" {
		t.Fatalf("submit button = %v", buttons)
	}
	previews := findAll(doc, withAttr("class", "preview"))
	if len(previews) != 1 {
		t.Fatalf("preview images = %d, want 1", len(previews))
	}
	if got, _ := attr(previews[0], "alt"); got != "Dois celulares exibindo uma prévia da aplicação móvel" {
		t.Fatalf("preview alt = %q", got)
	}
	if got, _ := attr(previews[0], "src"); got != "/static/app-preview.svg" {
		t.Fatalf("preview src = %q, want %q", got, "/static/app-preview.svg")
	}
}

func TestLandingContentOmitsCountersWithoutStats(t *testing.T) {
	t.Parallel()

	page := PageContext{Lang: "en-US", Loc: platformi18n.Printer(language.AmericanEnglish)}
	view := LandingView{Notice: &Notice{Kind: NoticeSuccess, Message: "Pool created", Code: "XYZ789"}}
	doc := renderDocument(t, func(buf *bytes.Buffer) error {
		return LandingContent(page, view).Render(context.Background(), buf)
	})
	if got := findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "data-stat"); return ok }); len(got) != 0 {
		t.Fatalf("stat nodes = %d, want 0", len(got))
	}
	if got := findAll(doc, withAttr("class", "users")); len(got) != 0 {
		t.Fatalf("users line rendered without stats")
	}
	codes := findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "data-code"); return ok })
	if len(codes) != 1 || textContent(codes[0]) != "XYZ789" {
		t.Fatalf("code nodes = %v", codes)
	}
	if len(findAll(doc, withAttr("id", "pool-form"))) != 1 {
		t.Fatal("pool form missing")
	}
}

func TestLandingPageEscapesTitleAndShowsNotice(t *testing.T) {
	t.Parallel()

	page := PageContext{Lang: "en-US", Loc: platformi18n.Printer(language.AmericanEnglish), CurrentPath: "/"}
	view := LandingView{
		Title:  `<script>alert("x")</script>`,
		Notice: &Notice{Kind: NoticeSuccess, Message: "Pool created", Code: "ABC123"},
	}
	var buf bytes.Buffer
	if err := LandingPage(page, view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render error = %v", err)
	}
	if strings.Contains(buf.String(), `<script>alert`) {
		t.Fatalf("title was not escaped: %s", buf.String())
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}

	inputs := findAll(doc, withAttr("name", "title"))
	if len(inputs) != 1 {
		t.Fatalf("title inputs = %d, want 1", len(inputs))
	}
	if got, _ := attr(inputs[0], "value"); got != view.Title {
		t.Fatalf("title value = %q, want %q", got, view.Title)
	}
	notices := findAll(doc, withAttr("data-notice", "success"))
	if len(notices) != 1 {
		t.Fatalf("notices = %d, want 1", len(notices))
	}
	codes := findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "data-code"); return ok })
	if len(codes) != 1 || textContent(codes[0]) != "ABC123" {
		t.Fatalf("code nodes = %v", codes)
	}
}

func TestLayoutMarksActiveLanguage(t *testing.T) {
	t.Parallel()

	page := PageContext{Lang: "en-US", Loc: platformi18n.Printer(language.AmericanEnglish), CurrentPath: "/", CurrentQuery: "lang=en-US&ref=x"}
	doc := renderDocument(t, func(buf *bytes.Buffer) error {
		return LandingPage(page, LandingView{}).Render(context.Background(), buf)
	})
	htmlNodes := findAll(doc, func(n *html.Node) bool { return n.Data == "html" })
	if got, _ := attr(htmlNodes[0], "lang"); got != "en-US" {
		t.Fatalf("html lang = %q, want %q", got, "en-US")
	}
	active := findAll(doc, withAttr("aria-current", "true"))
	if len(active) != 1 {
		t.Fatalf("active languages = %d, want 1", len(active))
	}
	if got, _ := attr(active[0], "hreflang"); got != "en-US" {
		t.Fatalf("active hreflang = %q, want %q", got, "en-US")
	}
	titles := findAll(doc, func(n *html.Node) bool { return n.Data == "title" })
	if got := textContent(titles[0]); got != "NLW Copa | Create your pool" {
		t.Fatalf("title = %q", got)
	}
}

func TestLanguageURLReplacesParam(t *testing.T) {
	t.Parallel()

	got := LanguageURL(PageContext{CurrentPath: "/", CurrentQuery: "lang=en-US&ref=x"}, "pt-BR")
	if got != "/?lang=pt-BR&ref=x" {
		t.Fatalf("LanguageURL() = %q", got)
	}
	if got := LanguageURL(PageContext{}, "en-US"); got != "/?lang=en-US" {
		t.Fatalf("LanguageURL() with empty page = %q", got)
	}
}

func TestErrorStateRendersInsideLayout(t *testing.T) {
	t.Parallel()

	loc := platformi18n.Printer(language.BrazilianPortuguese)
	page := PageContext{Lang: "pt-BR", Loc: loc}
	doc := renderDocument(t, func(buf *bytes.Buffer) error {
		body := ErrorState(page, 503, "indisponível")
		return Layout(page, ErrorPageTitle(loc)).Render(templ.WithChildren(context.Background(), body), buf)
	})
	titles := findAll(doc, func(n *html.Node) bool { return n.Data == "title" })
	if len(titles) != 1 || textContent(titles[0]) != ErrorPageTitle(loc) {
		t.Fatalf("title nodes = %v", titles)
	}
	nodes := findAll(doc, withAttr("data-status", "503"))
	if len(nodes) != 1 {
		t.Fatalf("error state nodes = %d, want 1", len(nodes))
	}
	if !strings.Contains(textContent(nodes[0]), "indisponível") {
		t.Fatalf("error state text = %q", textContent(nodes[0]))
	}
	if len(findAll(doc, withAttr("data-stat", "pools"))) != 0 {
		t.Fatal("error page rendered counters")
	}
}

func TestTDefaultsToPortuguese(t *testing.T) {
	t.Parallel()

	if got := T(nil, "form.submit"); got != "Criar meu bolão" {
		t.Fatalf("T(nil) = %q, want %q", got, "Criar meu bolão")
	}
	if got := T(nil, "title.landing", "NLW Copa"); got != T(platformi18n.Printer(language.BrazilianPortuguese), "title.landing", "NLW Copa") {
		t.Fatalf("T(nil, args) = %q", got)
	}
	en := platformi18n.Printer(language.AmericanEnglish)
	if got := T(en, "form.submit"); got == "Criar meu bolão" {
		t.Fatalf("T(en) = %q, want English", got)
	}
}
