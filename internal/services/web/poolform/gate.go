package poolform

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Gate binds rendered form tokens to shared Form values so that requests
// carrying the same token observe one submit lifecycle.
type Gate struct {
	mu    sync.Mutex
	bound map[string]*binding
}

type binding struct {
	form    *Form
	holders int
}

// NewGate returns an empty gate.
func NewGate() *Gate {
	return &Gate{bound: make(map[string]*binding)}
}

// NewToken returns a fresh form token for a page render.
func NewToken() string {
	return uuid.NewString()
}

// ValidToken reports whether token has the shape produced by NewToken.
func ValidToken(token string) bool {
	_, err := uuid.Parse(strings.TrimSpace(token))
	return err == nil
}

// Bind returns the form held for token, creating it with newForm when no
// request holds the token. The binding is dropped once every holder has
// called release. Release is idempotent.
func (g *Gate) Bind(token string, newForm func() *Form) (form *Form, release func()) {
	token = strings.TrimSpace(token)
	g.mu.Lock()
	defer g.mu.Unlock()
	b, ok := g.bound[token]
	if !ok {
		b = &binding{form: newForm()}
		g.bound[token] = b
	}
	b.holders++
	var once sync.Once
	return b.form, func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			b.holders--
			if b.holders == 0 {
				delete(g.bound, token)
			}
		})
	}
}

// Pending returns the number of tokens currently bound.
func (g *Gate) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.bound)
}
