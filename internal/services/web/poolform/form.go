// Package poolform models the pool creation form and its submit lifecycle.
package poolform

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrTitleRequired reports a submit with an empty title.
	ErrTitleRequired = errors.New("pool title is required")
	// ErrSubmitInProgress reports a submit while another one is pending.
	ErrSubmitInProgress = errors.New("pool submission already in progress")
)

// State is the submit lifecycle of a form.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Creator creates a pool and returns its share code.
type Creator interface {
	CreatePool(ctx context.Context, title string) (string, error)
}

// Clipboard receives the created pool code.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Notifier shows a notice to the user.
type Notifier interface {
	Notify(Notice)
}

// NoticeKind classifies submit outcomes.
type NoticeKind string

const (
	NoticeCreated NoticeKind = "created"
	NoticeFailed  NoticeKind = "failed"
)

// Notice is the single outcome notification of a submit.
type Notice struct {
	Kind NoticeKind
	Code string
	Err  error
}

// Form holds the pool title and guards against overlapping submits.
type Form struct {
	creator   Creator
	clipboard Clipboard
	notifier  Notifier

	mu    sync.Mutex
	title string
	state State
}

// NewForm builds an idle form with an empty title.
func NewForm(creator Creator, clipboard Clipboard, notifier Notifier) *Form {
	return &Form{creator: creator, clipboard: clipboard, notifier: notifier}
}

// UpdateTitle replaces the title.
func (f *Form) UpdateTitle(text string) {
	f.mu.Lock()
	f.title = text
	f.mu.Unlock()
}

// Title returns the current title.
func (f *Form) Title() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.title
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit creates a pool from the current title.
//
// On success the code is written to the clipboard, a created notice is sent
// and the title is cleared. Any failure, including a clipboard rejection,
// sends one failed notice and keeps the title. An empty title or a pending
// submit returns an error without calling the creator or the notifier.
func (f *Form) Submit(ctx context.Context) (string, error) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return "", ErrSubmitInProgress
	}
	if f.title == "" {
		f.mu.Unlock()
		return "", ErrTitleRequired
	}
	title := f.title
	f.state = StateSubmitting
	f.mu.Unlock()

	code, err := f.create(ctx, title)

	f.mu.Lock()
	f.state = StateIdle
	if err == nil {
		f.title = ""
	}
	f.mu.Unlock()

	if err != nil {
		f.notify(Notice{Kind: NoticeFailed, Err: err})
		return "", err
	}
	f.notify(Notice{Kind: NoticeCreated, Code: code})
	return code, nil
}

func (f *Form) create(ctx context.Context, title string) (string, error) {
	if f.creator == nil {
		return "", errors.New("pool creator is not configured")
	}
	code, err := f.creator.CreatePool(ctx, title)
	if err != nil {
		return "", fmt.Errorf("create pool: %w", err)
	}
	if f.clipboard != nil {
		if err := f.clipboard.WriteText(ctx, code); err != nil {
			return "", fmt.Errorf("copy pool code: %w", err)
		}
	}
	return code, nil
}

func (f *Form) notify(n Notice) {
	if f.notifier != nil {
		f.notifier.Notify(n)
	}
}
