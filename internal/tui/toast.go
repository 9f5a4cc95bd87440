package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"mail-settings/internal/theme"
)

const defaultToastDuration = 4 * time.Second

type toastKind int

const (
	toastPending toastKind = iota
	toastSuccess
	toastError
)

type toast struct {
	id   string
	kind toastKind
	text string
}

// toastMsg shows a toast, replacing any toast with the same id
type toastMsg toast

type toastExpiredMsg struct {
	id string
}

func newToastID() string {
	return uuid.NewString()
}

func showToast(id string, kind toastKind, text string) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{id: id, kind: kind, text: text}
	}
}

// toaster keeps the visible toasts in arrival order
type toaster struct {
	toasts   []toast
	duration time.Duration

	// ids that already got their final toast
	settled map[string]struct{}
}

func newToaster(duration time.Duration) toaster {
	if duration <= 0 {
		duration = defaultToastDuration
	}
	return toaster{duration: duration}
}

// upsert shows msg; finished toasts schedule their own expiry. A pending
// toast arriving after its result is dropped, since batched commands are
// delivered in any order.
func (t *toaster) upsert(msg toastMsg) tea.Cmd {
	next := toast(msg)

	if next.kind == toastPending {
		if _, done := t.settled[next.id]; done {
			return nil
		}
	} else {
		if t.settled == nil {
			t.settled = make(map[string]struct{})
		}
		t.settled[next.id] = struct{}{}
	}

	replaced := false
	for i := range t.toasts {
		if t.toasts[i].id == next.id {
			t.toasts[i] = next
			replaced = true
			break
		}
	}
	if !replaced {
		t.toasts = append(t.toasts, next)
	}

	if next.kind == toastPending {
		return nil
	}

	id := next.id
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (t *toaster) expire(id string) {
	kept := t.toasts[:0]
	for _, ts := range t.toasts {
		if ts.id != id || ts.kind == toastPending {
			kept = append(kept, ts)
		}
	}
	t.toasts = kept
}

func (t toaster) view(styles *theme.Styles) string {
	if len(t.toasts) == 0 {
		return ""
	}

	lines := make([]string, 0, len(t.toasts))
	for _, ts := range t.toasts {
		style := styles.ToastPending
		switch ts.kind {
		case toastSuccess:
			style = styles.ToastSuccess
		case toastError:
			style = styles.ToastError
		}
		lines = append(lines, style.Render(ts.text))
	}
	return strings.Join(lines, "\n")
}
