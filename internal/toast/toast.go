// Package toast is the dashboard's notification channel. Each request gets
// a Queue; pages render whatever is queued when they are written, and
// navigations carry the queue across the redirect in a short-lived cookie.
package toast

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/csg33k/launchboard/internal/metrics"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// CookieName carries pending messages across an HX-Redirect.
const CookieName = "lb_flash"

type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

type Queue struct {
	mu   sync.Mutex
	msgs []Message
}

func (q *Queue) Push(level Level, text string) {
	q.mu.Lock()
	q.msgs = append(q.msgs, Message{Level: level, Text: text})
	q.mu.Unlock()
	metrics.Toasts.WithLabelValues(string(level)).Inc()
}

func (q *Queue) Success(text string) { q.Push(LevelSuccess, text) }
func (q *Queue) Error(text string)   { q.Push(LevelError, text) }
func (q *Queue) Info(text string)    { q.Push(LevelInfo, text) }

// Drain returns the queued messages in push order and empties the queue.
func (q *Queue) Drain() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.msgs
	q.msgs = nil
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.msgs)
}

type ctxKey struct{}

func WithQueue(ctx context.Context, q *Queue) context.Context {
	return context.WithValue(ctx, ctxKey{}, q)
}

// FromContext returns the request's queue. Outside a request (tests, CLI
// use of the API client) it returns a fresh queue nobody reads.
func FromContext(ctx context.Context) *Queue {
	if q, ok := ctx.Value(ctxKey{}).(*Queue); ok {
		return q
	}
	return &Queue{}
}

// ContextNotifier pushes onto the queue stored in the call's context.
type ContextNotifier struct{}

func (ContextNotifier) Notify(ctx context.Context, level Level, text string) {
	FromContext(ctx).Push(level, text)
}

// Flash drains q into a cookie so the messages survive a navigation.
func Flash(w http.ResponseWriter, q *Queue) {
	msgs := q.Drain()
	if len(msgs) == 0 {
		return
	}
	b, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware attaches a queue to every request, seeded with any flashed
// messages, and expires the flash cookie.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := &Queue{}
		if c, err := r.Cookie(CookieName); err == nil {
			q.msgs = decode(c.Value)
			http.SetCookie(w, &http.Cookie{Name: CookieName, Value: "", Path: "/", MaxAge: -1})
		}
		next.ServeHTTP(w, r.WithContext(WithQueue(r.Context(), q)))
	})
}

func decode(v string) []Message {
	b, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil
	}
	return msgs
}
