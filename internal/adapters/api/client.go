// Package api is the dashboard's only way to reach the BoringLaunch REST
// API. All failures funnel through Client.do, which shows one error toast
// and hands a typed *Error back to the page.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/csg33k/launchboard/internal/metrics"
	"github.com/csg33k/launchboard/internal/toast"
)

const (
	// RequestIDHeader is forwarded to the API so its logs line up with ours.
	RequestIDHeader = "X-Request-ID"

	maxErrorBody = 1 << 20
)

// Notifier receives the user-facing message of every failed call.
type Notifier interface {
	Notify(ctx context.Context, level toast.Level, text string)
}

type Client struct {
	baseURL  string
	http     *http.Client
	notifier Notifier
	log      *zap.Logger
}

type Option func(*Client)

func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a client for baseURL (e.g. http://localhost:8000/api/v1).
// By default failures are pushed onto the toast queue of the call's context.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		notifier: toast.ContextNotifier{},
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

type requestIDKey struct{}

// WithRequestID stores the inbound request id so outbound calls reuse it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return c.fail(ctx, &Error{Kind: KindNetwork, Operation: op, Message: FallbackMessage, Err: fmt.Errorf("encode body: %w", err)})
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, op, method, path, body, contentType, out)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// doMultipart posts r as the single form field "file". contentType may be
// empty, in which case it is sniffed from the content.
func (c *Client) doMultipart(ctx context.Context, op, path, filename, contentType string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return c.fail(ctx, &Error{Kind: KindNetwork, Operation: op, Message: FallbackMessage, Err: fmt.Errorf("read upload: %w", err)})
	}
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err == nil {
		_, err = part.Write(data)
	}
	if err == nil {
		err = mw.Close()
	}
	if err != nil {
		return c.fail(ctx, &Error{Kind: KindNetwork, Operation: op, Message: FallbackMessage, Err: fmt.Errorf("encode multipart: %w", err)})
	}
	return c.do(ctx, op, http.MethodPost, path, &buf, mw.FormDataContentType(), nil)
}

// do issues one request. A 2xx body is decoded into out when out is
// non-nil and the body is not empty; anything else becomes an *Error.
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out any) error {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return c.fail(ctx, &Error{Kind: KindNetwork, Operation: op, Message: FallbackMessage, Err: err})
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	id := RequestID(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, id)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveAPICall(op, KindNetwork.String(), start)
		return c.fail(ctx, &Error{Kind: KindNetwork, Operation: op, Message: FallbackMessage, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		kind := kindForStatus(resp.StatusCode)
		metrics.ObserveAPICall(op, kind.String(), start)
		return c.fail(ctx, &Error{
			Kind:      kind,
			Operation: op,
			Status:    resp.StatusCode,
			Message:   detailMessage(b),
		})
	}

	if out != nil {
		b, err := io.ReadAll(resp.Body)
		if err == nil && len(bytes.TrimSpace(b)) > 0 {
			err = json.Unmarshal(b, out)
		}
		if err != nil {
			metrics.ObserveAPICall(op, KindDecode.String(), start)
			return c.fail(ctx, &Error{Kind: KindDecode, Operation: op, Status: resp.StatusCode, Message: FallbackMessage, Err: err})
		}
	}
	metrics.ObserveAPICall(op, "ok", start)
	c.log.Debug("api call",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
		zap.String("request_id", id),
	)
	return nil
}

// fail is the single interception point: log, notify once, return.
func (c *Client) fail(ctx context.Context, e *Error) error {
	c.log.Warn("api call failed",
		zap.String("op", e.Operation),
		zap.String("kind", e.Kind.String()),
		zap.Int("status", e.Status),
		zap.String("message", e.Message),
		zap.Error(e.Err),
	)
	c.notifier.Notify(ctx, toast.LevelError, e.Message)
	return e
}
