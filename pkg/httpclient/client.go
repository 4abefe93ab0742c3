// Package httpclient implements the generic API client: base URL handling,
// bearer-token injection, per-request timeout, response envelope unwrapping
// and the non-2xx error taxonomy.
package httpclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"go-backoffice-client/pkg/credstore"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultTimeout matches the panel's fixed 30s request budget.
const DefaultTimeout = 30 * time.Second

// Response is the normalized success result: the unwrapped data payload and
// the pass-through server message.
type Response struct {
	Success bool
	Data    any
	Message string
}

// Decode maps the payload into v using a weakly typed decode keyed on json
// tags, tolerating string-encoded numbers from the backend.
func (r *Response) Decode(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(r.Data)
}

type Option func(*Client)

// WithHTTPClient overrides the underlying transport (used in tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithUnauthorizedHook registers the callback fired after a 401 clears the
// stored credentials; the UI layer uses it to navigate to the login screen.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// Client issues requests against the back-office API.
type Client struct {
	baseURL        string
	timeout        time.Duration
	creds          credstore.Store
	http           *http.Client
	log            *zap.Logger
	onUnauthorized func()
}

func New(baseURL string, timeout time.Duration, creds credstore.Store, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL: baseURL,
		timeout: timeout,
		creds:   creds,
		http:    &http.Client{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, params)
}

func (c *Client) Post(ctx context.Context, endpoint string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, endpoint, body, nil)
}

func (c *Client) Put(ctx context.Context, endpoint string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, endpoint, body, nil)
}

func (c *Client) Patch(ctx context.Context, endpoint string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPatch, endpoint, body, nil)
}

func (c *Client) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

// Upload posts a multipart form holding the primary file under the given
// field name plus the string-coerced extra fields.
func (c *Client) Upload(ctx context.Context, endpoint, field string, file File, fields map[string]any) (*Response, error) {
	form := NewForm()
	form.AddFile(field, file.Name, file.Content)
	for key, value := range fields {
		form.AddField(key, value)
	}
	return c.do(ctx, http.MethodPost, endpoint, form, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, params url.Values) (*Response, error) {
	target := c.baseURL + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reqBody io.Reader
	contentType := "application/json"
	switch b := body.(type) {
	case nil:
	case *Form:
		buf, ct, err := b.encode()
		if err != nil {
			return nil, err
		}
		reqBody = buf
		contentType = ct
	default:
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(raw)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := credstore.Token(c.creds); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.log.Warn("api request timed out", zap.String("method", method), zap.String("url", target))
			return nil, ErrTimeout
		}
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		// The deadline can also fire mid-body, after the headers arrived.
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			c.log.Warn("api response timed out", zap.String("method", method), zap.String("url", target))
			return nil, ErrTimeout
		}
		return nil, err
	}
	c.log.Debug("api request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.handleError(resp, raw)
	}

	return unwrap(raw)
}

// handleError extracts the server message and applies the status-specific
// behavior. A 401 clears stored credentials and fires the unauthorized hook
// before the error is returned.
func (c *Client) handleError(resp *http.Response, raw []byte) error {
	message := ""
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err == nil {
		if m, ok := body["message"].(string); ok && m != "" {
			message = m
		} else if m, ok := body["error"].(string); ok && m != "" {
			message = m
		}
	}
	if message == "" {
		message = resp.Status
	}

	if resp.StatusCode == 401 {
		credstore.ClearAuth(c.creds)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
	err := classify(resp.StatusCode, message)
	c.log.Warn("api request failed",
		zap.Int("status", resp.StatusCode),
		zap.String("message", err.Error()),
	)
	return err
}

// unwrap pulls the payload out of the {data, message} envelope; bodies
// without a data key are treated as the payload themselves.
func unwrap(raw []byte) (*Response, error) {
	if len(raw) == 0 {
		return &Response{Success: true}, nil
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	res := &Response{Success: true, Data: parsed}
	if obj, ok := parsed.(map[string]any); ok {
		if data, ok := obj["data"]; ok {
			res.Data = data
		}
		if message, ok := obj["message"].(string); ok {
			res.Message = message
		}
	}
	return res, nil
}
