// Package apiclient is the single gateway to the backend REST API. Every
// response is the fixed envelope {ok, data, meta, error, message, details};
// an ok:false envelope or a transport failure becomes an *apierror.Error.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/pkg/apierror"
	"github.com/delote/beauty-web/pkg/logger"
	"github.com/delote/beauty-web/pkg/metrics"
)

// Envelope is the parsed API response shape.
type Envelope struct {
	OK        bool                  `json:"ok"`
	Data      json.RawMessage       `json:"data"`
	Meta      *model.Meta           `json:"meta"`
	ErrorCode string                `json:"error"`
	Message   string                `json:"message"`
	Details   []apierror.FieldError `json:"details"`
}

// CachePolicy controls time-boxed reuse of GET responses. The zero value
// means always fresh.
type CachePolicy struct {
	TTL  time.Duration
	Tags []string
}

// NoStore forces a fresh fetch regardless of the resource's default window.
// Admin pages use it: staleness right after an edit is unacceptable there.
var NoStore = CachePolicy{}

// Revalidate builds a time-boxed policy tagging the entry for invalidation.
func Revalidate(ttl time.Duration, tags ...string) CachePolicy {
	return CachePolicy{TTL: ttl, Tags: tags}
}

type Client struct {
	baseURL string
	http    *http.Client
	store   cache.Store
	metrics *metrics.Metrics
	log     *logger.Logger
}

func New(baseURL string, timeout time.Duration, store cache.Store, m *metrics.Metrics, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		store:   store,
		metrics: m,
		log:     log,
	}
}

// Get fetches an endpoint, honoring the cache policy. Cached entries hold
// the raw envelope body keyed by endpoint (the query string is part of the
// key), so two calls with identical filters share one upstream request
// within the window.
func (c *Client) Get(ctx context.Context, endpoint string, policy CachePolicy) (*Envelope, error) {
	if policy.TTL > 0 && c.store != nil {
		if body, ok := c.store.Get(ctx, endpoint); ok {
			if c.metrics != nil {
				c.metrics.CacheHits.Inc()
			}
			return parseEnvelope(body, http.StatusOK)
		}
		if c.metrics != nil {
			c.metrics.CacheMisses.Inc()
		}
	}

	env, body, err := c.do(ctx, http.MethodGet, endpoint, "", nil, "")
	if err != nil {
		return nil, err
	}

	if policy.TTL > 0 && c.store != nil {
		c.store.Set(ctx, endpoint, body, policy.TTL, policy.Tags...)
	}
	return env, nil
}

// GetAuth fetches an endpoint with a bearer token. An empty token fails
// locally with unauthorized, before any round trip. Authenticated reads are
// never cached.
func (c *Client) GetAuth(ctx context.Context, endpoint, token string) (*Envelope, error) {
	if token == "" {
		return nil, apierror.Unauthorized()
	}
	env, _, err := c.do(ctx, http.MethodGet, endpoint, token, nil, "")
	return env, err
}

// PostJSON issues a POST with a JSON body. Token may be empty for the login
// endpoint, which is the one unauthenticated write.
func (c *Client) PostJSON(ctx context.Context, endpoint string, payload any, token string) (*Envelope, error) {
	return c.sendJSON(ctx, http.MethodPost, endpoint, payload, token)
}

// PatchJSON issues a partial update with a JSON body.
func (c *Client) PatchJSON(ctx context.Context, endpoint string, payload any, token string) (*Envelope, error) {
	if token == "" {
		return nil, apierror.Unauthorized()
	}
	return c.sendJSON(ctx, http.MethodPatch, endpoint, payload, token)
}

// PutJSON issues a full update with a JSON body.
func (c *Client) PutJSON(ctx context.Context, endpoint string, payload any, token string) (*Envelope, error) {
	if token == "" {
		return nil, apierror.Unauthorized()
	}
	return c.sendJSON(ctx, http.MethodPut, endpoint, payload, token)
}

// Delete issues an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, endpoint, token string) (*Envelope, error) {
	if token == "" {
		return nil, apierror.Unauthorized()
	}
	env, _, err := c.do(ctx, http.MethodDelete, endpoint, token, nil, "")
	return env, err
}

// SubmitForm sends a multipart form (POST or PATCH). The content type,
// boundary included, comes from the multipart writer; it is never written
// by hand.
func (c *Client) SubmitForm(ctx context.Context, method, endpoint string, form *Form, token string) (*Envelope, error) {
	if token == "" {
		return nil, apierror.Unauthorized()
	}
	body, contentType, err := form.encode()
	if err != nil {
		return nil, apierror.Network(err)
	}
	env, _, doErr := c.do(ctx, method, endpoint, token, body, contentType)
	return env, doErr
}

func (c *Client) sendJSON(ctx context.Context, method, endpoint string, payload any, token string) (*Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, apierror.Network(err)
	}
	env, _, doErr := c.do(ctx, method, endpoint, token, bytes.NewReader(raw), "application/json")
	return env, doErr
}

func (c *Client) do(ctx context.Context, method, endpoint, token string, body io.Reader, contentType string) (*Envelope, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, nil, apierror.Network(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	} else if body == nil && method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if c.metrics != nil {
		c.metrics.UpstreamLatency.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.observe(method, 0, apierror.CodeNetwork)
		c.log.Error(err, "api request failed", "method", method, "endpoint", endpoint)
		return nil, nil, apierror.Network(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(method, resp.StatusCode, apierror.CodeNetwork)
		return nil, nil, apierror.Network(err)
	}

	env, err := parseEnvelope(raw, resp.StatusCode)
	if err != nil {
		if apiErr, ok := err.(*apierror.Error); ok {
			c.observe(method, resp.StatusCode, apiErr.Code)
		}
		return nil, nil, err
	}
	c.observe(method, resp.StatusCode, "")
	return env, raw, nil
}

func (c *Client) observe(method string, status int, errCode string) {
	if c.metrics == nil {
		return
	}
	c.metrics.UpstreamRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	if errCode != "" {
		c.metrics.UpstreamErrors.WithLabelValues(errCode).Inc()
	}
}

func parseEnvelope(raw []byte, status int) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apierror.Network(err)
	}
	if !env.OK {
		// Message may be empty; callers substitute their own fallback.
		return nil, apierror.New(env.ErrorCode, env.Message, status, env.Details)
	}
	return &env, nil
}

// DecodeData unmarshals the envelope payload into a concrete type.
func DecodeData[T any](env *Envelope) (T, error) {
	var out T
	if len(env.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, apierror.Network(err)
	}
	return out, nil
}

// ListMeta returns the envelope's pagination block, substituting an empty
// one when the API omits it so list callers always see a meta object.
func ListMeta(env *Envelope) model.Meta {
	if env.Meta != nil {
		return *env.Meta
	}
	return model.Meta{}
}
