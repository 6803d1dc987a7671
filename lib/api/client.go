// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rollcall-hq/rollcall/lib/netutil"
)

// DefaultTimeout bounds every request. Discovered timeouts surface as
// ordinary transport failures; there is no client-side token refresh
// or recovery beyond the single GET retry in [rest.do].
const DefaultTimeout = 30 * time.Second

// Options configures a client.
type Options struct {
	// BaseURL is the full API root including the path prefix, e.g.
	// "https://api.rollcall.example/api/v1".
	BaseURL string

	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration

	// HTTPClient overrides the transport. Tests point this at an
	// httptest server; production code leaves it nil.
	HTTPClient *http.Client
}

// rest is the request core shared by the tenant and admin clients.
// Token and tenant identifier are guarded by a mutex because thunks
// run on goroutines while login/logout mutate the credentials.
type rest struct {
	httpClient *http.Client
	baseURL    string

	mu             sync.RWMutex
	token          string
	tenantID       string
	onUnauthorized func()
}

func newREST(options Options) rest {
	httpClient := options.HTTPClient
	if httpClient == nil {
		timeout := options.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return rest{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(options.BaseURL, "/"),
	}
}

// SetToken installs (or clears, with "") the bearer token attached to
// subsequent requests.
func (r *rest) SetToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
}

// SetTenant installs the tenant identifier carried in the X-Tenant-ID
// header. Once set, it rides on every subsequent request until changed.
func (r *rest) SetTenant(tenantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tenantID = tenantID
}

// Tenant returns the tenant identifier currently attached to requests.
func (r *rest) Tenant() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tenantID
}

// SetOnUnauthorized installs the hook fired when any request on this
// client comes back 401. The hook runs once per 401 response, before
// the error is returned to the caller.
func (r *rest) SetOnUnauthorized(hook func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onUnauthorized = hook
}

// do issues one request and decodes the JSON response into out (when
// out is non-nil). Transport-level failures on GET are retried once;
// HTTP error statuses are never retried. A 401 additionally fires the
// OnUnauthorized hook.
func (r *rest) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encoding request: %w", method, path, err)
		}
	}

	response, err := r.send(ctx, method, path, query, payload)
	if err != nil && method == http.MethodGet && ctx.Err() == nil {
		// One retry for idempotent reads on transport failure, the
		// fixed small default the original client inherited from its
		// data-fetching library.
		response, err = r.send(ctx, method, path, query, payload)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusUnauthorized {
		r.mu.RLock()
		hook := r.onUnauthorized
		r.mu.RUnlock()
		if hook != nil {
			hook()
		}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &Error{
			Status:    response.StatusCode,
			Detail:    netutil.ErrorDetail(response.Body),
			RequestID: response.Request.Header.Get("X-Request-ID"),
		}
	}

	if out == nil {
		return nil
	}
	if err := netutil.DecodeResponse(response.Body, out); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return nil
}

func (r *rest) send(ctx context.Context, method, path string, query url.Values, payload []byte) (*http.Response, error) {
	target := r.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader *bytes.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, err
	}

	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	r.mu.RLock()
	if r.token != "" {
		request.Header.Set("Authorization", "Bearer "+r.token)
	}
	if r.tenantID != "" {
		request.Header.Set("X-Tenant-ID", r.tenantID)
	}
	r.mu.RUnlock()

	return r.httpClient.Do(request)
}

// Client is the typed client for the tenant API root.
type Client struct {
	rest
}

// New creates a tenant API client.
func New(options Options) *Client {
	return &Client{rest: newREST(options)}
}

// AdminClient is the typed client for the platform-admin API root. It
// holds its own credentials and hook; nothing is shared with [Client].
type AdminClient struct {
	rest
}

// NewAdmin creates a platform-admin API client.
func NewAdmin(options Options) *AdminClient {
	return &AdminClient{rest: newREST(options)}
}
