package vpic

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vehiclekit/vpic/pkg/cache"
	"github.com/vehiclekit/vpic/pkg/errors"
	"github.com/vehiclekit/vpic/pkg/httputil"
)

// DefaultBaseURL is the public vPIC instance.
const DefaultBaseURL = "https://vpic.nhtsa.dot.gov/api/vehicles/"

const defaultTimeout = 30 * time.Second

// transport performs HTTP calls against a vPIC instance. It owns
// everything below the response envelope: URL assembly, the format=json
// parameter every endpoint wants, status-code classification, retry of
// transient failures and the optional response cache.
type transport struct {
	baseURL   string
	client    *http.Client
	userAgent string
	cache     cache.Cache
	cacheTTL  time.Duration
}

// get issues a GET for an endpoint path (already escaped) and returns
// the raw response body. Successful bodies are cached when a cache
// backend is configured.
func (t *transport) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	u := t.buildURL(endpoint, query)

	if t.cache != nil {
		if data, ok, err := t.cache.Get(ctx, u); err == nil && ok {
			return data, nil
		}
	}

	body, err := t.roundTrip(ctx, http.MethodGet, u, "", "")
	if err != nil {
		return nil, err
	}

	if t.cache != nil {
		_ = t.cache.Set(ctx, u, body, t.cacheTTL)
	}
	return body, nil
}

// postForm issues a form-encoded POST. Batch decode is the one endpoint
// that needs this; its responses are not cached.
func (t *transport) postForm(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
	u := t.buildURL(endpoint, nil)
	return t.roundTrip(ctx, http.MethodPost, u, "application/x-www-form-urlencoded", form.Encode())
}

func (t *transport) buildURL(endpoint string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("format", "json")
	return strings.TrimSuffix(t.baseURL, "/") + "/" + endpoint + "?" + query.Encode()
}

// roundTrip performs the request, retrying transient failures
// (connection errors and 5xx responses) with backoff. Other failures
// return immediately with a coded transport error. The body is carried
// as a string so each retry attempt gets a fresh reader.
func (t *transport) roundTrip(ctx context.Context, method, u, contentType, form string) ([]byte, error) {
	var out []byte
	err := httputil.RetryWithBackoff(ctx, func() error {
		var reqBody io.Reader
		if form != "" {
			reqBody = strings.NewReader(form)
		}
		data, err := t.doOnce(ctx, method, u, contentType, reqBody)
		if err != nil {
			return err
		}
		out = data
		return nil
	})
	if err != nil {
		var re *httputil.RetryableError
		if stderrors.As(err, &re) {
			return nil, re.Err
		}
		return nil, err
	}
	return out, nil
}

func (t *transport) doOnce(ctx context.Context, method, u, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "building request for %s", u)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "request cancelled or timed out")
		}
		var ue *url.Error
		if stderrors.As(err, &ue) && ue.Timeout() {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "request timed out")
		}
		return nil, &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "request failed")}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "reading response body")}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return data, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeNotFound, "not found: %s", u)
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return nil, &errors.RateLimitedError{RetryAfter: retryAfter}
	case resp.StatusCode >= 500:
		return nil, &httputil.RetryableError{
			Err: errors.New(errors.ErrCodeNetwork, "server error %d from %s", resp.StatusCode, u),
		}
	default:
		return nil, errors.New(errors.ErrCodeNetwork, "unexpected status %d from %s", resp.StatusCode, u)
	}
}
