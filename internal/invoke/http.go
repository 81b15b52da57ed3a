// SPDX-License-Identifier: MPL-2.0

package invoke

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"localcall/pkg/target"
)

// ErrUnsupportedMethod reports a verb outside the enumerated set. The CLI
// layer restricts --http-method choices before invocation, so reaching this
// from a shipped binary indicates a wiring bug.
var ErrUnsupportedMethod = errors.New("HTTP method not supported")

// Methods is the enumerated set of verbs the HTTP-style invokers accept.
var Methods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

// Result is the outcome of a synthetic HTTP invocation.
type Result struct {
	StatusCode int
	Body       string
}

// OK reports whether the status code is in the 2xx range.
func (r Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// App makes one synthetic request against a full HTTP application and
// returns the status code and decoded body. A JSON body is attached for
// POST/PUT/DELETE when payload is non-nil; GET requests carry no body.
func App(app http.Handler, method, endpoint string, payload any) (Result, error) {
	req, err := newJSONRequest(method, endpoint, payload)
	if err != nil {
		return Result{}, err
	}

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	return readResult(rec)
}

// Func makes one synthetic request against a bare entrypoint function. The
// synthetic request exists only for the duration of the call, and the
// response recorder is finalized unconditionally: a panicking entrypoint is
// recovered and reported as an invocation error rather than killing the
// process.
func Func(fn target.HTTPFunc, method, endpoint string, payload any) (res Result, err error) {
	req, err := newJSONRequest(method, endpoint, payload)
	if err != nil {
		return Result{}, err
	}

	rec := httptest.NewRecorder()

	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = fmt.Errorf("entrypoint panicked: %v", r)
		}
	}()

	fn(rec, req)

	return readResult(rec)
}

// newJSONRequest builds the synthetic request for one invocation.
func newJSONRequest(method, endpoint string, payload any) (*http.Request, error) {
	if !supported(method) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	var body io.Reader
	withBody := method != http.MethodGet && payload != nil
	if withBody {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, endpoint, body)
	if withBody {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func supported(method string) bool {
	for _, m := range Methods {
		if m == method {
			return true
		}
	}
	return false
}

func readResult(rec *httptest.ResponseRecorder) (Result, error) {
	resp := rec.Result()
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response body: %w", err)
	}

	return Result{StatusCode: resp.StatusCode, Body: string(data)}, nil
}
