// Package backend is the REST client for the claim platform API. It serves the
// job queue to the watcher and claims and token holdings to the claim view.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrNotFound is wrapped by errors for 404 answers.
var ErrNotFound = errors.New("resource not found")

// APIError is a non 2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed => statusCode: %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

type client struct {
	apiRoot    string
	httpClient *retryablehttp.Client
}

// NewClient returns a client for the API rooted at apiRoot (e.g. https://api.example.com).
func NewClient(httpClient *retryablehttp.Client, apiRoot string) *client {
	return &client{
		apiRoot:    strings.TrimRight(apiRoot, "/"),
		httpClient: httpClient,
	}
}

// getJSON performs a GET on path and decodes the JSON answer into out.
func (c *client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.apiRoot + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return decodeError(res)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// decodeError surfaces the API's {"message": "..."} body when present.
func decodeError(res *http.Response) error {
	apiErr := &APIError{StatusCode: res.StatusCode}

	body, err := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
