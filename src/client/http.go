package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient wraps the HTTP client with config
type HTTPClient struct {
	Config     *Config
	HTTPClient *http.Client
}

// NewHTTPClient creates a new HTTP client
func NewHTTPClient(config *Config) *HTTPClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		Config: config,
		HTTPClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// Get performs an authenticated GET request against the API
func (c *HTTPClient) Get(path string, params url.Values) (*http.Response, error) {
	reqURL := c.Config.BaseURL() + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, NewAPIError(fmt.Sprintf("failed to create request: %v", err))
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewAPIError(fmt.Sprintf("failed to connect to %s: %v", c.Config.BaseURL(), err))
	}

	return c.handleResponse(resp)
}

// setHeaders sets common headers on requests. The API-SECRET header is
// omitted entirely when no secret is configured.
func (c *HTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", UserAgent())
	req.Header.Set("Accept", "application/json")

	if c.Config.APISecret != "" {
		req.Header.Set("API-SECRET", c.Config.APISecret)
	}
}

// handleResponse handles common response processing
func (c *HTTPClient) handleResponse(resp *http.Response) (*http.Response, error) {
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, NewAPIError(fmt.Sprintf("server error (%d): %s",
			resp.StatusCode, strings.TrimSpace(string(body))))
	}

	return resp, nil
}

// GetJSON performs a GET request and decodes the JSON response
func (c *HTTPClient) GetJSON(path string, params url.Values, result interface{}) error {
	resp, err := c.Get(path, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return NewAPIError(fmt.Sprintf("failed to decode response: %v", err))
	}

	return nil
}
