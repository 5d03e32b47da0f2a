package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Request describes one JSON call against a service.
type Request struct {
	Service string
	Method  string
	URL     string
	Headers map[string]string
	// Payload is JSON-encoded unless Body is set.
	Payload any
	// Body is sent verbatim; used for pre-encoded (compressed) payloads.
	Body []byte
}

// HTTPError is a non-2xx response. Code and Message are lifted from the JSON
// body when the service returns one.
type HTTPError struct {
	Service string
	Method  string
	URL     string
	Status  int
	Code    string
	Message string
	Body    string
}

func (e *HTTPError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Body
	}
	return fmt.Sprintf("%s %s %s failed with status %d: %s", e.Service, e.Method, e.URL, e.Status, detail)
}

// ErrorCode returns the service error code, if any.
func (e *HTTPError) ErrorCode() string {
	return e.Code
}

// NormalizeBaseURL validates an http(s) base URL and strips the trailing slash.
func NormalizeBaseURL(raw string, fallback string) (string, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(raw), "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(fallback, "/")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", fmt.Errorf("invalid base URL: host is required")
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}

// DoJSON performs the request and decodes a 2xx JSON response into target.
// A nil target discards the body.
func DoJSON(ctx context.Context, client *http.Client, call Request, target any) error {
	method := call.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	switch {
	case call.Body != nil:
		body = bytes.NewReader(call.Body)
	case call.Payload != nil:
		encoded, err := json.Marshal(call.Payload)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", call.Service, err)
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, call.URL, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", call.Service, err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for key, value := range call.Headers {
		request.Header.Set(key, value)
	}

	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", call.Service, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", call.Service, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return newHTTPError(call.Service, method, call.URL, response.StatusCode, responseBody)
	}

	if target == nil || len(bytes.TrimSpace(responseBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(responseBody, target); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", call.Service, err)
	}

	return nil
}

func newHTTPError(service, method, requestURL string, status int, body []byte) *HTTPError {
	httpErr := &HTTPError{
		Service: service,
		Method:  method,
		URL:     requestURL,
		Status:  status,
		Body:    strings.TrimSpace(string(body)),
	}

	var envelope struct {
		Code      any    `json:"code"`
		ErrorCode string `json:"errorCode"`
		Message   string `json:"message"`
		Error     any    `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return httpErr
	}

	switch code := envelope.Code.(type) {
	case string:
		httpErr.Code = code
	case float64:
		httpErr.Code = fmt.Sprintf("%.0f", code)
	}
	if httpErr.Code == "" {
		httpErr.Code = envelope.ErrorCode
	}

	httpErr.Message = envelope.Message
	if httpErr.Message == "" {
		if text, ok := envelope.Error.(string); ok {
			httpErr.Message = text
		}
	}

	return httpErr
}
