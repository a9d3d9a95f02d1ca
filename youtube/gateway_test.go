package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestGatewayRequestSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/channels" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/channels")
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key param = %q, want %q", got, "test-key")
		}
		if got := r.URL.Query().Get("part"); got != "contentDetails" {
			t.Errorf("part param = %q, want %q", got, "contentDetails")
		}
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	gw := NewGateway(GatewayConfig{APIKey: "test-key", BaseURL: server.URL})

	doc, err := gw.Request(context.Background(), "channels", url.Values{"part": {"contentDetails"}})
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	items, ok := doc["items"].([]any)
	if !ok {
		t.Fatalf("doc[items] = %T, want []any", doc["items"])
	}
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
}

func TestGatewayRequestHTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "quota"}`))
	}))
	defer server.Close()

	gw := NewGateway(GatewayConfig{APIKey: "k", BaseURL: server.URL})

	_, err := gw.Request(context.Background(), "channels", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Request() error = %v, want *APIError", err)
	}
	if apiErr.Kind != FailureHTTPStatus {
		t.Errorf("Kind = %v, want %v", apiErr.Kind, FailureHTTPStatus)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusForbidden)
	}
	if !strings.Contains(apiErr.Error(), "403") {
		t.Errorf("Error() = %q, want status code in message", apiErr.Error())
	}
}

func TestGatewayRequestDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	gw := NewGateway(GatewayConfig{APIKey: "k", BaseURL: server.URL})

	_, err := gw.Request(context.Background(), "playlistItems", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Request() error = %v, want *APIError", err)
	}
	if apiErr.Kind != FailureDecode {
		t.Errorf("Kind = %v, want %v", apiErr.Kind, FailureDecode)
	}
	if apiErr.RawBody != "<html>not json</html>" {
		t.Errorf("RawBody = %q, want raw response text", apiErr.RawBody)
	}
}

func TestGatewayRequestConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	gw := NewGateway(GatewayConfig{APIKey: "k", BaseURL: server.URL})

	_, err := gw.Request(context.Background(), "channels", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Request() error = %v, want *APIError", err)
	}
	if apiErr.Kind != FailureConnection {
		t.Errorf("Kind = %v, want %v", apiErr.Kind, FailureConnection)
	}
	if apiErr.Err == nil {
		t.Error("Err = nil, want underlying transport error")
	}
}

func TestGatewayRequestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	gw := NewGateway(GatewayConfig{APIKey: "k", BaseURL: server.URL, Timeout: 50 * time.Millisecond})

	_, err := gw.Request(context.Background(), "channels", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Request() error = %v, want *APIError", err)
	}
	if apiErr.Kind != FailureTimeout {
		t.Errorf("Kind = %v, want %v", apiErr.Kind, FailureTimeout)
	}
}

func TestGatewayDefaults(t *testing.T) {
	gw := NewGateway(GatewayConfig{APIKey: "k"})

	if gw.baseURL != defaultAPIBaseURL {
		t.Errorf("baseURL = %q, want %q", gw.baseURL, defaultAPIBaseURL)
	}
	if gw.timeout != defaultAPITimeout {
		t.Errorf("timeout = %v, want %v", gw.timeout, defaultAPITimeout)
	}
}
