package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRestyClientGetSendsParamsAndHeaders(t *testing.T) {
	var gotQuery, gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotHeader = r.Header.Get("X-Probe")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	client := NewRestyClient(2 * time.Second)
	resp, err := client.Get(context.Background(), srv.URL+"/path",
		map[string]string{"auth": "k"},
		map[string]string{"X-Probe": "1"},
	)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode() != http.StatusTeapot {
		t.Fatalf("StatusCode = %d", resp.StatusCode())
	}
	if string(resp.Body()) != "short and stout" {
		t.Fatalf("Body = %q", resp.Body())
	}
	if gotQuery != "auth=k" {
		t.Fatalf("query = %q", gotQuery)
	}
	if gotHeader != "1" {
		t.Fatalf("header = %q", gotHeader)
	}
}

func TestRestyClientGetPropagatesTransportError(t *testing.T) {
	client := NewRestyClient(500 * time.Millisecond)
	// Nothing listens here; connection must be refused.
	if _, err := client.Get(context.Background(), "http://127.0.0.1:1", nil, nil); err == nil {
		t.Fatalf("expected transport error")
	}
}
