package probe

import (
	"bytes"
	"context"
	"testing"

	"github.com/holeops/adpause/pkg/httpclient"
)

// stubResponse implements httpclient.Response.
type stubResponse struct {
	body       []byte
	statusCode int
}

func (s stubResponse) Body() []byte    { return s.body }
func (s stubResponse) StatusCode() int { return s.statusCode }

// stubClient returns a single response and records the requested URL.
type stubClient struct {
	resp httpclient.Response
	url  string
}

func (s *stubClient) Get(_ context.Context, url string, _, _ map[string]string) (httpclient.Response, error) {
	s.url = url
	return s.resp, nil
}

const dashboardHTML = `
<html>
  <head><title>Pi-hole - pihole.local</title></head>
  <body>
    <footer>
      <span id="core-version">v5.18.2</span>
      <span id="web-version">v5.21</span>
    </footer>
  </body>
</html>`

func TestProbeParsesDashboard(t *testing.T) {
	stub := &stubClient{resp: stubResponse{body: []byte(dashboardHTML), statusCode: 200}}
	prober := New("http://pihole.local", stub)

	info, err := prober.Probe(context.Background())
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if stub.url != "http://pihole.local/admin/" {
		t.Fatalf("request URL = %q", stub.url)
	}
	if info.Title != "Pi-hole - pihole.local" {
		t.Fatalf("Title = %q", info.Title)
	}
	if info.Hostname != "pihole.local" {
		t.Fatalf("Hostname = %q", info.Hostname)
	}
	if info.CoreVersion != "v5.18.2" {
		t.Fatalf("CoreVersion = %q", info.CoreVersion)
	}
}

func TestProbeFallsBackToVersionClass(t *testing.T) {
	html := `<html><head><title>Admin</title></head><body><span class="version">v6.0</span></body></html>`
	stub := &stubClient{resp: stubResponse{body: []byte(html), statusCode: 200}}

	info, err := New("http://pihole.local", stub).Probe(context.Background())
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if info.CoreVersion != "v6.0" {
		t.Fatalf("CoreVersion = %q", info.CoreVersion)
	}
	if info.Hostname != "" {
		t.Fatalf("Hostname should be empty for plain titles, got %q", info.Hostname)
	}
}

func TestProbeErrorsOnNon200(t *testing.T) {
	stub := &stubClient{resp: stubResponse{body: []byte("gone"), statusCode: 404}}
	if _, err := New("http://pihole.local", stub).Probe(context.Background()); err == nil {
		t.Fatalf("expected error on 404")
	}
}

func TestProbeBoundsOversizedBodies(t *testing.T) {
	body := append([]byte(dashboardHTML), bytes.Repeat([]byte("a"), maxHTMLBodyBytes)...)
	stub := &stubClient{resp: stubResponse{body: body, statusCode: 200}}

	info, err := New("http://pihole.local", stub).Probe(context.Background())
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if info.Hostname != "pihole.local" {
		t.Fatalf("Hostname = %q", info.Hostname)
	}
}
