package probe

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/holeops/adpause/pkg/httpclient"
)

const (
	adminPagePath    = "/admin/"
	maxHTMLBodyBytes = 1 << 20 // 1 MiB
)

// ApplianceInfo describes what the admin dashboard reports about itself.
type ApplianceInfo struct {
	Title       string
	Hostname    string
	CoreVersion string
}

// Prober fetches the appliance admin dashboard and extracts identity
// metadata for diagnostics. It never touches the API endpoint.
type Prober struct {
	baseURL string
	client  httpclient.Client
}

// New constructs a prober for the given base URL and transport.
func New(baseURL string, client httpclient.Client) *Prober {
	return &Prober{baseURL: baseURL, client: client}
}

// Probe fetches the dashboard page and parses it. The base URL is joined
// with the admin path the same way the API client joins endpoints.
func (p *Prober) Probe(ctx context.Context) (ApplianceInfo, error) {
	resp, err := p.client.Get(ctx, p.baseURL+adminPagePath, nil, nil)
	if err != nil {
		return ApplianceInfo{}, fmt.Errorf("fetch admin page: %w", err)
	}

	if resp.StatusCode() != 200 {
		snippet := strings.TrimSpace(string(resp.Body()))
		if len(snippet) > 1024 {
			snippet = snippet[:1024]
		}
		return ApplianceInfo{}, fmt.Errorf("admin page status %d body: %s", resp.StatusCode(), snippet)
	}

	body := resp.Body()
	if len(body) > maxHTMLBodyBytes {
		body = body[:maxHTMLBodyBytes]
	}

	return parseAdminPage(body)
}

// parseAdminPage extracts the page title, hostname, and core version from
// the dashboard HTML. Dashboard titles look like "Pi-hole - hostname"; the
// footer carries per-component version spans.
func parseAdminPage(body []byte) (ApplianceInfo, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ApplianceInfo{}, fmt.Errorf("parse html: %w", err)
	}

	info := ApplianceInfo{}
	info.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if _, after, found := strings.Cut(info.Title, " - "); found {
		info.Hostname = strings.TrimSpace(after)
	}

	if v := strings.TrimSpace(doc.Find("#core-version").First().Text()); v != "" {
		info.CoreVersion = v
	} else {
		info.CoreVersion = strings.TrimSpace(doc.Find(".version").First().Text())
	}

	return info, nil
}
