package dealsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"dealtrack/internal/domain/deal"
)

// DefaultTimeout bounds remote reads; the source of this design had no
// timeout at all, which we treat as a gap rather than a behavior to keep.
const DefaultTimeout = 10 * time.Second

// HTTPRemote lists deals from a REST endpoint (GET {base}/api/deals).
type HTTPRemote struct {
	base   string
	client *http.Client
}

func NewHTTPRemote(baseURL string, timeout time.Duration) *HTTPRemote {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPRemote{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

// wireDeal shadows WeeklyHistory with a raw message so a malformed or
// legacy stored shape degrades to an empty history instead of failing the
// whole read.
type wireDeal struct {
	deal.Deal
	WeeklyHistory json.RawMessage `json:"weeklyHistory"`
}

func (r *HTTPRemote) ListDeals(ctx context.Context) ([]deal.Deal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.base+"/api/deals", nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("deals read: unexpected status %s", resp.Status)
	}

	var wire []wireDeal
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("deals read: decode: %w", err)
	}

	out := make([]deal.Deal, 0, len(wire))
	for _, w := range wire {
		d := w.Deal
		d.WeeklyHistory = coerceHistory(w.WeeklyHistory)
		out = append(out, d)
	}
	return out, nil
}

// coerceHistory accepts only a proper ordered sequence; anything else
// (absent, null, object, wrong element shape) becomes empty.
func coerceHistory(raw json.RawMessage) deal.WeeklyHistory {
	if len(raw) == 0 {
		return deal.WeeklyHistory{}
	}
	var h deal.WeeklyHistory
	if err := json.Unmarshal(raw, &h); err != nil || h == nil {
		return deal.WeeklyHistory{}
	}
	return h
}

// RepositoryRemote adapts a deal.Repository to the RemoteLister interface so
// the server's own list path applies the same fallback policy as a network
// client would.
type RepositoryRemote struct {
	Repo deal.Repository
}

func (r RepositoryRemote) ListDeals(ctx context.Context) ([]deal.Deal, error) {
	return r.Repo.List(ctx)
}

// FileAsset reads the CSV from a local path (the bundled asset file).
type FileAsset struct {
	Path string
}

func (f FileAsset) FetchCSV(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// HTTPAsset fetches the CSV from a static URL.
type HTTPAsset struct {
	URL    string
	client *http.Client
}

func NewHTTPAsset(url string, timeout time.Duration) *HTTPAsset {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPAsset{URL: url, client: &http.Client{Timeout: timeout}}
}

func (a *HTTPAsset) FetchCSV(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("csv asset: unexpected status %s", resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
