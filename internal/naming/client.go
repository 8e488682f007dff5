package naming

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jsvensson/huekit/internal/color"
	"github.com/tliron/commonlog"
)

// DefaultEndpoint is the public thecolorapi.com service.
const DefaultEndpoint = "https://www.thecolorapi.com"

// DefaultTimeout bounds a single lookup when the caller sets none.
const DefaultTimeout = 5 * time.Second

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 1 << 20

var log = commonlog.GetLogger("huekit.naming")

// Client looks colors up on a thecolorapi.com compatible service.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

// NewClient returns a Client for endpoint. An empty endpoint uses
// DefaultEndpoint and a non-positive timeout uses DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		Endpoint: strings.TrimSuffix(endpoint, "/"),
		HTTP:     &http.Client{Timeout: timeout},
	}
}

// idResponse is the subset of the /id response that is decoded into Info
// fields. Everything else ends up in Info.Metadata.
type idResponse struct {
	Name struct {
		Value           string  `json:"value"`
		ClosestNamedHex string  `json:"closest_named_hex"`
		ExactMatchName  bool    `json:"exact_match_name"`
		Distance        float64 `json:"distance"`
	} `json:"name"`
}

// Lookup queries GET {Endpoint}/id?hex=RRGGBB.
func (c *Client) Lookup(ctx context.Context, rgb color.RGB) (Info, error) {
	hex := strings.TrimPrefix(color.FormatHex(rgb, false), "#")
	u := c.Endpoint + "/id?" + url.Values{"hex": {hex}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Info{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debugf("looking up %s at %s", hex, c.Endpoint)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Info{}, fmt.Errorf("naming %s: %w", hex, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Info{}, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Info{}, fmt.Errorf("naming %s: unexpected status %s", hex, resp.Status)
	}

	var parsed idResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Info{}, fmt.Errorf("decoding response: %w", err)
	}
	if parsed.Name.Value == "" {
		return Info{}, fmt.Errorf("naming %s: response has no name", hex)
	}

	var meta map[string]any
	if err := json.Unmarshal(body, &meta); err != nil {
		return Info{}, fmt.Errorf("decoding response: %w", err)
	}
	for _, k := range []string{"name", "_links", "_embedded", "image"} {
		delete(meta, k)
	}

	log.Debugf("%s is %q", hex, parsed.Name.Value)
	return Info{
		Name:     parsed.Name.Value,
		Hex:      strings.ToLower(parsed.Name.ClosestNamedHex),
		Distance: parsed.Name.Distance,
		Exact:    parsed.Name.ExactMatchName,
		Source:   c.Endpoint,
		Metadata: meta,
	}, nil
}
