// Package sparql is a small SPARQL 1.1 protocol client for Fuseki style
// endpoints: queries go out as GET with a query parameter, updates as POST
// with an application/sparql-update body.
package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	ResultsContentType = "application/sparql-results+json"
	UpdateContentType  = "application/sparql-update"

	maxErrorBody = 4 << 10
)

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sparql %s failed: %d %s", e.Op, e.StatusCode, e.Body)
}

type Binding struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

func (b Binding) IsIRI() bool {
	return b.Type == "uri"
}

type Results struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Boolean *bool `json:"boolean,omitempty"`
	Results struct {
		Bindings []map[string]Binding `json:"bindings"`
	} `json:"results"`
}

type Client struct {
	queryURL   string
	updateURL  string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func NewClient(queryURL, updateURL string, opts ...Option) *Client {
	c := &Client{
		queryURL:   queryURL,
		updateURL:  updateURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query runs a SELECT or ASK query.
func (c *Client) Query(ctx context.Context, query string) (*Results, error) {
	u, err := url.Parse(c.queryURL)
	if err != nil {
		return nil, fmt.Errorf("parse query url: %w", err)
	}
	q := u.Query()
	q.Set("query", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", ResultsContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus("query", resp); err != nil {
		return nil, err
	}

	var res Results
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode sparql results: %w", err)
	}
	return &res, nil
}

// Update posts a SPARQL update request.
func (c *Client) Update(ctx context.Context, update string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.updateURL, strings.NewReader(update))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", UpdateContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus("update", resp); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

// Literal quotes s as a SPARQL string literal.
func Literal(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// IRI wraps an absolute IRI in angle brackets. Characters an IRIREF may
// not contain are percent-encoded so s can never close the reference.
func IRI(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('<')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x20 || strings.IndexByte(iriReserved, c) >= 0 {
			fmt.Fprintf(&b, "%%%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	b.WriteByte('>')
	return b.String()
}

const iriReserved = "<>\"{}|^`\\"
