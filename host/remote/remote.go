// Package remote provides an HTTP implementation of the host.Client
// interface for hosts that expose their capability surface over a JSON API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jonwraymond/toolscript/host"
)

// Interface compliance check.
var _ host.Client = (*Client)(nil)

// API paths relative to the base URL.
const (
	toolsPath        = "/tools"
	agentsPath       = "/agents"
	skillsPath       = "/skills"
	executePath      = "/tools/execute"
	defaultModelPath = "/models/default"
)

// Client implements host.Client against a remote host API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets a bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a new remote [Client] for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// FetchTools retrieves the raw tool catalog for the provider/model pair.
func (c *Client) FetchTools(ctx context.Context, providerID, modelID, directory string) ([]host.Tool, error) {
	query := url.Values{}
	if providerID != "" {
		query.Set("provider", providerID)
	}
	if modelID != "" {
		query.Set("model", modelID)
	}
	if directory != "" {
		query.Set("directory", directory)
	}

	var tools []host.Tool
	if err := c.get(ctx, toolsPath, query, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// FetchAgents retrieves the raw agent catalog.
func (c *Client) FetchAgents(ctx context.Context) ([]host.Agent, error) {
	var agents []host.Agent
	if err := c.get(ctx, agentsPath, nil, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// FetchSkills retrieves the raw skill catalog. Hosts without a skill catalog
// answer 404; that is treated as an empty catalog, not an error.
func (c *Client) FetchSkills(ctx context.Context) ([]host.Skill, error) {
	var skills []host.Skill
	err := c.get(ctx, skillsPath, nil, &skills)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return []host.Skill{}, nil
		}
		return nil, err
	}
	return skills, nil
}

// ExecuteTool runs a single tool on the host.
func (c *Client) ExecuteTool(ctx context.Context, req host.ToolRequest) (host.ToolResult, error) {
	var result host.ToolResult
	err := c.post(ctx, executePath, req, &result)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return host.ToolResult{}, fmt.Errorf("%w: %s", host.ErrToolNotFound, req.ToolID)
		}
		return host.ToolResult{}, err
	}
	return result, nil
}

// ResolveDefaultModel reads the host's default provider/model pair.
func (c *Client) ResolveDefaultModel(ctx context.Context, directory string) (host.ModelRef, error) {
	query := url.Values{}
	if directory != "" {
		query.Set("directory", directory)
	}

	var ref host.ModelRef
	err := c.get(ctx, defaultModelPath, query, &ref)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return host.ModelRef{}, host.ErrNoDefaultModel
		}
		return host.ModelRef{}, err
	}
	return ref, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("remote: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("remote: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("remote: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", host.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseHTTPError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote: decoding response: %w", err)
	}
	return nil
}

// Error is a typed error decoded from a non-2xx host response.
type Error struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Type is the host's error classification, when provided.
	Type string

	// Message is the host's error detail.
	Message string
}

// Error returns the host's error detail, including the type when present.
func (e *Error) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("remote: %s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("remote: HTTP %d: %s", e.StatusCode, e.Message)
}

type apiErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", err)}
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Message == "" {
		return &Error{StatusCode: resp.StatusCode, Message: string(body)}
	}
	return &Error{
		StatusCode: resp.StatusCode,
		Type:       apiErr.Error.Type,
		Message:    apiErr.Error.Message,
	}
}
