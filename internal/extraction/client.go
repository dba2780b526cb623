package extraction

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/WillyEverGreen/gigbridge/internal/schemas"
)

//go:embed schema.json
var resultSchema string

// Client is the extraction collaborator boundary. Implementations perform the
// only true I/O in the resume flow; callers drive cancellation and timeouts
// through ctx.
type Client interface {
	ExtractText(ctx context.Context, doc Document) (*Result, error)
}

// HTTPClient calls the extraction collaborator over HTTP. It imposes no
// timeout of its own and never retries.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a client for the collaborator at baseURL. A nil
// httpClient uses http.DefaultClient.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{baseURL: baseURL, httpClient: httpClient}
}

// ExtractText submits a document reference and returns the extraction result.
// The response payload is validated against the contract schema, and results
// below the readable-text minimum fail with a NoReadableTextError rather than
// reaching the analyzer.
func (c *HTTPClient) ExtractText(ctx context.Context, doc Document) (*Result, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extraction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UnavailableError{
			Message: fmt.Sprintf("collaborator returned status %d", resp.StatusCode),
		}
	}

	if err := schemas.ValidateJSONString(resultSchema, string(payload)); err != nil {
		return nil, &ContractError{Cause: err}
	}

	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, &ContractError{Cause: err}
	}

	if err := result.CheckReadable(); err != nil {
		return nil, err
	}

	return &result, nil
}
