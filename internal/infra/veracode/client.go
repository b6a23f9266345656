package veracode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	domain "github.com/jmazoveracode/veracode-target-urls/internal/domain/targets"
)

const (
	// DefaultBaseURL is the platform's production API host.
	DefaultBaseURL = "https://api.veracode.com"

	defaultUserAgent = "veracode-target-urls extractor"

	analysesPath = "/was/configservice/v1/analyses"
)

// Client is an authenticated HTTP client for the dynamic-analysis config
// service. It implements targets.Source.
type Client struct {
	baseURL   string
	userAgent string
	creds     Credentials
	http      *http.Client
}

func NewClient(creds Credentials, baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		creds:     creds,
		http:      &http.Client{},
	}
}

// ListAnalyses lists all dynamic analyses.
// TODO: follow _links.next; only the first page of the listing is read, so
// accounts with more analyses than the service's page size are truncated.
func (c *Client) ListAnalyses(ctx context.Context) (domain.AnalysesPage, error) {
	body, err := c.get(ctx, analysesPath)
	if err != nil {
		return domain.AnalysesPage{}, err
	}
	page, err := domain.DecodeAnalysesPage(body)
	if err != nil {
		return domain.AnalysesPage{}, &domain.APIError{Message: err.Error(), RawBody: string(body)}
	}
	return page, nil
}

// ListScans lists all scans under one analysis.
func (c *Client) ListScans(ctx context.Context, id domain.AnalysisID) (domain.ScansPage, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/%s/scans", analysesPath, url.PathEscape(string(id))))
	if err != nil {
		return domain.ScansPage{}, err
	}
	page, err := domain.DecodeScansPage(body)
	if err != nil {
		return domain.ScansPage{}, &domain.APIError{Message: err.Error(), RawBody: string(body)}
	}
	return page, nil
}

// get performs one signed GET. Transport and HTTP-status failures come back
// as *targets.APIError carrying whatever body the service sent.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, &domain.APIError{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &domain.APIError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	auth, err := authorizationHeader(c.creds, u, http.MethodGet)
	if err != nil {
		return nil, &domain.APIError{Message: err.Error()}
	}
	req.Header.Set("Authorization", auth)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.APIError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.APIError{
			Status:  resp.StatusCode,
			Message: http.StatusText(resp.StatusCode),
			RawBody: string(body),
		}
	}
	return body, nil
}
