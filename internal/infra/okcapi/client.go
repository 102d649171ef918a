package okcapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"okc_stats_sync/internal/domain/division"

	"github.com/sirupsen/logrus"
)

const requestTimeout = 60 * time.Second

// Client is an authenticated session against the OKC reporting API. The
// session cookie obtained during Authenticate rides on the cookie jar for
// every subsequent request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logrus.Entry
}

// Authenticate logs into the reporting API and returns a session-backed
// client. The session is valid for the lifetime of the process; the API
// responds 401 once it expires and the next scheduled cycle surfaces that
// as per-task failures.
func Authenticate(ctx context.Context, baseURL, username, password string, log *logrus.Entry) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	c := &Client{
		httpClient: &http.Client{Jar: jar, Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}

	form := url.Values{
		"username": {username},
		"password": {password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error building login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error logging into reporting API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reporting API login returned status %d", resp.StatusCode)
	}

	c.log.Info("Authenticated against reporting API")
	return c, nil
}

// postJSON issues a POST with a JSON body to endpoint (relative to the base
// URL) and decodes the JSON response into out.
func (c *Client) postJSON(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error encoding %s request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error building %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s returned status %d: %s", endpoint, resp.StatusCode, snippet)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding %s response: %w", endpoint, err)
	}
	return nil
}

// divisionSlug maps a division label onto its URL path segment.
func divisionSlug(d division.Division) (string, error) {
	switch d {
	case division.NTP1:
		return "ntp1", nil
	case division.NTP2:
		return "ntp2", nil
	case division.NCK:
		return "ntp-nck", nil
	case division.NTP:
		return "ntp", nil
	}
	return "", fmt.Errorf("unknown division: %q", d)
}
