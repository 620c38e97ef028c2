package line

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/line-shop-bot/internal/messages"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/google/uuid"
)

const (
	// PushFailureCode is the code of errors caused by the LINE API rejecting or not answering a call.
	PushFailureCode = -1

	// DefaultBaseURL is the LINE Messaging API host.
	DefaultBaseURL = "https://api.line.me"

	// RetryKeyHeader makes a push idempotent on the LINE side.
	RetryKeyHeader = "X-Line-Retry-Key"

	pushPath    = "/v2/bot/message/push"
	profilePath = "/v2/bot/profile/"

	// Default timeout for LINE API requests
	defaultTimeout = 5 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
	// LINE accepts at most five messages per push.
	maxMessagesPerPush = 5
)

// Client for the LINE Messaging API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Client. An empty baseURL targets the public LINE API and a nil
// httpClient gets a client with a short timeout.
func NewClient(baseURL, accessToken string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LINE API URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:     strings.TrimSuffix(parsedURL.String(), "/"),
		accessToken: accessToken,
		httpClient:  httpClient,
	}, nil
}

// Push sends msgs to the user identified by to.
// Returns a richerrors.Error with PushFailureCode when the API call fails.
func (c *Client) Push(ctx context.Context, to string, msgs ...messages.Message) error {
	if to == "" {
		return errors.New("push recipient is empty")
	}
	if len(msgs) == 0 || len(msgs) > maxMessagesPerPush {
		return fmt.Errorf("push needs between 1 and %d messages, got %d", maxMessagesPerPush, len(msgs))
	}

	body, err := json.Marshal(PushRequest{To: to, Messages: msgs})
	if err != nil {
		return fmt.Errorf("failed to marshal push payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, pushPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RetryKeyHeader, uuid.NewString())

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // nolint:errcheck
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBodySize))
	return nil
}

// GetProfile fetches the public profile of a user who has added the bot as a friend.
func (c *Client) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if userID == "" {
		return nil, errors.New("user id is empty")
	}
	req, err := c.newRequest(ctx, http.MethodGet, profilePath+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() // nolint:errcheck

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}
	return &profile, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if c.accessToken == "" {
		return nil, richerrors.Error{
			Code: PushFailureCode,
			Err:  errors.New("channel access token is not configured"),
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("User-Agent", "line-shop-bot/1.0")
	return req, nil
}

// do executes req and turns transport failures and non-2xx answers into rich errors.
// On success the caller owns resp.Body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, richerrors.Error{
			Code: PushFailureCode,
			Err:  fmt.Errorf("failed to call LINE API %s: %w", req.URL.Path, err),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close() // nolint:errcheck
		// Read response body for error details (limited size for security)
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return nil, richerrors.Error{
			Code: PushFailureCode,
			Err:  fmt.Errorf("LINE API %s returned status code %d: %s", req.URL.Path, resp.StatusCode, string(respBody)),
		}
	}
	return resp, nil
}
