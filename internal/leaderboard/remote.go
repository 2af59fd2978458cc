package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ListResponse is the body of GET /leaderboard.
type ListResponse struct {
	Entries []Entry `json:"entries"`
}

// Remote is a Store backed by the leaderboard HTTP service. Submissions are
// signed with the shared secret.
type Remote struct {
	baseURL string
	secret  []byte
	client  *http.Client
}

// NewRemote returns a client for the service at baseURL.
func NewRemote(baseURL string, secret []byte) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit posts a signed score token to /scores.
func (r *Remote) Submit(ctx context.Context, e Entry) error {
	token, err := SignScore(e, r.secret)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/scores", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit score: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("submit score: %s", resp.Status)
	}
	return nil
}

// Top fetches the board from /leaderboard.
func (r *Remote) Top(ctx context.Context, n int) ([]Entry, error) {
	q := url.Values{"limit": {strconv.Itoa(limit(n))}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/leaderboard?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch leaderboard: %s", resp.Status)
	}

	var body ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}
	return body.Entries, nil
}
