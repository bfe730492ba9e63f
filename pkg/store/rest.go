package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// RESTStore talks to the shape persistence service over HTTP. The service
// exposes a single collection: GET /shapes returns every record, POST
// /shapes appends one.
type RESTStore struct {
	baseURL string
	client  *http.Client
}

// NewRESTStore creates a client for the given base URL.
func NewRESTStore(baseURL string) *RESTStore {
	return &RESTStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Load implements the Store interface.
func (s *RESTStore) Load(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/shapes", nil)
	if err != nil {
		return nil, fmt.Errorf("store: build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store: load shapes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store: load shapes: unexpected status %s", resp.Status)
	}

	var recs []Record
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		return nil, fmt.Errorf("store: decode shapes: %w", err)
	}
	return recs, nil
}

// Create implements the Store interface.
func (s *RESTStore) Create(ctx context.Context, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: encode record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/shapes", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("store: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("store: create shape: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("store: create shape: unexpected status %s", resp.Status)
	}
	return nil
}
