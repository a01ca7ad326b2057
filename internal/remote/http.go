package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// correlationTitleHeader carries the film title on catalog calls. The
// catalog resolves the film from this header, not from the URL.
const correlationTitleHeader = "X-Correlation-Film-Title"

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

func getJSON(ctx context.Context, client *http.Client, rawURL string, headers map[string]string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

type HTTPClientDirectory struct {
	baseURL string
	client  *http.Client
}

var _ ClientDirectory = (*HTTPClientDirectory)(nil)

func NewHTTPClientDirectory(baseURL string) *HTTPClientDirectory {
	return &HTTPClientDirectory{
		baseURL: baseURL,
		client:  newHTTPClient(),
	}
}

func (d *HTTPClientDirectory) GetClientByID(ctx context.Context, clientID string) (*ClientSnapshot, error) {
	var snapshot ClientSnapshot
	endpoint := fmt.Sprintf("%s/clients/%s", d.baseURL, url.PathEscape(clientID))
	if err := getJSON(ctx, d.client, endpoint, nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

type HTTPFilmCatalog struct {
	baseURL string
	client  *http.Client
}

var _ FilmCatalog = (*HTTPFilmCatalog)(nil)

func NewHTTPFilmCatalog(baseURL string) *HTTPFilmCatalog {
	return &HTTPFilmCatalog{
		baseURL: baseURL,
		client:  newHTTPClient(),
	}
}

func (c *HTTPFilmCatalog) GetFilmByTitle(ctx context.Context, correlationTitle string) (*FilmDescriptor, error) {
	var film FilmDescriptor
	endpoint := c.baseURL + "/films/details"
	headers := map[string]string{correlationTitleHeader: correlationTitle}
	if err := getJSON(ctx, c.client, endpoint, headers, &film); err != nil {
		return nil, err
	}
	return &film, nil
}

type HTTPReservationLookup struct {
	baseURL string
	client  *http.Client
}

var _ ReservationLookup = (*HTTPReservationLookup)(nil)

func NewHTTPReservationLookup(baseURL string) *HTTPReservationLookup {
	return &HTTPReservationLookup{
		baseURL: baseURL,
		client:  newHTTPClient(),
	}
}

func (l *HTTPReservationLookup) GetReservation(ctx context.Context, clientID, reservationID string) (*ReservationSnapshot, error) {
	var snapshot ReservationSnapshot
	endpoint := fmt.Sprintf("%s/reservations/%s?client_id=%s",
		l.baseURL, url.PathEscape(reservationID), url.QueryEscape(clientID))
	if err := getJSON(ctx, l.client, endpoint, nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
