package offers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// Client talks to an external flight-offers API. No retry or backoff: a
// failed sync is just retried on the next sweep.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

type offer struct {
	FlightNumber string `json:"flightNumber"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Date         string `json:"date"`
	PriceCents   int64  `json:"priceCents"`
	Seats        int    `json:"seats"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

func (c *Client) Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	q := url.Values{}
	if filter.Origin != "" {
		q.Set("origin", filter.Origin)
	}
	if filter.Destination != "" {
		q.Set("destination", filter.Destination)
	}
	if filter.Date != "" {
		q.Set("date", filter.Date)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/offers?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch offers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("offers api returned %d", resp.StatusCode)
	}

	var offers []offer
	if err := json.NewDecoder(resp.Body).Decode(&offers); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}

	flights := make([]domain.Flight, 0, len(offers))
	for _, o := range offers {
		flights = append(flights, domain.Flight{
			FlightNumber:   o.FlightNumber,
			Origin:         o.Origin,
			Destination:    o.Destination,
			Date:           o.Date,
			PriceCents:     o.PriceCents,
			TotalSeats:     o.Seats,
			SeatsAvailable: o.Seats,
		})
	}
	return flights, nil
}
