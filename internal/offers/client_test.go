package offers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "TLV", r.URL.Query().Get("origin"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"flightNumber":"FL900","origin":"TLV","destination":"JFK","date":"2025-01-10","priceCents":48000,"seats":30}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	flights, err := client.Search(context.Background(), domain.FlightFilter{Origin: "TLV"})

	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "FL900", flights[0].FlightNumber)
	assert.Equal(t, 30, flights[0].TotalSeats)
	assert.Equal(t, 30, flights[0].SeatsAvailable)
}

func TestClient_Search_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	_, err := client.Search(context.Background(), domain.FlightFilter{})
	assert.Error(t, err)
}
