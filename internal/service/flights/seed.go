package flights

import "github.com/Domenick1991/flightdesk/internal/domain"

// seedFlights is the demo catalog loaded when the flights table is empty.
func seedFlights() []domain.Flight {
	rows := []struct {
		number, origin, destination, date string
		priceCents                        int64
		seats                             int
	}{
		{"FL123", "TLV", "JFK", "2024-12-01", 50000, 20},
		{"FL456", "TLV", "LAX", "2024-12-02", 60000, 15},
		{"FL789", "JFK", "TLV", "2024-12-03", 55000, 25},
		{"FL101", "LAX", "TLV", "2024-12-04", 65000, 10},
		{"FL202", "TLV", "CDG", "2024-12-05", 30000, 30},
		{"FL303", "CDG", "TLV", "2024-12-06", 35000, 28},
		{"FL404", "LHR", "JFK", "2024-12-07", 45000, 18},
		{"FL505", "JFK", "LHR", "2024-12-08", 50000, 22},
		{"FL606", "DXB", "TLV", "2024-12-09", 40000, 35},
		{"FL707", "TLV", "DXB", "2024-12-10", 42000, 32},
		{"FL808", "SFO", "LAX", "2024-12-11", 15000, 50},
		{"FL909", "LAX", "SFO", "2024-12-12", 14000, 48},
		{"FL111", "TLV", "BKK", "2024-12-13", 70000, 25},
		{"FL222", "BKK", "TLV", "2024-12-14", 68000, 23},
		{"FL333", "JFK", "LAX", "2024-12-15", 32000, 40},
		{"FL444", "LAX", "JFK", "2024-12-16", 31000, 42},
		{"FL555", "TLV", "ATH", "2024-12-17", 22000, 30},
		{"FL666", "ATH", "TLV", "2024-12-18", 21000, 28},
		{"FL777", "TLV", "FRA", "2024-12-19", 40000, 25},
		{"FL888", "FRA", "TLV", "2024-12-20", 39000, 27},
		{"FL999", "TLV", "SYD", "2024-12-21", 120000, 10},
		{"FL000", "SYD", "TLV", "2024-12-22", 115000, 12},
	}

	flights := make([]domain.Flight, 0, len(rows))
	for _, r := range rows {
		flights = append(flights, domain.Flight{
			FlightNumber:   r.number,
			Origin:         r.origin,
			Destination:    r.destination,
			Date:           r.date,
			PriceCents:     r.priceCents,
			TotalSeats:     r.seats,
			SeatsAvailable: r.seats,
		})
	}
	return flights
}
