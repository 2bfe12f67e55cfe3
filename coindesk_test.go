package coinlot

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCoinDesk_Price(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := r.URL.Query().Get("start")
		end := r.URL.Query().Get("end")
		if start != "2017-01-01" || end != "2017-01-01" {
			t.Errorf("query = start=%s&end=%s, want the requested date twice", start, end)
		}
		fmt.Fprintf(w, `{"bpi":{"2017-01-01":997.6888},"disclaimer":"test","time":{"updated":"Jan 2, 2017 00:03:00 UTC"}}`)
	}))
	defer server.Close()

	// Bypass the disk cache: tests must not depend on tmp files.
	oracle := &CoinDesk{BaseURL: server.URL, client: server.Client()}

	price, err := oracle.Price("BTC", day(2017, time.January, 1))
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if !price.Equal(USD(997.6888)) {
		t.Errorf("Price() = %s, want 997.6888", price.Text())
	}
}

func TestCoinDesk_UnsupportedUnit(t *testing.T) {
	oracle := NewCoinDesk()
	_, err := oracle.Price("XRP", day(2017, time.January, 1))
	if !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("Price(XRP) error = %v, want ErrUnsupportedUnit", err)
	}
}

func TestCoinDesk_MissingDateInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"bpi":{}}`)
	}))
	defer server.Close()

	oracle := &CoinDesk{BaseURL: server.URL, client: server.Client()}
	if _, err := oracle.Price("BTC", day(2017, time.January, 1)); err == nil {
		t.Errorf("Price() accepted a response without the requested date")
	}
}
