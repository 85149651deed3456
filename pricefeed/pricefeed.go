// Package pricefeed fetches historical closing prices and intraday quotes
// from the price-history service over plain HTTP.
//
// The history endpoint returns a JSON object keyed by epoch-second strings,
// each value carrying the closing price and the observation instant:
//
//	{
//	  "1609754400": {"close": 135.2, "timestamp": 1609754400},
//	  "1609776000": {"close": 136.7, "timestamp": 1609776000}
//	}
package pricefeed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/harryiam/stockunlock"
)

// Client queries the price-history service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client for the service at baseURL, with responses cached on
// disk until the end of the day. Historical closes do not change intraday,
// so a daily cache is the right expiry.
func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTPClient: daily()}
}

// History fetches the full closing price history for a symbol.
//
// A non-OK status or an unparseable body is returned as an error; callers
// are expected to log it and degrade to an empty series rather than fail.
func (c *Client) History(symbol string) (map[string]stockunlock.PriceObservation, error) {
	addr := fmt.Sprintf("%s/api/prices/%s.json", strings.TrimSuffix(c.BaseURL, "/"), url.PathEscape(symbol))

	content := make(map[string]stockunlock.PriceObservation)
	if err := jwget(c.HTTPClient, addr, &content); err != nil {
		return nil, fmt.Errorf("could not fetch price history for %q: %w", symbol, err)
	}
	return content, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
