package eodhd

import (
	"fmt"
	"net/url"

	"github.com/etnz/checklist"
)

// SearchResult matches the structure of a single item in the EODHD search API response.
type SearchResult struct {
	Code              string         `json:"Code"`
	Exchange          string         `json:"Exchange"`
	Name              string         `json:"Name"`
	Type              string         `json:"Type"`
	Country           string         `json:"Country"`
	Currency          string         `json:"Currency"`
	ISIN              string         `json:"ISIN"`
	PreviousClose     float64        `json:"previousClose"`
	PreviousCloseDate checklist.Date `json:"previousCloseDate"`
}

// Ticker returns the result's ticker in EODHD's "SYMBOL.EXCHANGE" format,
// ready to be passed to Fundamentals.
func (r SearchResult) Ticker() string {
	return r.Code + "." + r.Exchange
}

// Search searches for securities via EOD Historical Data API.
func Search(apiKey string, searchTerm string) ([]SearchResult, error) {
	apiURL := fmt.Sprintf("https://eodhd.com/api/search/%s?api_token=%s&fmt=json",
		url.PathEscape(searchTerm), url.QueryEscape(apiKey))

	var results []SearchResult
	if err := jwget(newDailyCachingClient(), apiURL, &results); err != nil {
		return nil, fmt.Errorf("searching %q: %w", searchTerm, err)
	}
	return results, nil
}
