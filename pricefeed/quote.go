package pricefeed

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

/*
	The chart endpoint nests the intraday series deep in a payload meant for
	the web chart widget:

	{
	    "info": {"symbol": "ACME", "chartType": "mini"},
	    "series": {
	        "intraday": {
	            "data": [
	                [1609754400, 135.2],
	                [1609758000, 135.9]
	            ]
	        }
	    }
	}
*/

// Quote returns the latest intraday price for a symbol, extracted from the
// chart payload.
func (c *Client) Quote(symbol string) (float64, error) {
	addr := fmt.Sprintf("%s/api/chart/%s.json", strings.TrimSuffix(c.BaseURL, "/"), url.PathEscape(symbol))

	var jobj any
	if err := jwget(c.HTTPClient, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", symbol, err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", symbol, path, "not a float", jval)
	}
	return val, nil
}
