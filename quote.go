package cryptotax

import (
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Spot USD price lookup, used by the CLI to fill ledger rows imported
// without a price. This is an upstream collaborator of the engine: report
// generation itself never fetches anything.

// coingeckoIDs maps common ticker symbols to CoinGecko asset ids.
var coingeckoIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"SOL":   "solana",
	"ADA":   "cardano",
	"DOT":   "polkadot",
	"MATIC": "matic-network",
	"LTC":   "litecoin",
	"XRP":   "ripple",
	"DOGE":  "dogecoin",
	"AVAX":  "avalanche-2",
}

// SpotPriceUSD fetches the current USD price of an asset symbol.
func SpotPriceUSD(symbol string) (Money, error) {
	id, ok := coingeckoIDs[strings.ToUpper(symbol)]
	if !ok {
		return Money{}, fmt.Errorf("no price source for asset %q", symbol)
	}

	addr := "https://api.coingecko.com/api/v3/simple/price?ids=" + id + "&vs_currencies=usd"
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error fetching price for %q: %w", symbol, err)
	}

	path := fmt.Sprintf("$.%s.usd", id)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error parsing price for %q: %q %w", symbol, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return Money{}, fmt.Errorf("error parsing price for %q: %q not a number: %v", symbol, path, jval)
	}
	return USD(decimal.NewFromFloat(val)), nil
}
