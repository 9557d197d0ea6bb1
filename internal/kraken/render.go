package kraken

import "fmt"

const reportTemplate = `
Kraken Ticker Information for %s

Data retrieved from %s at %s

Current Prices:
- Ask: %s (%s volume, %s lot volume)
- Bid: %s (%s volume, %s lot volume)
- Last Trade: %s (%s volume)

Volume Statistics:
- Volume Today: %s
- Volume Last 24h: %s
- Volume Weighted Avg Price Today: %s
- Volume Weighted Avg Price Last 24h: %s

Trading Activity:
- Number of Trades Today: %s
- Number of Trades Last 24h: %s

Price Range:
- Low Today: %s
- Low Last 24h: %s
- High Today: %s
- High Last 24h: %s
- Opening Price: %s

This data represents a snapshot of market conditions at the time of retrieval and may have changed since then.
`

// Text renders the snapshot as a fixed-format multi-line report. It is a
// pure function of the snapshot: the same snapshot always renders to
// byte-identical text.
func (s *Snapshot) Text() string {
	ts := "Unknown time"
	if !s.RetrievedAt.IsZero() {
		ts = s.RetrievedAt.Format("2006-01-02 15:04:05 UTC")
	}

	return fmt.Sprintf(reportTemplate,
		s.Pair,
		s.Source, ts,
		s.Ask.Price, s.Ask.WholeLotVolume, s.Ask.LotVolume,
		s.Bid.Price, s.Bid.WholeLotVolume, s.Bid.LotVolume,
		s.LastTrade.Price, s.LastTrade.Volume,
		s.Volume.Today, s.Volume.Last24h,
		s.VWAP.Today, s.VWAP.Last24h,
		s.TradeCount.Today, s.TradeCount.Last24h,
		s.Low.Today, s.Low.Last24h,
		s.High.Today, s.High.Last24h,
		s.OpeningPrice,
	)
}
