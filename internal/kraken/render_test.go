package kraken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Pair:         "BTCUSD",
		Ask:          BookLevel{Price: "50000.1", WholeLotVolume: "1", LotVolume: "0.5"},
		Bid:          BookLevel{Price: "49999.9", WholeLotVolume: "2", LotVolume: "1.5"},
		LastTrade:    LastTrade{Price: "50000.0", Volume: "0.01"},
		Volume:       Window{Today: "1000.5", Last24h: "2000.7"},
		VWAP:         Window{Today: "49950.3", Last24h: "49900.1"},
		TradeCount:   Window{Today: "12345", Last24h: "23456"},
		Low:          Window{Today: "49000.0", Last24h: "48500.0"},
		High:         Window{Today: "51000.0", Last24h: "51500.0"},
		OpeningPrice: "49800.0",
		RetrievedAt:  time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC),
		Source:       Source,
	}
}

func TestSnapshot_Text(t *testing.T) {
	text := testSnapshot().Text()

	assert.Contains(t, text, "Kraken Ticker Information for BTCUSD")
	assert.Contains(t, text, "Data retrieved from Kraken API at 2025-03-14 15:09:26 UTC")
	assert.Contains(t, text, "Current Prices:")
	assert.Contains(t, text, "- Ask: 50000.1 (1 volume, 0.5 lot volume)")
	assert.Contains(t, text, "- Bid: 49999.9 (2 volume, 1.5 lot volume)")
	assert.Contains(t, text, "- Last Trade: 50000.0 (0.01 volume)")
	assert.Contains(t, text, "Volume Statistics:")
	assert.Contains(t, text, "- Volume Today: 1000.5")
	assert.Contains(t, text, "- Volume Last 24h: 2000.7")
	assert.Contains(t, text, "- Volume Weighted Avg Price Today: 49950.3")
	assert.Contains(t, text, "- Volume Weighted Avg Price Last 24h: 49900.1")
	assert.Contains(t, text, "Trading Activity:")
	assert.Contains(t, text, "- Number of Trades Today: 12345")
	assert.Contains(t, text, "- Number of Trades Last 24h: 23456")
	assert.Contains(t, text, "Price Range:")
	assert.Contains(t, text, "- Low Today: 49000.0")
	assert.Contains(t, text, "- Low Last 24h: 48500.0")
	assert.Contains(t, text, "- High Today: 51000.0")
	assert.Contains(t, text, "- High Last 24h: 51500.0")
	assert.Contains(t, text, "- Opening Price: 49800.0")
	assert.Contains(t, text, "This data represents a snapshot of market conditions at the time of retrieval and may have changed since then.")
}

func TestSnapshot_Text_Idempotent(t *testing.T) {
	s := testSnapshot()
	assert.Equal(t, s.Text(), s.Text())
}

func TestSnapshot_Text_UnknownTime(t *testing.T) {
	s := testSnapshot()
	s.RetrievedAt = time.Time{}

	text := s.Text()
	assert.Contains(t, text, "Data retrieved from Kraken API at Unknown time")
	assert.NotContains(t, text, "0001-01-01")
}
