package kraken

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Source is the label stamped on every snapshot.
const Source = "Kraken API"

// TickerResponse represents the envelope of a Kraken public Ticker response.
// Result is kept raw because Kraken keys it by its own internal pair code,
// which the caller does not know in advance.
type TickerResponse struct {
	Error  []string        `json:"error"`
	Result json.RawMessage `json:"result"`
}

// numeric carries a JSON string or number as its literal text. Kraken sends
// prices as strings and trade counts as bare numbers; both pass through
// without float coercion so the exchange's exact decimal representation
// survives untouched.
type numeric string

func (n *numeric) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = numeric(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = numeric(num.String())
	return nil
}

// pairData represents Kraken's positional ticker encoding for one pair.
type pairData struct {
	Ask        []numeric `json:"a"`
	Bid        []numeric `json:"b"`
	LastTrade  []numeric `json:"c"`
	Volume     []numeric `json:"v"`
	VWAP       []numeric `json:"p"`
	TradeCount []numeric `json:"t"`
	Low        []numeric `json:"l"`
	High       []numeric `json:"h"`
	Open       numeric   `json:"o"`
}

// BookLevel represents one side of the book: price plus lot volumes.
type BookLevel struct {
	Price          string `json:"price"`
	WholeLotVolume string `json:"whole_lot_volume"`
	LotVolume      string `json:"lot_volume"`
}

// LastTrade represents the last closed trade.
type LastTrade struct {
	Price  string `json:"price"`
	Volume string `json:"volume"`
}

// Window holds a today / last-24h pair of values.
type Window struct {
	Today   string `json:"today"`
	Last24h string `json:"last_24h"`
}

// Snapshot is the normalized ticker record for one pair at one retrieval
// instant. All numeric fields carry the exchange's original string
// representation. A Snapshot is never modified after Ticker returns it.
type Snapshot struct {
	Pair         string    `json:"pair"`
	Ask          BookLevel `json:"ask"`
	Bid          BookLevel `json:"bid"`
	LastTrade    LastTrade `json:"last_trade"`
	Volume       Window    `json:"volume"`
	VWAP         Window    `json:"vwap"`
	TradeCount   Window    `json:"number_of_trades"`
	Low          Window    `json:"low"`
	High         Window    `json:"high"`
	OpeningPrice string    `json:"opening_price"`
	RetrievedAt  time.Time `json:"retrieved_at"`
	Source       string    `json:"source"`
}

// normalize projects the raw result object into a Snapshot. The pair field
// echoes the requested symbol, not Kraken's internal key. Any missing field
// or short array fails with a *ValidationError; no partial snapshot is
// returned.
func normalize(pair string, result json.RawMessage) (*Snapshot, error) {
	data, err := firstResultEntry(result)
	if err != nil {
		return nil, err
	}

	var pd pairData
	if err := json.Unmarshal(data, &pd); err != nil {
		return nil, &ValidationError{Field: "result", Err: err}
	}

	at := func(field string, arr []numeric, i int) (string, error) {
		if i >= len(arr) {
			return "", &ValidationError{Field: fmt.Sprintf("%s[%d]", field, i)}
		}
		return string(arr[i]), nil
	}

	s := &Snapshot{Pair: pair, Source: Source}
	for _, f := range []struct {
		name string
		arr  []numeric
		dst  []*string
	}{
		{"a", pd.Ask, []*string{&s.Ask.Price, &s.Ask.WholeLotVolume, &s.Ask.LotVolume}},
		{"b", pd.Bid, []*string{&s.Bid.Price, &s.Bid.WholeLotVolume, &s.Bid.LotVolume}},
		{"c", pd.LastTrade, []*string{&s.LastTrade.Price, &s.LastTrade.Volume}},
		{"v", pd.Volume, []*string{&s.Volume.Today, &s.Volume.Last24h}},
		{"p", pd.VWAP, []*string{&s.VWAP.Today, &s.VWAP.Last24h}},
		{"t", pd.TradeCount, []*string{&s.TradeCount.Today, &s.TradeCount.Last24h}},
		{"l", pd.Low, []*string{&s.Low.Today, &s.Low.Last24h}},
		{"h", pd.High, []*string{&s.High.Today, &s.High.Last24h}},
	} {
		if f.arr == nil {
			return nil, &ValidationError{Field: f.name}
		}
		for i, dst := range f.dst {
			v, err := at(f.name, f.arr, i)
			if err != nil {
				return nil, err
			}
			*dst = v
		}
	}

	if pd.Open == "" {
		return nil, &ValidationError{Field: "o"}
	}
	s.OpeningPrice = string(pd.Open)

	return s, nil
}

// firstResultEntry returns the value of the first key in the result object
// in document order. Kraken guarantees exactly one entry per request, but
// multi-entry input is accepted and the first entry wins. A token decoder is
// used instead of a map so document order is preserved.
func firstResultEntry(result json.RawMessage) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(result))

	tok, err := dec.Token()
	if err != nil {
		return nil, &ValidationError{Field: "result", Err: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, &ValidationError{Field: "result", Err: fmt.Errorf("not an object")}
	}

	tok, err = dec.Token()
	if err != nil {
		return nil, &ValidationError{Field: "result", Err: err}
	}
	if _, ok := tok.(string); !ok {
		return nil, &ValidationError{Field: "result", Err: fmt.Errorf("empty object")}
	}

	var data json.RawMessage
	if err := dec.Decode(&data); err != nil {
		return nil, &ValidationError{Field: "result", Err: err}
	}

	return data, nil
}
