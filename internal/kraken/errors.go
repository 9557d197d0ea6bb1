package kraken

import "fmt"

// UsageError reports a missing or malformed argument at the protocol
// boundary. No network call is made when it is returned.
type UsageError struct {
	Argument string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Argument)
}

// ExchangeError reports a failure signalled by Kraken itself: a non-empty
// error array or a response without a result field.
type ExchangeError struct {
	Message string
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("kraken api error: %s", e.Message)
}

// ValidationError reports a result shape that does not match the documented
// ticker layout. Field names the offending key or array index.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid ticker response: field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid ticker response: missing field %q", e.Field)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// TransportError reports a network failure or a non-success HTTP status.
// Status is zero when the request never reached the server.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("kraken request failed: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("kraken request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
