package weather

import (
	"errors"
	"fmt"
)

// Kind classifies why a lookup failed.
type Kind int

const (
	// KindRetrieve covers transport failures, non-success HTTP statuses and
	// cancelled requests: nothing usable came back from the provider.
	KindRetrieve Kind = iota + 1
	// KindParse means the provider answered but the body was malformed or
	// missing a field we need.
	KindParse
)

var (
	ErrRetrieve = errors.New("could not retrieve weather data")
	ErrParse    = errors.New("could not parse weather data")
)

// FetchError is returned by Client for every failed lookup.
type FetchError struct {
	Kind       Kind
	City       string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindParse:
		return fmt.Sprintf("parse weather for %q: %v", e.City, e.Err)
	default:
		if e.StatusCode != 0 {
			return fmt.Sprintf("fetch weather for %q: status=%d: %v", e.City, e.StatusCode, e.Err)
		}
		return fmt.Sprintf("fetch weather for %q: %v", e.City, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrRetrieve) and errors.Is(err, ErrParse) match on Kind.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrRetrieve:
		return e.Kind == KindRetrieve
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

func retrieveError(city string, status int, err error) *FetchError {
	return &FetchError{Kind: KindRetrieve, City: city, StatusCode: status, Err: err}
}

func parseError(city string, err error) *FetchError {
	return &FetchError{Kind: KindParse, City: city, Err: err}
}
