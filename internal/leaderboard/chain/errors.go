package chain

import (
	"errors"
	"strings"
)

var (
	// ErrResultLimit marks a log query the provider refused because the range or result set was too large.
	ErrResultLimit = errors.New("provider result limit exceeded")
	// ErrShortResult is returned when a contract call yields fewer bytes than one ABI word.
	ErrShortResult = errors.New("short contract call result")
)

var resultLimitMarkers = []string{
	"query returned more than",
	"limit exceeded",
	"response size",
	"too many",
	"block range",
	"range is too large",
	"exceed maximum block range",
}

// IsResultLimitError reports whether err is a provider refusal that a smaller block window may avoid.
func IsResultLimitError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrResultLimit) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range resultLimitMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func classify(err error) error {
	if err == nil || errors.Is(err, ErrResultLimit) || !IsResultLimitError(err) {
		return err
	}
	return errors.Join(ErrResultLimit, err)
}
