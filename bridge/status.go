package bridge

import (
	"github.com/wippyai/svg-bridge/errors"
)

// Status is the flat result code returned across the dispatch boundary.
// Rich error objects never cross it.
type Status uint32

const (
	StatusOK               Status = iota
	StatusInvalidParameter        // malformed caller input
	StatusNotSupported            // required library or symbol unavailable
	StatusUnsuccessful            // native-side failure despite valid input
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidParameter:
		return "invalid_parameter"
	case StatusNotSupported:
		return "not_supported"
	case StatusUnsuccessful:
		return "unsuccessful"
	default:
		return "unknown"
	}
}

// statusFromError folds a component error into the boundary's status set.
func statusFromError(err error) Status {
	if err == nil {
		return StatusOK
	}
	e, ok := err.(*errors.Error)
	if !ok {
		return StatusUnsuccessful
	}
	switch e.Kind {
	case errors.KindInvalidParameter:
		return StatusInvalidParameter
	case errors.KindCapabilityUnavailable:
		return StatusNotSupported
	default:
		return StatusUnsuccessful
	}
}
