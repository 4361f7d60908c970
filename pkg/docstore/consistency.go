package docstore

import (
	"github.com/keboola/go-docstore/internal/pkg/utils/errors"
)

// ConsistencyLevel is the consistency hint of a single operation.
// The library does not check compatibility of the requested level
// with the account configuration, that is the service's responsibility.
type ConsistencyLevel int

const (
	ConsistencyStrong ConsistencyLevel = iota
	ConsistencyBoundedStaleness
	ConsistencySession
	ConsistencyEventual
	ConsistencyConsistentPrefix
)

func (l ConsistencyLevel) String() string {
	switch l {
	case ConsistencyStrong:
		return "Strong"
	case ConsistencyBoundedStaleness:
		return "BoundedStaleness"
	case ConsistencySession:
		return "Session"
	case ConsistencyEventual:
		return "Eventual"
	case ConsistencyConsistentPrefix:
		return "ConsistentPrefix"
	default:
		return "Unknown"
	}
}

func ParseConsistencyLevel(value string) (ConsistencyLevel, error) {
	levels := []ConsistencyLevel{
		ConsistencyStrong,
		ConsistencyBoundedStaleness,
		ConsistencySession,
		ConsistencyEventual,
		ConsistencyConsistentPrefix,
	}
	for _, level := range levels {
		if level.String() == value {
			return level, nil
		}
	}
	return 0, errors.Errorf(`unexpected consistency level "%s"`, value)
}
