package common

import (
	"context"
	"strings"
)

func DefaultValue[T any]() T {
	var defaultValue T
	return defaultValue
}

func Done(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func IsBlank(str string) bool {
	return strings.TrimSpace(str) == ""
}
