package logging

import (
	"github.com/quantbay/simex/types"

	"go.uber.org/zap"
)

// String constructs a field with the given key and value.
func String(key, val string) zap.Field {
	return zap.String(key, val)
}

// Int64 constructs a field with the given key and value.
func Int64(key string, val int64) zap.Field {
	return zap.Int64(key, val)
}

// Uint64 constructs a field with the given key and value.
func Uint64(key string, val uint64) zap.Field {
	return zap.Uint64(key, val)
}

// Bool constructs a field with the given key and value.
func Bool(key string, val bool) zap.Field {
	return zap.Bool(key, val)
}

// Error constructs a field that carries an error.
func Error(err error) zap.Field {
	return zap.Error(err)
}

// Order constructs a field logging an order's string form.
func Order(o *types.Order) zap.Field {
	return zap.Stringer("order", o)
}

// Trade constructs a field logging a trade's string form.
func Trade(t *types.Trade) zap.Field {
	return zap.Stringer("trade", t)
}
