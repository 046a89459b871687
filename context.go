// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import "context"

type tzKey struct{}

// ContextWithTimeZone returns a new context with the given TimeZone
// stored in it.
func ContextWithTimeZone(ctx context.Context, tz TimeZone) context.Context {
	return context.WithValue(ctx, tzKey{}, tz)
}

// TimeZoneFromContext returns the TimeZone stored in the given context,
// or LocalTime if there is none.
func TimeZoneFromContext(ctx context.Context) TimeZone {
	tz, ok := ctx.Value(tzKey{}).(TimeZone)
	if !ok || tz == nil {
		return LocalTime()
	}
	return tz
}

// NowInContext returns the current time in the TimeZone stored in ctx.
func NowInContext(ctx context.Context) SysTime {
	return Now().In(TimeZoneFromContext(ctx))
}
