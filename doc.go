// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package chrono provides calendar and clock value types: Date,
// TimeOfDay, DateTime and SysTime, an absolute instant presented in a
// TimeZone. Dates use the proleptic Gregorian calendar with
// astronomical year numbering, so that year 0 and negative years are
// valid, and every day is exactly 24 hours long; leap seconds are
// not supported.
//
// Times are measured in hnsecs, 100 nanosecond ticks, and SysTime
// stores std time, the number of hnsecs since 0001-01-01T00:00:00 UTC.
// The calendar fields of a SysTime are always computed by converting
// std time to the time in its TimeZone.
//
// All of the value types support ISO 8601 basic and extended formats,
// as well as a simpler, more readable, format, and implement
// encoding.TextMarshaler and yaml.Marshaler using the extended format.
//
// Mutating methods, such as SetDay, validate the entire resulting value
// before committing any change and return ErrInvalidDate or
// ErrInvalidTime, leaving the receiver unchanged, on failure.
package chrono
