// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"math"
	"time"
)

const (
	// unixEpochStdTime is 1970-01-01T00:00:00Z as std time.
	unixEpochStdTime = 621_355_968_000_000_000
	unixEpochSeconds = unixEpochStdTime / int64(Second)
)

// UnixTimeToStdTime converts seconds since the unix epoch to std time.
func UnixTimeToStdTime(unixTime int64) int64 {
	return unixTime*int64(Second) + unixEpochStdTime
}

// StdTimeToUnixTime converts std time to seconds since the unix epoch,
// rounding towards negative infinity as per time.Time.Unix. When an
// int32 is requested the result saturates at math.MinInt32 and
// math.MaxInt32 rather than overflowing.
func StdTimeToUnixTime[T int32 | int64](stdTime int64) T {
	secs := floorDiv(stdTime, int64(Second)) - unixEpochSeconds
	var t T
	if _, ok := any(t).(int32); ok {
		if secs > math.MaxInt32 {
			return T(math.MaxInt32)
		}
		if secs < math.MinInt32 {
			return T(math.MinInt32)
		}
	}
	return T(secs)
}

func stdTimeToTime(stdTime int64) time.Time {
	secs := floorDiv(stdTime, int64(Second))
	hnsecs := stdTime - secs*int64(Second)
	return time.Unix(secs-unixEpochSeconds, hnsecs*100).UTC()
}

func timeToStdTime(t time.Time) int64 {
	return (t.Unix()+unixEpochSeconds)*int64(Second) + int64(t.Nanosecond()/100)
}
