package workorder

import (
	"fmt"
	"time"
)

// Bucket is the visual category a work order is drawn in.
type Bucket int

const (
	BucketUnknown   Bucket = iota
	BucketPending          // waiting for a worker (yellow)
	BucketActive           // being worked on (orange)
	BucketCompleted        // finished, awaiting payment (green)
	BucketSettled          // paid out (grey)
)

// String returns the colour name the bucket is drawn with.
func (b Bucket) String() string {
	switch b {
	case BucketPending:
		return "yellow"
	case BucketActive:
		return "orange"
	case BucketCompleted:
		return "green"
	case BucketSettled:
		return "grey"
	}
	return "none"
}

// Category derives the display bucket directly from the status.
func Category(s Status) Bucket {
	switch s {
	case StatusPending:
		return BucketPending
	case StatusInProgress:
		return BucketActive
	case StatusDone:
		return BucketCompleted
	case StatusPaid:
		return BucketSettled
	}
	return BucketUnknown
}

// ShowsAssignee reports whether the assignee's name and post are displayed.
func ShowsAssignee(s Status) bool {
	return s == StatusInProgress
}

// ShowsElapsed reports whether the elapsed time is displayed.
func ShowsElapsed(s Status) bool {
	return s == StatusDone || s == StatusPaid
}

// Elapsed is end minus start. There is no guard against end before start, so
// the result can be negative; callers that care use IsOrdered.
func Elapsed(start, end time.Time) time.Duration {
	return end.Sub(start)
}

// IsOrdered reports whether start <= end.
func IsOrdered(start, end time.Time) bool {
	return !end.Before(start)
}

// FormatElapsed renders a duration as H:MM:SS, prefixed with "N day(s), "
// from 24 hours up and with a leading "-" when negative.
func FormatElapsed(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Truncate(time.Second)
	h := int64(d / time.Hour)
	m := int64(d % time.Hour / time.Minute)
	s := int64(d % time.Minute / time.Second)

	days := ""
	switch n := h / 24; {
	case n == 1:
		days = "1 day, "
	case n > 1:
		days = fmt.Sprintf("%d days, ", n)
	}
	return fmt.Sprintf("%s%s%d:%02d:%02d", sign, days, h%24, m, s)
}
