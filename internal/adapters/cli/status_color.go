package cli

import (
	"time"

	"github.com/fatih/color"

	"github.com/example/workdesk/internal/core/workorder"
	"github.com/example/workdesk/internal/db"
)

// bucketColor maps a display bucket name onto a terminal colour.
func bucketColor(bucket string) *color.Color {
	switch bucket {
	case workorder.BucketPending.String():
		return color.New(color.FgYellow)
	case workorder.BucketActive.String():
		// 256-colour orange; the basic palette has none.
		return color.New(color.Attribute(38), color.Attribute(5), color.Attribute(208))
	case workorder.BucketCompleted.String():
		return color.New(color.FgGreen)
	case workorder.BucketSettled.String():
		return color.New(color.FgHiBlack)
	default:
		return color.New(color.FgWhite)
	}
}

// colorizeStatus renders a status in the colour of its bucket.
func colorizeStatus(status string) string {
	bucket := workorder.Category(workorder.Status(status)).String()
	return bucketColor(bucket).Sprint(status)
}

// formatTime prints a timestamp the way it is stored.
func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(db.TimestampLayout)
}
