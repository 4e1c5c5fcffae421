package main

import (
	"fmt"
	"io"
	"time"

	"ezc/internal/driver"
	"ezc/internal/observ"
)

// printTimings writes the per-unit phase table followed by the wall time.
func printTimings(out io.Writer, units []*driver.CompileResult, wall time.Duration) error {
	timer := observ.NewTimer()
	for _, unit := range units {
		if unit == nil || unit.Timer == nil {
			continue
		}
		prefix := unit.Path
		if unit.Cached {
			prefix += " (cached)"
		}
		timer.Merge(prefix, unit.Timer)
	}
	if _, err := io.WriteString(out, timer.Summary()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "built %.1f ms\n", toMillis(wall))
	return err
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
