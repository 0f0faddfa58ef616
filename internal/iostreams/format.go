package iostreams

import (
	"fmt"
	"time"

	"github.com/docker/go-units"
	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable byte count like "64 MB".
func FormatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// FormatTransfer renders "done / total" byte counts, e.g. "12 MB / 64 MB".
func FormatTransfer(done, total int64) string {
	return FormatBytes(done) + " / " + FormatBytes(total)
}

// FormatPercent renders a fraction in [0, 1] as a whole percentage.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%3.0f%%", f*100)
}

// FormatElapsed returns a human-readable duration like "3 seconds".
func FormatElapsed(d time.Duration) string {
	return units.HumanDuration(d)
}

// ParseSize parses a human size like "64MiB" or "512k" into bytes.
func ParseSize(s string) (int64, error) {
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid size %q: must be positive", s)
	}
	return n, nil
}
