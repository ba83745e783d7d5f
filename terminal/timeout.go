package terminal

import "time"

// Read timeout bounds; VTIME counts deciseconds
const (
	MinReadTimeout     = 100 * time.Millisecond
	MaxReadTimeout     = 200 * time.Millisecond
	DefaultReadTimeout = MinReadTimeout
)

// ClampReadTimeout limits d to [MinReadTimeout, MaxReadTimeout]
func ClampReadTimeout(d time.Duration) time.Duration {
	return min(max(d, MinReadTimeout), MaxReadTimeout)
}
