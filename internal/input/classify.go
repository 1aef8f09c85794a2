package input

import "github.com/schollz/multiverse/internal/types"

// Threshold is how far from center the pointer must lean before the
// singularity picks a side.
const Threshold = 0.3

// Classify returns the timeline the pointer gravitates toward. The checks
// run in a fixed order: left, then right, then up. A pointer that is both
// far right and far up therefore resolves to web3.
func Classify(p types.PointerVector) types.Timeline {
	switch {
	case p.X < -Threshold:
		return types.DataTimeline
	case p.X > Threshold:
		return types.Web3Timeline
	case p.Y > Threshold:
		return types.ComicTimeline
	default:
		return types.Singularity
	}
}
