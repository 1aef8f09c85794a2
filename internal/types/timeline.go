package types

import (
	"fmt"
	"strings"
)

// Timeline is one of the four mutually exclusive presentation modes.
// The zero value is Singularity, the undecided state.
type Timeline int

const (
	Singularity Timeline = iota
	DataTimeline
	ComicTimeline
	Web3Timeline
)

// CommittedTimelines lists the timelines a user can switch to, in watch order.
var CommittedTimelines = []Timeline{DataTimeline, ComicTimeline, Web3Timeline}

func (t Timeline) String() string {
	switch t {
	case DataTimeline:
		return "data"
	case ComicTimeline:
		return "comic"
	case Web3Timeline:
		return "web3"
	default:
		return "singularity"
	}
}

// Committed reports whether t is one of the three terminal timelines.
func (t Timeline) Committed() bool {
	return t == DataTimeline || t == ComicTimeline || t == Web3Timeline
}

// ParseTimeline maps an identifier such as "web3" back to its Timeline.
func ParseTimeline(s string) (Timeline, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "singularity":
		return Singularity, nil
	case "data":
		return DataTimeline, nil
	case "comic":
		return ComicTimeline, nil
	case "web3":
		return Web3Timeline, nil
	}
	return Singularity, fmt.Errorf("unknown timeline %q", s)
}

// TimelineInfo is the presentation metadata shown on the watch and header.
type TimelineInfo struct {
	Label     string
	Icon      string
	Primary   string
	Secondary string
	Accent    string
}

var timelineInfo = map[Timeline]TimelineInfo{
	Singularity: {
		Label:     "The Singularity",
		Icon:      "◎",
		Primary:   "#FFFFFF",
		Secondary: "#8B949E",
		Accent:    "#E6EDF3",
	},
	DataTimeline: {
		Label:     "The Architect",
		Icon:      "⟨⟩",
		Primary:   "#00FF41",
		Secondary: "#008F11",
		Accent:    "#39FF14",
	},
	ComicTimeline: {
		Label:     "The Anomaly",
		Icon:      "✦",
		Primary:   "#FF6B35",
		Secondary: "#F7931E",
		Accent:    "#FBD1A2",
	},
	Web3Timeline: {
		Label:     "The Mirror",
		Icon:      "◈",
		Primary:   "#7B2CBF",
		Secondary: "#C77DFF",
		Accent:    "#FFD60A",
	},
}

// Info returns the presentation metadata for t. Unknown values fall back to
// the singularity entry.
func (t Timeline) Info() TimelineInfo {
	if info, ok := timelineInfo[t]; ok {
		return info
	}
	return timelineInfo[Singularity]
}
