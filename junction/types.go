package junction

import (
	"github.com/NoSuchProcess/SOAX/config"
	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/snake"
)

// noTip marks an absent neighbor handle.
const noTip = -1

// Tip is one end of an open segment. Handles are indices into the tip arena:
// 2·s for the head of segment s and 2·s+1 for its tail.
type Tip struct {
	Segment  int
	Head     bool
	Pos      geom.Point  // position cached at Initialize
	Dir      geom.Vector // outward unit tangent
	neighbor int
	valid    bool // false for closed segments
}

// Neighbor returns the handle of the paired tip, or -1.
func (t Tip) Neighbor() int { return t.neighbor }

// Junction is a confirmed meeting point of filament tips.
type Junction struct {
	Point  geom.Point
	Degree int // number of tips merged at the point
}

// Manager holds the segments and tips of one frame.
type Manager struct {
	params     config.Parameters
	segments   []*snake.Snake
	alive      []bool
	tips       []Tip
	sets       *dsu
	junctions  []Junction
	configured bool
}

// NewManager returns an empty manager using p for all thresholds.
func NewManager(p config.Parameters) *Manager {
	return &Manager{params: p}
}

func headHandle(seg int) int { return 2 * seg }

func tailHandle(seg int) int { return 2*seg + 1 }

// other returns the handle of the opposite tip of the same segment.
func other(h int) int { return h ^ 1 }
