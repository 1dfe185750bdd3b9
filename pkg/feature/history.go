package feature

import (
	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// historyCapacity is the longest rolling window, so a team's buffer never
// needs to retain more than this many prior outcomes.
const historyCapacity = 5

// teamHistory is a fixed-capacity circular buffer holding a team's most
// recent match outcomes in chronological order. When full, a push
// overwrites the oldest outcome. The engine only ever pushes outcomes
// whose date is strictly earlier than the match currently being scored,
// so reading the buffer can never observe the current match or a
// same-day one.
type teamHistory struct {
	data []model.TeamMatchOutcome
	size int
	head int // next write position
}

func newTeamHistory() *teamHistory {
	return &teamHistory{
		data: make([]model.TeamMatchOutcome, historyCapacity),
	}
}

// Push appends an outcome, evicting the oldest when at capacity.
func (h *teamHistory) Push(o model.TeamMatchOutcome) {
	h.data[h.head] = o
	h.head = (h.head + 1) % historyCapacity
	if h.size < historyCapacity {
		h.size++
	}
}

// Size returns the number of retained outcomes.
func (h *teamHistory) Size() int {
	return h.size
}

// Slice returns the retained outcomes oldest-first.
func (h *teamHistory) Slice() []model.TeamMatchOutcome {
	result := make([]model.TeamMatchOutcome, h.size)
	if h.size == 0 {
		return result
	}

	start := 0
	if h.size == historyCapacity {
		start = h.head
	}
	for i := 0; i < h.size; i++ {
		result[i] = h.data[(start+i)%historyCapacity]
	}
	return result
}
