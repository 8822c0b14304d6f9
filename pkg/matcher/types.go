package matcher

// MatchedPair. one matched edge (left, right), both ids 1-based.
type MatchedPair struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

type Matching struct {
	size  int
	pairs []MatchedPair
}

func NewMatching(size int, pairs []MatchedPair) *Matching {
	return &Matching{
		size:  size,
		pairs: pairs,
	}
}

func (m *Matching) GetSize() int {
	return m.size
}

func (m *Matching) GetPairs() []MatchedPair {
	return m.pairs
}
