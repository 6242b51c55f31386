package tetris

import (
	"math/rand"
)

// Randomizer returns a uniformly distributed integer in [lower, higher).
type Randomizer interface {
	RandomBetween(lower int, higher int) int
}

// RandomizerFunc adapts a function to the Randomizer interface.
type RandomizerFunc func(lower int, higher int) int

func (f RandomizerFunc) RandomBetween(lower int, higher int) int {
	return f(lower, higher)
}

type randomizer struct {
	*rand.Rand
}

// NewRandomizer returns a Randomizer backed by math/rand. The same seed always
// yields the same sequence.
func NewRandomizer(seed int64) Randomizer {
	return &randomizer{Rand: rand.New(rand.NewSource(seed))}
}

func (r *randomizer) RandomBetween(lower int, higher int) int {
	return lower + r.Intn(higher-lower)
}

// Selector picks the figure type of every newly spawned figure.
type Selector interface {
	// Next returns the upcoming figure type and advances the selector.
	Next() FigureType
	// Peek returns what Next would return without advancing.
	Peek() FigureType
}

// FixedSelector always selects the same figure type.
type FixedSelector FigureType

func (s FixedSelector) Next() FigureType { return FigureType(s) }
func (s FixedSelector) Peek() FigureType { return FigureType(s) }

// RandomSelector draws every figure type independently.
type RandomSelector struct {
	r    Randomizer
	next FigureType
}

func NewRandomSelector(r Randomizer) *RandomSelector {
	s := &RandomSelector{r: r}
	s.next = s.draw()

	return s
}

func (s *RandomSelector) draw() FigureType {
	return AllFigureTypes[s.r.RandomBetween(0, len(AllFigureTypes))]
}

func (s *RandomSelector) Next() FigureType {
	t := s.next
	s.next = s.draw()

	return t
}

func (s *RandomSelector) Peek() FigureType {
	return s.next
}

// BagSelector deals all seven figure types in a shuffled order before
// reshuffling.
type BagSelector struct {
	r   Randomizer
	bag []FigureType
	i   int
}

func NewBagSelector(r Randomizer) *BagSelector {
	s := &BagSelector{r: r, bag: make([]FigureType, len(AllFigureTypes))}
	s.shuffle()

	return s
}

func (s *BagSelector) Next() FigureType {
	t := s.bag[s.i]
	if s.i == len(s.bag)-1 {
		s.shuffle()

		s.i = 0
	} else {
		s.i++
	}

	return t
}

func (s *BagSelector) Peek() FigureType {
	return s.bag[s.i]
}

func (s *BagSelector) shuffle() {
	copy(s.bag, AllFigureTypes)

	for i := len(s.bag) - 1; i > 0; i-- {
		j := s.r.RandomBetween(0, i+1)
		s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
	}
}
