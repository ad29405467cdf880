package utils

import "strconv"

// NewStem creates a name generator producing stem1, stem2, ... and skipping
// every name already present in taken. A nil taken set means all names are free.
func NewStem(stem string, taken map[string]struct{}) *Stem {
	return &Stem{
		taken: taken,
		stem:  stem,
	}
}

// Stem hands out unique names for things the user left anonymous.
type Stem struct {
	taken map[string]struct{}
	stem  string
	last  int
}

// Reserve marks name as used, so Next never returns it.
func (s *Stem) Reserve(name string) {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	s.taken[name] = struct{}{}
}

func (s *Stem) Next() string {
	for {
		s.last++
		name := s.stem + strconv.Itoa(s.last)

		if _, ok := s.taken[name]; !ok {
			s.Reserve(name)
			return name
		}
	}
}
