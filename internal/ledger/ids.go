package ledger

import (
	"errors"
	"math"
)

// ErrIDsExhausted is returned by Add once the largest stored id is
// math.MaxInt64 and no greater id exists.
var ErrIDsExhausted = errors.New("transaction ids exhausted")

// idSequence hands out strictly increasing ids. It is seeded from the largest
// id already stored, so ids loaded from older data (which were creation
// timestamps) are never reused.
type idSequence struct {
	last int64
}

func (s *idSequence) observe(id int64) {
	if id > s.last {
		s.last = id
	}
}

func (s *idSequence) next() (int64, error) {
	if s.last == math.MaxInt64 {
		return 0, ErrIDsExhausted
	}
	s.last++
	return s.last, nil
}
