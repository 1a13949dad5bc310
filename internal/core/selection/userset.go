// Package selection evaluates population predicates over the answer log
//
// Every operation resolves its input first, so callers may pass full history
// or an already deduplicated slice. Results are sets of user ids
package selection

import (
	"encoding/json"
	"sort"
)

// Fixed question ids for derived attributes
const (
	QuestionBirthDate int64 = 1
	QuestionHeight    int64 = 2
	QuestionWeight    int64 = 3
)

// UserSet is a set of user ids; it marshals as an ascending JSON array
type UserSet map[int64]struct{}

// NewUserSet builds a set from ids
func NewUserSet(ids ...int64) UserSet {
	s := make(UserSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id
func (s UserSet) Add(id int64) { s[id] = struct{}{} }

// Has reports membership
func (s UserSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Slice returns the ids in ascending order
func (s UserSet) Slice() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Union returns ids present in either set
func (s UserSet) Union(o UserSet) UserSet {
	out := make(UserSet, len(s)+len(o))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range o {
		out[id] = struct{}{}
	}
	return out
}

// Intersect returns ids present in both sets
func (s UserSet) Intersect(o UserSet) UserSet {
	small, big := s, o
	if len(big) < len(small) {
		small, big = big, small
	}
	out := make(UserSet)
	for id := range small {
		if big.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// MarshalJSON writes the set as a sorted array
func (s UserSet) MarshalJSON() ([]byte, error) { return json.Marshal(s.Slice()) }

// UnmarshalJSON reads an array of ids
func (s *UserSet) UnmarshalJSON(b []byte) error {
	var ids []int64
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*s = NewUserSet(ids...)
	return nil
}
