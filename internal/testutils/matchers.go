package testutils

import (
	"strings"

	"go.uber.org/mock/gomock"
)

var _ (gomock.Matcher) = (*MatchStringContains)(nil)

// MatchStringContains is gomock mathcer that matches if string contains
// substring
type MatchStringContains struct {
	Contains string
}

func (m MatchStringContains) Matches(x interface{}) bool {
	return strings.Contains(x.(string), m.Contains)
}
func (m MatchStringContains) String() string {
	return "Matches if string contains substring " + m.Contains
}

var _ (gomock.Matcher) = (*MatchStringContainsAll)(nil)

// MatchStringContainsAll matches if string contains all given substrings
type MatchStringContainsAll struct {
	Contains []string
}

func (m MatchStringContainsAll) Matches(x interface{}) bool {
	s, ok := x.(string)
	if !ok {
		return false
	}
	for _, c := range m.Contains {
		if !strings.Contains(s, c) {
			return false
		}
	}
	return true
}
func (m MatchStringContainsAll) String() string {
	return "Matches if string contains substrings " + strings.Join(m.Contains, ", ")
}
