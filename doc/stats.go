package doc

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Stats summarizes the TODO state and clock time of a document.
type Stats struct {
	// Headlines counts every headline and inline task.
	Headlines int

	// Todo and Done count headlines per keyword.
	Todo map[string]int
	Done map[string]int

	// Completion is done/(todo+done) as a percentage with one decimal
	// place. Zero when the document has no TODO keywords at all.
	Completion decimal.Decimal

	// ClockedMinutes is the total closed clock time of the document.
	ClockedMinutes int
}

func (s *Stats) addKeyword(keyword string, done bool) {
	if done {
		if s.Done == nil {
			s.Done = make(map[string]int)
		}
		s.Done[keyword]++
	} else {
		if s.Todo == nil {
			s.Todo = make(map[string]int)
		}
		s.Todo[keyword]++
	}
}

// finish derives the aggregate fields once all entries are counted.
func (s *Stats) finish() {
	todo, done := 0, 0
	for _, n := range s.Todo {
		todo += n
	}
	for _, n := range s.Done {
		done += n
	}

	if todo+done > 0 {
		s.Completion = decimal.NewFromInt(int64(done)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(todo + done))).
			Round(1)
	}
}

// TodoCount returns the total number of unfinished TODO headlines.
func (s Stats) TodoCount() int {
	n := 0
	for _, c := range s.Todo {
		n += c
	}
	return n
}

// DoneCount returns the total number of finished TODO headlines.
func (s Stats) DoneCount() int {
	n := 0
	for _, c := range s.Done {
		n += c
	}
	return n
}

// Keywords returns every TODO keyword seen in the document, sorted,
// unfinished keywords first.
func (s Stats) Keywords() []string {
	var todo, done []string
	for kw := range s.Todo {
		todo = append(todo, kw)
	}
	for kw := range s.Done {
		if _, dual := s.Todo[kw]; !dual {
			done = append(done, kw)
		}
	}
	sort.Strings(todo)
	sort.Strings(done)
	return append(todo, done...)
}

// ClockedHours formats total clock time as decimal hours with two
// decimal places.
func (s Stats) ClockedHours() decimal.Decimal {
	return decimal.NewFromInt(int64(s.ClockedMinutes)).
		Div(decimal.NewFromInt(60)).
		Round(2)
}
