package ast

// DualValue is the value of a dual affiliated keyword, which may carry
// a secondary value in square brackets: #+RESULTS[hash]: source.
type DualValue struct {
	Value        string
	Secondary    string
	HasSecondary bool
}

// Affiliated holds the keyword metadata collected from the #+KEY lines
// directly above an element. Caption and header keywords accumulate
// across repeated lines, as do export attributes; name, plot and
// results keep the last occurrence only.
type Affiliated struct {
	// Caption entries, in document order. Dual: #+CAPTION[short]: long.
	Caption []DualValue

	// Results reference, if any. Dual: #+RESULTS[hash]: name.
	Results *DualValue

	// Header arguments, one per #+HEADER: line.
	Header []string

	// Element name from #+NAME: (or one of its historical spellings).
	Name string

	// Plot instructions from #+PLOT:.
	Plot string

	// Export attributes keyed by their full keyword, e.g.
	// "ATTR_HTML" -> {":width 300"}.
	Attr map[string][]string
}

// IsZero reports whether no keyword was collected. The receiver may be
// nil; most nodes never carry affiliated keywords.
func (a *Affiliated) IsZero() bool {
	if a == nil {
		return true
	}
	return len(a.Caption) == 0 && a.Results == nil && len(a.Header) == 0 &&
		a.Name == "" && a.Plot == "" && len(a.Attr) == 0
}
