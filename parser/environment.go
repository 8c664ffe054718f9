package parser

// Terminator selects which punctuation may close the counter of an
// ordered list item.
type Terminator uint8

const (
	// TerminatorPeriod accepts "1." style counters only.
	TerminatorPeriod Terminator = iota
	// TerminatorParen accepts "1)" style counters only.
	TerminatorParen
	// TerminatorBoth accepts either style.
	TerminatorBoth
)

// Environment supplies the per-buffer settings the parser consults
// while recognizing syntax. Implementations must be safe for reuse
// across parses.
type Environment interface {
	// TodoKeywords returns the keywords marking a headline as not
	// yet done.
	TodoKeywords() []string

	// DoneKeywords returns the keywords marking a headline as done.
	DoneKeywords() []string

	// ListAllowAlphabetical reports whether single letters may act
	// as ordered list counters next to digits.
	ListAllowAlphabetical() bool

	// OrderedListTerminator returns the punctuation accepted after
	// an ordered list counter.
	OrderedListTerminator() Terminator
}

// DefaultEnvironment mirrors a stock Emacs setup: TODO/DONE keywords,
// numeric counters terminated by either "." or ")".
type DefaultEnvironment struct{}

func (DefaultEnvironment) TodoKeywords() []string { return []string{"TODO"} }

func (DefaultEnvironment) DoneKeywords() []string { return []string{"DONE"} }

func (DefaultEnvironment) ListAllowAlphabetical() bool { return false }

func (DefaultEnvironment) OrderedListTerminator() Terminator { return TerminatorBoth }
