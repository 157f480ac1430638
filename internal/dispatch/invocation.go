package dispatch

// Invocation is the parsed command line handed to a Handler.
type Invocation struct {
	Command  string
	Operands []string
	// Options holds the options given on the command line, keyed by their
	// long form ("--count"). Boolean options map to "true".
	Options map[string]string
}

// Has reports whether option was given.
func (inv *Invocation) Has(option string) bool {
	_, ok := inv.Options[option]
	return ok
}

// Get returns the value of option and whether it was given.
func (inv *Invocation) Get(option string) (string, bool) {
	v, ok := inv.Options[option]
	return v, ok
}

// Operand returns the i-th operand, or "" when there are fewer operands.
func (inv *Invocation) Operand(i int) string {
	if i < 0 || i >= len(inv.Operands) {
		return ""
	}
	return inv.Operands[i]
}
