package input

// Outcome is the kind of result a handled command produced.
type Outcome int

const (
	OutcomeChanged   Outcome = iota + 1 // Value and/or cursor changed
	OutcomeSubmitted                    // ActionSubmit was issued
	OutcomeEscaped                      // ActionEscape was issued
)

// Response reports what a command did. A command without effect yields no
// Response at all, so Value and Cursor are never both false for
// OutcomeChanged.
type Response struct {
	Outcome Outcome `json:"outcome" toml:"outcome"`
	Value   bool    `json:"value" toml:"value"`
	Cursor  bool    `json:"cursor" toml:"cursor"`
}

// Changed builds an OutcomeChanged response.
func Changed(value, cursor bool) Response {
	return Response{Outcome: OutcomeChanged, Value: value, Cursor: cursor}
}

// Submitted reports whether the field was accepted.
func (r Response) Submitted() bool { return r.Outcome == OutcomeSubmitted }

// Escaped reports whether the field was cancelled.
func (r Response) Escaped() bool { return r.Outcome == OutcomeEscaped }
