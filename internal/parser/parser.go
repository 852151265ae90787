package parser

// StepKind discriminates the two instruction step variants.
type StepKind string

const (
	// StepSend delivers one text message to the recipient.
	StepSend StepKind = "send"
	// StepWait pauses the run for a number of seconds.
	StepWait StepKind = "wait"
)

// Step represents one parsed instruction step.
type Step struct {
	Kind    StepKind
	Text    string  // message body, set for StepSend
	Seconds float64 // pause duration, set for StepWait
}

// InstructionSet is the ordered step sequence for one run. Insertion order is
// execution order; the set is built once per run and never mutated afterwards.
type InstructionSet []Step

// HasWaits reports whether the set contains at least one explicit wait step.
func (s InstructionSet) HasWaits() bool {
	for _, step := range s {
		if step.Kind == StepWait {
			return true
		}
	}
	return false
}

// Sends returns the number of send steps in the set.
func (s InstructionSet) Sends() int {
	n := 0
	for _, step := range s {
		if step.Kind == StepSend {
			n++
		}
	}
	return n
}

// Waits returns the number of wait steps in the set.
func (s InstructionSet) Waits() int {
	return len(s) - s.Sends()
}
