package workflow

// State is the position of a workflow in the commit sequence
type State int

const (
	StateCollecting State = iota
	StateCreatingSubDialog
	StateValidatingName
	StateCheckingSelfReference
	StateCheckingOverwrite
	StateCommitted
	StateAborted
)

var stateNames = map[State]string{
	StateCollecting:            "collecting",
	StateCreatingSubDialog:     "creating_sub_dialog",
	StateValidatingName:        "validating_name",
	StateCheckingSelfReference: "checking_self_reference",
	StateCheckingOverwrite:     "checking_overwrite",
	StateCommitted:             "committed",
	StateAborted:               "aborted",
}

// String returns the string representation of the state
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further commit attempt is possible
func (s State) Terminal() bool {
	return s == StateCommitted || s == StateAborted
}

// Outcome is the result of one commit attempt
type Outcome int

const (
	// OutcomeEditing means the attempt stopped and the candidate can be
	// edited and committed again
	OutcomeEditing Outcome = iota
	// OutcomeCommitted means the configuration now holds the candidate
	OutcomeCommitted
	// OutcomeAborted means the whole interaction was cancelled
	OutcomeAborted
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeEditing:
		return "editing"
	case OutcomeCommitted:
		return "committed"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}
