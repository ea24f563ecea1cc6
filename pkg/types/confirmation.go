package types

// Decision is the user's answer to a yes/no/cancel confirmation
type Decision int

const (
	// DecisionYes accepts the proposed change
	DecisionYes Decision = iota
	// DecisionNo declines the change and keeps the dialog open for editing
	DecisionNo
	// DecisionCancel declines the change and closes the dialog
	DecisionCancel
)

// String returns the string representation of the decision
func (d Decision) String() string {
	switch d {
	case DecisionYes:
		return "yes"
	case DecisionNo:
		return "no"
	case DecisionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ConfirmationRequest represents a request for user confirmation before the
// workflow changes the definition table
type ConfirmationRequest struct {
	// ID is a unique identifier for this confirmation within the workflow
	ID string

	// Title is a brief, user-friendly title describing what needs confirmation
	Title string

	// Description provides detailed information about what will happen
	Description string

	// Items lists specific definitions or files that will be affected
	Items []string

	// Default is the response used when the user just presses enter
	Default Decision
}

// ConfirmationResponse records the answer given to a ConfirmationRequest
type ConfirmationResponse struct {
	// ID matches the ConfirmationRequest.ID
	ID string `json:"id"`

	Decision Decision `json:"decision"`
}

// ConfirmationLog collects the responses given during one workflow run
type ConfirmationLog struct {
	Responses []ConfirmationResponse
}

// Record appends a response
func (l *ConfirmationLog) Record(id string, d Decision) {
	l.Responses = append(l.Responses, ConfirmationResponse{ID: id, Decision: d})
}

// Last returns the latest response for id and whether one exists
func (l *ConfirmationLog) Last(id string) (Decision, bool) {
	if l == nil {
		return DecisionCancel, false
	}
	for i := len(l.Responses) - 1; i >= 0; i-- {
		if l.Responses[i].ID == id {
			return l.Responses[i].Decision, true
		}
	}
	return DecisionCancel, false
}
