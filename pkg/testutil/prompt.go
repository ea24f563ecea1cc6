package testutil

import (
	"fmt"

	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
)

// ScriptedPrompt is a types.ConfirmationPrompt answering from Decisions in
// order. Once the script runs out it answers Cancel.
type ScriptedPrompt struct {
	Decisions []types.Decision

	Asked    []types.ConfirmationRequest
	Notified []string
}

// NewScriptedPrompt creates a prompt answering decisions in order
func NewScriptedPrompt(decisions ...types.Decision) *ScriptedPrompt {
	return &ScriptedPrompt{Decisions: decisions}
}

// AskYesNoCancel records the request and returns the next decision
func (p *ScriptedPrompt) AskYesNoCancel(req types.ConfirmationRequest) (types.Decision, error) {
	p.Asked = append(p.Asked, req)
	if len(p.Decisions) == 0 {
		return types.DecisionCancel, nil
	}
	d := p.Decisions[0]
	p.Decisions = p.Decisions[1:]
	return d, nil
}

// Notify records the message
func (p *ScriptedPrompt) Notify(title, message string) error {
	p.Notified = append(p.Notified, fmt.Sprintf("%s: %s", title, message))
	return nil
}

// FormStep is one scripted pass through the properties form. A nil Edit
// leaves the candidate as seeded. Cancel closes the form.
type FormStep struct {
	Edit   func(candidate *types.InsertionOptionSet)
	Cancel bool
}

// ScriptedForm is a types.PropertiesForm replaying Steps in order. Once the
// script runs out the form is cancelled.
type ScriptedForm struct {
	Steps []FormStep

	// Seen holds a copy of the candidate as each pass received it
	Seen []types.InsertionOptionSet
}

// NewScriptedForm creates a form replaying steps in order
func NewScriptedForm(steps ...FormStep) *ScriptedForm {
	return &ScriptedForm{Steps: steps}
}

// Accept is a step confirming the form unchanged
func Accept() FormStep {
	return FormStep{}
}

// Rename is a step setting the block name before confirming
func Rename(name string) FormStep {
	return FormStep{Edit: func(c *types.InsertionOptionSet) { c.BlockName = name }}
}

// CancelForm is a step closing the form
func CancelForm() FormStep {
	return FormStep{Cancel: true}
}

// Edit applies the next step
func (f *ScriptedForm) Edit(candidate *types.InsertionOptionSet) (bool, error) {
	f.Seen = append(f.Seen, *candidate)
	if len(f.Steps) == 0 {
		return false, nil
	}
	step := f.Steps[0]
	f.Steps = f.Steps[1:]
	if step.Cancel {
		return false, nil
	}
	if step.Edit != nil {
		step.Edit(candidate)
	}
	return true, nil
}
