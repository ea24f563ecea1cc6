package confirmations

import (
	"fmt"
	"strings"

	"github.com/johnmorse/rhinoinsertcommand/pkg/style"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
)

// ConsoleForm implements types.PropertiesForm by asking for each property
// in turn. An empty answer keeps the shown value and end of input cancels
// the form.
type ConsoleForm struct {
	dialog *ConsoleDialog

	// Accept confirms the candidate as seeded without reading input. A
	// candidate without a name cancels the form instead.
	Accept bool

	// Name replaces the proposed block name when set
	Name string
}

// NewConsoleForm creates a form sharing the dialog's input and output
func NewConsoleForm(dialog *ConsoleDialog) *ConsoleForm {
	return &ConsoleForm{dialog: dialog}
}

// Edit runs one pass over the candidate's properties
func (f *ConsoleForm) Edit(c *types.InsertionOptionSet) (bool, error) {
	d := f.dialog
	d.printf("\n%s\n", style.TitleStyle.Render("Block Properties"))
	d.printf("File: %s\n", style.PathStyle.Render(c.SourceArchive))

	if name := strings.TrimSpace(f.Name); name != "" {
		c.BlockName = name
	}
	if f.Accept {
		if strings.TrimSpace(c.BlockName) == "" {
			d.printf("%s\n", style.ErrorStyle.Render("a block name is required"))
			return false, nil
		}
		d.printf("Name: %s\n", c.BlockName)
		return true, nil
	}

	edited := c.Clone()
	steps := []func(*types.InsertionOptionSet) (bool, error){
		f.askName,
		f.askDescription,
		f.askUpdateType,
		f.askLinkOptions,
	}
	for _, step := range steps {
		ok, err := step(edited)
		if err != nil || !ok {
			return false, err
		}
	}

	id := c.ID
	c.CopyFrom(edited)
	c.ID = id
	return true, nil
}

func (f *ConsoleForm) ask(label, current string) (string, bool, error) {
	f.dialog.printf("%s [%s]: ", label, current)
	answer, eof, err := f.dialog.readLine()
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if answer == "" && eof {
		return "", false, nil
	}
	if answer == "" {
		return current, true, nil
	}
	return answer, true, nil
}

func (f *ConsoleForm) askName(c *types.InsertionOptionSet) (bool, error) {
	name, ok, err := f.ask("Name", c.BlockName)
	if ok {
		c.BlockName = name
	}
	return ok, err
}

func (f *ConsoleForm) askDescription(c *types.InsertionOptionSet) (bool, error) {
	desc, ok, err := f.ask("Description", c.BlockDescription)
	if ok {
		c.BlockDescription = desc
	}
	return ok, err
}

func (f *ConsoleForm) askUpdateType(c *types.InsertionOptionSet) (bool, error) {
	for {
		answer, ok, err := f.ask("Update type (static, embedded, linked, linked_and_embedded)", c.UpdateType.String())
		if !ok || err != nil {
			return ok, err
		}
		u, err := types.ParseUpdateType(answer)
		if err != nil {
			f.dialog.printf("%s\n", style.ErrorStyle.Render(err.Error()))
			continue
		}
		c.UpdateType = u
		return true, nil
	}
}

// askLinkOptions asks for the layer style and nested link setting, which
// only apply to linked definitions
func (f *ConsoleForm) askLinkOptions(c *types.InsertionOptionSet) (bool, error) {
	if c.UpdateType != types.UpdateLinked {
		return true, nil
	}
	if c.LayerStyle == types.LayerNone {
		c.LayerStyle = types.LayerActive
	}
	for {
		answer, ok, err := f.ask("Layer style (active, reference)", c.LayerStyle.String())
		if !ok || err != nil {
			return ok, err
		}
		ls, err := types.ParseLayerStyle(answer)
		if err != nil || ls == types.LayerNone {
			f.dialog.printf("%s\n", style.ErrorStyle.Render("layer style must be active or reference"))
			continue
		}
		c.LayerStyle = ls
		break
	}

	current := "n"
	if c.SkipNestedLinkedDefinitions {
		current = "y"
	}
	answer, ok, err := f.ask("Skip nested linked definitions (y/n)", current)
	if !ok || err != nil {
		return ok, err
	}
	c.SkipNestedLinkedDefinitions = strings.HasPrefix(strings.ToLower(answer), "y")
	return true, nil
}
