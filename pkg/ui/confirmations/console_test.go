// pkg/ui/confirmations/console_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: strings.Reader input, bytes.Buffer output
// PURPOSE: Test console answers, defaults and the properties form

package confirmations_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/johnmorse/rhinoinsertcommand/pkg/ui/confirmations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overwriteRequest() types.ConfirmationRequest {
	return types.ConfirmationRequest{
		ID:          "overwrite",
		Title:       "Redefine Block",
		Description: `The "Chair" block definition already exists. Do you want to replace it?`,
		Items:       []string{"Chair"},
		Default:     types.DecisionNo,
	}
}

func TestAskYesNoCancel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.Decision
	}{
		{"yes", "y\n", types.DecisionYes},
		{"yes_word", "YES\n", types.DecisionYes},
		{"no", "n\n", types.DecisionNo},
		{"cancel", "c\n", types.DecisionCancel},
		{"empty_takes_default", "\n", types.DecisionNo},
		{"retry_after_garbage", "maybe\ny\n", types.DecisionYes},
		{"end_of_input_cancels", "", types.DecisionCancel},
		{"last_line_without_newline", "y", types.DecisionYes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			d := confirmations.NewConsoleDialog(strings.NewReader(tt.input), &out)

			decision, err := d.AskYesNoCancel(overwriteRequest())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decision)
			assert.Contains(t, out.String(), "Redefine Block")
			assert.Contains(t, out.String(), "[y/N/c]")
		})
	}
}

func TestAssumeYes(t *testing.T) {
	var out bytes.Buffer
	d := confirmations.NewConsoleDialog(strings.NewReader(""), &out)
	d.AssumeYes = true

	decision, err := d.AskYesNoCancel(overwriteRequest())
	require.NoError(t, err)
	assert.Equal(t, types.DecisionYes, decision)
}

func TestNotify(t *testing.T) {
	var out bytes.Buffer
	d := confirmations.NewConsoleDialog(strings.NewReader(""), &out)

	require.NoError(t, d.Notify("Invalid Insert Value", "Please enter a block name to insert"))
	assert.Contains(t, out.String(), "Invalid Insert Value")
	assert.Contains(t, out.String(), "Please enter a block name to insert")
}

func newCandidate() *types.InsertionOptionSet {
	c := types.NewInsertionOptionSet()
	c.FromFile("/lib/chair.3dm", "chair", types.UpdateStatic, types.LayerActive, false)
	return c
}

func TestFormEdit(t *testing.T) {
	t.Run("keeps values on empty answers", func(t *testing.T) {
		c := newCandidate()
		before := *c
		form := confirmations.NewConsoleForm(confirmations.NewConsoleDialog(strings.NewReader("\n\n\n"), &bytes.Buffer{}))

		ok, err := form.Edit(c)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, before, *c)
	})

	t.Run("edits linked properties", func(t *testing.T) {
		c := newCandidate()
		id := c.ID
		input := "Chair 2\nA chair\nbogus\nlinked\nreference\ny\n"
		form := confirmations.NewConsoleForm(confirmations.NewConsoleDialog(strings.NewReader(input), &bytes.Buffer{}))

		ok, err := form.Edit(c)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, id, c.ID)
		assert.Equal(t, "Chair 2", c.BlockName)
		assert.Equal(t, "A chair", c.BlockDescription)
		assert.Equal(t, types.UpdateLinked, c.UpdateType)
		assert.Equal(t, types.LayerReference, c.LayerStyle)
		assert.True(t, c.SkipNestedLinkedDefinitions)
	})

	t.Run("end of input cancels without changes", func(t *testing.T) {
		c := newCandidate()
		before := *c
		form := confirmations.NewConsoleForm(confirmations.NewConsoleDialog(strings.NewReader("Renamed\n"), &bytes.Buffer{}))

		ok, err := form.Edit(c)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, before, *c)
	})

	t.Run("accept confirms without input", func(t *testing.T) {
		c := newCandidate()
		form := confirmations.NewConsoleForm(confirmations.NewConsoleDialog(strings.NewReader(""), &bytes.Buffer{}))
		form.Accept = true

		ok, err := form.Edit(c)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "chair", c.BlockName)
	})
}

func TestFormNameOverride(t *testing.T) {
	c := newCandidate()
	form := confirmations.NewConsoleForm(confirmations.NewConsoleDialog(strings.NewReader(""), &bytes.Buffer{}))
	form.Accept = true
	form.Name = "Dining Chair"

	ok, err := form.Edit(c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Dining Chair", c.BlockName)
}

func TestFormAcceptBlankName(t *testing.T) {
	tests := []struct {
		name      string
		blockName string
		override  string
	}{
		{"blank candidate", "", ""},
		{"whitespace candidate", "   ", ""},
		{"whitespace override keeps blank candidate", "", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCandidate()
			c.BlockName = tt.blockName
			var out bytes.Buffer
			form := confirmations.NewConsoleForm(confirmations.NewConsoleDialog(strings.NewReader(""), &out))
			form.Accept = true
			form.Name = tt.override

			ok, err := form.Edit(c)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Contains(t, out.String(), "a block name is required")
		})
	}
}

func TestFormWhitespaceNameIsIgnored(t *testing.T) {
	c := newCandidate()
	form := confirmations.NewConsoleForm(confirmations.NewConsoleDialog(strings.NewReader(""), &bytes.Buffer{}))
	form.Accept = true
	form.Name = "  "

	ok, err := form.Edit(c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "chair", c.BlockName)
}
