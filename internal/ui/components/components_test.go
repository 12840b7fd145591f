package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pressed struct{ label string }

func button(label string, active bool) Button {
	return NewButton(label, active, func() tea.Cmd {
		return func() tea.Msg { return pressed{label} }
	})
}

func TestButtonRow_Focus(t *testing.T) {
	r := NewButtonRow(button("A", false), button("B", false), button("C", false))
	assert.Equal(t, 0, r.Focused)
	assert.True(t, r.Buttons[0].Active)

	r, _ = r.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, 1, r.Focused)
	assert.False(t, r.Buttons[0].Active)
	assert.True(t, r.Buttons[1].Active)

	r, _ = r.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	r, _ = r.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 2, r.Focused, "focus wraps to the end")

	r, _ = r.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, 0, r.Focused, "focus wraps to the start")
}

func TestButtonRow_EnterPressesFocused(t *testing.T) {
	r := NewButtonRow(button("A", false), button("B", false))
	r, _ = r.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, pressed{"B"}, cmd())
}

func TestButton_InactiveIgnoresEnter(t *testing.T) {
	b := button("A", false)
	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "one", Disabled: true},
		{Label: "two"},
		{Label: "three", Disabled: true},
		{Label: "four"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 1, m.Selected)
}

func TestMultiChoice_Cursor(t *testing.T) {
	m := NewMultiChoice("Q?", []string{"a", "b", "c"})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor, "cursor stops at the top")

	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Cursor, "cursor stops at the bottom")
}

func TestMultiChoice_Reveal(t *testing.T) {
	m := NewMultiChoice("Q?", []string{"a", "b"}).Reveal(0, 1)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, m.Cursor, "revealed choice ignores input")

	view := m.View()
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "✗")
}

func TestToast_ShowAndDismiss(t *testing.T) {
	var toast Toast
	toast, cmd := toast.Update(ShowToastMsg{Text: "first", Kind: ToastSuccess})
	require.NotNil(t, cmd)
	assert.True(t, toast.Visible)
	first := toast.id

	toast, _ = toast.Update(ShowToastMsg{Text: "second"})
	assert.Equal(t, "second", toast.Text)

	toast, _ = toast.Update(dismissToastMsg{id: first})
	assert.True(t, toast.Visible, "stale dismissal keeps the newer toast")

	toast, _ = toast.Update(dismissToastMsg{id: toast.id})
	assert.False(t, toast.Visible)
	assert.Empty(t, toast.View())
}

func TestQuestionProgress(t *testing.T) {
	p := QuestionProgress(2, 4, 40)
	assert.Equal(t, "Question 3 of 4", p.Label)
	assert.InDelta(t, 0.75, p.Percent, 1e-9)

	assert.Zero(t, QuestionProgress(0, 0, 40).Percent)
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 44, ContentWidth(50))
	assert.Equal(t, 60, ContentWidth(200))
}
