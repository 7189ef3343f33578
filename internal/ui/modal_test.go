package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type project struct {
	ID    string
	Title string
}

func TestModalScenario(t *testing.T) {
	var m Modal[project]
	assert.False(t, m.IsOpen())

	x := project{ID: "x", Title: "Project X"}
	y := project{ID: "y", Title: "Project Y"}

	m = m.Open(x)
	assert.True(t, m.IsOpen())
	got, ok := m.Payload()
	assert.True(t, ok)
	assert.Equal(t, x, got)

	m = m.Open(y)
	assert.True(t, m.IsOpen())
	got, _ = m.Payload()
	assert.Equal(t, y, got, "open while open replaces the payload")

	m = m.Close()
	assert.False(t, m.IsOpen())
	got, ok = m.Payload()
	assert.False(t, ok)
	assert.Equal(t, project{}, got)
}

func TestModalOpenCloseRoundTrip(t *testing.T) {
	projects := []project{{ID: "a"}, {ID: "b", Title: "B"}, {}}
	for _, p := range projects {
		m := Modal[project]{}.Open(p).Close()
		assert.False(t, m.IsOpen())
		_, ok := m.Payload()
		assert.False(t, ok)
	}
}

func TestModalIndependentOfSelection(t *testing.T) {
	sel := NewSelection[string](nil).Activate("a")
	m := Modal[project]{}.Open(project{ID: "b"})

	m = m.Close()
	assert.True(t, sel.IsActive("a"))

	sel = sel.Clear()
	m = m.Open(project{ID: "c"})
	assert.True(t, m.IsOpen())
	_, ok := sel.Active()
	assert.False(t, ok)
}
