package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gfx/ui"
)

type toggleState struct {
	On    bool
	Count int
}

func TestGetStateInsertsDefaultOnce(t *testing.T) {
	s := ui.NewStore()
	id := ui.NewID("toggle")

	st := ui.GetState(s, id, toggleState{Count: 5})
	assert.Equal(t, 5, st.Count)
	st.On = true
	st.Count++

	again := ui.GetState(s, id, toggleState{})
	assert.Same(t, st, again)
	assert.Equal(t, toggleState{On: true, Count: 6}, *again)
}

func TestSetAndDeleteState(t *testing.T) {
	s := ui.NewStore()
	id := ui.NewID("count")

	ui.SetState(s, id, 3)
	assert.Equal(t, 3, *ui.GetState(s, id, 0))
	ui.SetState(s, id, 4)
	assert.Equal(t, 4, *ui.GetState(s, id, 0))

	ui.DeleteState(s, id)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 9, *ui.GetState(s, id, 9))
}

func TestWrongTypeIsReplaced(t *testing.T) {
	s := ui.NewStore()
	id := ui.NewID("shared")

	ui.SetState(s, id, "text")
	n := ui.GetState(s, id, 7)
	assert.Equal(t, 7, *n)
	assert.Equal(t, 1, s.Len())
}

func TestRenderDropsUntouchedState(t *testing.T) {
	state := ui.NewState(100, 100)
	kept := ui.NewID("kept")
	dropped := ui.NewID("dropped")

	require.NoError(t, state.Render(func(s *ui.State) error {
		ui.SetState(s.Store(), kept, 1)
		ui.SetState(s.Store(), dropped, 2)
		return nil
	}))
	require.NoError(t, state.Render(func(s *ui.State) error {
		ui.GetState(s.Store(), kept, 0)
		return nil
	}))
	assert.Equal(t, 2, state.Store().Len(), "entries used in the previous frame survive")

	require.NoError(t, state.Render(func(s *ui.State) error {
		ui.GetState(s.Store(), kept, 0)
		return nil
	}))
	assert.Equal(t, 1, state.Store().Len())
	assert.Equal(t, 1, *ui.GetState(state.Store(), kept, 0))
}
