package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/app"
	"github.com/go-theft-auto/gfx/gfxtest"
)

// fakeWindow replays one batch of scripted events per poll and asks to close
// after the last batch, so a broken loop cannot hang the test.
type fakeWindow struct {
	script      [][]app.Event
	polls       int
	shouldClose bool
	width       int
	height      int
	swaps       int
	toggles     int
	destroyed   int
}

func (w *fakeWindow) PollEvents() []app.Event {
	if w.polls >= len(w.script) {
		w.shouldClose = true
		return nil
	}
	events := w.script[w.polls]
	w.polls++
	if w.polls == len(w.script) {
		w.shouldClose = true
	}
	for _, e := range events {
		if s, ok := e.(app.FramebufferSizeEvent); ok {
			w.width, w.height = s.Width, s.Height
		}
	}
	return events
}

func (w *fakeWindow) ShouldClose() bool { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(v bool) { w.shouldClose = v }
func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }
func (w *fakeWindow) ContentScale() float32 { return 1 }
func (w *fakeWindow) ToggleFullscreen() error { w.toggles++; return nil }
func (w *fakeWindow) Fullscreen() bool { return w.toggles%2 == 1 }
func (w *fakeWindow) SwapBuffers() { w.swaps++ }
func (w *fakeWindow) Destroy() { w.destroyed++ }

// recordingState draws one quad per frame and records what it was told.
type recordingState struct {
	events     []app.Event
	fullscreen []bool
	resizes    [][2]int
	frames     int
	texture    int32
	drawErr    error
}

func (s *recordingState) HandleEvent(e app.Event, w app.Window) error {
	s.events = append(s.events, e)
	s.fullscreen = append(s.fullscreen, w.Fullscreen())
	return nil
}

func (s *recordingState) Resize(w, h int) error {
	s.resizes = append(s.resizes, [2]int{w, h})
	return nil
}

func (s *recordingState) DrawFrame(f *gfx.Frame) error {
	if s.drawErr != nil {
		return s.drawErr
	}
	s.frames++
	return gfx.Tile{Model: gfx.Rect{W: 10, H: 10}, Color: gfx.ColorWhite, TexIndex: s.texture}.Fill(f)
}

func testConfig() app.Config {
	return app.DefaultConfig(app.WithTargetFPS(0), app.WithLogLevel("error"))
}

func newApp(t *testing.T, win *fakeWindow, dev *gfxtest.Device, state *recordingState) *app.Application {
	t.Helper()
	a, err := app.New(win, dev, testConfig(), func(ctx *app.InitContext) (app.State, error) {
		return state, nil
	})
	require.NoError(t, err)
	return a
}

func TestEscapeTearsDownEverything(t *testing.T) {
	dev := gfxtest.NewDevice()
	win := &fakeWindow{
		width:  800,
		height: 600,
		script: [][]app.Event{
			{app.CursorPosEvent{X: 1, Y: 2}},
			{},
			{app.KeyEvent{Key: app.KeyEscape, Action: app.Press}},
			{app.CursorPosEvent{X: 3, Y: 4}},
		},
	}
	state := &recordingState{}
	a, err := app.New(win, dev, testConfig(), func(ctx *app.InitContext) (app.State, error) {
		tex, err := ctx.Loader.LoadImage("extra", gfxtest.Checkerboard(4, 4))
		if err != nil {
			return nil, err
		}
		state.texture = tex.Index
		return state, nil
	})
	require.NoError(t, err)
	assert.NotZero(t, dev.Live())

	require.NoError(t, a.Run())

	assert.Equal(t, 3, win.polls, "loop must stop after the escape frame")
	assert.Equal(t, uint64(3), a.Frames())
	assert.Equal(t, 3, win.swaps)
	assert.Len(t, dev.Draws, 3)
	assert.Equal(t, 1, win.destroyed)
	assert.Zero(t, dev.Live(), "leaked: %v", dev.Leaks())
}

func TestCloseEventStopsLoop(t *testing.T) {
	dev := gfxtest.NewDevice()
	win := &fakeWindow{width: 640, height: 480, script: [][]app.Event{{app.CloseEvent{}}, {}}}
	a := newApp(t, win, dev, &recordingState{})

	require.NoError(t, a.Run())
	assert.Equal(t, 1, win.polls)
	assert.Zero(t, dev.Live())
}

func TestCtrlSpaceTogglesFullscreen(t *testing.T) {
	win := &fakeWindow{width: 640, height: 480, script: [][]app.Event{
		{app.KeyEvent{Key: app.KeySpace, Action: app.Press, Mods: app.ModControl}},
		{app.KeyEvent{Key: app.KeySpace, Action: app.Press}},
		{app.KeyEvent{Key: app.KeySpace, Action: app.Release, Mods: app.ModControl}},
		{app.KeyEvent{Key: app.KeySpace, Action: app.Press, Mods: app.ModControl | app.ModShift}},
		{app.KeyEvent{Key: app.KeySpace, Action: app.Press, Mods: app.ModControl}},
	}}
	a := newApp(t, win, gfxtest.NewDevice(), &recordingState{})

	require.NoError(t, a.Run())
	assert.Equal(t, 2, win.toggles)
}

func TestStateSeesFullscreenBeforeKey(t *testing.T) {
	win := &fakeWindow{width: 640, height: 480, script: [][]app.Event{
		{app.KeyEvent{Key: app.KeySpace, Action: app.Press, Mods: app.ModControl}},
		{app.KeyEvent{Key: app.KeyEnter, Action: app.Press}},
		{app.KeyEvent{Key: app.KeySpace, Action: app.Press, Mods: app.ModControl}},
	}}
	state := &recordingState{}
	a := newApp(t, win, gfxtest.NewDevice(), state)

	require.NoError(t, a.Run())
	assert.Equal(t, []bool{true, true, false}, state.fullscreen)
}

func TestResizeBeforeFirstFrameAndOnEvent(t *testing.T) {
	dev := gfxtest.NewDevice()
	win := &fakeWindow{width: 800, height: 600, script: [][]app.Event{
		{},
		{app.FramebufferSizeEvent{Width: 1024, Height: 768}},
		{},
	}}
	state := &recordingState{}
	a := newApp(t, win, dev, state)

	require.NoError(t, a.Run())
	assert.Equal(t, [][2]int{{800, 600}, {1024, 768}}, state.resizes)
	assert.Equal(t, [][2]int{{800, 600}, {1024, 768}}, dev.Viewports)
}

func TestZeroSizedFramebufferPausesRendering(t *testing.T) {
	dev := gfxtest.NewDevice()
	win := &fakeWindow{width: 800, height: 600, script: [][]app.Event{
		{},
		{app.FramebufferSizeEvent{Width: 0, Height: 0}},
		{},
		{app.FramebufferSizeEvent{Width: 400, Height: 300}},
	}}
	state := &recordingState{}
	a := newApp(t, win, dev, state)

	require.NoError(t, a.Run())
	assert.Equal(t, 2, state.frames, "no frames while minimized")
	assert.Equal(t, [][2]int{{800, 600}, {400, 300}}, state.resizes)
}

func TestEventsForwardedToState(t *testing.T) {
	win := &fakeWindow{width: 800, height: 600, script: [][]app.Event{
		{app.CursorPosEvent{X: 5, Y: 6}, app.MouseButtonEvent{Button: app.MouseButtonLeft, Action: app.Press}},
	}}
	state := &recordingState{}
	a := newApp(t, win, gfxtest.NewDevice(), state)

	require.NoError(t, a.Run())
	require.Len(t, state.events, 2)
	assert.Equal(t, app.CursorPosEvent{X: 5, Y: 6}, state.events[0])
}

func TestDrawErrorStillTearsDown(t *testing.T) {
	dev := gfxtest.NewDevice()
	win := &fakeWindow{width: 800, height: 600, script: [][]app.Event{{}, {}}}
	boom := errors.New("boom")
	a := newApp(t, win, dev, &recordingState{drawErr: boom})

	err := a.Run()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, win.destroyed)
	assert.Zero(t, dev.Live(), "leaked: %v", dev.Leaks())
}

func TestInitFailureReleasesEverything(t *testing.T) {
	dev := gfxtest.NewDevice()
	win := &fakeWindow{width: 800, height: 600}
	_, err := app.New(win, dev, testConfig(), func(ctx *app.InitContext) (app.State, error) {
		if _, err := ctx.Loader.ReadTexture("assets/does-not-exist.png"); err != nil {
			return nil, err
		}
		return &recordingState{}, nil
	})

	require.ErrorIs(t, err, gfx.ErrIO)
	assert.Equal(t, 1, win.destroyed)
	assert.Zero(t, dev.Live(), "leaked: %v", dev.Leaks())
}

func TestRendererAllocationFailure(t *testing.T) {
	dev := gfxtest.NewDevice()
	dev.FailNext(gfxtest.KindPipeline, gfx.ErrDevice)
	win := &fakeWindow{width: 800, height: 600}
	_, err := app.New(win, dev, testConfig(), func(*app.InitContext) (app.State, error) {
		return &recordingState{}, nil
	})

	require.ErrorIs(t, err, gfx.ErrDevice)
	assert.Zero(t, dev.Live(), "leaked: %v", dev.Leaks())
}
