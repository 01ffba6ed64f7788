// Package ui is a small pseudo-retained-mode UI harness.
//
// Widget state such as the hot (hovered) and active (pressed) item lives in a
// State that persists across frames, while every visual is rebuilt from that
// state each frame:
//
//	state := ui.NewState(width, height)
//	...
//	f.SetViewProjection(state.Projection())
//	err := state.Render(func(s *ui.State) error {
//	    clicked, err := s.Button(f, ui.NewID("inc"), ui.NewButton(bounds))
//	    if clicked {
//	        count++
//	    }
//	    return err
//	})
//
// There is no diffing or invalidation; a widget that is not drawn in a frame
// does not exist in that frame.
//
// On top of that, a View describes the screen as a tree of Widgets that emit
// messages. UI feeds window events to the tree, hands emitted messages to
// View.Update and rebuilds the tree from the updated View. The widgets live
// in the widgets subpackage.
package ui
