// Package widgets provides the widgets for ui.View trees: Label, Button,
// Row, Align, Panel and Padded.
//
// A counter view reads:
//
//	func (c *counter) View() ui.Widget[msg] {
//	    row := widgets.NewRow[msg](
//	        widgets.NewButton[msg](ui.NewID("inc"), widgets.NewLabel[msg]("+1")).OnClick(increment),
//	        widgets.NewLabel[msg](strconv.Itoa(c.count)),
//	    )
//	    return widgets.NewAlign[msg](widgets.NewPanel[msg](row))
//	}
package widgets

import "github.com/go-theft-auto/gfx"

func nonNegative(v gfx.Vec2) gfx.Vec2 {
	return gfx.Vec2{X: max(v.X, 0), Y: max(v.Y, 0)}
}
