package layout

import (
	"testing"

	"github.com/go-drift/ember/pkg/graphics"
)

// TestVBox_PrefixSumPositions verifies that for N children with gap g the
// total height is sum(heights) + (N-1)*g and each child's y is the running
// prefix sum.
func TestVBox_PrefixSumPositions(t *testing.T) {
	const gap = 4.0
	heights := []float64{10, 25, 5, 40}

	b := NewVBox(graphics.Offset{X: 3, Y: 7}, gap)
	wantY := 7.0
	for i, h := range heights {
		pos := b.CurrentPosition()
		if pos.Y != wantY {
			t.Errorf("child %d: y = %v, want %v", i, pos.Y, wantY)
		}
		if pos.X != 3 {
			t.Errorf("child %d: x = %v, want 3", i, pos.X)
		}
		b.Advance(graphics.Size{Width: 20, Height: h})
		wantY += h + gap
	}

	size := b.Close()
	wantHeight := 10 + 25 + 5 + 40 + 3*gap
	if size.Height != wantHeight {
		t.Errorf("total height = %v, want %v", size.Height, wantHeight)
	}
	if size.Width != 20 {
		t.Errorf("cross extent = %v, want 20", size.Width)
	}
}

// TestHBox_CursorAndCrossExtent verifies horizontal advancement and the
// max-height cross extent.
func TestHBox_CursorAndCrossExtent(t *testing.T) {
	b := NewHBox(graphics.Offset{}, 2)
	b.Advance(graphics.Size{Width: 10, Height: 8})
	if pos := b.CurrentPosition(); pos.X != 12 {
		t.Errorf("second child x = %v, want 12", pos.X)
	}
	b.Advance(graphics.Size{Width: 5, Height: 20})
	size := b.Close()
	if size.Width != 17 {
		t.Errorf("width = %v, want 17", size.Width)
	}
	if size.Height != 20 {
		t.Errorf("height = %v, want 20", size.Height)
	}
}

// TestBox_EmptyClose verifies an empty box reports zero size.
func TestBox_EmptyClose(t *testing.T) {
	if size := NewVBox(graphics.Offset{}, 10).Close(); size != (graphics.Size{}) {
		t.Errorf("empty box size = %+v", size)
	}
}

// TestGrid_CellWidth verifies the cell width formula, including the
// clamped-to-zero case.
func TestGrid_CellWidth(t *testing.T) {
	g := NewGrid(graphics.Offset{}, 100, 3, 5, 0)
	want := (100.0 - 2*5) / 3
	if g.CellWidth() != want {
		t.Errorf("cell width = %v, want %v", g.CellWidth(), want)
	}

	tight := NewGrid(graphics.Offset{}, 4, 3, 5, 0)
	if tight.CellWidth() != 0 {
		t.Errorf("overconstrained cell width = %v, want 0", tight.CellWidth())
	}
}

// TestGrid_RowWrap verifies that C+1 items in C columns produce exactly two
// rows and that row 2's y offset equals row 1's height plus the row gap.
func TestGrid_RowWrap(t *testing.T) {
	const (
		cols = 3
		gapY = 6.0
	)
	g := NewGrid(graphics.Offset{}, 90, cols, 0, gapY)

	rowHeights := []float64{12, 30, 18} // row 1 max is 30
	for _, h := range rowHeights {
		g.Advance(graphics.Size{Width: g.CellWidth(), Height: h})
	}

	pos := g.CurrentPosition()
	if pos.X != 0 {
		t.Errorf("row 2 should start at column 0, x = %v", pos.X)
	}
	if pos.Y != 30+gapY {
		t.Errorf("row 2 y = %v, want %v", pos.Y, 30+gapY)
	}

	g.Advance(graphics.Size{Width: g.CellWidth(), Height: 10})
	size := g.Close()
	if size.Height != 30+gapY+10 {
		t.Errorf("grid height = %v, want %v", size.Height, 30+gapY+10)
	}
}

// TestGrid_CloseAfterExactWrap verifies Close excludes the trailing row gap
// when the last Advance wrapped the row.
func TestGrid_CloseAfterExactWrap(t *testing.T) {
	g := NewGrid(graphics.Offset{}, 60, 2, 0, 8)
	for i := 0; i < 4; i++ {
		g.Advance(graphics.Size{Width: 30, Height: 10})
	}
	size := g.Close()
	if size.Height != 10+8+10 {
		t.Errorf("height = %v, want %v", size.Height, 10+8+10)
	}
}

// TestGrid_ColumnPositions verifies cursor x advances by cell width + gap.
func TestGrid_ColumnPositions(t *testing.T) {
	g := NewGrid(graphics.Offset{X: 10}, 94, 3, 2, 0)
	cell := g.CellWidth() // (94 - 4) / 3 = 30
	wantX := []float64{10, 10 + cell + 2, 10 + 2*(cell+2)}
	for i, want := range wantX {
		if x := g.CurrentPosition().X; x != want {
			t.Errorf("col %d: x = %v, want %v", i, x, want)
		}
		g.Advance(graphics.Size{Width: cell, Height: 10})
	}
}

// TestScrollRegion_OffsetsChildren verifies child positions shift by the
// scroll offset while the viewport stays fixed.
func TestScrollRegion_OffsetsChildren(t *testing.T) {
	viewport := graphics.RectFromLTWH(0, 50, 100, 100)
	sr := NewScrollRegion(viewport, graphics.Offset{Y: 30}, 0)

	if pos := sr.CurrentPosition(); pos.Y != 20 {
		t.Errorf("first child y = %v, want 20 (50 - 30)", pos.Y)
	}
	sr.Advance(graphics.Size{Width: 100, Height: 60})
	if pos := sr.CurrentPosition(); pos.Y != 80 {
		t.Errorf("second child y = %v, want 80", pos.Y)
	}
	sr.Advance(graphics.Size{Width: 100, Height: 60})
	if content := sr.Close(); content.Height != 120 {
		t.Errorf("content height = %v, want 120", content.Height)
	}
}

// TestClampScroll verifies the [0, content-viewport] clamp on both axes.
func TestClampScroll(t *testing.T) {
	content := graphics.Size{Width: 100, Height: 300}
	viewport := graphics.Size{Width: 100, Height: 100}

	cases := []struct {
		name string
		in   graphics.Offset
		want graphics.Offset
	}{
		{"in range", graphics.Offset{Y: 50}, graphics.Offset{Y: 50}},
		{"below zero", graphics.Offset{Y: -10}, graphics.Offset{}},
		{"past end", graphics.Offset{Y: 500}, graphics.Offset{Y: 200}},
		{"no x slack", graphics.Offset{X: 40, Y: 0}, graphics.Offset{}},
	}
	for _, tc := range cases {
		if got := ClampScroll(tc.in, content, viewport); got != tc.want {
			t.Errorf("%s: ClampScroll(%+v) = %+v, want %+v", tc.name, tc.in, got, tc.want)
		}
	}

	// Content smaller than viewport clamps to zero.
	small := ClampScroll(graphics.Offset{Y: 10}, graphics.Size{Height: 50}, viewport)
	if small.Y != 0 {
		t.Errorf("small content scroll = %v, want 0", small.Y)
	}
}

// TestResizablePanel_Bounds verifies bounds for each anchor edge.
func TestResizablePanel_Bounds(t *testing.T) {
	screen := graphics.RectFromLTWH(0, 0, 800, 600)
	cases := []struct {
		edge Edge
		want graphics.Rect
	}{
		{EdgeLeft, graphics.Rect{Left: 0, Top: 0, Right: 200, Bottom: 600}},
		{EdgeRight, graphics.Rect{Left: 600, Top: 0, Right: 800, Bottom: 600}},
		{EdgeTop, graphics.Rect{Left: 0, Top: 0, Right: 800, Bottom: 200}},
		{EdgeBottom, graphics.Rect{Left: 0, Top: 400, Right: 800, Bottom: 600}},
	}
	for _, tc := range cases {
		p := NewResizablePanel(screen, tc.edge, 200, 0)
		if got := p.Bounds(); got != tc.want {
			t.Errorf("edge %v: bounds = %+v, want %+v", tc.edge, got, tc.want)
		}
	}
}

// TestResizablePanel_AdjustExtent verifies drag direction and clamping.
func TestResizablePanel_AdjustExtent(t *testing.T) {
	screen := graphics.RectFromLTWH(0, 0, 800, 600)

	left := NewResizablePanel(screen, EdgeLeft, 200, 0)
	if got := left.AdjustExtent(graphics.Offset{X: 30}, 100, 400); got != 230 {
		t.Errorf("left drag right = %v, want 230", got)
	}

	right := NewResizablePanel(screen, EdgeRight, 200, 0)
	if got := right.AdjustExtent(graphics.Offset{X: 30}, 100, 400); got != 170 {
		t.Errorf("right panel drag right shrinks: %v, want 170", got)
	}

	if got := left.AdjustExtent(graphics.Offset{X: 500}, 100, 400); got != 400 {
		t.Errorf("clamp max = %v, want 400", got)
	}
	if got := left.AdjustExtent(graphics.Offset{X: -500}, 100, 400); got != 100 {
		t.Errorf("clamp min = %v, want 100", got)
	}
}

// TestStack_ClipIntersection verifies nested clips intersect and pop
// restores the previous clip.
func TestStack_ClipIntersection(t *testing.T) {
	s := NewStack(graphics.RectFromLTWH(0, 0, 200, 200))

	s.PushClip(graphics.RectFromLTWH(0, 0, 100, 100))
	s.PushClip(graphics.RectFromLTWH(50, 50, 100, 100))
	want := graphics.Rect{Left: 50, Top: 50, Right: 100, Bottom: 100}
	if got := s.ActiveClip(); got != want {
		t.Errorf("nested clip = %+v, want %+v", got, want)
	}

	s.PopClip()
	if got := s.ActiveClip(); got != (graphics.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}) {
		t.Errorf("clip after pop = %+v", got)
	}
	s.PopClip()
	if got := s.ActiveClip(); got != s.Viewport() {
		t.Errorf("base clip = %+v, want viewport", got)
	}
}

// TestStack_IsRectVisible verifies culling against the active clip.
func TestStack_IsRectVisible(t *testing.T) {
	s := NewStack(graphics.RectFromLTWH(0, 0, 200, 200))
	s.PushClip(graphics.RectFromLTWH(0, 0, 100, 100))

	if !s.IsRectVisible(graphics.RectFromLTWH(90, 90, 50, 50)) {
		t.Error("partially visible rect should not be culled")
	}
	if s.IsRectVisible(graphics.RectFromLTWH(150, 150, 20, 20)) {
		t.Error("rect outside the clip should be culled")
	}
}

// TestStack_RootBoxAndForceClear verifies the implicit root container and
// unbalanced-frame repair.
func TestStack_RootBoxAndForceClear(t *testing.T) {
	s := NewStack(graphics.RectFromLTWH(0, 0, 200, 200))

	// No explicit container: the root box advances vertically.
	s.Advance(graphics.Size{Width: 10, Height: 30})
	if pos := s.CurrentPosition(); pos.Y != 30 {
		t.Errorf("root cursor y = %v, want 30", pos.Y)
	}

	s.Push(NewHBox(s.CurrentPosition(), 0))
	s.PushClip(graphics.RectFromLTWH(0, 0, 10, 10))
	containers, clips := s.ForceClear()
	if containers != 1 || clips != 1 {
		t.Errorf("ForceClear = (%d, %d), want (1, 1)", containers, clips)
	}
	if s.Depth() != 0 || s.ClipDepth() != 0 {
		t.Error("stacks should be empty after ForceClear")
	}

	// Pop with nothing open reports failure instead of panicking.
	if _, _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack should report false")
	}
}

// TestStack_MeasurementEquivalence verifies that an isolated stack driven
// by the same call sequence produces identical geometry, the property the
// dry-run measurement mode relies on.
func TestStack_MeasurementEquivalence(t *testing.T) {
	run := func(s *Stack) graphics.Size {
		s.Push(NewVBox(s.CurrentPosition(), 3))
		s.Advance(graphics.Size{Width: 40, Height: 12})
		s.Advance(graphics.Size{Width: 25, Height: 18})
		_, size, _ := s.Pop()
		return size
	}

	real := NewStack(graphics.RectFromLTWH(0, 0, 800, 600))
	measure := NewStack(graphics.RectFromLTWH(0, 0, 800, 600))
	if a, b := run(real), run(measure); a != b {
		t.Errorf("measurement size %+v differs from real size %+v", b, a)
	}
}
