package graphics

import "fmt"

// OpKind identifies a recorded canvas call.
type OpKind uint8

const (
	OpSave OpKind = iota
	OpRestore
	OpTranslate
	OpClipPath
	OpRect
	OpLine
	OpPath
)

var opNames = [...]string{"save", "restore", "translate", "clip_path", "rect", "line", "path"}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", k)
}

// DisplayOp is one recorded call. Only the fields its kind uses are set:
// A holds the translation or line start, B the line end.
type DisplayOp struct {
	Kind  OpKind
	A, B  Offset
	Rect  Rect
	Path  *Path
	Paint Paint
}

func (op DisplayOp) replay(canvas Canvas) {
	switch op.Kind {
	case OpSave:
		canvas.Save()
	case OpRestore:
		canvas.Restore()
	case OpTranslate:
		canvas.Translate(op.A.X, op.A.Y)
	case OpClipPath:
		canvas.ClipPath(op.Path)
	case OpRect:
		canvas.DrawRect(op.Rect, op.Paint)
	case OpLine:
		canvas.DrawLine(op.A, op.B, op.Paint)
	case OpPath:
		canvas.DrawPath(op.Path, op.Paint)
	}
}

// DisplayList is an immutable recording that can be replayed onto any
// Canvas, such as a RasterCanvas.
type DisplayList struct {
	ops  []DisplayOp
	size Size
}

// Paint replays the recording onto canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.replay(canvas)
	}
}

// Size returns the size the recording was started with.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded calls.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Ops returns the recorded calls. The paths are shared with the list and
// must not be modified.
func (d *DisplayList) Ops() []DisplayOp {
	return d.ops
}

// Count returns how many calls of kind were recorded.
func (d *DisplayList) Count(kind OpKind) int {
	n := 0
	for _, op := range d.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Paths returns the DrawPath calls in order, with their paints.
func (d *DisplayList) Paths() ([]*Path, []Paint) {
	var (
		paths  []*Path
		paints []Paint
	)
	for _, op := range d.ops {
		if op.Kind == OpPath {
			paths = append(paths, op.Path)
			paints = append(paints, op.Paint)
		}
	}
	return paths, paints
}

// Lines returns the DrawLine segments in order.
func (d *DisplayList) Lines() [][2]Offset {
	var lines [][2]Offset
	for _, op := range d.ops {
		if op.Kind == OpLine {
			lines = append(lines, [2]Offset{op.A, op.B})
		}
	}
	return lines
}

// PictureRecorder captures canvas calls into a DisplayList. Paths are
// copied when recorded, so callers may reuse them afterwards.
type PictureRecorder struct {
	ops       []DisplayOp
	recording bool
	size      Size
}

// BeginRecording discards any previous recording and returns the canvas to
// draw into.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{r: r}
}

// EndRecording stops recording and returns what was drawn.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	return &DisplayList{ops: append([]DisplayOp(nil), r.ops...), size: r.size}
}

func (r *PictureRecorder) record(op DisplayOp) {
	if r.recording {
		r.ops = append(r.ops, op)
	}
}

type recordingCanvas struct {
	r *PictureRecorder
}

func (c *recordingCanvas) Save()    { c.r.record(DisplayOp{Kind: OpSave}) }
func (c *recordingCanvas) Restore() { c.r.record(DisplayOp{Kind: OpRestore}) }

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.r.record(DisplayOp{Kind: OpTranslate, A: Offset{X: dx, Y: dy}})
}

func (c *recordingCanvas) ClipPath(path *Path) {
	c.r.record(DisplayOp{Kind: OpClipPath, Path: path.Copy()})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.r.record(DisplayOp{Kind: OpRect, Rect: rect, Paint: paint})
}

func (c *recordingCanvas) DrawLine(start, end Offset, paint Paint) {
	c.r.record(DisplayOp{Kind: OpLine, A: start, B: end, Paint: paint})
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	c.r.record(DisplayOp{Kind: OpPath, Path: path.Copy(), Paint: paint})
}

func (c *recordingCanvas) Size() Size { return c.r.size }
