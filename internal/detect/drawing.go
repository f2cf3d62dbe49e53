package detect

import (
	"slices"
)

// DrawingState is the state of a zone drawing session.
type DrawingState int

const (
	DrawingIdle DrawingState = iota
	DrawingActive
)

func (s DrawingState) String() string {
	if s == DrawingActive {
		return "drawing"
	}
	return "idle"
}

// Drawer collects the outline of a new zone one vertex at a time. It backs
// a single editor view and is not safe for concurrent use.
type Drawer struct {
	state  DrawingState
	points []Vertex
}

// Begin starts a drawing session, discarding any leftover points.
func (d *Drawer) Begin() {
	d.state = DrawingActive
	d.points = nil
}

// AddVertex appends a vertex to the outline being drawn.
func (d *Drawer) AddVertex(v Vertex) error {
	if d.state != DrawingActive {
		return &ValidationError{Field: "state", Reason: "no drawing in progress"}
	}
	if err := v.Validate(); err != nil {
		return err
	}
	d.points = append(d.points, v)
	return nil
}

// Complete closes the outline into a zone and ends the session. With
// fewer than MinVertices points the session stays open, so the caller can
// keep adding vertices or cancel.
func (d *Drawer) Complete(name string) (Zone, error) {
	if d.state != DrawingActive {
		return Zone{}, &ValidationError{Field: "state", Reason: "no drawing in progress"}
	}
	z, err := NewZone(name, d.points)
	if err != nil {
		return Zone{}, err
	}
	d.state = DrawingIdle
	d.points = nil
	return z, nil
}

// Cancel discards the outline and ends the session.
func (d *Drawer) Cancel() {
	d.state = DrawingIdle
	d.points = nil
}

// State returns the session state.
func (d *Drawer) State() DrawingState {
	return d.state
}

// Points returns a copy of the outline drawn so far.
func (d *Drawer) Points() []Vertex {
	return slices.Clone(d.points)
}
