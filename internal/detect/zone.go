package detect

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Vertex is a polygon corner in the normalized frame: both coordinates in
// [0,1], with (0,0) the top left of the frame and (1,1) the bottom right,
// independent of camera resolution.
type Vertex struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (v Vertex) Validate() error {
	if v.X < 0 || v.X > 1 || v.Y < 0 || v.Y > 1 {
		return &ValidationError{Field: "vertices", Reason: fmt.Sprintf("vertex (%v,%v) lies outside the frame", v.X, v.Y)}
	}
	return nil
}

// MinVertices is the smallest polygon a zone accepts.
const MinVertices = 3

// Zone is a polygonal region of the frame where motion counts. The ID is
// assigned on creation and stays fixed across renames, vertex edits and
// enable toggles.
type Zone struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Vertices []Vertex `json:"vertices" yaml:"vertices"`
	Enabled  bool     `json:"enabled" yaml:"enabled"`
}

// NewZone creates an enabled zone with a fresh ID.
func NewZone(name string, vertices []Vertex) (Zone, error) {
	z := Zone{
		ID:       uuid.NewString(),
		Name:     name,
		Vertices: slices.Clone(vertices),
		Enabled:  true,
	}
	if err := z.Validate(); err != nil {
		return Zone{}, err
	}
	return z, nil
}

func (z Zone) Validate() error {
	if z.ID == "" {
		return &ValidationError{Field: "id", Reason: "zone has no id"}
	}
	if len(z.Vertices) < MinVertices {
		return &ValidationError{Field: "vertices", Reason: fmt.Sprintf("a zone needs at least %d vertices, got %d", MinVertices, len(z.Vertices))}
	}
	for _, v := range z.Vertices {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
