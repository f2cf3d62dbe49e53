package detect

// Preset names, as shown in the zone picker.
const (
	PresetFullFrame  = "Full Frame"
	PresetTopHalf    = "Top Half"
	PresetBottomHalf = "Bottom Half"
	PresetCenter     = "Center"
	PresetLShape     = "L-Shape"
)

// Preset is a ready-made zone shape. Vertices returns a fresh copy on
// every call.
type Preset struct {
	Name     string
	Vertices func() []Vertex
}

// Presets returns the built-in shapes, in the order the picker lists them.
func Presets() []Preset {
	return []Preset{
		{Name: PresetFullFrame, Vertices: fullFrame},
		{Name: PresetTopHalf, Vertices: topHalf},
		{Name: PresetBottomHalf, Vertices: bottomHalf},
		{Name: PresetCenter, Vertices: center},
		{Name: PresetLShape, Vertices: lShape},
	}
}

// GetPreset looks up a preset by name.
func GetPreset(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// NewZone builds a zone from the preset, named after it ("Full Frame"
// becomes "Full Frame Zone"). It uses the same creation path as a hand
// drawn zone: fresh ID, enabled, validated.
func (p Preset) NewZone() (Zone, error) {
	return NewZone(p.Name+" Zone", p.Vertices())
}

func fullFrame() []Vertex {
	return []Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func topHalf() []Vertex {
	return []Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0.5}, {X: 0, Y: 0.5}}
}

func bottomHalf() []Vertex {
	return []Vertex{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func center() []Vertex {
	return []Vertex{{X: 0.2, Y: 0.2}, {X: 0.8, Y: 0.2}, {X: 0.8, Y: 0.8}, {X: 0.2, Y: 0.8}}
}

// lShape covers the left edge and the bottom of the frame, with the inner
// elbow at (0.4, 0.6).
func lShape() []Vertex {
	return []Vertex{{X: 0, Y: 0}, {X: 0.4, Y: 0}, {X: 0.4, Y: 0.6}, {X: 1, Y: 0.6}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}
