package detect

import (
	"fmt"
	"slices"

	"github.com/clambin/go-common/set"
)

// MaxZones caps the number of zones per camera.
const MaxZones = 10

// ZoneSet is the ordered zone collection of one camera. Operations leave
// the receiver untouched and return a fresh set, so a failed edit never
// leaves a camera half modified.
type ZoneSet []Zone

// Add validates z and appends it.
func (zs ZoneSet) Add(z Zone) (ZoneSet, error) {
	if len(zs) >= MaxZones {
		return zs, &CapacityError{Kind: "zones", Limit: MaxZones}
	}
	if err := z.Validate(); err != nil {
		return zs, err
	}
	out := make(ZoneSet, len(zs), len(zs)+1)
	copy(out, zs)
	return append(out, z), nil
}

// ZonePatch carries the changes for Update. Nil fields keep their current
// value.
type ZonePatch struct {
	Name     *string
	Vertices []Vertex
	Enabled  *bool
}

// Update applies a patch to the zone with the given id. The patched zone
// is validated before anything is replaced.
func (zs ZoneSet) Update(id string, patch ZonePatch) (ZoneSet, error) {
	i := zs.index(id)
	if i < 0 {
		return zs, &ValidationError{Field: "id", Reason: fmt.Sprintf("no zone with id %q", id)}
	}
	z := zs[i]
	if patch.Name != nil {
		z.Name = *patch.Name
	}
	if patch.Vertices != nil {
		z.Vertices = slices.Clone(patch.Vertices)
	}
	if patch.Enabled != nil {
		z.Enabled = *patch.Enabled
	}
	if err := z.Validate(); err != nil {
		return zs, err
	}
	out := slices.Clone(zs)
	out[i] = z
	return out, nil
}

// Remove deletes the zone with the given id.
func (zs ZoneSet) Remove(id string) (ZoneSet, error) {
	i := zs.index(id)
	if i < 0 {
		return zs, &ValidationError{Field: "id", Reason: fmt.Sprintf("no zone with id %q", id)}
	}
	out := make(ZoneSet, 0, len(zs)-1)
	out = append(out, zs[:i]...)
	return append(out, zs[i+1:]...), nil
}

// Get returns the zone with the given id.
func (zs ZoneSet) Get(id string) (Zone, bool) {
	if i := zs.index(id); i >= 0 {
		return zs[i], true
	}
	return Zone{}, false
}

// Enabled returns the zones detection currently considers.
func (zs ZoneSet) Enabled() ZoneSet {
	var out ZoneSet
	for _, z := range zs {
		if z.Enabled {
			out = append(out, z)
		}
	}
	return out
}

func (zs ZoneSet) index(id string) int {
	for i := range zs {
		if zs[i].ID == id {
			return i
		}
	}
	return -1
}

// Validate checks every zone, the collection size and id uniqueness.
func (zs ZoneSet) Validate() error {
	if len(zs) > MaxZones {
		return &CapacityError{Kind: "zones", Limit: MaxZones}
	}
	ids := set.New[string]()
	for _, z := range zs {
		if err := z.Validate(); err != nil {
			return fmt.Errorf("zone %q: %w", z.Name, err)
		}
		if ids.Contains(z.ID) {
			return &ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate zone id %q", z.ID)}
		}
		ids.Add(z.ID)
	}
	return nil
}
