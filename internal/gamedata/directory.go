package gamedata

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an area id or name has no record.
var ErrNotFound = errors.New("zone not found")

// ErrInvalidAct is returned for act numbers outside [1, ActCount].
var ErrInvalidAct = errors.New("invalid act number")

// Directory is a read-only lookup service over the area dataset.
// All indices are built eagerly at construction; the underlying data
// is treated as immutable for the life of the process, so a Directory
// is safe for concurrent readers.
type Directory struct {
	acts   [][]ZoneRecord
	byID   map[string]*ZoneRecord
	byName map[string]*ZoneRecord
}

// New builds a Directory from per-act zone lists (acts[0] is act 1).
func New(acts [][]ZoneRecord) *Directory {
	d := &Directory{
		acts:   acts,
		byID:   make(map[string]*ZoneRecord),
		byName: make(map[string]*ZoneRecord),
	}
	for ai := range acts {
		for zi := range acts[ai] {
			z := &acts[ai][zi]
			d.byID[z.ID] = z
			// Duplicate names across acts are expected in the dataset;
			// the last record wins. Callers that need act-aware
			// disambiguation search per act instead of using this map.
			d.byName[z.Name] = z
			if z.MapName != "" {
				d.byName[z.MapName] = z
			}
		}
	}
	return d
}

// Default returns a Directory over the built-in area dataset.
func Default() *Directory {
	return New(seedActs)
}

// ActCount returns the number of acts in the dataset.
func (d *Directory) ActCount() int {
	return len(d.acts)
}

// ZoneByID looks up an area by its unique id.
func (d *Directory) ZoneByID(id string) (ZoneRecord, error) {
	z, ok := d.byID[id]
	if !ok {
		return ZoneRecord{}, fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	return *z, nil
}

// ZoneByName looks up an area by display name or map name across all
// acts. When the same name exists in several acts an arbitrary one of
// them is returned.
func (d *Directory) ZoneByName(name string) (ZoneRecord, error) {
	z, ok := d.byName[name]
	if !ok {
		return ZoneRecord{}, fmt.Errorf("%w: name %q", ErrNotFound, name)
	}
	return *z, nil
}

// ActZones returns the ordered zone list for one act.
func (d *Directory) ActZones(act int) ([]ZoneRecord, error) {
	if act < 1 || act > len(d.acts) {
		return nil, fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidAct, act, len(d.acts))
	}
	return d.acts[act-1], nil
}

// FindInAct returns the zone in the given act whose Name or MapName
// equals name, or false when the act holds no such zone. Out-of-range
// acts simply report no match; proximity search probes past both ends.
func (d *Directory) FindInAct(name string, act int) (ZoneRecord, bool) {
	if act < 1 || act > len(d.acts) {
		return ZoneRecord{}, false
	}
	for _, z := range d.acts[act-1] {
		if z.Name == name || (z.MapName != "" && z.MapName == name) {
			return z, true
		}
	}
	return ZoneRecord{}, false
}
