package survey

import (
	"fmt"
	"strings"
)

const defaultRoomHeight = 3.0

var (
	largeWindow = Opening{Width: 1, Height: 1.2}
	smallWindow = Opening{Width: 0.6, Height: 0.6}
	wideDoor    = Opening{Width: 0.9, Height: 2.1}
	narrowDoor  = Opening{Width: 0.75, Height: 2.1}
)

// Preset holds the typical dimensions of a kind of room.
type Preset struct {
	Name        string
	Perimeter   float64
	Height      float64
	Window      Opening
	WindowCount int
	Door        Opening
	DoorCount   int
}

var defaultPresets = []Preset{
	{Name: "Parlour", Perimeter: 15.3, Height: defaultRoomHeight, Window: largeWindow, WindowCount: 2, Door: wideDoor, DoorCount: 2},
	{Name: "Bedroom", Perimeter: 12.9, Height: defaultRoomHeight, Window: largeWindow, WindowCount: 1, Door: wideDoor, DoorCount: 2},
	{Name: "Toilet", Perimeter: 6, Height: defaultRoomHeight, Window: smallWindow, WindowCount: 1, Door: narrowDoor, DoorCount: 1},
	{Name: "Kitchen", Perimeter: 6.6, Height: defaultRoomHeight, Window: smallWindow, WindowCount: 1, Door: narrowDoor, DoorCount: 1},
}

// DefaultPresets returns a copy of the built-in room presets in survey order.
func DefaultPresets() []Preset {
	out := make([]Preset, len(defaultPresets))
	copy(out, defaultPresets)
	return out
}

// Room expands the preset into a room with its default openings.
func (p Preset) Room(paintType string) Room {
	room := Room{
		Name:      p.Name,
		Perimeter: p.Perimeter,
		Height:    p.Height,
		PaintType: paintType,
		Windows:   make([]Opening, p.WindowCount),
		Doors:     make([]Opening, p.DoorCount),
	}
	for i := range room.Windows {
		room.Windows[i] = p.Window
	}
	for i := range room.Doors {
		room.Doors[i] = p.Door
	}
	return room
}

// PresetByName finds a built-in preset ignoring case.
func PresetByName(name string) (Preset, error) {
	for _, p := range defaultPresets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownRoom, name)
}

// PresetRooms expands the named presets, or all presets when names is empty.
func PresetRooms(names []string, paintType string) ([]Room, error) {
	if len(names) == 0 {
		presets := DefaultPresets()
		rooms := make([]Room, 0, len(presets))
		for _, p := range presets {
			rooms = append(rooms, p.Room(paintType))
		}
		return rooms, nil
	}

	rooms := make([]Room, 0, len(names))
	for _, name := range names {
		p, err := PresetByName(name)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, p.Room(paintType))
	}
	return rooms, nil
}

// SelectRooms keeps the rooms whose names match, in the order names are given.
func SelectRooms(rooms []Room, names []string) ([]Room, error) {
	if len(names) == 0 {
		return rooms, nil
	}

	out := make([]Room, 0, len(names))
	for _, name := range names {
		found := false
		for _, room := range rooms {
			if strings.EqualFold(room.Name, strings.TrimSpace(name)) {
				out = append(out, room)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRoom, name)
		}
	}
	return out, nil
}
