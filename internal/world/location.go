package world

import "github.com/guicampos/tale/internal/soul"

// Location is a place in the world holding livings, items and exits. The
// slices keep insertion order; the parser's name resolution and suggestion
// order follow it.
type Location struct {
	name        string
	description string
	livings     []*Living
	items       []*Item
	exits       map[string]*Exit
	exitOrder   []string
}

func NewLocation(name, description string) *Location {
	return &Location{
		name:        name,
		description: description,
		exits:       make(map[string]*Exit),
	}
}

func (loc *Location) Name() string {
	return loc.name
}

func (loc *Location) Description() string {
	return loc.description
}

// AddExit registers the exit under its direction and all of its aliases.
func (loc *Location) AddExit(e *Exit) {
	directions := append([]string{e.Name()}, e.Aliases()...)
	for _, direction := range directions {
		if _, ok := loc.exits[direction]; !ok {
			loc.exitOrder = append(loc.exitOrder, direction)
		}
		loc.exits[direction] = e
	}
}

// AddItem puts an item on the floor of the location.
func (loc *Location) AddItem(it *Item) {
	loc.items = append(loc.items, it)
}

// RemoveItem takes an item out of the location. Unknown items are ignored.
func (loc *Location) RemoveItem(it *Item) {
	for i, have := range loc.items {
		if have == it {
			loc.items = append(loc.items[:i], loc.items[i+1:]...)
			return
		}
	}
}

func (loc *Location) addLiving(l *Living) {
	loc.livings = append(loc.livings, l)
}

func (loc *Location) removeLiving(l *Living) {
	for i, have := range loc.livings {
		if have == l {
			loc.livings = append(loc.livings[:i], loc.livings[i+1:]...)
			return
		}
	}
}

// Livings lists the livings present, in arrival order.
func (loc *Location) Livings() []soul.Entity {
	out := make([]soul.Entity, len(loc.livings))
	for i, l := range loc.livings {
		out[i] = l
	}
	return out
}

// Items lists the items lying around, in placement order.
func (loc *Location) Items() []soul.Entity {
	out := make([]soul.Entity, len(loc.items))
	for i, it := range loc.items {
		out[i] = it
	}
	return out
}

// ExitDirections lists every direction (including aliases) that resolves to
// an exit, in registration order.
func (loc *Location) ExitDirections() []string {
	return loc.exitOrder
}

// Exit resolves a direction to its exit.
func (loc *Location) Exit(direction string) (soul.Entity, bool) {
	e, ok := loc.exits[direction]
	if !ok {
		return nil, false
	}
	return e, true
}

// ExitTo resolves a direction to the concrete exit, for movement handling.
func (loc *Location) ExitTo(direction string) (*Exit, bool) {
	e, ok := loc.exits[direction]
	return e, ok
}

// Tell sends the room message to everyone present except the excluded living
// and the specific targets; the targets get their own message instead.
func (loc *Location) Tell(roomMsg string, exclude *Living, targets []soul.Entity, targetMsg string) {
	for _, l := range loc.livings {
		if l == exclude {
			continue
		}
		if containsEntity(targets, l) {
			l.Tell(targetMsg)
		} else {
			l.Tell(roomMsg)
		}
	}
}

func containsEntity(targets []soul.Entity, e soul.Entity) bool {
	for _, t := range targets {
		if t == e {
			return true
		}
	}
	return false
}
