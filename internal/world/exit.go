package world

// Exit connects a location to another one, addressed by a direction word.
// Exits can be the object of a movement command and can be referred back to
// with "it", but social verbs refuse them as targets.
type Exit struct {
	object

	destination *Location
	description string
}

// NewExit creates an exit addressed by the given direction. Extra directions
// ("gate", "south") become aliases.
func NewExit(direction string, destination *Location, description string, aliases ...string) *Exit {
	return &Exit{
		object:      object{name: direction, aliases: aliases},
		destination: destination,
		description: description,
	}
}

// Destination is the location the exit leads to.
func (e *Exit) Destination() *Location {
	return e.destination
}

func (e *Exit) Description() string {
	return e.description
}

func (e *Exit) Subjective() string { return "it" }
func (e *Exit) Possessive() string { return "its" }
func (e *Exit) Objective() string  { return "it" }
