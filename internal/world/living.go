package world

import (
	"fmt"

	"github.com/guicampos/tale/internal/lang"
	"github.com/guicampos/tale/internal/soul"
	"github.com/guicampos/tale/internal/talerrors"
	"github.com/guicampos/tale/internal/verbs"
)

// Living is a creature in the world: a player or an NPC. Every living owns a
// soul, which handles its social actions and pronoun memory.
type Living struct {
	object

	pronouns    PronounSet
	location    *Location
	inventory   []*Item
	soul        *soul.Soul
	defaultVerb string

	// Aggressive marks a living that retaliates when targeted by a hostile
	// verb.
	Aggressive bool

	// TellFunc receives every line of text told to the living. For players
	// this writes to their screen; a nil func discards the text, which is
	// what most NPCs want.
	TellFunc func(message string)

	previousCommandLine string
	previousParse       *soul.ParseResult
}

// NewLiving creates a living with a fresh soul. The title may be empty, in
// which case the name is used for display as well.
func NewLiving(name, title string, pronouns PronounSet, aliases ...string) *Living {
	return &Living{
		object:   object{name: name, title: title, aliases: aliases},
		pronouns: pronouns,
		soul:     soul.NewSoul(),
	}
}

func (l *Living) Subjective() string { return l.pronouns.Subjective }
func (l *Living) Possessive() string { return l.pronouns.Possessive }
func (l *Living) Objective() string  { return l.pronouns.Objective }

// DefaultVerb is the verb applied when a command names this living without
// giving any verb. Empty means the general fallback ("examine").
func (l *Living) DefaultVerb() string {
	return l.defaultVerb
}

func (l *Living) SetDefaultVerb(verb string) {
	l.defaultVerb = verb
}

// Location returns the living's location for the parser. It is nil-unsafe;
// a living must be placed with MoveTo before it parses commands.
func (l *Living) Location() soul.Location {
	return l.location
}

// Here returns the concrete location the living is in, or nil.
func (l *Living) Here() *Location {
	return l.location
}

// MoveTo places the living in a location, removing it from the previous one.
func (l *Living) MoveTo(loc *Location) {
	if l.location != nil {
		l.location.removeLiving(l)
	}
	l.location = loc
	if loc != nil {
		loc.addLiving(l)
	}
}

// Give puts an item into the living's inventory.
func (l *Living) Give(it *Item) {
	l.inventory = append(l.inventory, it)
}

// Drop removes the item from the living's inventory and reports whether it
// was actually carried.
func (l *Living) Drop(it *Item) bool {
	for i, have := range l.inventory {
		if have == it {
			l.inventory = append(l.inventory[:i], l.inventory[i+1:]...)
			return true
		}
	}
	return false
}

// Inventory lists the items the living carries, in acquisition order.
func (l *Living) Inventory() []soul.Entity {
	out := make([]soul.Entity, len(l.inventory))
	for i, it := range l.inventory {
		out[i] = it
	}
	return out
}

// SearchItem finds an item by name or alias, looking in the inventory first
// and then on the floor of the living's location. It returns nil when
// nothing matches.
func (l *Living) SearchItem(name string) soul.Entity {
	for _, it := range l.inventory {
		if it.answersTo(name) {
			return it
		}
	}
	if l.location != nil {
		for _, it := range l.location.items {
			if it.answersTo(name) {
				return it
			}
		}
	}
	return nil
}

// Tell sends a line of text to the living.
func (l *Living) Tell(message string) {
	if l.TellFunc != nil {
		l.TellFunc(message)
	}
}

// TellOthers sends a message to everyone else in the living's location.
func (l *Living) TellOthers(message string) {
	if l.location != nil {
		l.location.Tell(message, l, nil, "")
	}
}

// Soul exposes the living's soul, mainly so callers can render pre-built
// parse results on its behalf.
func (l *Living) Soul() *soul.Soul {
	return l.soul
}

// Parse interprets a command line on behalf of the living.
//
// "again" repeats the previous command line. Commands that parse but are not
// social actions are returned as a NonSoulVerbError: external verbs, exit
// movements, and social verbs aimed at a non-living (unless the verb allows
// that). Social verbs aimed at an exit are refused outright.
func (l *Living) Parse(commandLine string, externalVerbs map[string]bool) (*soul.ParseResult, error) {
	if commandLine == "again" {
		if l.previousCommandLine == "" {
			return nil, talerrors.Parse("Can't repeat your previous action.", "no previous command line")
		}
		commandLine = l.previousCommandLine
		l.Tell(fmt.Sprintf("(repeat: %s)", commandLine))
	}
	l.previousCommandLine = commandLine

	parsed, err := l.soul.Parse(l, commandLine, externalVerbs)
	if err != nil {
		return nil, err
	}
	l.previousParse = parsed
	if len(externalVerbs) > 0 && externalVerbs[parsed.Verb] {
		return nil, &soul.NonSoulVerbError{Parsed: parsed}
	}
	if !verbs.NonlivingOKVerbs[parsed.Verb] {
		// a social verb aimed at a non-living is handed back to the caller
		for _, who := range parsed.WhoOrder {
			if _, ok := who.(*Living); !ok {
				return nil, &soul.NonSoulVerbError{Parsed: parsed}
			}
		}
	}
	if err := l.validateSocializeTargets(parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// validateSocializeTargets refuses social actions aimed at an exit.
func (l *Living) validateSocializeTargets(parsed *soul.ParseResult) error {
	for _, who := range parsed.WhoOrder {
		if _, ok := who.(*Exit); ok {
			return talerrors.Parse("That doesn't make much sense.", "exit as socialize target")
		}
	}
	return nil
}

// RememberParse commits the previously parsed command to the soul's pronoun
// memory. Callers invoke it only after the command actually succeeded.
func (l *Living) RememberParse() {
	l.soul.RememberParse(l.previousParse)
}

// Socialize renders a parsed social action and distributes the resulting
// messages: the actor message to this living, the target message to each
// target, and the room message to everyone else present. An aggressive
// target may retaliate, unless the action was voided by its qualifier.
func (l *Living) Socialize(parsed *soul.ParseResult) error {
	result, err := l.soul.ProcessVerbParsed(l, parsed)
	if err != nil {
		return err
	}
	l.Tell(result.Actor)
	if l.location != nil {
		l.location.Tell(result.Room, l, result.Targets, result.Target)
	}
	if verbs.AggressiveVerbs[parsed.Verb] && !verbs.NegatingQualifiers[parsed.Qualifier] {
		for _, target := range result.Targets {
			if victim, ok := target.(*Living); ok && victim.Aggressive {
				victim.StartAttack(l)
			}
		}
	}
	return nil
}

// DoSocialize parses and performs a social command line in one go.
func (l *Living) DoSocialize(commandLine string, externalVerbs map[string]bool) error {
	parsed, err := l.Parse(commandLine, externalVerbs)
	if err != nil {
		return err
	}
	if err := l.Socialize(parsed); err != nil {
		return err
	}
	l.RememberParse()
	return nil
}

// StartAttack announces that the living turns hostile toward a victim. The
// actual combat resolution lives elsewhere; this only produces the messages.
func (l *Living) StartAttack(victim *Living) {
	name := lang.Capital(l.Title())
	victim.Tell(fmt.Sprintf("%s attacks you.", name))
	if l.location != nil {
		l.location.Tell(fmt.Sprintf("%s attacks %s.", name, victim.Title()), victim, nil, "")
	}
}
