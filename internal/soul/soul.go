// Package soul interprets free-text social commands. It turns a line such as
// "fail greet bob and alice happily" into a structured ParseResult, and can
// render a parsed result into the three messages the action produces: one for
// the actor, one for bystanders in the room, and one for the targets.
//
// The soul only handles the closed social verb vocabulary; anything else is
// reported back to the caller through NonSoulVerbError or UnknownVerbError so
// a different command pipeline can take over.
package soul

import (
	"fmt"
)

// Entity is anything a command can refer to: a living, an item, or an exit.
// Implementations must be pointer types; entities are compared and used as
// map keys by identity.
type Entity interface {
	// Name is the canonical lowercase name the entity is addressed by.
	Name() string

	// Title is the display name used when showing the entity to others.
	Title() string

	// Aliases are alternative names the entity also answers to.
	Aliases() []string

	// Subjective, Possessive and Objective are the entity's pronoun words
	// (he/his/him, she/her/her, it/its/it).
	Subjective() string
	Possessive() string
	Objective() string
}

// DefaultVerber is implemented by entities that want a verb other than
// "examine" applied when a command names them without any verb.
type DefaultVerber interface {
	DefaultVerb() string
}

// Location is the place an actor is in, seen from the parser's side: it
// provides the candidate livings, items and exits that command words can
// resolve against. Slices are in a stable, deliberate order; name resolution
// and suggestions follow that order.
type Location interface {
	Livings() []Entity
	Items() []Entity

	// ExitDirections lists the directions that have exits, in a stable
	// order. Exit resolves one direction to its exit entity.
	ExitDirections() []string
	Exit(direction string) (Entity, bool)
}

// Actor is the entity issuing the command.
type Actor interface {
	Entity

	Location() Location

	// Inventory lists the items the actor carries.
	Inventory() []Entity

	// SearchItem finds an item by name or alias, looking in the actor's
	// inventory first and then in the actor's location. It returns nil when
	// nothing matches.
	SearchItem(name string) Entity

	// Tell sends an informational line of text to the actor. The soul uses
	// it for side remarks such as pronoun clarifications.
	Tell(message string)
}

// Result holds the rendered messages of a social action.
type Result struct {
	// Targets are the action's targets in mention order, excluding the
	// actor and with duplicates removed.
	Targets []Entity

	// Actor is the second-person message shown to the actor ("You grin
	// evilly at bob.").
	Actor string

	// Room is the third-person message shown to bystanders ("Alice grins
	// evilly at bob.").
	Room string

	// Target is the message shown to each target ("Alice grins evilly at
	// you.").
	Target string
}

// NonSoulVerbError reports input that parsed cleanly but is not a social
// action: an external verb registered by the caller, or an exit movement.
// Parsed carries the result so the caller can act on it.
type NonSoulVerbError struct {
	Parsed *ParseResult
}

func (e *NonSoulVerbError) Error() string {
	return fmt.Sprintf("%q is not a soul verb", e.Parsed.Verb)
}

// GameMessage shows the message that should be displayed in-game if this
// error goes unhandled.
func (e *NonSoulVerbError) GameMessage() string {
	return "That is not something you can express; it needs to be acted out."
}

// Soul interprets social commands for one actor. It keeps one slot of parse
// memory so pronouns can refer back to the previous successful command. A
// Soul is not safe for concurrent use.
type Soul struct {
	previouslyParsed *ParseResult
}

// NewSoul returns an empty Soul with no parse memory.
func NewSoul() *Soul {
	return &Soul{}
}

// RememberParse stores the parse result as the referent for later pronouns.
// Callers invoke it only after the parsed command actually succeeded.
func (s *Soul) RememberParse(parsed *ParseResult) {
	s.previouslyParsed = parsed
}

// ProcessVerb parses a command line and renders the resulting action in one
// go. It returns the parsed verb (prefixed with its qualifier, if any) along
// with the rendered messages. A command that resolves to an external verb is
// returned as a NonSoulVerbError so the caller can dispatch it itself.
func (s *Soul) ProcessVerb(actor Actor, commandLine string, externalVerbs map[string]bool) (string, Result, error) {
	parsed, err := s.Parse(actor, commandLine, externalVerbs)
	if err != nil {
		return "", Result{}, err
	}
	if externalVerbs[parsed.Verb] {
		return "", Result{}, &NonSoulVerbError{Parsed: parsed}
	}
	result, err := s.ProcessVerbParsed(actor, parsed)
	if err != nil {
		return "", Result{}, err
	}
	verb := parsed.Verb
	if parsed.Qualifier != "" {
		verb = parsed.Qualifier + " " + parsed.Verb
	}
	return verb, result, nil
}
