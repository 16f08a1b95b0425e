// Package verbs holds the closed vocabulary tables that drive the soul:
// the verb table with its template variants, the action qualifiers, the body
// parts, and the movement filler words.
//
// Templates contain marker tokens that the rendering engine substitutes. A
// marker is a literal newline followed by an upper-case tag and is always
// preceded by a single space, e.g. " \nWHO". The known markers are:
//
//	\nWHO    the joined list of target names, per viewer
//	\nYOUR   "your" for the actor, the actor's possessive for others
//	\nMY     "your" for the actor, the actor's objective for others
//	\nWHAT   the free-text message, unquoted
//	\nMSG    the free-text message, quoted
//	\nHOW    the adverb
//	\nWHERE  the body-part phrase
//	\nAT     the verb's at-clause followed by \nWHO, when targets exist
//	\nPOSS   possessive agreement with the target(s)
//	\nIS     is/are agreement with the target(s)
//	\nSUBJ   subjective pronoun agreement with the target(s)
//
// A bare "$" in a template is the verb-stem conjugation point: it is removed
// for the actor's first-person text and replaced with "s" for the room's
// third-person text.
package verbs

import "strings"

// Definition is one of the closed set of verb template variants. Each variant
// carries exactly the template fields its rendering requires, so an entry can
// never pair a kind with templates that do not belong to it.
type Definition interface {
	// templates returns every template string of the variant, for message
	// marker detection and table validation.
	templates() []string
}

// Paired is a verb with one full template per perspective. The templates
// refer to a target, so a person is required: "ask bob something".
type Paired struct {
	// Actor is the first-person template.
	Actor string

	// Room is the third-person template.
	Room string
}

func (d Paired) templates() []string { return []string{d.Actor, d.Room} }

// Conditional is a verb with two alternate template pairs; which pair renders
// depends on whether the command resolved any target.
type Conditional struct {
	// Actor and Room render when the command has no targets.
	Actor string
	Room  string

	// ActorWho and RoomWho render when at least one target was given.
	ActorWho string
	RoomWho  string
}

func (d Conditional) templates() []string {
	return []string{d.Actor, d.Room, d.ActorWho, d.RoomWho}
}

// Custom is the fully-custom variant. No verb uses it yet; the renderer
// treats encountering it as a programming error.
type Custom struct{}

func (d Custom) templates() []string { return nil }

// Default is a verb rendered from the standard "verb$ \nHOW \nAT" shape with
// the verb's own at-clause.
type Default struct {
	// At is the preposition clause inserted before the target list, such as
	// " at" in "smiles happily at bob".
	At string
}

func (d Default) templates() []string { return nil }

// Targeted is a "$"-stem verb directed at someone: "verb$<ext> \nWHO \nHOW".
type Targeted struct {
	// Ext is an optional extension glued to the verb stem.
	Ext string

	// At is an optional at-clause, used when the template contains \nAT.
	At string
}

func (d Targeted) templates() []string { return []string{d.Ext} }

// Physical is like Targeted but with a body-part slot:
// "verb$<ext> \nWHO \nHOW \nWHERE".
type Physical struct {
	Ext string
	At  string
}

func (d Physical) templates() []string { return []string{d.Ext} }

// Short is a "$"-stem verb with no target slot: "verb$<ext> \nHOW".
type Short struct {
	Ext string
	At  string
}

func (d Short) templates() []string { return []string{d.Ext} }

// Personal is a verb with a who-clause template and a without-who template,
// both rendered from the first person with "$" conjugation.
type Personal struct {
	// Alone renders when the command has no targets.
	Alone string

	// WithWho renders when at least one target was given.
	WithWho string
}

func (d Personal) templates() []string { return []string{d.Alone, d.WithWho} }

// Simple is a verb with a single fixed template (possibly containing "$" and
// \nAT) and no alternate forms.
type Simple struct {
	Action string
	At     string
}

func (d Simple) templates() []string { return []string{d.Action} }

// Entry is one verb of the soul verb table.
type Entry struct {
	// Def is the template variant for the verb.
	Def Definition

	// DefaultAdverb fills the \nHOW slot when the command gave no adverb.
	DefaultAdverb string

	// DefaultMessage fills the message slots when the command gave no
	// message. A message starting with a single quote is inserted bare, in
	// both the \nWHAT and the \nMSG slot.
	DefaultMessage string

	// DefaultWhere fills the \nWHERE slot when the command gave no body
	// part.
	DefaultWhere string
}

// AtClause returns the at-clause of the entry's variant, or the empty string
// for variants that have none.
func (e Entry) AtClause() (string, bool) {
	switch d := e.Def.(type) {
	case Default:
		return d.At, true
	case Targeted:
		return d.At, true
	case Physical:
		return d.At, true
	case Short:
		return d.At, true
	case Simple:
		return d.At, true
	}
	return "", false
}

// ExpectsMessage returns whether any template of the verb contains a message
// slot, which makes trailing unmatched words collect into the message.
func (e Entry) ExpectsMessage() bool {
	for _, t := range e.Def.templates() {
		if strings.Contains(t, "\nMSG") || strings.Contains(t, "\nWHAT") {
			return true
		}
	}
	return false
}

// Lookup returns the table entry for a verb.
func Lookup(verb string) (Entry, bool) {
	e, ok := Verbs[verb]
	return e, ok
}

// IsVerb returns whether the word is a known soul verb.
func IsVerb(word string) bool {
	_, ok := Verbs[word]
	return ok
}

// Qualifier is one action qualifier: a leading word such as "fail" that
// rewrites the rendered action through its own wrapper templates.
type Qualifier struct {
	// Actor is the wrapper for the actor's first-person action text. It
	// contains one %s slot for the unwrapped action.
	Actor string

	// Room is the wrapper for the bystander text, with one %s slot.
	Room string

	// RoomUsesRoomAction selects what fills the Room wrapper's slot: the
	// third-person action text when true, or the actor's first-person action
	// text when false. Qualifiers that negate the action ("fail", "don't")
	// keep the first-person form because the bystander sees an attempt, not
	// the conjugated deed.
	RoomUsesRoomAction bool
}

// Qualifiers is the closed action qualifier table. Both the "dont" and the
// "don't" spelling are present; the parser normalizes the former to the
// latter.
var Qualifiers = map[string]Qualifier{
	"suddenly": {"suddenly %s", "suddenly %s", true},
	"again":    {"%s again", "%s again", true},
	"fail":     {"try to %s, but fail miserably", "tries to %s, but fails miserably", false},
	"pretend":  {"pretend to %s", "pretends to %s", false},
	"attempt":  {"attempt to %s, without much success", "attempts to %s, without much success", false},
	"don't":    {"don't %s", "doesn't %s", false},
	"dont":     {"don't %s", "doesn't %s", false},
}

// NegatingQualifiers are the qualifiers that void the action they wrap;
// an aggressive verb under one of these provokes nobody.
var NegatingQualifiers = map[string]bool{
	"fail":    true,
	"pretend": true,
	"attempt": true,
	"don't":   true,
	"dont":    true,
}

// IsQualifier returns whether the word is a known action qualifier.
func IsQualifier(word string) bool {
	_, ok := Qualifiers[word]
	return ok
}

// BodyParts maps a body-part word to the display phrase inserted in the
// \nWHERE slot.
var BodyParts = map[string]string{
	"hand":       "on the hand",
	"forehead":   "on the forehead",
	"head":       "on the head",
	"kneecap":    "on the kneecap",
	"ankle":      "in the ankle",
	"knee":       "on the knee",
	"face":       "in the face",
	"eye":        "in the eye",
	"ear":        "in the ear",
	"stomach":    "in the stomach",
	"butt":       "in the butt",
	"behind":     "in the behind",
	"leg":        "on the leg",
	"foot":       "on the foot",
	"toe":        "on the right toe",
	"nose":       "on the nose",
	"neck":       "in the neck",
	"back":       "on the back",
	"arm":        "on the arm",
	"chest":      "on the chest",
	"cheek":      "on the cheek",
	"side":       "in the side",
	"shoulder":   "on the shoulder",
	"everywhere": "everywhere",
}

// IsBodyPart returns whether the word is a known body part.
func IsBodyPart(word string) bool {
	_, ok := BodyParts[word]
	return ok
}

// MovementVerbs are the filler words that signal movement toward a named
// exit: "go north", "walk to the gate". The word itself never becomes the
// parsed verb; the matched exit direction does.
var MovementVerbs = map[string]bool{
	"go":    true,
	"move":  true,
	"run":   true,
	"walk":  true,
	"enter": true,
	"climb": true,
	"crawl": true,
}

// AggressiveVerbs are soul verbs that count as hostile; livings so inclined
// may retaliate when targeted by one.
var AggressiveVerbs = map[string]bool{
	"bite":   true,
	"bonk":   true,
	"kick":   true,
	"pinch":  true,
	"punch":  true,
	"shove":  true,
	"slap":   true,
	"tackle": true,
}

// NonlivingOKVerbs are soul verbs allowed to target items and other
// non-living things without being redirected to the caller.
var NonlivingOKVerbs = map[string]bool{
	"admire": true,
	"kick":   true,
	"point":  true,
	"ponder": true,
	"stare":  true,
	"watch":  true,
}
