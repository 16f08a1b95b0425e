// Package world holds the concrete game objects that soul commands operate
// on: livings, items, exits and locations. Livings own a soul and expose the
// high-level command facade that decides whether input is a social action,
// a movement, or something for another command pipeline.
package world

import "github.com/guicampos/tale/internal/lang"

// PronounSet is a set of pronoun words for a living. You can create your own
// set, or just stick to one of the predefined ones. These are all lower-case;
// the soul capitalizes them as needed when they open a sentence.
type PronounSet struct {
	// Subjective is the pronoun that would replace 'NPC' in the sentence
	// "NPC went to the store."
	Subjective string

	// Objective is the pronoun that would replace 'NPC' in the sentence
	// "You talk to NPC."
	Objective string

	// Possessive is the determiner that would replace "NPC's" in the
	// sentence "That is NPC's item."
	Possessive string
}

// The predefined sets take their words from the gender tables in lang, so
// the world and the message renderer always agree on them.
var (
	// PronounsFeminine is the predefined set of feminine pronouns, commonly
	// referred to as "she/her" pronouns.
	PronounsFeminine = pronounsForCode("f")

	// PronounsMasculine is the predefined set of masculine pronouns,
	// commonly referred to as "he/him" pronouns.
	PronounsMasculine = pronounsForCode("m")

	// PronounsNeuter is the predefined set of pronouns commonly referred to
	// as "it/its".
	PronounsNeuter = pronounsForCode("n")
)

func pronounsForCode(code string) PronounSet {
	return PronounSet{
		Subjective: lang.Subjective[code],
		Objective:  lang.Objective[code],
		Possessive: lang.Possessives[code],
	}
}

// PronounsForGender maps a one-letter gender code (m, f, n) to its predefined
// pronoun set. Unknown codes get the neuter set.
func PronounsForGender(gender string) PronounSet {
	switch gender {
	case "m":
		return PronounsMasculine
	case "f":
		return PronounsFeminine
	}
	return PronounsNeuter
}

// object is the embeddable base of every world thing: a canonical lowercase
// name, an optional display title, and alternative names.
type object struct {
	name    string
	title   string
	aliases []string
}

func (o *object) Name() string {
	return o.name
}

func (o *object) Title() string {
	if o.title == "" {
		return o.name
	}
	return o.title
}

func (o *object) Aliases() []string {
	return o.aliases
}

// answersTo reports whether the object is addressed by the given name.
func (o *object) answersTo(name string) bool {
	if name == o.name {
		return true
	}
	for _, alias := range o.aliases {
		if name == alias {
			return true
		}
	}
	return false
}
