package soul

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/guicampos/tale/internal/lang"
	"github.com/guicampos/tale/internal/talerrors"
	"github.com/guicampos/tale/internal/verbs"
)

// quotedMessage matches a single-or-double-quoted substring, greedily, so
// that a message containing quote characters stays in one piece.
var quotedMessage = regexp.MustCompile(`'(.*)'|"(.*)"`)

// skipWords are filler words ignored between meaningful tokens. A leading
// skip word is stripped before verb identification.
var skipWords = map[string]bool{
	"and": true, "&": true, "at": true, "to": true, "before": true,
	"in": true, "into": true, "on": true, "off": true, "onto": true,
	"the": true, "with": true, "from": true, "after": true,
	"under": true, "above": true, "next": true,
}

// candidateSet is a name-to-entity index that remembers the order names were
// first added, so prefix suggestions come out deterministically.
type candidateSet struct {
	byName map[string]Entity
	names  []string
}

func newCandidateSet() *candidateSet {
	return &candidateSet{byName: make(map[string]Entity)}
}

func (c *candidateSet) put(name string, e Entity) {
	if _, ok := c.byName[name]; !ok {
		c.names = append(c.names, name)
	}
	c.byName[name] = e
}

func (c *candidateSet) add(e Entity) {
	c.put(e.Name(), e)
	for _, alias := range e.Aliases() {
		c.put(alias, e)
	}
}

func (c *candidateSet) get(name string) (Entity, bool) {
	e, ok := c.byName[name]
	return e, ok
}

func (c *candidateSet) empty() bool {
	return len(c.byName) == 0
}

// suggest returns the first known name that starts with the given prefix.
func (c *candidateSet) suggest(prefix string) (string, bool) {
	for _, name := range c.names {
		if strings.HasPrefix(name, prefix) {
			return name, true
		}
	}
	return "", false
}

// roomCandidates indexes everything the actor could refer to by name: the
// livings in the room, the items in the room, and the actor's inventory. An
// inventory item with the same name as a room item wins the lookup.
func roomCandidates(actor Actor) (livings, items *candidateSet) {
	livings = newCandidateSet()
	items = newCandidateSet()
	loc := actor.Location()
	for _, l := range loc.Livings() {
		livings.add(l)
	}
	for _, it := range loc.Items() {
		items.add(it)
	}
	for _, it := range actor.Inventory() {
		items.add(it)
	}
	return livings, items
}

func exitCandidates(loc Location) *candidateSet {
	c := newCandidateSet()
	for _, direction := range loc.ExitDirections() {
		if e, ok := loc.Exit(direction); ok {
			c.put(direction, e)
		}
	}
	return c
}

// matchNameWithSpaces resolves a possibly multi-word name starting at words
// [index]. It extends the candidate name one word at a time, returning the
// first (shortest) hit along with the number of words it spans. The primary
// set is consulted before the secondary at every length. Names longer than
// five words are not considered.
func matchNameWithSpaces(words []string, index int, primary, secondary *candidateSet) (Entity, string, int) {
	wordcount := 1
	name := words[index]
	for wordcount < 6 {
		if e, ok := primary.get(name); ok {
			return e, name, wordcount
		}
		if secondary != nil {
			if e, ok := secondary.get(name); ok {
				return e, name, wordcount
			}
		}
		if index+wordcount >= len(words) {
			return nil, "", 0
		}
		name += " " + words[index+wordcount]
		wordcount++
	}
	return nil, "", 0
}

// trimConsumed drops n leading bytes from s plus any whitespace after them.
func trimConsumed(s string, n int) string {
	if n > len(s) {
		n = len(s)
	}
	return strings.TrimLeft(s[n:], " \t")
}

// Parse interprets one command line against the actor's surroundings and
// returns the structured result.
//
// Errors come in three flavors. A plain ParseError means the input was
// understood well enough to be refused with a specific message. An
// UnknownVerbError means the leading word resolved to nothing; the caller
// may hand the command to another interpreter. A NonSoulVerbError means the
// command was an exit movement; its ParseResult carries the matched exit.
func (s *Soul) Parse(actor Actor, cmd string, externalVerbs map[string]bool) (*ParseResult, error) {
	qualifier := ""
	messageVerb := false
	externalVerb := false
	adverb := ""
	bodypart := ""
	var message []string
	var argWords []string
	var unrecognized []string
	acc := newTargetAccumulator()
	unparsed := cmd

	// a substring enclosed in quotes is extracted as the message up front
	if m := quotedMessage.FindStringSubmatchIndex(cmd); m != nil {
		var quoted string
		if m[2] >= 0 {
			quoted = cmd[m[2]:m[3]]
		} else {
			quoted = cmd[m[4]:m[5]]
		}
		message = []string{strings.TrimSpace(quoted)}
		cmd = cmd[:m[0]] + cmd[m[1]:]
	}

	if cmd == "" {
		return nil, talerrors.Parse("What?", "empty command")
	}
	words := strings.Fields(cmd)
	if len(words) > 0 && verbs.IsQualifier(words[0]) {
		qualifier = words[0]
		words = words[1:]
		unparsed = trimConsumed(unparsed, len(qualifier))
		if qualifier == "dont" {
			// little spelling suggestion
			qualifier = "don't"
		}
	}
	if len(words) > 0 && skipWords[words[0]] {
		unparsed = trimConsumed(unparsed, len(words[0]))
		words = words[1:]
	}
	if len(words) == 0 {
		return nil, talerrors.Parse("What?", "command contains no words")
	}

	verb := ""
	if externalVerbs[words[0]] {
		// external verbs have priority over soul verbs
		verb = words[0]
		words = words[1:]
		externalVerb = true
	} else if entry, ok := verbs.Lookup(words[0]); ok {
		verb = words[0]
		words = words[1:]
		messageVerb = entry.ExpectsMessage()
	} else if exits := exitCandidates(actor.Location()); !exits.empty() {
		// check if the words name a room exit
		moveAction := ""
		if verbs.MovementVerbs[words[0]] {
			moveAction = words[0]
			words = words[1:]
			if len(words) == 0 {
				return nil, talerrors.Parsef("%s where?", lang.Capital(moveAction))
			}
		}
		if exit, exitName, wordcount := matchNameWithSpaces(words, 0, exits, nil); exit != nil {
			if wordcount != len(words) {
				return nil, talerrors.Parse("What do you want to do with that?", "trailing words after exit name")
			}
			if moveAction != "" {
				unparsed = trimConsumed(unparsed, len(moveAction))
			}
			unparsed = trimConsumed(unparsed, len(exitName))
			exitAcc := newTargetAccumulator()
			exitAcc.add(exit, "")
			return nil, &NonSoulVerbError{Parsed: &ParseResult{
				Verb:      exitName,
				Qualifier: qualifier,
				WhoOrder:  exitAcc.order,
				WhoInfo:   exitAcc.info,
				Unparsed:  unparsed,
			}}
		} else if moveAction != "" {
			return nil, talerrors.Parsef("You can't %s there.", moveAction)
		}
		// can't determine the verb here, continue with an empty verb
	}
	if verb != "" {
		unparsed = trimConsumed(unparsed, len(verb))
	}

	includeFlag := true
	collectMessage := false
	livings, items := roomCandidates(actor)
	exits := exitCandidates(actor.Location())
	previousWord := ""

	for i := 0; i < len(words); i++ {
		word := words[i]
		if collectMessage {
			message = append(message, word)
			argWords = append(argWords, word)
			previousWord = word
			continue
		}
		if !messageVerb {
			// a single trailing comma comes off, never more
			word = strings.TrimSuffix(word, ",")
		}

		if word == "them" || word == "him" || word == "her" || word == "it" {
			if s.previouslyParsed == nil {
				return nil, talerrors.Parse("It is not clear who you mean.", "pronoun without previous parse")
			}
			matches, err := s.matchPreviouslyParsed(actor, word)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				if includeFlag {
					acc.add(m.who, previousWord)
				} else {
					acc.remove(m.who)
				}
				// the resolved name goes into the args, not the pronoun
				argWords = append(argWords, m.name)
			}
			previousWord = ""
			continue
		}
		if word == "me" || word == "myself" || word == "self" {
			if includeFlag {
				acc.add(actor, previousWord)
			} else {
				acc.remove(actor)
			}
			argWords = append(argWords, word)
			previousWord = ""
			continue
		}
		if verbs.IsBodyPart(word) {
			if bodypart != "" {
				return nil, talerrors.Parsef("You can't do that both %s and %s.", verbs.BodyParts[bodypart], verbs.BodyParts[word])
			}
			bodypart = word
			argWords = append(argWords, word)
			continue
		}
		if word == "everyone" || word == "everybody" || word == "all" {
			if includeFlag {
				if livings.empty() {
					return nil, talerrors.Parse("There is nobody here.", "no livings in location")
				}
				// every living in the room except the actor; items excluded
				for _, l := range actor.Location().Livings() {
					if l != Entity(actor) {
						acc.add(l, previousWord)
					}
				}
			} else {
				acc.reset()
			}
			argWords = append(argWords, word)
			previousWord = ""
			continue
		}
		if word == "everything" {
			return nil, talerrors.Parse("You can't do something to everything around you, be more specific.", "")
		}
		if word == "except" || word == "but" {
			includeFlag = !includeFlag
			argWords = append(argWords, word)
			continue
		}
		if lang.IsAdverb(word) {
			if adverb != "" {
				return nil, talerrors.Parsef("You can't do that both %s and %s.", adverb, word)
			}
			adverb = word
			argWords = append(argWords, word)
			continue
		}
		if living, ok := livings.get(word); ok {
			if includeFlag {
				acc.add(living, previousWord)
			} else {
				acc.remove(living)
			}
			argWords = append(argWords, word)
			previousWord = ""
			continue
		}
		if item, ok := items.get(word); ok {
			if includeFlag {
				acc.add(item, previousWord)
			} else {
				acc.remove(item)
			}
			argWords = append(argWords, word)
			previousWord = ""
			continue
		}
		if exit, exitName, wordcount := matchNameWithSpaces(words, i, exits, nil); exit != nil {
			acc.add(exit, previousWord)
			argWords = append(argWords, exitName)
			i += wordcount - 1
			previousWord = ""
			continue
		}
		if target, fullName, wordcount := matchNameWithSpaces(words, i, livings, items); target != nil {
			i += wordcount - 1
			if includeFlag {
				acc.add(target, previousWord)
			} else {
				acc.remove(target)
			}
			argWords = append(argWords, fullName)
			previousWord = ""
			continue
		}
		if messageVerb && len(message) == 0 {
			collectMessage = true
			message = append(message, word)
			argWords = append(argWords, word)
			continue
		}
		if !skipWords[word] {
			// unrecognized word; it could be the start of a name
			if len(acc.order) == 0 {
				if name, ok := livings.suggest(word); ok {
					return nil, talerrors.Parsef("Perhaps you meant %s?", name)
				}
				if name, ok := items.suggest(word); ok {
					return nil, talerrors.Parsef("Perhaps you meant %s?", name)
				}
			}
			if !externalVerb {
				if verb == "" {
					return nil, talerrors.UnknownVerb(word, words, qualifier)
				}
				// maybe it is the start of an adverb
				completions := lang.AdverbsByPrefix(word, 5)
				if len(completions) == 1 {
					word = completions[0]
					if adverb != "" {
						return nil, talerrors.Parsef("You can't do that both %s and %s.", adverb, word)
					}
					adverb = word
					argWords = append(argWords, word)
					previousWord = word
					continue
				} else if len(completions) > 1 {
					return nil, talerrors.Parsef("What adverb did you mean: %s?", lang.Join(completions, "or"))
				}
			}
			if externalVerb {
				argWords = append(argWords, word)
				unrecognized = append(unrecognized, word)
			} else {
				if verbs.IsVerb(word) || verbs.IsQualifier(word) || verbs.IsBodyPart(word) {
					// a misplaced verb, qualifier or body part gets a more
					// specific error
					return nil, talerrors.Parsef("The word %s makes no sense at that location.", word)
				}
				errmsg := fmt.Sprintf("It's not clear what you mean by '%s'.", word)
				if r := []rune(word); len(r) > 0 && unicode.IsUpper(r[0]) {
					errmsg += fmt.Sprintf(" Just type in lowercase ('%s').", strings.ToLower(word))
				}
				return nil, talerrors.Parse(errmsg, "")
			}
		}
		previousWord = word
	}

	messageText := strings.Join(message, " ")
	if verb == "" {
		// no verb, but a single target was named; apply its default verb
		if len(acc.order) == 1 {
			verb = "examine"
			if dv, ok := acc.order[0].(DefaultVerber); ok && dv.DefaultVerb() != "" {
				verb = dv.DefaultVerb()
			}
		} else {
			return nil, talerrors.UnknownVerb(words[0], words, qualifier)
		}
	}
	return &ParseResult{
		Verb:         verb,
		Qualifier:    qualifier,
		Adverb:       adverb,
		Bodypart:     bodypart,
		Message:      messageText,
		WhoOrder:     acc.order,
		WhoInfo:      acc.info,
		Args:         argWords,
		Unrecognized: unrecognized,
		Unparsed:     unparsed,
	}, nil
}

// pronounMatch pairs a remembered target with the name that replaces the
// pronoun in the args.
type pronounMatch struct {
	who  Entity
	name string
}

// matchPreviouslyParsed connects a pronoun (it, him, her, them) to the
// targets of the previous successful parse. Every returned target is
// verified to still be reachable from the actor.
func (s *Soul) matchPreviouslyParsed(actor Actor, pronoun string) ([]pronounMatch, error) {
	if pronoun == "them" {
		// plural: every previous target qualifies, or none do
		matches := s.previouslyParsed.WhoOrder
		for _, who := range matches {
			if actor.SearchItem(who.Name()) == nil && !livingPresent(actor.Location(), who) {
				actor.Tell(fmt.Sprintf("(By '%s', it is assumed you meant %s.)", pronoun, who.Title()))
				return nil, talerrors.Parsef("%s is no longer around.", lang.Capital(who.Subjective()))
			}
		}
		if len(matches) == 0 {
			return nil, talerrors.Parse("It is not clear who you're referring to.", "")
		}
		titles := make([]string, len(matches))
		for i, who := range matches {
			titles[i] = who.Title()
		}
		actor.Tell(fmt.Sprintf("(By '%s', it is assumed you mean: %s.)", pronoun, lang.Join(titles, "")))
		out := make([]pronounMatch, len(matches))
		for i, who := range matches {
			out[i] = pronounMatch{who: who, name: who.Name()}
		}
		return out, nil
	}
	for _, who := range s.previouslyParsed.WhoOrder {
		// "it" may refer to an exit of the current location
		if pronoun == "it" {
			loc := actor.Location()
			for _, direction := range loc.ExitDirections() {
				if e, ok := loc.Exit(direction); ok && e == who {
					actor.Tell(fmt.Sprintf("(By '%s', it is assumed you mean '%s'.)", pronoun, direction))
					return []pronounMatch{{who: who, name: direction}}, nil
				}
			}
		}
		// not an exit, try an item or a living
		if pronoun == who.Objective() {
			if actor.SearchItem(who.Name()) != nil || livingPresent(actor.Location(), who) {
				actor.Tell(fmt.Sprintf("(By '%s', it is assumed you mean %s.)", pronoun, who.Title()))
				return []pronounMatch{{who: who, name: who.Name()}}, nil
			}
			actor.Tell(fmt.Sprintf("(By '%s', it is assumed you meant %s.)", pronoun, who.Title()))
			return nil, talerrors.Parsef("%s is no longer around.", lang.Capital(who.Subjective()))
		}
	}
	return nil, talerrors.Parse("It is not clear who you're referring to.", "")
}

func livingPresent(loc Location, who Entity) bool {
	for _, l := range loc.Livings() {
		if l == who {
			return true
		}
	}
	return false
}
