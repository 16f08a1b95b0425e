package soul

import "strings"

// WhoInfo holds the bookkeeping for one resolved target of a command.
type WhoInfo struct {
	// Sequence is the target's position in mention order, starting at 0.
	Sequence int

	// PreviousWord is the word that directly preceded the target's mention,
	// such as "at" in "wave at bob". Empty when the mention opened the
	// command or followed another resolved word.
	PreviousWord string
}

// ParseResult is the structured form of one parsed command line. It is built
// by Soul.Parse and treated as read-only afterwards.
type ParseResult struct {
	// Verb is the resolved verb word. For exit movement it is the matched
	// direction, and for a verbless single-target command it is the
	// target's default verb.
	Verb string

	// Qualifier is the action qualifier that prefixed the command, if any,
	// with "dont" already normalized to "don't".
	Qualifier string

	// Adverb is the adverb given in the command, or empty.
	Adverb string

	// Bodypart is the body-part word given in the command, or empty.
	Bodypart string

	// Message is the free-text message of the command: either the quoted
	// string, or the trailing words collected for a message verb.
	Message string

	// WhoOrder lists the resolved targets in first-mention order, each one
	// exactly once no matter how often it was mentioned.
	WhoOrder []Entity

	// WhoInfo holds per-target bookkeeping, keyed by target identity.
	WhoInfo map[Entity]WhoInfo

	// Args are the words of the command minus the qualifier and the verb,
	// with pronouns and multi-word names replaced by the resolved names.
	Args []string

	// Unrecognized are the words that matched nothing. Only an external
	// verb tolerates these; a soul verb fails on the first one.
	Unrecognized []string

	// Unparsed is the trailing part of the raw command line that was not
	// consumed by qualifier, skip-word and verb stripping.
	Unparsed string
}

func (p *ParseResult) String() string {
	var sb strings.Builder
	sb.WriteString(p.Verb)
	if p.Qualifier != "" {
		sb.WriteString(" (")
		sb.WriteString(p.Qualifier)
		sb.WriteString(")")
	}
	for _, t := range p.WhoOrder {
		sb.WriteString(" @")
		sb.WriteString(t.Name())
	}
	if p.Message != "" {
		sb.WriteString(" '")
		sb.WriteString(p.Message)
		sb.WriteString("'")
	}
	return sb.String()
}

// targetAccumulator gathers targets during the token walk, keeping both the
// mention order and the per-target info in step while include/exclude words
// toggle targets on and off.
type targetAccumulator struct {
	info  map[Entity]WhoInfo
	order []Entity
	seq   int
}

func newTargetAccumulator() *targetAccumulator {
	return &targetAccumulator{info: make(map[Entity]WhoInfo)}
}

// add records the entity at the next sequence position. Mentioning an entity
// again is a no-op; it keeps the sequence and previous word of its first
// mention, so order and info never disagree on membership.
func (a *targetAccumulator) add(e Entity, previousWord string) {
	if _, ok := a.info[e]; ok {
		return
	}
	a.info[e] = WhoInfo{Sequence: a.seq, PreviousWord: previousWord}
	a.seq++
	a.order = append(a.order, e)
}

// remove drops the entity from the info and the order. It is a no-op for
// entities that were never added.
func (a *targetAccumulator) remove(e Entity) {
	if _, ok := a.info[e]; !ok {
		return
	}
	delete(a.info, e)
	for i, o := range a.order {
		if o == e {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// reset forgets every accumulated target. Used by "except everyone".
func (a *targetAccumulator) reset() {
	a.info = make(map[Entity]WhoInfo)
	a.order = nil
	a.seq = 0
}
