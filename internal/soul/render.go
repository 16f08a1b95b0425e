package soul

import (
	"fmt"
	"strings"

	"github.com/guicampos/tale/internal/lang"
	"github.com/guicampos/tale/internal/talerrors"
	"github.com/guicampos/tale/internal/verbs"
)

// ProcessVerbParsed renders a parsed social command into the three display
// messages and the target set. The templates come from the verb table; the
// parsed qualifier, adverb, body part, message and targets fill the slots.
func (s *Soul) ProcessVerbParsed(actor Actor, parsed *ParseResult) (Result, error) {
	if actor == nil {
		return Result{}, fmt.Errorf("no actor to process verb for")
	}
	entry, ok := verbs.Lookup(parsed.Verb)
	if !ok {
		return Result{}, talerrors.UnknownVerb(parsed.Verb, nil, parsed.Qualifier)
	}

	message := parsed.Message
	if message == "" {
		message = entry.DefaultMessage
	}
	var msg string
	if message != "" {
		if strings.HasPrefix(message, "'") {
			// a leading single quote means: insert without quoting
			message = lang.Spacify(message[1:])
			msg = message
		} else {
			msg = " '" + message + "'"
			message = " " + message
		}
	}

	adverb := parsed.Adverb
	if adverb == "" {
		adverb = entry.DefaultAdverb
	}
	how := lang.Spacify(adverb)

	where := ""
	if parsed.Bodypart != "" {
		where = " " + verbs.BodyParts[parsed.Bodypart]
	} else if entry.DefaultWhere != "" {
		where = " " + entry.DefaultWhere
	}

	// the fully-templated variants carry both perspectives themselves
	switch d := entry.Def.(type) {
	case verbs.Paired:
		action, actionRoom := d.Actor, d.Room
		if !checkPerson(action, parsed.WhoOrder) {
			return Result{}, talerrors.Parsef("The verb %s needs a person.", parsed.Verb)
		}
		action = fillSlots(action, message, msg, how, where)
		actionRoom = fillSlots(actionRoom, message, msg, how, where)
		return s.resultMessages(actor, parsed, action, actionRoom), nil
	case verbs.Conditional:
		action, actionRoom := d.Actor, d.Room
		if len(parsed.WhoInfo) > 0 {
			action, actionRoom = d.ActorWho, d.RoomWho
		}
		action = fillSlots(action, message, msg, how, where)
		actionRoom = fillSlots(actionRoom, message, msg, how, where)
		return s.resultMessages(actor, parsed, action, actionRoom), nil
	case verbs.Custom:
		return Result{}, fmt.Errorf("verb %q has a custom definition, which cannot be rendered", parsed.Verb)
	}

	// the remaining variants build one action string that is conjugated at
	// the "$" stem afterwards
	var action string
	switch d := entry.Def.(type) {
	case verbs.Default:
		action = parsed.Verb + "$ \nHOW \nAT"
	case verbs.Targeted:
		action = parsed.Verb + "$" + lang.Spacify(d.Ext) + " \nWHO \nHOW"
	case verbs.Physical:
		action = parsed.Verb + "$" + lang.Spacify(d.Ext) + " \nWHO \nHOW \nWHERE"
	case verbs.Short:
		action = parsed.Verb + "$" + lang.Spacify(d.Ext) + " \nHOW"
	case verbs.Personal:
		if len(parsed.WhoOrder) > 0 {
			action = d.WithWho
		} else {
			action = d.Alone
		}
	case verbs.Simple:
		action = d.Action
	default:
		return Result{}, fmt.Errorf("verb %q has definition type %T, which cannot be rendered", parsed.Verb, entry.Def)
	}

	at, hasAt := entry.AtClause()
	if len(parsed.WhoInfo) > 0 && hasAt {
		action = strings.ReplaceAll(action, " \nAT", lang.Spacify(at)+" \nWHO")
	} else {
		action = strings.ReplaceAll(action, " \nAT", "")
	}

	if !checkPerson(action, parsed.WhoOrder) {
		return Result{}, talerrors.Parsef("The verb %s needs a person.", parsed.Verb)
	}

	action = strings.ReplaceAll(action, " \nHOW", how)
	action = strings.ReplaceAll(action, " \nWHERE", where)
	action = strings.ReplaceAll(action, " \nWHAT", message)
	action = strings.ReplaceAll(action, " \nMSG", msg)
	actionRoom := strings.ReplaceAll(action, "$", "s")
	action = strings.ReplaceAll(action, "$", "")
	return s.resultMessages(actor, parsed, action, actionRoom), nil
}

// fillSlots substitutes the non-target slots of a full template: body part,
// message and adverb. Target slots are handled later in resultMessages.
func fillSlots(action, message, msg, how, where string) string {
	action = strings.ReplaceAll(action, " \nWHERE", where)
	action = strings.ReplaceAll(action, " \nWHAT", message)
	action = strings.ReplaceAll(action, " \nMSG", msg)
	action = strings.ReplaceAll(action, " \nHOW", how)
	return action
}

// checkPerson reports whether the action either needs no person or has one.
func checkPerson(action string, who []Entity) bool {
	if len(who) == 0 && (strings.Contains(action, "\nWHO") || strings.Contains(action, "\nPOSS")) {
		return false
	}
	return true
}

// resultMessages turns the two action strings into the final three messages:
// the actor's second-person view, the room's third-person view, and the view
// of the targets themselves.
func (s *Soul) resultMessages(actor Actor, parsed *ParseResult, action, actionRoom string) Result {
	action = strings.TrimSpace(action)
	actionRoom = strings.TrimSpace(actionRoom)
	if parsed.Qualifier != "" {
		q := verbs.Qualifiers[parsed.Qualifier]
		if q.RoomUsesRoomAction {
			actionRoom = fmt.Sprintf(q.Room, actionRoom)
		} else {
			actionRoom = fmt.Sprintf(q.Room, action)
		}
		action = fmt.Sprintf(q.Actor, action)
	}

	// message seen by the actor
	names := make([]string, len(parsed.WhoOrder))
	for i, target := range parsed.WhoOrder {
		names[i] = whoReplacement(actor, target, actor)
	}
	actorMsg := strings.ReplaceAll(action, " \nWHO", " "+lang.Join(names, ""))
	actorMsg = strings.ReplaceAll(actorMsg, " \nYOUR", " your")
	actorMsg = strings.ReplaceAll(actorMsg, " \nMY", " your")

	// message seen by the rest of the room
	for i, target := range parsed.WhoOrder {
		names[i] = whoReplacement(actor, target, nil)
	}
	roomMsg := strings.ReplaceAll(actionRoom, " \nWHO", " "+lang.Join(names, ""))
	roomMsg = strings.ReplaceAll(roomMsg, " \nYOUR", " "+actor.Possessive())
	roomMsg = strings.ReplaceAll(roomMsg, " \nMY", " "+actor.Objective())

	// message seen by the targets
	targetMsg := strings.ReplaceAll(actionRoom, " \nWHO", " you")
	targetMsg = strings.ReplaceAll(targetMsg, " \nYOUR", " "+actor.Possessive())
	targetMsg = strings.ReplaceAll(targetMsg, " \nPOSS", " your")
	targetMsg = strings.ReplaceAll(targetMsg, " \nIS", " are")
	targetMsg = strings.ReplaceAll(targetMsg, " \nSUBJ", " you")
	targetMsg = strings.ReplaceAll(targetMsg, " \nMY", " "+actor.Objective())

	// agreement slots in the actor and room messages depend on how many
	// targets there are
	if len(parsed.WhoOrder) == 1 {
		only := parsed.WhoOrder[0]
		actorMsg = strings.ReplaceAll(actorMsg, " \nIS", " is")
		actorMsg = strings.ReplaceAll(actorMsg, " \nSUBJ", " "+only.Subjective())
		actorMsg = strings.ReplaceAll(actorMsg, " \nPOSS", " "+possReplacement(actor, only, actor))
		roomMsg = strings.ReplaceAll(roomMsg, " \nIS", " is")
		roomMsg = strings.ReplaceAll(roomMsg, " \nSUBJ", " "+only.Subjective())
		roomMsg = strings.ReplaceAll(roomMsg, " \nPOSS", " "+possReplacement(actor, only, nil))
	} else {
		for i, target := range parsed.WhoOrder {
			names[i] = possReplacement(actor, target, actor)
		}
		possActor := lang.Join(names, "")
		for i, target := range parsed.WhoOrder {
			names[i] = possReplacement(actor, target, nil)
		}
		possRoom := lang.Join(names, "")
		actorMsg = strings.ReplaceAll(actorMsg, " \nIS", " are")
		actorMsg = strings.ReplaceAll(actorMsg, " \nSUBJ", " they")
		actorMsg = strings.ReplaceAll(actorMsg, " \nPOSS", " "+possActor)
		roomMsg = strings.ReplaceAll(roomMsg, " \nIS", " are")
		roomMsg = strings.ReplaceAll(roomMsg, " \nSUBJ", " they")
		roomMsg = strings.ReplaceAll(roomMsg, " \nPOSS", " "+possRoom)
	}

	actorMsg = lang.Fullstop("You " + actorMsg)
	roomMsg = lang.Capital(lang.Fullstop(actor.Title() + " " + roomMsg))
	targetMsg = lang.Capital(lang.Fullstop(actor.Title() + " " + targetMsg))

	// the actor is never part of the returned target set
	seen := make(map[Entity]bool, len(parsed.WhoOrder))
	var targets []Entity
	for _, target := range parsed.WhoOrder {
		if target == Entity(actor) || seen[target] {
			continue
		}
		seen[target] = true
		targets = append(targets, target)
	}

	return Result{Targets: targets, Actor: actorMsg, Room: roomMsg, Target: targetMsg}
}

// whoReplacement picks the word standing in for one target, as seen by the
// given observer. A nil observer is an uninvolved bystander.
func whoReplacement(actor Actor, target Entity, observer Entity) string {
	if target == Entity(actor) {
		if observer == Entity(actor) {
			return "yourself" // you kick yourself
		}
		return actor.Objective() + "self" // ... kicks himself
	}
	if target == observer {
		return "you" // ... kicks you
	}
	return target.Title() // ... kicks bob
}

// possReplacement picks the possessive standing in for one target, as seen
// by the given observer.
func possReplacement(actor Actor, target Entity, observer Entity) string {
	if target == Entity(actor) {
		if observer == Entity(actor) {
			return "your own" // your own foot
		}
		return actor.Possessive() + " own" // his own foot
	}
	if target == observer {
		return "your" // your foot
	}
	return lang.Possessive(target.Title())
}
