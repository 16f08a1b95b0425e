// Package talerrors defines the error types raised while interpreting player
// commands. All of them carry a human-readable message meant to be shown
// in-game, as well as enough context for a caller to react without string
// matching.
package talerrors

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError is an error caused by attempting to interpret input. Either the
// input could not be understood or it specifies doing something that is
// impossible or not allowed at the current time.
//
// ParseError includes a human-readable message to show to the player as well
// as a typical more technical "error message" style message.
type parseError struct {
	msg   string
	human string
	wrap  error
}

func (e *parseError) Error() string {
	return e.msg
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *parseError) GameMessage() string {
	return e.human
}

// Unwrap gives the error that the ParseError wraps, if it wraps one.
func (e *parseError) Unwrap() error {
	return e.wrap
}

// Parse returns a new ParseError that has both the message to show the player
// and the technical description of the error.
func Parse(game, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got ParseError(%q)", game)
	}
	return &parseError{
		msg:   technical,
		human: game,
	}
}

// Parsef returns a new ParseError that has a message to show to the player
// and an automatically generated Error() description. The arguments given are
// the format string and the arguments to the format string.
func Parsef(gameFormat string, a ...interface{}) error {
	gameMessage := fmt.Sprintf(gameFormat, a...)
	return Parse(gameMessage, "")
}

// IsParseError returns whether the given error is a ParseError.
func IsParseError(err error) bool {
	var pe *parseError
	return errors.As(err, &pe)
}

// UnknownVerbError is returned when the first word of a command (or a later
// fallback) does not resolve to any known soul verb, external verb, or single
// default-verb target. It is recoverable; the caller may hand the same words
// to a different command pipeline.
type UnknownVerbError struct {
	// Verb is the offending word, exactly as the player typed it.
	Verb string

	// Words is the remaining token list at the time the verb failed to
	// resolve, so the caller can attempt a different interpretation.
	Words []string

	// Qualifier is the action qualifier that had already been stripped off
	// the command, if any.
	Qualifier string
}

func (e *UnknownVerbError) Error() string {
	return fmt.Sprintf("unknown verb %q", e.Verb)
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *UnknownVerbError) GameMessage() string {
	return fmt.Sprintf("The verb %s is unrecognized.", e.Verb)
}

// UnknownVerb returns a new UnknownVerbError for the given word.
func UnknownVerb(verb string, words []string, qualifier string) error {
	return &UnknownVerbError{Verb: verb, Words: words, Qualifier: qualifier}
}

// AsUnknownVerb returns the UnknownVerbError wrapped in err, or nil if err
// does not carry one.
func AsUnknownVerb(err error) *UnknownVerbError {
	var uve *UnknownVerbError
	if errors.As(err, &uve) {
		return uve
	}
	return nil
}

// GameMessage gets the message to display to the player for the given error.
// If it is one of the types defined in talerrors, the special game message is
// returned. Otherwise, err.Error() is returned with a capital letter and a
// full stop.
func GameMessage(err error) string {
	type gameMessager interface {
		GameMessage() string
	}

	var gm gameMessager
	if errors.As(err, &gm) {
		return gm.GameMessage()
	}

	msg := err.Error()
	if msg == "" {
		return msg
	}
	msg = strings.ToUpper(msg[:1]) + msg[1:]
	if !strings.HasSuffix(msg, ".") && !strings.HasSuffix(msg, "!") && !strings.HasSuffix(msg, "?") {
		msg += "."
	}
	return msg
}
