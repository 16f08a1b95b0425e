package soul_test

import (
	"testing"

	"github.com/guicampos/tale/internal/soul"
	"github.com/guicampos/tale/internal/talerrors"
	"github.com/guicampos/tale/internal/world"
	"github.com/stretchr/testify/assert"
)

// yardFixture is a small world to parse commands against: julie (the actor),
// bob and alice in a yard with a lantern on the ground and a gate leading to
// the street. Julie's Tell output is captured in told.
type yardFixture struct {
	julie   *world.Living
	bob     *world.Living
	alice   *world.Living
	lantern *world.Item
	yard    *world.Location
	street  *world.Location
	told    []string
}

func newYardFixture() *yardFixture {
	f := &yardFixture{}
	f.street = world.NewLocation("street", "A long street.")
	f.yard = world.NewLocation("yard", "A grassy yard.")
	f.yard.AddExit(world.NewExit("gate", f.street, "A rusty gate leads to the street.", "north"))
	f.lantern = world.NewItem("lantern", "", "A dusty lantern.")
	f.yard.AddItem(f.lantern)
	f.julie = world.NewLiving("julie", "", world.PronounsFeminine)
	f.julie.TellFunc = func(message string) {
		f.told = append(f.told, message)
	}
	f.bob = world.NewLiving("bob", "", world.PronounsMasculine)
	f.alice = world.NewLiving("alice", "", world.PronounsFeminine)
	f.julie.MoveTo(f.yard)
	f.bob.MoveTo(f.yard)
	f.alice.MoveTo(f.yard)
	return f
}

func Test_ProcessVerb_Rendering(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectVerb   string
		expectActor  string
		expectRoom   string
		expectTarget string
		expectWho    []string
	}{
		{
			name:        "default verb without target",
			input:       "smile",
			expectVerb:  "smile",
			expectActor: "You smile happily.",
			expectRoom:  "Julie smiles happily.",
		},
		{
			name:         "default verb with target",
			input:        "grin at bob",
			expectVerb:   "grin",
			expectActor:  "You grin evilly at bob.",
			expectRoom:   "Julie grins evilly at bob.",
			expectTarget: "Julie grins evilly at you.",
			expectWho:    []string{"bob"},
		},
		{
			name:        "explicit adverb overrides the default",
			input:       "smile sarcastically",
			expectVerb:  "smile",
			expectActor: "You smile sarcastically.",
			expectRoom:  "Julie smiles sarcastically.",
		},
		{
			name:        "unique adverb prefix is completed",
			input:       "smile sarc",
			expectVerb:  "smile",
			expectActor: "You smile sarcastically.",
			expectRoom:  "Julie smiles sarcastically.",
		},
		{
			name:         "negating qualifier keeps the first person for the room",
			input:        "fail grin at bob",
			expectVerb:   "fail grin",
			expectActor:  "You try to grin evilly at bob, but fail miserably.",
			expectRoom:   "Julie tries to grin evilly at bob, but fails miserably.",
			expectTarget: "Julie tries to grin evilly at you, but fails miserably.",
			expectWho:    []string{"bob"},
		},
		{
			name:        "suddenly qualifier conjugates for the room",
			input:       "suddenly smile",
			expectVerb:  "suddenly smile",
			expectActor: "You suddenly smile happily.",
			expectRoom:  "Julie suddenly smiles happily.",
		},
		{
			name:        "dont is spelled out",
			input:       "dont smile",
			expectVerb:  "don't smile",
			expectActor: "You don't smile happily.",
			expectRoom:  "Julie doesn't smile happily.",
		},
		{
			name:         "targeted verb",
			input:        "greet bob",
			expectVerb:   "greet",
			expectActor:  "You greet bob.",
			expectRoom:   "Julie greets bob.",
			expectTarget: "Julie greets you.",
			expectWho:    []string{"bob"},
		},
		{
			name:         "physical verb with body part",
			input:        "kick bob in the face",
			expectVerb:   "kick",
			expectActor:  "You kick bob in the face.",
			expectRoom:   "Julie kicks bob in the face.",
			expectTarget: "Julie kicks you in the face.",
			expectWho:    []string{"bob"},
		},
		{
			name:         "physical verb with default body part",
			input:        "slap bob",
			expectVerb:   "slap",
			expectActor:  "You slap bob in the face.",
			expectRoom:   "Julie slaps bob in the face.",
			expectTarget: "Julie slaps you in the face.",
			expectWho:    []string{"bob"},
		},
		{
			name:         "physical verb with default adverb and body part",
			input:        "pat bob",
			expectVerb:   "pat",
			expectActor:  "You pat bob gently on the head.",
			expectRoom:   "Julie pats bob gently on the head.",
			expectTarget: "Julie pats you gently on the head.",
			expectWho:    []string{"bob"},
		},
		{
			name:        "actor as target",
			input:       "kick me",
			expectVerb:  "kick",
			expectActor: "You kick yourself.",
			expectRoom:  "Julie kicks herself.",
		},
		{
			name:         "everyone targets every living except the actor",
			input:        "greet everyone",
			expectVerb:   "greet",
			expectActor:  "You greet bob and alice.",
			expectRoom:   "Julie greets bob and alice.",
			expectTarget: "Julie greets you.",
			expectWho:    []string{"bob", "alice"},
		},
		{
			name:         "except removes a target",
			input:        "greet everyone except bob",
			expectVerb:   "greet",
			expectActor:  "You greet alice.",
			expectRoom:   "Julie greets alice.",
			expectTarget: "Julie greets you.",
			expectWho:    []string{"alice"},
		},
		{
			name:        "quoted message",
			input:       "say 'hello'",
			expectVerb:  "say",
			expectActor: "You say hello.",
			expectRoom:  "Julie says hello.",
		},
		{
			name:         "quoted message with addressee",
			input:        `say "hi there" to bob`,
			expectVerb:   "say",
			expectActor:  "You say hi there to bob.",
			expectRoom:   "Julie says hi there to bob.",
			expectTarget: "Julie says hi there to you.",
			expectWho:    []string{"bob"},
		},
		{
			name:        "unquoted trailing words collect into the message",
			input:       "say hello there",
			expectVerb:  "say",
			expectActor: "You say hello there.",
			expectRoom:  "Julie says hello there.",
		},
		{
			name:         "message verb that quotes its message",
			input:        "whisper 'psst' to bob",
			expectVerb:   "whisper",
			expectActor:  "You whisper 'psst' to bob.",
			expectRoom:   "Julie whispers 'psst' to bob.",
			expectTarget: "Julie whispers 'psst' to you.",
			expectWho:    []string{"bob"},
		},
		{
			name:        "default message",
			input:       "sing",
			expectVerb:  "sing",
			expectActor: "You sing a song.",
			expectRoom:  "Julie sings a song.",
		},
		{
			name:         "paired verb with message",
			input:        "ask bob 'about the weather'",
			expectVerb:   "ask",
			expectActor:  "You ask bob about the weather.",
			expectRoom:   "Julie asks bob about the weather.",
			expectTarget: "Julie asks you about the weather.",
			expectWho:    []string{"bob"},
		},
		{
			name:         "possessive slot",
			input:        "hold bob",
			expectVerb:   "hold",
			expectActor:  "You hold bob's hand.",
			expectRoom:   "Julie holds bob's hand.",
			expectTarget: "Julie holds your hand.",
			expectWho:    []string{"bob"},
		},
		{
			name:         "subject and agreement slots",
			input:        "peer at bob",
			expectVerb:   "peer",
			expectActor:  "You peer at bob, wondering what he is up to.",
			expectRoom:   "Julie peers at bob, wondering what he is up to.",
			expectTarget: "Julie peers at you, wondering what you are up to.",
			expectWho:    []string{"bob"},
		},
		{
			name:        "your slot from the actor and room perspectives",
			input:       "flex",
			expectVerb:  "flex",
			expectActor: "You flex your muscles proudly.",
			expectRoom:  "Julie flexes her muscles proudly.",
		},
		{
			name:        "short verb with extension",
			input:       "twiddle",
			expectVerb:  "twiddle",
			expectActor: "You twiddle your thumbs.",
			expectRoom:  "Julie twiddles her thumbs.",
		},
		{
			name:        "conditional verb without target",
			input:       "dance",
			expectVerb:  "dance",
			expectActor: "You dance.",
			expectRoom:  "Julie dances.",
		},
		{
			name:         "conditional verb with target",
			input:        "dance with bob",
			expectVerb:   "dance",
			expectActor:  "You dance with bob.",
			expectRoom:   "Julie dances with bob.",
			expectTarget: "Julie dances with you.",
			expectWho:    []string{"bob"},
		},
		{
			name:        "conditional verb with default adverb",
			input:       "ponder",
			expectVerb:  "ponder",
			expectActor: "You ponder thoughtfully.",
			expectRoom:  "Julie ponders thoughtfully.",
		},
		{
			name:         "item as target",
			input:        "point at lantern",
			expectVerb:   "point",
			expectActor:  "You point at lantern.",
			expectRoom:   "Julie points at lantern.",
			expectTarget: "Julie points at you.",
			expectWho:    []string{"lantern"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			f := newYardFixture()
			s := soul.NewSoul()

			verb, result, err := s.ProcessVerb(f.julie, tc.input, nil)

			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expectVerb, verb)
			assert.Equal(tc.expectActor, result.Actor)
			assert.Equal(tc.expectRoom, result.Room)
			if tc.expectTarget != "" {
				assert.Equal(tc.expectTarget, result.Target)
			}
			names := make([]string, len(result.Targets))
			for i, target := range result.Targets {
				names[i] = target.Name()
			}
			if len(tc.expectWho) == 0 {
				assert.Empty(names)
			} else {
				assert.Equal(tc.expectWho, names)
			}
		})
	}
}

func Test_ProcessVerb_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectInMsg string
	}{
		{
			name:        "empty command",
			input:       "",
			expectInMsg: "What?",
		},
		{
			name:        "paired verb without target",
			input:       "ask",
			expectInMsg: "The verb ask needs a person.",
		},
		{
			name:        "targeted verb with nobody to target",
			input:       "hold",
			expectInMsg: "The verb hold needs a person.",
		},
		{
			name:        "everything is refused",
			input:       "kick everything",
			expectInMsg: "You can't do something to everything around you, be more specific.",
		},
		{
			name:        "two adverbs",
			input:       "smile happily sadly",
			expectInMsg: "You can't do that both happily and sadly.",
		},
		{
			name:        "two body parts",
			input:       "kick bob face head",
			expectInMsg: "You can't do that both in the face and on the head.",
		},
		{
			name:        "ambiguous adverb prefix",
			input:       "smile sa",
			expectInMsg: "What adverb did you mean: sadistically, sadly, sarcastically, sardonically or savagely?",
		},
		{
			name:        "doubled trailing comma is not swallowed",
			input:       "greet bob,,",
			expectInMsg: "It's not clear what you mean by 'bob,'.",
		},
		{
			name:        "capitalized name",
			input:       "kick Bob",
			expectInMsg: "It's not clear what you mean by 'Bob'. Just type in lowercase ('bob').",
		},
		{
			name:        "name prefix gets a suggestion",
			input:       "kick bo",
			expectInMsg: "Perhaps you meant bob?",
		},
		{
			name:        "misplaced verb",
			input:       "smile kick",
			expectInMsg: "The word kick makes no sense at that location.",
		},
		{
			name:        "movement verb without a direction",
			input:       "go",
			expectInMsg: "Go where?",
		},
		{
			name:        "movement toward a nonexistent exit",
			input:       "go nowhere",
			expectInMsg: "You can't go there.",
		},
		{
			name:        "trailing words after an exit name",
			input:       "go gate quickly",
			expectInMsg: "What do you want to do with that?",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			f := newYardFixture()
			s := soul.NewSoul()

			_, _, err := s.ProcessVerb(f.julie, tc.input, nil)

			if !assert.Error(err) {
				return
			}
			assert.Equal(tc.expectInMsg, talerrors.GameMessage(err))
		})
	}
}

func Test_Parse_ExitMovement(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()

	// the direction alone is enough
	_, err := s.Parse(f.julie, "gate", nil)
	var nsv *soul.NonSoulVerbError
	if assert.ErrorAs(err, &nsv) {
		assert.Equal("gate", nsv.Parsed.Verb)
		assert.Len(nsv.Parsed.WhoOrder, 1)
	}

	// a movement verb plus an exit alias resolves to the alias
	_, err = s.Parse(f.julie, "walk north", nil)
	nsv = nil
	if assert.ErrorAs(err, &nsv) {
		assert.Equal("north", nsv.Parsed.Verb)
	}
}

func Test_Parse_ExternalVerb(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()
	external := map[string]bool{"look": true}

	parsed, err := s.Parse(f.julie, "look at lantern", external)

	if !assert.NoError(err) {
		return
	}
	assert.Equal("look", parsed.Verb)
	assert.Equal("at lantern", parsed.Unparsed)
	assert.Equal([]string{"lantern"}, parsed.Args)
	if assert.Len(parsed.WhoOrder, 1) {
		assert.Equal("lantern", parsed.WhoOrder[0].Name())
	}
	assert.Empty(parsed.Unrecognized)
}

func Test_Parse_ExternalVerbToleratesUnrecognizedWords(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()
	external := map[string]bool{"look": true}

	parsed, err := s.Parse(f.julie, "look xyzzy", external)

	if !assert.NoError(err) {
		return
	}
	assert.Equal([]string{"xyzzy"}, parsed.Unrecognized)
}

func Test_Parse_ExternalVerbHasPriority(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()
	external := map[string]bool{"smile": true}

	_, _, err := s.ProcessVerb(f.julie, "smile", external)

	var nsv *soul.NonSoulVerbError
	if assert.ErrorAs(err, &nsv) {
		assert.Equal("smile", nsv.Parsed.Verb)
	}
}

func Test_Parse_UnknownVerb(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()

	_, err := s.Parse(f.julie, "frobnicate the lantern", nil)

	uve := talerrors.AsUnknownVerb(err)
	if assert.NotNil(uve) {
		assert.Equal("frobnicate", uve.Verb)
		assert.Equal("The verb frobnicate is unrecognized.", talerrors.GameMessage(err))
	}
}

func Test_Parse_DefaultVerb(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()

	// a lone target without a verb examines it
	parsed, err := s.Parse(f.julie, "bob", nil)
	if assert.NoError(err) {
		assert.Equal("examine", parsed.Verb)
		if assert.Len(parsed.WhoOrder, 1) {
			assert.Equal("bob", parsed.WhoOrder[0].Name())
		}
	}

	// unless the target asks for a different verb
	f.bob.SetDefaultVerb("greet")
	parsed, err = s.Parse(f.julie, "bob", nil)
	if assert.NoError(err) {
		assert.Equal("greet", parsed.Verb)
	}

	// two targets and no verb is not a command
	_, err = s.Parse(f.julie, "bob alice", nil)
	assert.NotNil(talerrors.AsUnknownVerb(err))
}

func Test_Parse_MultiWordName(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	panther := world.NewLiving("black panther", "", world.PronounsNeuter)
	panther.MoveTo(f.yard)
	s := soul.NewSoul()

	parsed, err := s.Parse(f.julie, "greet black panther", nil)

	if !assert.NoError(err) {
		return
	}
	if assert.Len(parsed.WhoOrder, 1) {
		assert.Equal("black panther", parsed.WhoOrder[0].Name())
	}
	assert.Equal([]string{"black panther"}, parsed.Args)
}

func Test_Parse_Alias(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	wizard := world.NewLiving("rinzler", "", world.PronounsMasculine, "wizard")
	wizard.MoveTo(f.yard)
	s := soul.NewSoul()

	parsed, err := s.Parse(f.julie, "greet wizard", nil)

	if !assert.NoError(err) {
		return
	}
	if assert.Len(parsed.WhoOrder, 1) {
		assert.Equal("rinzler", parsed.WhoOrder[0].Name())
	}
}

func Test_Parse_CarriedItemWinsNameCollision(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	carried := world.NewItem("lantern", "", "A polished lantern.")
	f.julie.Give(carried)
	s := soul.NewSoul()

	parsed, err := s.Parse(f.julie, "point at lantern", nil)

	if !assert.NoError(err) {
		return
	}
	if assert.Len(parsed.WhoOrder, 1) {
		assert.Same(carried, parsed.WhoOrder[0])
	}
}

func Test_Parse_RepeatedMentionIsListedOnce(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()

	parsed, err := s.Parse(f.julie, "greet bob and bob", nil)

	if !assert.NoError(err) {
		return
	}
	if assert.Len(parsed.WhoOrder, 1) {
		assert.Same(f.bob, parsed.WhoOrder[0])
	}
	assert.Len(parsed.WhoInfo, len(parsed.WhoOrder))
}

func Test_Parse_NoDuplicateTargetsAcrossMentions(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()

	parsed, err := s.Parse(f.julie, "grin at bob, alice and bob", nil)

	if !assert.NoError(err) {
		return
	}
	if assert.Len(parsed.WhoOrder, 2) {
		assert.Same(f.bob, parsed.WhoOrder[0])
		assert.Same(f.alice, parsed.WhoOrder[1])
	}
	assert.Len(parsed.WhoInfo, len(parsed.WhoOrder))
	seen := map[soul.Entity]bool{}
	for _, who := range parsed.WhoOrder {
		assert.False(seen[who], "duplicate target %s", who.Name())
		seen[who] = true
	}
}

func Test_Parse_WhoInfoBookkeeping(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()

	parsed, err := s.Parse(f.julie, "grin at bob and alice", nil)

	if !assert.NoError(err) {
		return
	}
	if !assert.Len(parsed.WhoOrder, 2) {
		return
	}
	bobInfo := parsed.WhoInfo[parsed.WhoOrder[0]]
	aliceInfo := parsed.WhoInfo[parsed.WhoOrder[1]]
	assert.Equal(0, bobInfo.Sequence)
	assert.Equal("at", bobInfo.PreviousWord)
	assert.Equal(1, aliceInfo.Sequence)
}

func Test_PronounMemory(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()

	parsed, err := s.Parse(f.julie, "kick bob", nil)
	if !assert.NoError(err) {
		return
	}
	s.RememberParse(parsed)

	parsed, err = s.Parse(f.julie, "kick him", nil)
	if !assert.NoError(err) {
		return
	}
	if assert.Len(parsed.WhoOrder, 1) {
		assert.Equal("bob", parsed.WhoOrder[0].Name())
	}
	assert.Contains(f.told, "(By 'him', it is assumed you mean bob.)")

	// the memory holds a him, not a her
	_, err = s.Parse(f.julie, "kick her", nil)
	if assert.Error(err) {
		assert.Equal("It is not clear who you're referring to.", talerrors.GameMessage(err))
	}
}

func Test_PronounMemory_WithoutPreviousParse(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()

	_, err := s.Parse(f.julie, "kick him", nil)

	if assert.Error(err) {
		assert.Equal("It is not clear who you mean.", talerrors.GameMessage(err))
	}
}

func Test_PronounMemory_Them(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()

	parsed, err := s.Parse(f.julie, "greet bob and alice", nil)
	if !assert.NoError(err) {
		return
	}
	s.RememberParse(parsed)

	parsed, err = s.Parse(f.julie, "greet them", nil)
	if !assert.NoError(err) {
		return
	}
	assert.Len(parsed.WhoOrder, 2)
	assert.Contains(f.told, "(By 'them', it is assumed you mean: bob and alice.)")

	// once one of them leaves, the plural reference no longer holds
	f.alice.MoveTo(f.street)
	_, err = s.Parse(f.julie, "greet them", nil)
	if assert.Error(err) {
		assert.Equal("She is no longer around.", talerrors.GameMessage(err))
	}
	assert.Contains(f.told, "(By 'them', it is assumed you meant alice.)")
}

func Test_PronounMemory_ItemAndExit(t *testing.T) {
	assert := assert.New(t)
	f := newYardFixture()
	s := soul.NewSoul()

	parsed, err := s.Parse(f.julie, "point at lantern", nil)
	if !assert.NoError(err) {
		return
	}
	s.RememberParse(parsed)

	parsed, err = s.Parse(f.julie, "point at it", nil)
	if !assert.NoError(err) {
		return
	}
	if assert.Len(parsed.WhoOrder, 1) {
		assert.Equal("lantern", parsed.WhoOrder[0].Name())
	}
	assert.Contains(f.told, "(By 'it', it is assumed you mean lantern.)")

	// "it" can refer back to an exit as well
	parsed, err = s.Parse(f.julie, "point at gate", nil)
	if !assert.NoError(err) {
		return
	}
	s.RememberParse(parsed)

	parsed, err = s.Parse(f.julie, "point at it", nil)
	if !assert.NoError(err) {
		return
	}
	if assert.Len(parsed.WhoOrder, 1) {
		assert.Equal("gate", parsed.WhoOrder[0].Name())
	}
	assert.Contains(f.told, "(By 'it', it is assumed you mean 'gate'.)")
}
