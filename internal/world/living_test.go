package world

import (
	"testing"

	"github.com/guicampos/tale/internal/soul"
	"github.com/guicampos/tale/internal/talerrors"
	"github.com/stretchr/testify/assert"
)

// tellRecorder hooks a living's TellFunc and collects everything it is told.
func tellRecorder(l *Living) *[]string {
	var told []string
	l.TellFunc = func(message string) {
		told = append(told, message)
	}
	return &told
}

func socialFixture() (julie, bob, alice *Living, yard *Location) {
	yard = NewLocation("yard", "A grassy yard.")
	julie = NewLiving("julie", "", PronounsFeminine)
	bob = NewLiving("bob", "", PronounsMasculine)
	alice = NewLiving("alice", "", PronounsFeminine)
	julie.MoveTo(yard)
	bob.MoveTo(yard)
	alice.MoveTo(yard)
	return julie, bob, alice, yard
}

func Test_DoSocialize_DistributesMessages(t *testing.T) {
	assert := assert.New(t)
	julie, bob, alice, _ := socialFixture()
	julieTold := tellRecorder(julie)
	bobTold := tellRecorder(bob)
	aliceTold := tellRecorder(alice)

	err := julie.DoSocialize("kick bob", nil)

	if !assert.NoError(err) {
		return
	}
	assert.Equal([]string{"You kick bob."}, *julieTold)
	assert.Equal([]string{"Julie kicks you."}, *bobTold)
	assert.Equal([]string{"Julie kicks bob."}, *aliceTold)
}

func Test_DoSocialize_AggressiveTargetRetaliates(t *testing.T) {
	assert := assert.New(t)
	julie, bob, alice, _ := socialFixture()
	julieTold := tellRecorder(julie)
	aliceTold := tellRecorder(alice)
	bob.Aggressive = true

	err := julie.DoSocialize("slap bob", nil)

	if !assert.NoError(err) {
		return
	}
	assert.Contains(*julieTold, "Bob attacks you.")
	assert.Contains(*aliceTold, "Bob attacks julie.")
}

func Test_DoSocialize_NegatedActionProvokesNobody(t *testing.T) {
	assert := assert.New(t)
	julie, bob, _, _ := socialFixture()
	julieTold := tellRecorder(julie)
	bob.Aggressive = true

	err := julie.DoSocialize("fail slap bob", nil)

	if !assert.NoError(err) {
		return
	}
	assert.NotContains(*julieTold, "Bob attacks you.")
	assert.Contains(*julieTold, "You try to slap bob in the face, but fail miserably.")
}

func Test_DoSocialize_NonAggressiveVerbProvokesNobody(t *testing.T) {
	assert := assert.New(t)
	julie, bob, _, _ := socialFixture()
	julieTold := tellRecorder(julie)
	bob.Aggressive = true

	err := julie.DoSocialize("greet bob", nil)

	if !assert.NoError(err) {
		return
	}
	assert.NotContains(*julieTold, "Bob attacks you.")
}

func Test_Parse_AgainRepeatsThePreviousCommand(t *testing.T) {
	assert := assert.New(t)
	julie, _, _, _ := socialFixture()
	julieTold := tellRecorder(julie)

	_, err := julie.Parse("smile", nil)
	if !assert.NoError(err) {
		return
	}

	parsed, err := julie.Parse("again", nil)
	if !assert.NoError(err) {
		return
	}
	assert.Equal("smile", parsed.Verb)
	assert.Contains(*julieTold, "(repeat: smile)")
}

func Test_Parse_AgainWithoutPreviousCommand(t *testing.T) {
	assert := assert.New(t)
	julie, _, _, _ := socialFixture()

	_, err := julie.Parse("again", nil)

	if assert.Error(err) {
		assert.Equal("Can't repeat your previous action.", talerrors.GameMessage(err))
	}
}

func Test_Parse_NonlivingTargetIsHandedBack(t *testing.T) {
	assert := assert.New(t)
	julie, _, _, yard := socialFixture()
	yard.AddItem(NewItem("lantern", "", "A dusty lantern."))

	_, err := julie.Parse("greet lantern", nil)

	var nsv *soul.NonSoulVerbError
	if assert.ErrorAs(err, &nsv) {
		assert.Equal("greet", nsv.Parsed.Verb)
	}
}

func Test_Parse_SomeVerbsMayTargetNonlivings(t *testing.T) {
	assert := assert.New(t)
	julie, _, _, yard := socialFixture()
	yard.AddItem(NewItem("lantern", "", "A dusty lantern."))

	parsed, err := julie.Parse("kick lantern", nil)

	if !assert.NoError(err) {
		return
	}
	assert.Equal("kick", parsed.Verb)
	if assert.Len(parsed.WhoOrder, 1) {
		assert.Equal("lantern", parsed.WhoOrder[0].Name())
	}
}

func Test_Parse_ExitAsSocialTargetIsRefused(t *testing.T) {
	assert := assert.New(t)
	julie, _, _, yard := socialFixture()
	street := NewLocation("street", "A long street.")
	yard.AddExit(NewExit("gate", street, "A rusty gate."))

	_, err := julie.Parse("greet gate", nil)

	if assert.Error(err) {
		assert.Equal("That doesn't make much sense.", talerrors.GameMessage(err))
	}
}

func Test_Parse_ExternalVerbIsHandedBack(t *testing.T) {
	assert := assert.New(t)
	julie, _, _, _ := socialFixture()

	_, err := julie.Parse("look", map[string]bool{"look": true})

	var nsv *soul.NonSoulVerbError
	if assert.ErrorAs(err, &nsv) {
		assert.Equal("look", nsv.Parsed.Verb)
	}
}

func Test_Living_InventoryAndSearch(t *testing.T) {
	assert := assert.New(t)
	julie, _, _, yard := socialFixture()
	carried := NewItem("rock", "", "A heavy rock.")
	floor := NewItem("lantern", "", "A dusty lantern.")
	julie.Give(carried)
	yard.AddItem(floor)

	// carried items come first in a name search
	assert.Equal(soul.Entity(carried), julie.SearchItem("rock"))
	assert.Equal(soul.Entity(floor), julie.SearchItem("lantern"))
	assert.Nil(julie.SearchItem("sword"))

	if assert.Len(julie.Inventory(), 1) {
		assert.Equal("rock", julie.Inventory()[0].Name())
	}

	assert.True(julie.Drop(carried))
	assert.False(julie.Drop(carried))
	assert.Empty(julie.Inventory())
}

func Test_Living_MoveTo(t *testing.T) {
	assert := assert.New(t)
	julie, _, _, yard := socialFixture()
	street := NewLocation("street", "A long street.")

	julie.MoveTo(street)

	assert.NotContains(yard.Livings(), soul.Entity(julie))
	assert.Contains(street.Livings(), soul.Entity(julie))
	assert.Equal(street, julie.Here())

	julie.MoveTo(nil)
	assert.Empty(street.Livings())
	assert.Nil(julie.Here())
}

func Test_Location_TellExcludesAndTargets(t *testing.T) {
	assert := assert.New(t)
	julie, bob, alice, yard := socialFixture()
	bobTold := tellRecorder(bob)
	aliceTold := tellRecorder(alice)

	yard.Tell("room message", julie, []soul.Entity{bob}, "target message")

	assert.Equal([]string{"target message"}, *bobTold)
	assert.Equal([]string{"room message"}, *aliceTold)
}

func Test_PronounsForGender(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(PronounsMasculine, PronounsForGender("m"))
	assert.Equal(PronounsFeminine, PronounsForGender("f"))
	assert.Equal(PronounsNeuter, PronounsForGender("n"))
	assert.Equal(PronounsNeuter, PronounsForGender("x"))

	assert.Equal(PronounSet{"she", "her", "her"}, PronounsFeminine)
	assert.Equal(PronounSet{"he", "him", "his"}, PronounsMasculine)
	assert.Equal(PronounSet{"it", "it", "its"}, PronounsNeuter)
}
