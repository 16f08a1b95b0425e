package twd

import (
	"testing"

	"github.com/guicampos/tale/internal/world"
	"github.com/stretchr/testify/assert"
)

const validWorld = `
format = "TALE"
type = "WORLD"

[world]
start = "yard"

[[locations]]
name = "yard"
description = "A grassy yard."

[[locations.exits]]
direction = "gate"
to = "street"
description = "A rusty gate leads to the street."
aliases = ["north"]

[[locations.items]]
name = "lantern"
description = "A dusty lantern."

[[locations]]
name = "street"
description = "A long street."

[[npcs]]
name = "bob"
location = "yard"
gender = "m"
aggressive = true
default_verb = "greet"
`

func Test_LoadWorldBytes(t *testing.T) {
	assert := assert.New(t)

	wd, err := LoadWorldBytes([]byte(validWorld))

	if !assert.NoError(err) {
		return
	}
	assert.Equal("yard", wd.Start)
	assert.Len(wd.Locations, 2)

	yard := wd.Locations["yard"]
	if !assert.NotNil(yard) {
		return
	}
	assert.Equal("A grassy yard.", yard.Description())

	// the exit answers to its direction and all aliases
	gate, ok := yard.ExitTo("gate")
	if assert.True(ok) {
		assert.Equal(wd.Locations["street"], gate.Destination())
	}
	viaAlias, ok := yard.ExitTo("north")
	if assert.True(ok) {
		assert.Equal(gate, viaAlias)
	}

	if assert.Len(yard.Items(), 1) {
		assert.Equal("lantern", yard.Items()[0].Name())
	}

	if assert.Len(yard.Livings(), 1) {
		npc, isLiving := yard.Livings()[0].(*world.Living)
		if assert.True(isLiving) {
			assert.Equal("bob", npc.Name())
			assert.Equal("he", npc.Subjective())
			assert.True(npc.Aggressive)
			assert.Equal("greet", npc.DefaultVerb())
		}
	}
}

func Test_LoadWorldBytes_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectInErr string
	}{
		{
			name:        "wrong format",
			input:       "format = \"INI\"\ntype = \"WORLD\"\n",
			expectInErr: "format: must be \"TALE\"",
		},
		{
			name:        "wrong type",
			input:       "format = \"TALE\"\ntype = \"SAVE\"\n",
			expectInErr: "type: must be \"WORLD\"",
		},
		{
			name:        "no start location",
			input:       "format = \"TALE\"\ntype = \"WORLD\"\n[[locations]]\nname = \"yard\"\n",
			expectInErr: "start: must not be empty",
		},
		{
			name:        "unknown start location",
			input:       "format = \"TALE\"\ntype = \"WORLD\"\n[world]\nstart = \"moon\"\n[[locations]]\nname = \"yard\"\n",
			expectInErr: "no location named \"moon\" exists",
		},
		{
			name:        "nameless location",
			input:       "format = \"TALE\"\ntype = \"WORLD\"\n[world]\nstart = \"yard\"\n[[locations]]\ndescription = \"hm\"\n",
			expectInErr: "all locations must have a name",
		},
		{
			name:        "duplicate location name",
			input:       "format = \"TALE\"\ntype = \"WORLD\"\n[world]\nstart = \"yard\"\n[[locations]]\nname = \"yard\"\n[[locations]]\nname = \"yard\"\n",
			expectInErr: "name used more than once",
		},
		{
			name:        "exit to unknown location",
			input:       "format = \"TALE\"\ntype = \"WORLD\"\n[world]\nstart = \"yard\"\n[[locations]]\nname = \"yard\"\n[[locations.exits]]\ndirection = \"gate\"\nto = \"moon\"\n",
			expectInErr: "no location named \"moon\" exists",
		},
		{
			name:        "exit without direction",
			input:       "format = \"TALE\"\ntype = \"WORLD\"\n[world]\nstart = \"yard\"\n[[locations]]\nname = \"yard\"\n[[locations.exits]]\nto = \"yard\"\n",
			expectInErr: "all exits must have a direction",
		},
		{
			name:        "nameless item",
			input:       "format = \"TALE\"\ntype = \"WORLD\"\n[world]\nstart = \"yard\"\n[[locations]]\nname = \"yard\"\n[[locations.items]]\ndescription = \"hm\"\n",
			expectInErr: "all items must have a name",
		},
		{
			name:        "npc in unknown location",
			input:       "format = \"TALE\"\ntype = \"WORLD\"\n[world]\nstart = \"yard\"\n[[locations]]\nname = \"yard\"\n[[npcs]]\nname = \"bob\"\nlocation = \"moon\"\n",
			expectInErr: "no location named \"moon\" exists",
		},
		{
			name:        "npc with bad gender",
			input:       "format = \"TALE\"\ntype = \"WORLD\"\n[world]\nstart = \"yard\"\n[[locations]]\nname = \"yard\"\n[[npcs]]\nname = \"bob\"\nlocation = \"yard\"\ngender = \"q\"\n",
			expectInErr: "gender: must be one of",
		},
		{
			name:        "duplicate npc name",
			input:       "format = \"TALE\"\ntype = \"WORLD\"\n[world]\nstart = \"yard\"\n[[locations]]\nname = \"yard\"\n[[npcs]]\nname = \"bob\"\nlocation = \"yard\"\n[[npcs]]\nname = \"bob\"\nlocation = \"yard\"\n",
			expectInErr: "name used more than once",
		},
		{
			name:        "not toml",
			input:       "{\"format\": \"TALE\"}",
			expectInErr: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := LoadWorldBytes([]byte(tc.input))

			if !assert.Error(err) {
				return
			}
			if tc.expectInErr != "" {
				assert.ErrorContains(err, tc.expectInErr)
			}
		})
	}
}

func Test_ScanFileInfo(t *testing.T) {
	assert := assert.New(t)

	// the scan stops at the first table, so a body that is not yet valid
	// world data does not prevent reading the header
	data := []byte("format = \"TALE\"\ntype = \"WORLD\"\n[[locations]]\nname = 12\n")

	info, err := ScanFileInfo(data)

	if !assert.NoError(err) {
		return
	}
	assert.Equal("TALE", info.Format)
	assert.Equal("WORLD", info.Type)
}
