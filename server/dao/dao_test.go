package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GameState_BinaryRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		state GameState
	}{
		{
			name:  "empty",
			state: GameState{},
		},
		{
			name:  "location only",
			state: GameState{Location: "yard"},
		},
		{
			name:  "location and inventory",
			state: GameState{Location: "street", Inventory: []string{"lantern", "rock"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			data, err := tc.state.MarshalBinary()
			if !assert.NoError(err) {
				return
			}

			var decoded GameState
			if !assert.NoError(decoded.UnmarshalBinary(data)) {
				return
			}
			assert.Equal(tc.state.Location, decoded.Location)
			assert.Equal(tc.state.Inventory, decoded.Inventory)
		})
	}
}

func Test_GameState_UnmarshalGarbage(t *testing.T) {
	assert := assert.New(t)

	var decoded GameState
	err := decoded.UnmarshalBinary([]byte{0xff, 0x00})

	assert.Error(err)
}

func Test_Role_RoundTrip(t *testing.T) {
	testCases := []struct {
		role Role
		text string
	}{
		{Guest, "guest"},
		{Unverified, "unverified"},
		{Normal, "normal"},
		{Admin, "admin"},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.text, tc.role.String())

			parsed, err := ParseRole(tc.text)
			if assert.NoError(err) {
				assert.Equal(tc.role, parsed)
			}
		})
	}
}

func Test_ParseRole_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseRole("emperor")

	assert.Error(err)
}
