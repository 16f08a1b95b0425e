package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/guicampos/tale/server/dao"
	"github.com/guicampos/tale/server/serr"
	"github.com/stretchr/testify/assert"
)

const testWorldTWD = `
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

[[locations.items]]
name = "lantern"
description = "A dusty lantern."

[[locations]]
name = "street"
description = "A long street."
`

func testServer(t *testing.T) TaleServer {
	t.Helper()

	worldFile := filepath.Join(t.TempDir(), "world.twd")
	if err := os.WriteFile(worldFile, []byte(testWorldTWD), 0644); err != nil {
		t.Fatalf("could not write world file: %v", err)
	}

	ts, err := New([]byte("test-secret-test-secret-test-sec"), "", worldFile)
	if err != nil {
		t.Fatalf("could not create server: %v", err)
	}
	return ts
}

func Test_CreateUser(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := testServer(t)

	created, err := ts.CreateUser(ctx, "julie", "grape soda", dao.Normal)

	if !assert.NoError(err) {
		return
	}
	assert.Equal("julie", created.Username)
	assert.Equal(dao.Normal, created.Role)
	// the password never leaves as plaintext
	assert.NotEqual("grape soda", created.Password)

	_, err = ts.CreateUser(ctx, "julie", "other", dao.Normal)
	assert.ErrorIs(err, serr.ErrAlreadyExists)

	_, err = ts.CreateUser(ctx, "", "pw", dao.Normal)
	assert.ErrorIs(err, serr.ErrBadArgument)
	_, err = ts.CreateUser(ctx, "bob", "", dao.Normal)
	assert.ErrorIs(err, serr.ErrBadArgument)
}

func Test_Login(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := testServer(t)

	created, err := ts.CreateUser(ctx, "julie", "grape soda", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	loggedIn, err := ts.Login(ctx, "julie", "grape soda")
	if !assert.NoError(err) {
		return
	}
	assert.Equal(created.ID, loggedIn.ID)
	assert.True(loggedIn.LastLoginTime.After(created.LastLoginTime))

	_, err = ts.Login(ctx, "julie", "wrong")
	assert.ErrorIs(err, serr.ErrBadCredentials)

	_, err = ts.Login(ctx, "nobody", "grape soda")
	assert.ErrorIs(err, serr.ErrBadCredentials)
}

func Test_Logout(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := testServer(t)

	created, err := ts.CreateUser(ctx, "julie", "grape soda", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	loggedOut, err := ts.Logout(ctx, created.ID)
	if !assert.NoError(err) {
		return
	}
	assert.True(loggedOut.LastLogoutTime.After(created.LastLogoutTime))
}

func Test_GameSessionLifecycle(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := testServer(t)

	user, err := ts.CreateUser(ctx, "julie", "grape soda", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	sesh, opening, err := ts.StartSession(ctx, user)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(user.ID, sesh.UserID)
	assert.Equal("yard", sesh.State.Location)
	if assert.NotEmpty(opening) {
		assert.Equal("[Yard]", opening[0])
	}

	// picking up the lantern changes the saved state
	output, err := ts.ExecuteCommand(ctx, sesh.ID, "take lantern")
	if !assert.NoError(err) {
		return
	}
	assert.Contains(output, "You take the lantern.")
	stored, err := ts.GetSession(ctx, sesh.ID)
	if assert.NoError(err) {
		assert.Equal([]string{"lantern"}, stored.State.Inventory)
	}

	// moving through the gate changes the saved location
	output, err = ts.ExecuteCommand(ctx, sesh.ID, "gate")
	if !assert.NoError(err) {
		return
	}
	assert.Contains(output, "[Street]")
	stored, err = ts.GetSession(ctx, sesh.ID)
	if assert.NoError(err) {
		assert.Equal("street", stored.State.Location)
	}

	// a social command produces the actor message
	output, err = ts.ExecuteCommand(ctx, sesh.ID, "smile")
	if !assert.NoError(err) {
		return
	}
	assert.Contains(output, "You smile happily.")

	history, err := ts.CommandHistory(ctx, sesh.ID)
	if assert.NoError(err) && assert.Len(history, 3) {
		assert.Equal("take lantern", history[0].Input)
		assert.Equal("gate", history[1].Input)
		assert.Equal("smile", history[2].Input)
	}

	_, err = ts.EndSession(ctx, sesh.ID)
	assert.NoError(err)
	_, err = ts.GetSession(ctx, sesh.ID)
	assert.ErrorIs(err, serr.ErrNotFound)
}

func Test_ExecuteCommand_UnknownSession(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := testServer(t)

	_, err := ts.ExecuteCommand(ctx, uuid.New(), "smile")

	assert.ErrorIs(err, serr.ErrNotFound)
}
