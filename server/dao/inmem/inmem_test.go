package inmem

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/guicampos/tale/server/dao"
	"github.com/stretchr/testify/assert"
)

func Test_Users_CreateAndGet(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepository()

	created, err := repo.Create(ctx, dao.User{Username: "bob", Role: dao.Normal})

	if !assert.NoError(err) {
		return
	}
	assert.NotEqual(uuid.Nil, created.ID)
	assert.False(created.Created.IsZero())
	assert.False(created.Modified.IsZero())
	assert.False(created.LastLogoutTime.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	if assert.NoError(err) {
		assert.Equal(created, got)
	}

	got, err = repo.GetByUsername(ctx, "bob")
	if assert.NoError(err) {
		assert.Equal(created, got)
	}
}

func Test_Users_CreateDuplicateUsername(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepository()

	_, err := repo.Create(ctx, dao.User{Username: "bob"})
	if !assert.NoError(err) {
		return
	}

	_, err = repo.Create(ctx, dao.User{Username: "bob"})
	assert.ErrorIs(err, dao.ErrConstraintViolation)
}

func Test_Users_UpdateRename(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepository()

	created, err := repo.Create(ctx, dao.User{Username: "bob"})
	if !assert.NoError(err) {
		return
	}

	created.Username = "robert"
	updated, err := repo.Update(ctx, created.ID, created)
	if !assert.NoError(err) {
		return
	}
	assert.Equal("robert", updated.Username)

	// the old username no longer resolves, the new one does
	_, err = repo.GetByUsername(ctx, "bob")
	assert.ErrorIs(err, dao.ErrNotFound)
	got, err := repo.GetByUsername(ctx, "robert")
	if assert.NoError(err) {
		assert.Equal(updated.ID, got.ID)
	}
}

func Test_Users_UpdateRenameToTakenUsername(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepository()

	_, err := repo.Create(ctx, dao.User{Username: "alice"})
	if !assert.NoError(err) {
		return
	}
	bob, err := repo.Create(ctx, dao.User{Username: "bob"})
	if !assert.NoError(err) {
		return
	}

	bob.Username = "alice"
	_, err = repo.Update(ctx, bob.ID, bob)
	assert.ErrorIs(err, dao.ErrConstraintViolation)
}

func Test_Users_Delete(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepository()

	created, err := repo.Create(ctx, dao.User{Username: "bob"})
	if !assert.NoError(err) {
		return
	}

	deleted, err := repo.Delete(ctx, created.ID)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(created.ID, deleted.ID)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)
	_, err = repo.GetByUsername(ctx, "bob")
	assert.ErrorIs(err, dao.ErrNotFound)

	_, err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)
}

func Test_Sessions_CreateAndGetAllByUser(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewSessionsRepository()
	userID := uuid.New()
	otherID := uuid.New()

	s1, err := repo.Create(ctx, dao.Session{UserID: userID, State: dao.GameState{Location: "yard"}})
	if !assert.NoError(err) {
		return
	}
	s2, err := repo.Create(ctx, dao.Session{UserID: userID})
	if !assert.NoError(err) {
		return
	}
	_, err = repo.Create(ctx, dao.Session{UserID: otherID})
	if !assert.NoError(err) {
		return
	}

	byUser, err := repo.GetAllByUser(ctx, userID)
	if !assert.NoError(err) {
		return
	}
	assert.Len(byUser, 2)
	for _, s := range byUser {
		assert.Equal(userID, s.UserID)
		assert.True(s.ID == s1.ID || s.ID == s2.ID)
	}

	all, err := repo.GetAll(ctx)
	if assert.NoError(err) {
		assert.Len(all, 3)
	}
}

func Test_Sessions_UpdateState(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewSessionsRepository()

	created, err := repo.Create(ctx, dao.Session{UserID: uuid.New(), State: dao.GameState{Location: "yard"}})
	if !assert.NoError(err) {
		return
	}

	created.State = dao.GameState{Location: "street", Inventory: []string{"lantern"}}
	updated, err := repo.Update(ctx, created.ID, created)
	if !assert.NoError(err) {
		return
	}

	got, err := repo.GetByID(ctx, created.ID)
	if assert.NoError(err) {
		assert.Equal(updated.State, got.State)
	}
}

func Test_Sessions_DeleteMaintainsUserIndex(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewSessionsRepository()
	userID := uuid.New()

	created, err := repo.Create(ctx, dao.Session{UserID: userID})
	if !assert.NoError(err) {
		return
	}

	_, err = repo.Delete(ctx, created.ID)
	if !assert.NoError(err) {
		return
	}

	byUser, err := repo.GetAllByUser(ctx, userID)
	if assert.NoError(err) {
		assert.Empty(byUser)
	}
}

func Test_Commands_SessionConstraint(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	seshes := NewSessionsRepository()
	repo := NewCommandsRepository(seshes)

	// no such session
	_, err := repo.Create(ctx, dao.Command{SessionID: uuid.New(), Input: "smile"})
	assert.ErrorIs(err, dao.ErrConstraintViolation)

	sesh, err := seshes.Create(ctx, dao.Session{UserID: uuid.New()})
	if !assert.NoError(err) {
		return
	}
	created, err := repo.Create(ctx, dao.Command{SessionID: sesh.ID, Input: "smile"})
	if assert.NoError(err) {
		assert.Equal("smile", created.Input)
		assert.False(created.Created.IsZero())
	}
}

func Test_Commands_GetAllBySessionKeepsCreationOrder(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewCommandsRepository(nil)
	seshID := uuid.New()

	inputs := []string{"look", "take lantern", "go north"}
	for _, in := range inputs {
		_, err := repo.Create(ctx, dao.Command{SessionID: seshID, Input: in})
		if !assert.NoError(err) {
			return
		}
	}

	all, err := repo.GetAllBySession(ctx, seshID)
	if !assert.NoError(err) {
		return
	}
	if assert.Len(all, len(inputs)) {
		for i, in := range inputs {
			assert.Equal(in, all[i].Input)
		}
	}
}

func Test_Datastore_WiresRepositories(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	st := NewDatastore()

	// the commands repo enforces the session foreign key through the store
	_, err := st.Commands().Create(ctx, dao.Command{SessionID: uuid.New(), Input: "smile"})
	assert.ErrorIs(err, dao.ErrConstraintViolation)

	sesh, err := st.Sessions().Create(ctx, dao.Session{UserID: uuid.New()})
	if !assert.NoError(err) {
		return
	}
	_, err = st.Commands().Create(ctx, dao.Command{SessionID: sesh.ID, Input: "smile"})
	assert.NoError(err)

	assert.NoError(st.Close())
}
