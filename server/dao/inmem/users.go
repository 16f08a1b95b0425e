package inmem

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guicampos/tale/internal/util"
	"github.com/guicampos/tale/server/dao"
)

func NewUsersRepository() *UsersRepository {
	return &UsersRepository{
		users:           make(map[uuid.UUID]dao.User),
		byUsernameIndex: make(map[string]uuid.UUID),
	}
}

type UsersRepository struct {
	users           map[uuid.UUID]dao.User
	byUsernameIndex map[string]uuid.UUID
}

func (repo *UsersRepository) Close() error {
	return nil
}

func (repo *UsersRepository) Create(ctx context.Context, user dao.User) (dao.User, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.User{}, fmt.Errorf("could not generate ID: %w", err)
	}

	user.ID = newUUID

	// make sure it's not already in the DB
	if _, ok := repo.byUsernameIndex[user.Username]; ok {
		return dao.User{}, dao.ErrConstraintViolation
	}

	now := time.Now()
	user.Created = now
	user.Modified = now
	user.LastLogoutTime = now

	repo.users[user.ID] = user
	repo.byUsernameIndex[user.Username] = user.ID

	return user, nil
}

func (repo *UsersRepository) GetAll(ctx context.Context) ([]dao.User, error) {
	all := make([]dao.User, 0, len(repo.users))

	for k := range repo.users {
		all = append(all, repo.users[k])
	}

	all = util.SortBy(all, func(l, r dao.User) bool {
		return l.ID.String() < r.ID.String()
	})

	return all, nil
}

func (repo *UsersRepository) Update(ctx context.Context, id uuid.UUID, user dao.User) (dao.User, error) {
	existing, ok := repo.users[id]
	if !ok {
		return dao.User{}, dao.ErrNotFound
	}

	// check for conflicts on this table only
	// (inmem does not support enforcement of foreign keys)
	if user.Username != existing.Username {
		if _, ok := repo.byUsernameIndex[user.Username]; ok {
			return dao.User{}, dao.ErrConstraintViolation
		}
	} else if user.ID != id {
		if _, ok := repo.users[user.ID]; ok {
			return dao.User{}, dao.ErrConstraintViolation
		}
	}

	user.Modified = time.Now()
	repo.users[user.ID] = user
	repo.byUsernameIndex[user.Username] = user.ID
	if user.ID != id {
		delete(repo.users, id)
	}
	if user.Username != existing.Username {
		delete(repo.byUsernameIndex, existing.Username)
	}

	return user, nil
}

func (repo *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.User, error) {
	user, ok := repo.users[id]
	if !ok {
		return dao.User{}, dao.ErrNotFound
	}

	return user, nil
}

func (repo *UsersRepository) GetByUsername(ctx context.Context, username string) (dao.User, error) {
	userID, ok := repo.byUsernameIndex[username]
	if !ok {
		return dao.User{}, dao.ErrNotFound
	}

	return repo.users[userID], nil
}

func (repo *UsersRepository) Delete(ctx context.Context, id uuid.UUID) (dao.User, error) {
	user, ok := repo.users[id]
	if !ok {
		return dao.User{}, dao.ErrNotFound
	}

	delete(repo.byUsernameIndex, user.Username)
	delete(repo.users, user.ID)

	return user, nil
}
