package inmem

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guicampos/tale/internal/util"
	"github.com/guicampos/tale/server/dao"
)

func NewSessionsRepository() *SessionsRepository {
	return &SessionsRepository{
		seshes:        make(map[uuid.UUID]dao.Session),
		byUserIDIndex: make(map[uuid.UUID][]uuid.UUID),
	}
}

type SessionsRepository struct {
	seshes        map[uuid.UUID]dao.Session
	byUserIDIndex map[uuid.UUID][]uuid.UUID
}

func (repo *SessionsRepository) Close() error {
	return nil
}

func (repo *SessionsRepository) Create(ctx context.Context, s dao.Session) (dao.Session, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Session{}, fmt.Errorf("could not generate ID: %w", err)
	}

	s.ID = newUUID
	s.Created = time.Now()

	repo.seshes[s.ID] = s
	repo.byUserIDIndex[s.UserID] = append(repo.byUserIDIndex[s.UserID], s.ID)

	return s, nil
}

func (repo *SessionsRepository) GetAll(ctx context.Context) ([]dao.Session, error) {
	all := make([]dao.Session, 0, len(repo.seshes))

	for k := range repo.seshes {
		all = append(all, repo.seshes[k])
	}

	all = util.SortBy(all, func(l, r dao.Session) bool {
		return l.ID.String() < r.ID.String()
	})

	return all, nil
}

func (repo *SessionsRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]dao.Session, error) {
	byUser := repo.byUserIDIndex[userID]

	all := make([]dao.Session, len(byUser))
	for i := range byUser {
		all[i] = repo.seshes[byUser[i]]
	}

	all = util.SortBy(all, func(l, r dao.Session) bool {
		return l.ID.String() < r.ID.String()
	})

	return all, nil
}

func (repo *SessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.Session, error) {
	s, ok := repo.seshes[id]
	if !ok {
		return dao.Session{}, dao.ErrNotFound
	}

	return s, nil
}

func (repo *SessionsRepository) Update(ctx context.Context, id uuid.UUID, s dao.Session) (dao.Session, error) {
	existing, ok := repo.seshes[id]
	if !ok {
		return dao.Session{}, dao.ErrNotFound
	}

	// check for conflicts on this table only
	// (inmem does not support enforcement of foreign keys)
	if s.ID != id {
		if _, ok := repo.seshes[s.ID]; ok {
			return dao.Session{}, dao.ErrConstraintViolation
		}
	}

	repo.seshes[s.ID] = s
	if s.ID != id {
		delete(repo.seshes, id)

		if existing.UserID == s.UserID {
			byUser := repo.byUserIDIndex[existing.UserID]
			pos := util.SliceIndexOf(id, byUser)
			if pos < 0 {
				return dao.Session{}, fmt.Errorf("DB ASSERTION FAILURE: missing index entry for user %s to session %s", existing.UserID, existing.ID)
			}
			byUser[pos] = s.ID
			repo.byUserIDIndex[existing.UserID] = byUser
		}
	}

	if s.UserID != existing.UserID {
		// move it from the old index entry to the new one
		byUser := util.SliceRemove(existing.ID, repo.byUserIDIndex[existing.UserID])
		repo.byUserIDIndex[existing.UserID] = byUser
		if len(byUser) < 1 {
			delete(repo.byUserIDIndex, existing.UserID)
		}

		repo.byUserIDIndex[s.UserID] = append(repo.byUserIDIndex[s.UserID], s.ID)
	}

	return s, nil
}

func (repo *SessionsRepository) Delete(ctx context.Context, id uuid.UUID) (dao.Session, error) {
	s, ok := repo.seshes[id]
	if !ok {
		return dao.Session{}, dao.ErrNotFound
	}

	byUser := util.SliceRemove(s.ID, repo.byUserIDIndex[s.UserID])
	repo.byUserIDIndex[s.UserID] = byUser
	if len(byUser) < 1 {
		delete(repo.byUserIDIndex, s.UserID)
	}

	delete(repo.seshes, s.ID)

	return s, nil
}
