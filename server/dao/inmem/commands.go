package inmem

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guicampos/tale/internal/util"
	"github.com/guicampos/tale/server/dao"
)

// NewCommandsRepository creates a new Commands repo. If seshRepo is given,
// creating a command whose session does not exist is a constraint violation.
func NewCommandsRepository(seshRepo dao.SessionRepository) *CommandsRepository {
	return &CommandsRepository{
		seshRepo:      seshRepo,
		coms:          make(map[uuid.UUID]dao.Command),
		bySeshIDIndex: make(map[uuid.UUID][]uuid.UUID),
	}
}

type CommandsRepository struct {
	coms          map[uuid.UUID]dao.Command
	seshRepo      dao.SessionRepository
	bySeshIDIndex map[uuid.UUID][]uuid.UUID
}

func (repo *CommandsRepository) Close() error {
	return nil
}

func (repo *CommandsRepository) Create(ctx context.Context, c dao.Command) (dao.Command, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Command{}, fmt.Errorf("could not generate ID: %w", err)
	}

	c.ID = newUUID
	c.Created = time.Now()

	if repo.seshRepo != nil {
		if _, err := repo.seshRepo.GetByID(ctx, c.SessionID); err != nil {
			if errors.Is(err, dao.ErrNotFound) {
				return dao.Command{}, dao.ErrConstraintViolation
			}
			return dao.Command{}, err
		}
	}

	repo.coms[c.ID] = c
	repo.bySeshIDIndex[c.SessionID] = append(repo.bySeshIDIndex[c.SessionID], c.ID)

	return c, nil
}

func (repo *CommandsRepository) GetAll(ctx context.Context) ([]dao.Command, error) {
	all := make([]dao.Command, 0, len(repo.coms))

	for k := range repo.coms {
		all = append(all, repo.coms[k])
	}

	all = util.SortBy(all, func(l, r dao.Command) bool {
		return l.ID.String() < r.ID.String()
	})

	return all, nil
}

// GetAllBySession returns the session's commands in the order they were
// created.
func (repo *CommandsRepository) GetAllBySession(ctx context.Context, sessionID uuid.UUID) ([]dao.Command, error) {
	bySesh := repo.bySeshIDIndex[sessionID]

	all := make([]dao.Command, len(bySesh))
	for i := range bySesh {
		all[i] = repo.coms[bySesh[i]]
	}

	return all, nil
}

func (repo *CommandsRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.Command, error) {
	c, ok := repo.coms[id]
	if !ok {
		return dao.Command{}, dao.ErrNotFound
	}

	return c, nil
}

func (repo *CommandsRepository) Delete(ctx context.Context, id uuid.UUID) (dao.Command, error) {
	c, ok := repo.coms[id]
	if !ok {
		return dao.Command{}, dao.ErrNotFound
	}

	bySesh := util.SliceRemove(c.ID, repo.bySeshIDIndex[c.SessionID])
	repo.bySeshIDIndex[c.SessionID] = bySesh
	if len(bySesh) < 1 {
		delete(repo.bySeshIDIndex, c.SessionID)
	}

	delete(repo.coms, c.ID)

	return c, nil
}
