// Package inmem provides an in-memory implementation of the Tale server's
// persistence store. Nothing survives a restart; it exists for tests and for
// running the server without a database file.
package inmem

import (
	"fmt"

	"github.com/guicampos/tale/server/dao"
)

type store struct {
	users  *UsersRepository
	seshes *SessionsRepository
	coms   *CommandsRepository
}

func NewDatastore() dao.Store {
	st := &store{
		users:  NewUsersRepository(),
		seshes: NewSessionsRepository(),
	}
	st.coms = NewCommandsRepository(st.seshes)
	return st
}

func (s *store) Users() dao.UserRepository {
	return s.users
}

func (s *store) Sessions() dao.SessionRepository {
	return s.seshes
}

func (s *store) Commands() dao.CommandRepository {
	return s.coms
}

func (s *store) Close() error {
	var err error

	for _, c := range []interface{ Close() error }{s.users, s.seshes, s.coms} {
		if nextErr := c.Close(); nextErr != nil {
			if err != nil {
				err = fmt.Errorf("%s\nadditionally, %w", err, nextErr)
			} else {
				err = nextErr
			}
		}
	}

	return err
}
