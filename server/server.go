// Package server provides an HTTP REST server that runs Tale worlds for
// remote players and manages the accounts, sessions, and command history
// behind them.
package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guicampos/tale/internal/twd"
	"github.com/guicampos/tale/server/dao"
	"github.com/guicampos/tale/server/dao/inmem"
	"github.com/guicampos/tale/server/dao/sqlite"
	"github.com/guicampos/tale/server/serr"
	"golang.org/x/crypto/bcrypt"
)

// TaleServer is an HTTP REST server that provides Tale game sessions and
// associated resources. The zero-value of a TaleServer should not be used
// directly; call New() to get one ready for use.
type TaleServer struct {
	router        http.Handler
	db            dao.Store
	world         twd.WorldData
	live          map[uuid.UUID]*gameSession
	mu            *sync.Mutex
	unauthedDelay time.Duration
	jwtSecret     []byte
}

// New creates a new TaleServer that uses the given JWT secret for securing
// logins and serves the world loaded from worldFilePath. If dbPath is empty
// the server keeps everything in memory; otherwise it is the directory the
// SQLite database file lives in.
func New(tokenSecret []byte, dbPath string, worldFilePath string) (TaleServer, error) {
	ts := TaleServer{
		jwtSecret:     tokenSecret,
		unauthedDelay: time.Second,
		live:          make(map[uuid.UUID]*gameSession),
		mu:            &sync.Mutex{},
	}

	var err error
	ts.world, err = twd.LoadWorldFile(worldFilePath)
	if err != nil {
		return ts, fmt.Errorf("loading world file: %w", err)
	}

	if dbPath != "" {
		ts.db, err = sqlite.NewDatastore(dbPath)
		if err != nil {
			return ts, err
		}
	} else {
		ts.db = inmem.NewDatastore()
	}

	ts.router = newRouter(ts)

	return ts, nil
}

// ServeForever begins listening on the given address and port for HTTP REST
// client requests. If address is kept as "", it will default to "localhost".
// If port is less than 1, it will default to 8080.
func (ts TaleServer) ServeForever(address string, port int) {
	if address == "" {
		address = "localhost"
	}
	if port < 1 {
		port = 8080
	}

	listenAddress := fmt.Sprintf("%s:%d", address, port)
	log.Printf("INFO  Listening on %s", listenAddress)
	log.Fatalf("FATAL %v", http.ListenAndServe(listenAddress, ts.router))
}

// Close closes the server's persistence store.
func (ts TaleServer) Close() error {
	return ts.db.Close()
}

// Login verifies the provided username and password against the existing
// user in persistence and returns that user if they match. A successful
// login updates the user's last login time.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If the credentials do not
// match a user or if the password is incorrect, it will match
// serr.ErrBadCredentials. If the error occured due to an unexpected problem
// with the DB, it will match serr.ErrDB.
func (ts TaleServer) Login(ctx context.Context, username string, password string) (dao.User, error) {
	user, err := ts.db.Users().GetByUsername(ctx, username)
	if err != nil {
		if err == dao.ErrNotFound {
			return dao.User{}, serr.ErrBadCredentials
		}
		return dao.User{}, serr.WrapDB("", err)
	}

	// verify password
	bcryptHash, err := base64.StdEncoding.DecodeString(user.Password)
	if err != nil {
		return dao.User{}, err
	}

	err = bcrypt.CompareHashAndPassword(bcryptHash, []byte(password))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return dao.User{}, serr.ErrBadCredentials
		}
		return dao.User{}, serr.WrapDB("", err)
	}

	user.LastLoginTime = time.Now()
	updated, err := ts.db.Users().Update(ctx, user.ID, user)
	if err != nil {
		return dao.User{}, serr.New("could not update user", err, serr.ErrDB)
	}

	return updated, nil
}

// Logout marks the user with the given ID as having logged out, invalidating
// any login that may be active. Returns the user entity that was logged out.
//
// If the user doesn't exist the returned error matches serr.ErrNotFound; an
// unexpected DB problem matches serr.ErrDB.
func (ts TaleServer) Logout(ctx context.Context, who uuid.UUID) (dao.User, error) {
	existing, err := ts.db.Users().GetByID(ctx, who)
	if err != nil {
		if err == dao.ErrNotFound {
			return dao.User{}, serr.ErrNotFound
		}
		return dao.User{}, serr.New("could not retrieve user", err, serr.ErrDB)
	}

	existing.LastLogoutTime = time.Now()

	updated, err := ts.db.Users().Update(ctx, existing.ID, existing)
	if err != nil {
		return dao.User{}, serr.New("could not update user", err, serr.ErrDB)
	}

	return updated, nil
}

// CreateUser creates a new user with the given username and password.
// Returns the newly-created user as it exists after creation.
//
// If a user with that username is already present the returned error matches
// serr.ErrAlreadyExists; an invalid argument matches serr.ErrBadArgument; an
// unexpected DB problem matches serr.ErrDB.
func (ts TaleServer) CreateUser(ctx context.Context, username, password string, role dao.Role) (dao.User, error) {
	var err error
	if username == "" {
		return dao.User{}, serr.New("username cannot be blank", serr.ErrBadArgument)
	}
	if password == "" {
		return dao.User{}, serr.New("password cannot be blank", serr.ErrBadArgument)
	}

	_, err = ts.db.Users().GetByUsername(ctx, username)
	if err == nil {
		return dao.User{}, serr.New("a user with that username already exists", serr.ErrAlreadyExists)
	} else if err != dao.ErrNotFound {
		return dao.User{}, serr.WrapDB("", err)
	}

	storedPass, err := hashPassword(password)
	if err != nil {
		return dao.User{}, err
	}

	newUser := dao.User{
		Username: username,
		Password: storedPass,
		Role:     role,
	}

	user, err := ts.db.Users().Create(ctx, newUser)
	if err != nil {
		if err == dao.ErrConstraintViolation {
			return dao.User{}, serr.ErrAlreadyExists
		}
		return dao.User{}, serr.New("could not create user", err, serr.ErrDB)
	}

	return user, nil
}

// UpdateUser sets the username and role of the user with the given ID.
// Returns the updated user. It cannot be used to update the password; use
// UpdatePassword for that.
//
// A conflicting username matches serr.ErrAlreadyExists; a missing user
// matches serr.ErrNotFound; an invalid argument matches serr.ErrBadArgument;
// an unexpected DB problem matches serr.ErrDB.
func (ts TaleServer) UpdateUser(ctx context.Context, id, username string, role dao.Role) (dao.User, error) {
	if username == "" {
		return dao.User{}, serr.New("username cannot be blank", serr.ErrBadArgument)
	}

	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.User{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	daoUser, err := ts.db.Users().GetByID(ctx, uuidID)
	if err != nil {
		if err == dao.ErrNotFound {
			return dao.User{}, serr.New("user not found", serr.ErrNotFound)
		}
		return dao.User{}, serr.WrapDB("", err)
	}

	if daoUser.Username != username {
		_, err := ts.db.Users().GetByUsername(ctx, username)
		if err == nil {
			return dao.User{}, serr.New("a user with that username already exists", serr.ErrAlreadyExists)
		} else if err != dao.ErrNotFound {
			return dao.User{}, serr.WrapDB("", err)
		}
	}

	daoUser.Username = username
	daoUser.Role = role

	updatedUser, err := ts.db.Users().Update(ctx, uuidID, daoUser)
	if err != nil {
		if err == dao.ErrConstraintViolation {
			return dao.User{}, serr.New("a user with that username already exists", serr.ErrAlreadyExists)
		} else if err == dao.ErrNotFound {
			return dao.User{}, serr.New("user not found", serr.ErrNotFound)
		}
		return dao.User{}, serr.WrapDB("", err)
	}

	return updatedUser, nil
}

// UpdatePassword sets the password of the user with the given ID to the new
// password. The new password cannot be empty. Returns the updated user.
func (ts TaleServer) UpdatePassword(ctx context.Context, id, password string) (dao.User, error) {
	if password == "" {
		return dao.User{}, serr.New("password cannot be empty", serr.ErrBadArgument)
	}
	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.User{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	existing, err := ts.db.Users().GetByID(ctx, uuidID)
	if err != nil {
		if err == dao.ErrNotFound {
			return dao.User{}, serr.New("no user with that ID exists", serr.ErrNotFound)
		}
		return dao.User{}, serr.WrapDB("", err)
	}

	existing.Password, err = hashPassword(password)
	if err != nil {
		return dao.User{}, err
	}

	updated, err := ts.db.Users().Update(ctx, uuidID, existing)
	if err != nil {
		if err == dao.ErrNotFound {
			return dao.User{}, serr.New("no user with that ID exists", serr.ErrNotFound)
		}
		return dao.User{}, serr.New("could not update user", err, serr.ErrDB)
	}

	return updated, nil
}

// DeleteUser deletes the user with the given ID. It returns the deleted user
// just after they were deleted.
func (ts TaleServer) DeleteUser(ctx context.Context, id string) (dao.User, error) {
	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.User{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	user, err := ts.db.Users().Delete(ctx, uuidID)
	if err != nil {
		if err == dao.ErrNotFound {
			return dao.User{}, serr.ErrNotFound
		}
		return dao.User{}, serr.New("could not delete user", err, serr.ErrDB)
	}

	return user, nil
}

// GetUser returns the user with the given ID.
func (ts TaleServer) GetUser(ctx context.Context, id string) (dao.User, error) {
	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.User{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	user, err := ts.db.Users().GetByID(ctx, uuidID)
	if err != nil {
		if err == dao.ErrNotFound {
			return dao.User{}, serr.ErrNotFound
		}
		return dao.User{}, serr.New("could not get user", err, serr.ErrDB)
	}

	return user, nil
}

// GetAllUsers returns all users currently in persistence.
func (ts TaleServer) GetAllUsers(ctx context.Context) ([]dao.User, error) {
	users, err := ts.db.Users().GetAll(ctx)
	if err != nil {
		return nil, serr.WrapDB("", err)
	}

	return users, nil
}

func hashPassword(password string) (string, error) {
	passHash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		if err == bcrypt.ErrPasswordTooLong {
			return "", serr.New("password is too long", err, serr.ErrBadArgument)
		}
		return "", serr.New("password could not be encrypted", err)
	}

	return base64.StdEncoding.EncodeToString(passHash), nil
}
