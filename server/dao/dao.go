// Package dao provides data access objects for use in the Tale server.
package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
)

var (
	ErrConstraintViolation = errors.New("a uniqueness constraint was violated")
	ErrNotFound            = errors.New("the requested resource was not found")
)

// Store holds all the repositories the server persists through.
type Store interface {
	Users() UserRepository
	Sessions() SessionRepository
	Commands() CommandRepository

	// Close closes all repositories in the store.
	Close() error
}

type UserRepository interface {

	// Create creates a new User. All attributes except for auto-generated
	// fields are taken from the provided User.
	Create(ctx context.Context, user User) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Update(ctx context.Context, id uuid.UUID, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) (User, error)
	Close() error
}

type SessionRepository interface {
	Create(ctx context.Context, s Session) (Session, error)
	GetAll(ctx context.Context) ([]Session, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)
	Update(ctx context.Context, id uuid.UUID, s Session) (Session, error)
	Delete(ctx context.Context, id uuid.UUID) (Session, error)
	Close() error
}

type CommandRepository interface {
	Create(ctx context.Context, c Command) (Command, error)
	GetAll(ctx context.Context) ([]Command, error)
	GetAllBySession(ctx context.Context, sessionID uuid.UUID) ([]Command, error)
	GetByID(ctx context.Context, id uuid.UUID) (Command, error)
	Delete(ctx context.Context, id uuid.UUID) (Command, error)
	Close() error
}

type Role int

const (
	Guest Role = iota
	Unverified
	Normal

	Admin Role = 100
)

func (r Role) String() string {
	switch r {
	case Guest:
		return "guest"
	case Unverified:
		return "unverified"
	case Normal:
		return "normal"
	case Admin:
		return "admin"
	default:
		return fmt.Sprintf("Role(%d)", r)
	}
}

func ParseRole(s string) (Role, error) {
	check := strings.ToLower(s)
	switch check {
	case "guest":
		return Guest, nil
	case "unverified":
		return Unverified, nil
	case "normal":
		return Normal, nil
	case "admin":
		return Admin, nil
	default:
		return Guest, fmt.Errorf("must be one of 'guest', 'unverified', 'normal', or 'admin'")
	}
}

type User struct {
	ID             uuid.UUID
	Username       string
	Password       string
	Role           Role
	Created        time.Time
	Modified       time.Time
	LastLogoutTime time.Time
	LastLoginTime  time.Time
}

// Session is one user's run of a game. Its State holds the minimal
// information needed to put the player back where they were.
type Session struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	State   GameState
	Created time.Time
}

// GameState is the persistable part of a player's presence in the world. It
// round-trips through a REZI binary encoding for storage.
type GameState struct {
	Location  string
	Inventory []string
}

func (gs GameState) MarshalBinary() ([]byte, error) {
	enc := rezi.EncString(gs.Location)
	enc = append(enc, rezi.EncInt(len(gs.Inventory))...)
	for _, item := range gs.Inventory {
		enc = append(enc, rezi.EncString(item)...)
	}
	return enc, nil
}

func (gs *GameState) UnmarshalBinary(data []byte) error {
	var n int
	var err error

	gs.Location, n, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("location: %w", err)
	}
	data = data[n:]

	var count int
	count, n, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("inventory count: %w", err)
	}
	data = data[n:]

	gs.Inventory = nil
	for i := 0; i < count; i++ {
		var item string
		item, n, err = rezi.DecString(data)
		if err != nil {
			return fmt.Errorf("inventory[%d]: %w", i, err)
		}
		data = data[n:]
		gs.Inventory = append(gs.Inventory, item)
	}
	return nil
}

// Command is one line of input a user sent to a session, kept for history.
type Command struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Input     string
	Created   time.Time
}
