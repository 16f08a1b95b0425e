package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/guicampos/tale/internal/lang"
	"github.com/guicampos/tale/internal/soul"
	"github.com/guicampos/tale/internal/talerrors"
	"github.com/guicampos/tale/internal/world"
	"github.com/guicampos/tale/server/dao"
	"github.com/guicampos/tale/server/serr"
)

// serverVerbs are the non-soul verbs the server handles itself, passed to
// the soul as external verbs so parsing tolerates their free-form arguments.
var serverVerbs = map[string]bool{
	"look":      true,
	"l":         true,
	"examine":   true,
	"inventory": true,
	"inv":       true,
	"take":      true,
	"get":       true,
	"drop":      true,
	"help":      true,
}

// gameSession is a live player presence in the server's world. Output told
// to the player accumulates in the session until it is collected by the
// request that caused it.
type gameSession struct {
	player *world.Living
	output []string
}

func (gs *gameSession) collectOutput() []string {
	out := gs.output
	gs.output = nil
	return out
}

// StartSession creates a new game session for the given user, placing a
// fresh player in the world's start location. It returns the persisted
// session and the opening text the player sees.
func (ts TaleServer) StartSession(ctx context.Context, user dao.User) (dao.Session, []string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	sesh := ts.newLiveSession(user.Username, dao.GameState{Location: ts.world.Start})

	stored, err := ts.db.Sessions().Create(ctx, dao.Session{
		UserID: user.ID,
		State:  ts.snapshot(sesh),
	})
	if err != nil {
		sesh.player.MoveTo(nil)
		return dao.Session{}, nil, serr.New("could not create session", err, serr.ErrDB)
	}

	ts.live[stored.ID] = sesh
	sesh.describeLocation()

	return stored, sesh.collectOutput(), nil
}

// GetSession returns the stored session with the given ID.
func (ts TaleServer) GetSession(ctx context.Context, id uuid.UUID) (dao.Session, error) {
	sesh, err := ts.db.Sessions().GetByID(ctx, id)
	if err != nil {
		if err == dao.ErrNotFound {
			return dao.Session{}, serr.ErrNotFound
		}
		return dao.Session{}, serr.WrapDB("", err)
	}
	return sesh, nil
}

// CommandHistory returns the commands sent to the session with the given ID,
// oldest first.
func (ts TaleServer) CommandHistory(ctx context.Context, sessionID uuid.UUID) ([]dao.Command, error) {
	if _, err := ts.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	coms, err := ts.db.Commands().GetAllBySession(ctx, sessionID)
	if err != nil {
		return nil, serr.WrapDB("", err)
	}
	return coms, nil
}

// ExecuteCommand runs one command line in the given session and returns the
// lines of output the player sees. The command is recorded in the session's
// history and the session's saved state is brought up to date. A session
// that is not live (after a server restart) is resumed from its saved state
// first.
func (ts TaleServer) ExecuteCommand(ctx context.Context, sessionID uuid.UUID, input string) ([]string, error) {
	stored, err := ts.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	sesh, ok := ts.live[sessionID]
	if !ok {
		sesh = ts.resumeSession(ctx, stored)
		ts.live[sessionID] = sesh
	}

	input = lang.Normalize(input)
	sesh.runCommand(input)

	if _, err := ts.db.Commands().Create(ctx, dao.Command{SessionID: sessionID, Input: input}); err != nil {
		return nil, serr.New("could not record command", err, serr.ErrDB)
	}

	stored.State = ts.snapshot(sesh)
	if _, err := ts.db.Sessions().Update(ctx, sessionID, stored); err != nil {
		return nil, serr.New("could not save game state", err, serr.ErrDB)
	}

	return sesh.collectOutput(), nil
}

// EndSession removes the live player from the world and deletes the stored
// session along with its command history.
func (ts TaleServer) EndSession(ctx context.Context, sessionID uuid.UUID) (dao.Session, error) {
	ts.mu.Lock()
	if sesh, ok := ts.live[sessionID]; ok {
		sesh.player.MoveTo(nil)
		delete(ts.live, sessionID)
	}
	ts.mu.Unlock()

	sesh, err := ts.db.Sessions().Delete(ctx, sessionID)
	if err != nil {
		if err == dao.ErrNotFound {
			return dao.Session{}, serr.ErrNotFound
		}
		return dao.Session{}, serr.WrapDB("", err)
	}
	return sesh, nil
}

// newLiveSession creates the player living and places it per the given
// state. Callers must hold ts.mu.
func (ts TaleServer) newLiveSession(playerName string, state dao.GameState) *gameSession {
	sesh := &gameSession{}
	sesh.player = world.NewLiving(playerName, lang.Capital(playerName), world.PronounsNeuter)
	sesh.player.TellFunc = func(message string) {
		sesh.output = append(sesh.output, message)
	}

	loc, ok := ts.world.Locations[state.Location]
	if !ok {
		loc = ts.world.Locations[ts.world.Start]
	}
	sesh.player.MoveTo(loc)

	for _, itemName := range state.Inventory {
		sesh.player.Give(world.NewItem(itemName, "", ""))
	}

	return sesh
}

// resumeSession rebuilds a live session from a stored one.
func (ts TaleServer) resumeSession(ctx context.Context, stored dao.Session) *gameSession {
	playerName := "player"
	if user, err := ts.db.Users().GetByID(ctx, stored.UserID); err == nil {
		playerName = user.Username
	}
	return ts.newLiveSession(playerName, stored.State)
}

// snapshot captures the persistable state of a live session. Callers must
// hold ts.mu.
func (ts TaleServer) snapshot(sesh *gameSession) dao.GameState {
	state := dao.GameState{}
	if loc := sesh.player.Here(); loc != nil {
		state.Location = loc.Name()
	}
	for _, it := range sesh.player.Inventory() {
		state.Inventory = append(state.Inventory, it.Name())
	}
	return state
}

// runCommand puts one normalized command line through the player's soul and
// dispatches whatever comes out of it. All output goes to the session's
// buffer through the player's TellFunc.
func (gs *gameSession) runCommand(line string) {
	parsed, err := gs.player.Parse(line, serverVerbs)
	if err == nil {
		if err := gs.player.Socialize(parsed); err != nil {
			gs.player.Tell(talerrors.GameMessage(err))
			return
		}
		gs.player.RememberParse()
		return
	}

	var nsv *soul.NonSoulVerbError
	if errors.As(err, &nsv) {
		gs.handleNonSoul(nsv.Parsed)
		return
	}
	gs.player.Tell(talerrors.GameMessage(err))
}

func (gs *gameSession) handleNonSoul(parsed *soul.ParseResult) {
	loc := gs.player.Here()
	if exit, ok := loc.ExitTo(parsed.Verb); ok {
		gs.player.TellOthers(fmt.Sprintf("%s leaves.", lang.Capital(gs.player.Title())))
		gs.player.MoveTo(exit.Destination())
		gs.player.TellOthers(fmt.Sprintf("%s arrives.", lang.Capital(gs.player.Title())))
		gs.describeLocation()
		gs.player.RememberParse()
		return
	}

	switch parsed.Verb {
	case "look", "l":
		gs.describeLocation()
	case "examine":
		gs.examine(parsed)
	case "inventory", "inv":
		gs.showInventory()
	case "take", "get":
		gs.take(parsed)
	case "drop":
		gs.drop(parsed)
	case "help":
		gs.player.Tell("Type what you want to do, like 'greet bob' or 'smile happily'. " +
			"Move by typing a direction, and use 'look', 'examine', 'inventory', " +
			"'take' and 'drop' to interact with things.")
	default:
		gs.player.Tell("That doesn't work here.")
	}
}

func (gs *gameSession) describeLocation() {
	loc := gs.player.Here()
	gs.player.Tell("[" + lang.Capital(loc.Name()) + "]")
	if loc.Description() != "" {
		gs.player.Tell(loc.Description())
	}
	for _, it := range loc.Items() {
		gs.player.Tell(fmt.Sprintf("There is %s here.", lang.A(it.Title())))
	}
	for _, l := range loc.Livings() {
		if l == soul.Entity(gs.player) {
			continue
		}
		gs.player.Tell(fmt.Sprintf("%s is here.", lang.Capital(l.Title())))
	}
	if directions := loc.ExitDirections(); len(directions) > 0 {
		gs.player.Tell("Exits: " + lang.Join(directions, "and") + ".")
	}
}

func (gs *gameSession) examine(parsed *soul.ParseResult) {
	if len(parsed.WhoOrder) == 0 {
		if len(parsed.Unrecognized) > 0 {
			gs.player.Tell(fmt.Sprintf("You see no %s here.", parsed.Unrecognized[0]))
			return
		}
		gs.describeLocation()
		return
	}
	target := parsed.WhoOrder[0]
	switch t := target.(type) {
	case *world.Item:
		gs.player.Tell(describeOrTitle(t.Description(), t.Title()))
	case *world.Exit:
		gs.player.Tell(describeOrTitle(t.Description(), t.Title()))
	default:
		gs.player.Tell(fmt.Sprintf("That is %s.", target.Title()))
	}
}

func describeOrTitle(description, title string) string {
	if description != "" {
		return description
	}
	return fmt.Sprintf("It is %s.", lang.A(title))
}

func (gs *gameSession) showInventory() {
	items := gs.player.Inventory()
	if len(items) == 0 {
		gs.player.Tell("You are carrying nothing.")
		return
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = lang.A(it.Title())
	}
	gs.player.Tell("You are carrying " + lang.Join(names, "and") + ".")
}

func (gs *gameSession) take(parsed *soul.ParseResult) {
	for _, target := range parsed.WhoOrder {
		if it, ok := target.(*world.Item); ok {
			gs.player.Here().RemoveItem(it)
			gs.player.Give(it)
			gs.player.Tell(fmt.Sprintf("You take the %s.", it.Title()))
			gs.player.TellOthers(fmt.Sprintf("%s takes the %s.", lang.Capital(gs.player.Title()), it.Title()))
			gs.player.RememberParse()
			return
		}
	}
	gs.player.Tell("Take what?")
}

func (gs *gameSession) drop(parsed *soul.ParseResult) {
	for _, target := range parsed.WhoOrder {
		if it, ok := target.(*world.Item); ok && gs.player.Drop(it) {
			gs.player.Here().AddItem(it)
			gs.player.Tell(fmt.Sprintf("You drop the %s.", it.Title()))
			gs.player.TellOthers(fmt.Sprintf("%s drops the %s.", lang.Capital(gs.player.Title()), it.Title()))
			gs.player.RememberParse()
			return
		}
	}
	gs.player.Tell("Drop what?")
}
