// Package tale contains a CLI-driven engine that reads player commands and
// runs them through the soul continuously until the player quits.
package tale

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/guicampos/tale/internal/input"
	"github.com/guicampos/tale/internal/lang"
	"github.com/guicampos/tale/internal/soul"
	"github.com/guicampos/tale/internal/talerrors"
	"github.com/guicampos/tale/internal/twd"
	"github.com/guicampos/tale/internal/world"
)

const consoleOutputWidth = 80

// builtinVerbs are the non-soul verbs the engine itself handles. They are
// passed to the soul as external verbs so parsing tolerates their free-form
// arguments.
var builtinVerbs = map[string]bool{
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

// Engine contains the things needed to run a game from an interactive shell
// attached to an input stream and an output stream.
type Engine struct {
	locations map[string]*world.Location
	player    *world.Living
	in        input.Reader
	out       *bufio.Writer
	running   bool
}

// New creates a new engine ready to operate on the given input and output
// streams. The world is loaded from the TWD file at worldFilePath and the
// player is placed in its start location.
//
// If nil is given for the input stream, input is read from stdin. If nil is
// given for the output stream, output goes to stdout. When attached to the
// standard streams, a readline-backed reader is used unless
// forceDirectInput is set.
func New(inputStream io.Reader, outputStream io.Writer, worldFilePath, playerName string, forceDirectInput bool) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	worldData, err := twd.LoadWorldFile(worldFilePath)
	if err != nil {
		return nil, fmt.Errorf("loading world file: %w", err)
	}

	eng := &Engine{
		locations: worldData.Locations,
		out:       bufio.NewWriter(outputStream),
	}

	if playerName == "" {
		playerName = "player"
	}

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout
	if useReadline {
		ir, err := input.NewInteractiveReader()
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
		ir.SetPrompt(playerName + "> ")
		eng.in = ir
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}
	eng.player = world.NewLiving(playerName, lang.Capital(playerName), world.PronounsNeuter)
	eng.player.TellFunc = func(message string) {
		eng.writeWrapped(message)
	}
	eng.player.MoveTo(worldData.Locations[worldData.Start])

	return eng, nil
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running game engine")
	}
	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}
	return nil
}

// RunUntilQuit begins reading commands from the streams and applying them to
// the game until the quit command is received or input runs out.
func (eng *Engine) RunUntilQuit() error {
	intro := "Welcome to Tale\n" +
		"===============\n\n"
	if _, err := eng.out.WriteString(intro); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	eng.describeLocation()
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}

	eng.running = true
	defer func() {
		eng.running = false
	}()

	for eng.running {
		line, err := eng.in.ReadCommand()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("get user command: %w", err)
		}
		line = lang.Normalize(line)
		if line == "quit" {
			break
		}

		eng.handleCommand(line)
		if err := eng.out.Flush(); err != nil {
			return fmt.Errorf("could not flush output: %w", err)
		}
	}

	if _, err := eng.out.WriteString("Goodbye\n"); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return eng.out.Flush()
}

// handleCommand runs one normalized command line through the soul and
// dispatches whatever comes out of it.
func (eng *Engine) handleCommand(line string) {
	parsed, err := eng.player.Parse(line, builtinVerbs)
	if err == nil {
		if err := eng.player.Socialize(parsed); err != nil {
			eng.writeWrapped(talerrors.GameMessage(err))
			return
		}
		eng.player.RememberParse()
		return
	}

	var nsv *soul.NonSoulVerbError
	if errors.As(err, &nsv) {
		eng.handleNonSoul(nsv.Parsed)
		return
	}
	eng.writeWrapped(talerrors.GameMessage(err))
}

// handleNonSoul deals with parsed commands the soul handed back: exit
// movement and the engine's own built-in verbs.
func (eng *Engine) handleNonSoul(parsed *soul.ParseResult) {
	loc := eng.player.Here()
	if _, ok := loc.ExitTo(parsed.Verb); ok {
		eng.moveThroughExit(parsed.Verb)
		eng.player.RememberParse()
		return
	}

	switch parsed.Verb {
	case "look", "l":
		eng.describeLocation()
	case "examine":
		eng.examine(parsed)
	case "inventory", "inv":
		eng.showInventory()
	case "take", "get":
		eng.take(parsed)
	case "drop":
		eng.drop(parsed)
	case "help":
		eng.showHelp()
	default:
		eng.writeWrapped("That doesn't work here.")
	}
}

func (eng *Engine) moveThroughExit(direction string) {
	loc := eng.player.Here()
	exit, _ := loc.ExitTo(direction)
	eng.player.TellOthers(fmt.Sprintf("%s leaves.", lang.Capital(eng.player.Title())))
	eng.player.MoveTo(exit.Destination())
	eng.player.TellOthers(fmt.Sprintf("%s arrives.", lang.Capital(eng.player.Title())))
	eng.describeLocation()
}

func (eng *Engine) describeLocation() {
	loc := eng.player.Here()
	eng.writeWrapped("[" + lang.Capital(loc.Name()) + "]")
	if loc.Description() != "" {
		eng.writeWrapped(loc.Description())
	}
	for _, it := range loc.Items() {
		eng.writeWrapped(fmt.Sprintf("There is %s here.", lang.A(it.Title())))
	}
	for _, l := range loc.Livings() {
		if l == soul.Entity(eng.player) {
			continue
		}
		eng.writeWrapped(fmt.Sprintf("%s is here.", lang.Capital(l.Title())))
	}
	if directions := loc.ExitDirections(); len(directions) > 0 {
		eng.writeWrapped("Exits: " + lang.Join(directions, "and") + ".")
	}
}

func (eng *Engine) examine(parsed *soul.ParseResult) {
	if len(parsed.WhoOrder) == 0 {
		if len(parsed.Unrecognized) > 0 {
			eng.writeWrapped(fmt.Sprintf("You see no %s here.", parsed.Unrecognized[0]))
			return
		}
		eng.describeLocation()
		return
	}
	target := parsed.WhoOrder[0]
	switch t := target.(type) {
	case *world.Item:
		eng.writeWrapped(describeOrTitle(t.Description(), t.Title()))
	case *world.Exit:
		eng.writeWrapped(describeOrTitle(t.Description(), t.Title()))
	default:
		eng.writeWrapped(fmt.Sprintf("That is %s.", target.Title()))
	}
}

func describeOrTitle(description, title string) string {
	if description != "" {
		return description
	}
	return fmt.Sprintf("It is %s.", lang.A(title))
}

func (eng *Engine) showInventory() {
	items := eng.player.Inventory()
	if len(items) == 0 {
		eng.writeWrapped("You are carrying nothing.")
		return
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = lang.A(it.Title())
	}
	eng.writeWrapped("You are carrying " + lang.Join(names, "and") + ".")
}

func (eng *Engine) take(parsed *soul.ParseResult) {
	for _, target := range parsed.WhoOrder {
		if it, ok := target.(*world.Item); ok {
			eng.player.Here().RemoveItem(it)
			eng.player.Give(it)
			eng.writeWrapped(fmt.Sprintf("You take the %s.", it.Title()))
			eng.player.TellOthers(fmt.Sprintf("%s takes the %s.", lang.Capital(eng.player.Title()), it.Title()))
			eng.player.RememberParse()
			return
		}
	}
	eng.writeWrapped("Take what?")
}

func (eng *Engine) drop(parsed *soul.ParseResult) {
	for _, target := range parsed.WhoOrder {
		if it, ok := target.(*world.Item); ok && eng.player.Drop(it) {
			eng.player.Here().AddItem(it)
			eng.writeWrapped(fmt.Sprintf("You drop the %s.", it.Title()))
			eng.player.TellOthers(fmt.Sprintf("%s drops the %s.", lang.Capital(eng.player.Title()), it.Title()))
			eng.player.RememberParse()
			return
		}
	}
	eng.writeWrapped("Drop what?")
}

var builtinHelp = [][2]string{
	{"look", "Describe the place you are in"},
	{"examine", "Look closely at something"},
	{"inventory", "List what you are carrying"},
	{"take", "Pick something up"},
	{"drop", "Put something down"},
	{"help", "Show this message"},
	{"quit", "Stop playing"},
}

func (eng *Engine) showHelp() {
	eng.writeWrapped("Type what you want to do, like 'greet bob', 'smile happily' or " +
		"'say \"hello\" to alice'. You can also move by typing a direction. " +
		"Besides the social verbs, these commands are available:")

	table := rosed.Edit("").
		WithOptions(rosed.Options{ParagraphSeparator: "\n", NoTrailingLineSeparators: true}).
		InsertDefinitionsTable(0, builtinHelp, consoleOutputWidth).
		String()
	eng.out.WriteString(table + "\n")
}

// writeWrapped writes one message to the output, wrapped to the console
// width, followed by a newline.
func (eng *Engine) writeWrapped(message string) {
	if strings.TrimSpace(message) == "" {
		return
	}
	wrapped := rosed.Edit(message).Wrap(consoleOutputWidth).String()
	eng.out.WriteString(wrapped + "\n")
}
