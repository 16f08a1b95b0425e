/*
Tale starts an interactive Tale session.

It reads in a world file, places the player in the designated starting
location, and then reads commands from stdin and prints what happens in the
game to stdout until the game is over or the "quit" command is input.

Usage:

	tale [flags]

The flags are:

	-version
		Give the current version of Tale and then exit.

	-w/-world [FILE]
		Use the provided TWD world data file. Defaults to the file
		"world.twd" in the current working directory.

	-p/-player [NAME]
		Use the given name for the player character.

	-d/-direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input even if launched
		in a tty with stdin and stdout.

Once a session has started, user input is parsed as game commands. For an
explanation of the commands, type "help" once in a session. To exit, type
"quit".
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/guicampos/tale"
	"github.com/guicampos/tale/internal/version"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine.
	ExitInitError
)

var (
	returnCode  int   = ExitSuccess
	flagVersion *bool = flag.Bool("version", false, "Gives the version info")
	worldFile   string
	playerName  string
	forceDirect bool
)

func init() {
	const (
		defaultWorldFile = "world.twd"
		worldUsage       = "the TWD world data file that contains the definition of the world"
		playerUsage      = "the name to use for the player character"
		forceDirectUsage = "force reading directly from stdin instead of going through GNU readline where possible"
	)
	flag.StringVar(&worldFile, "world", defaultWorldFile, worldUsage)
	flag.StringVar(&worldFile, "w", defaultWorldFile, worldUsage+" (shorthand)")
	flag.StringVar(&playerName, "player", "", playerUsage)
	flag.StringVar(&playerName, "p", "", playerUsage+" (shorthand)")
	flag.BoolVar(&forceDirect, "direct", false, forceDirectUsage)
	flag.BoolVar(&forceDirect, "d", false, forceDirectUsage+" (shorthand)")
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic("unrecoverable panic occured")
		} else {
			os.Exit(returnCode)
		}
	}()

	flag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	gameEng, initErr := tale.New(os.Stdin, os.Stdout, worldFile, playerName, forceDirect)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer gameEng.Close()

	err := gameEng.RunUntilQuit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}
}
