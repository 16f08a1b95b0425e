/*
Taleserver starts a Tale server and begins listening for new connections.

Usage:

	taleserver [flags]
	taleserver [flags] -l [[ADDRESS]:PORT]

Once started, the Tale server will listen for HTTP requests and respond to
them using REST protocol. By default, it will listen on localhost:8080. This
can be changed with the --listen/-l flag (or config via environment var). The
flag argument must be either a full address with port, such as
"192.168.0.2:6001", or just the port preceeded by a colon, such as ":6001".

If a JWT token secret is not given, a random one will be generated. As a
consequence, in this mode of operation all tokens are rendered invalid as
soon as the server shuts down. This is suitable for testing, but a secret
must be given via CLI flag or environment variable when running in
production.

The flags are:

	-v, --version
		Give the current version of the Tale server and then exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, will default to the value of environment
		variable TALE_LISTEN_ADDRESS, and if that is not given, will default
		to localhost:8080.

	-s, --secret TOKEN_SECRET
		Use the provided secret for signing JWT tokens. If there are less
		than 32 bytes in the secret, it will be repeated until it is. The
		maximum size is 64 bytes. If not given, will default to the value of
		environment variable TALE_TOKEN_SECRET. If no secret is specified or
		an empty secret is given, a random secret will be automatically
		generated.

	-w, --world FILE
		Use the provided TWD world data file for the world all sessions play
		in. If not given, will default to the value of environment variable
		TALE_WORLD, and if that is not given, to the file "world.twd" in the
		current working directory.

	--db DRIVER[:PARAMS]
		Use the given DB connection string. DRIVER must be one of the
		following: inmem, sqlite. inmem has no further params. sqlite needs
		the path to the data directory, such as sqlite:path/to/db_dir. If not
		given, will default to the value of environment variable
		TALE_DATABASE. If no DB driver is specified or an empty one is given,
		an in-memory database is automatically selected.
*/
package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/guicampos/tale/internal/version"
	"github.com/guicampos/tale/server"
	"github.com/guicampos/tale/server/dao"
	"github.com/guicampos/tale/server/serr"
	"github.com/spf13/pflag"
)

const (
	EnvListen = "TALE_LISTEN_ADDRESS"
	EnvSecret = "TALE_TOKEN_SECRET"
	EnvWorld  = "TALE_WORLD"
	EnvDB     = "TALE_DATABASE"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of the Tale server and then exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret  = pflag.StringP("secret", "s", "", "Use the given secret for token generation.")
	flagWorld   = pflag.StringP("world", "w", "", "Use the given TWD world data file.")
	flagDB      = pflag.String("db", "", "Use the given DB connection string.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (Tale v%s)\n", version.ServerCurrent, version.Current)
		return
	}

	args := pflag.Args()

	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	// get address info
	port := 0
	addr := ""
	listenAddr := os.Getenv(EnvListen)
	if pflag.Lookup("listen").Changed {
		listenAddr = *flagListen
	}
	if listenAddr != "" {
		bindParts := strings.SplitN(listenAddr, ":", 2)
		if len(bindParts) != 2 {
			fmt.Fprintf(os.Stderr, "Listen address is not in ADDRESS:PORT or :PORT format.\nDo -h for help.\n")
			os.Exit(1)
		}

		var err error

		addr = bindParts[0]
		port, err = strconv.Atoi(bindParts[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%q is not a valid port number.\nDo -h for help.\n", bindParts[1])
			os.Exit(1)
		}
	}

	// look at db connection string
	dbPath := ""
	dbConnStr := os.Getenv(EnvDB)
	if pflag.Lookup("db").Changed {
		dbConnStr = *flagDB
	}
	if dbConnStr != "" {
		dbParts := strings.SplitN(dbConnStr, ":", 2)
		if len(dbParts) != 2 && dbConnStr != "inmem" {
			fmt.Fprintf(os.Stderr, "Not a valid DB string: %q\nDo -h for help.\n", dbConnStr)
			os.Exit(1)
		}
		if len(dbParts) != 2 {
			dbParts = []string{"inmem", ""}
		}

		switch strings.ToLower(dbParts[0]) {
		case "inmem":
			dbPath = ""
		case "sqlite":
			dbPath = dbParts[1]
			err := os.MkdirAll(dbPath, 0770)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Could not build data directory: %s\n", err)
				os.Exit(1)
			}
		default:
			fmt.Fprintf(os.Stderr, "unsupported DB engine: %q\n", dbParts[0])
			os.Exit(1)
		}
	}

	// which world do we serve?
	worldFile := os.Getenv(EnvWorld)
	if pflag.Lookup("world").Changed {
		worldFile = *flagWorld
	}
	if worldFile == "" {
		worldFile = "world.twd"
	}

	// get token secret
	var tokSecret []byte
	tokSecStr := os.Getenv(EnvSecret)
	if pflag.Lookup("secret").Changed {
		tokSecStr = *flagSecret
	}
	// was the secret given?
	if tokSecStr != "" {
		// if so, validate it
		tokSecret = []byte(tokSecStr)

		for len(tokSecret) < 32 {
			doubledTokSecret := make([]byte, len(tokSecret)*2)
			copy(doubledTokSecret, tokSecret)
			copy(doubledTokSecret[len(tokSecret):], tokSecret)
			tokSecret = doubledTokSecret
		}

		if len(tokSecret) > 64 {
			// keys would be chopped at 64, so rather than the user thinking
			// they have more security by giving a longer key, refuse to start.
			fmt.Fprintf(os.Stderr, "Token secret is %d bytes, but it must be <= 64 bytes\nDo -h for help.\n", len(tokSecret))
			os.Exit(1)
		}
	} else {
		// use all 64 possible bytes if doing a generated secret
		tokSecret = make([]byte, 64)
		_, err := rand.Read(tokSecret)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not generate token secret: %s\n", err.Error())
			os.Exit(1)
		}

		// yell at the user bc they should know their secret might be bad
		log.Printf("WARN  Using generated token secret; all tokens issued will become invalid at shutdown")
	}

	// configuration complete, initialize the server
	ts, err := server.New(tokSecret, dbPath, worldFile)
	if err != nil {
		log.Fatalf("FATAL could not start server: %s", err.Error())
	}
	log.Printf("DEBUG Server initialized")

	// immediately create the admin user so we have someone we can log in as.
	_, err = ts.CreateUser(context.Background(), "admin", "password", dao.Admin)
	if err != nil && !errors.Is(err, serr.ErrAlreadyExists) {
		log.Printf("ERROR could not create initial admin user: %v", err)
		os.Exit(2)
	}
	if !errors.Is(err, serr.ErrAlreadyExists) {
		log.Printf("INFO  Added initial admin user with password 'password'...")
	}

	// okay, now actually launch it
	log.Printf("INFO  Starting Tale server %s...", version.ServerCurrent)
	ts.ServeForever(addr, port)
}
