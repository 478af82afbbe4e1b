package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/app"
	"github.com/iov-one/bazaar/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome     = "home"
	flagLogLevel = "log-level"
	varHome      *string
	varLogLevel  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".bazaard")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
	varLogLevel = flag.String(flagLogLevel, "info", "log level (debug, info, error, none)")
}

func helpMessage() {
	fmt.Println("bazaard")
	fmt.Println("          Asset registry and marketplace")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("run       Execute blocks of operations from a JSON file")
	fmt.Println("query     Print an asset or the assets of an account")
	fmt.Println("validate  Check that genesis files can be applied")
	fmt.Println("version   Print the app version")
	fmt.Println("")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	allowed, err := log.AllowLevel(*varLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	logger := log.NewFilter(log.NewTMLogger(log.NewSyncWriter(os.Stdout)), allowed).
		With("module", "bazaar")

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(app.GenInitOptions, logger, *varHome, rest)
	case "run":
		err = server.RunCmd(app.GenerateChain, logger, *varHome, rest)
	case "query":
		err = server.QueryCmd(app.GenerateChain, logger, *varHome, rest)
	case "validate":
		paths := rest
		if len(paths) == 0 {
			paths = []string{app.GenesisFile(*varHome)}
		}
		err = server.ValidateGenesis(app.NewStack().Init, paths)
	case "version":
		fmt.Println(bazaar.Version())
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		helpMessage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
