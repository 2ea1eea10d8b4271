// Command branchwood is a command-line driver for the engine core: it
// runs perft counts and fixed-time searches from a given FEN. It does
// not speak the UCI protocol - that transport layer is out of scope.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkern/branchwood/internal/config"
	"github.com/dkern/branchwood/internal/engine"
	"github.com/dkern/branchwood/internal/logging"
	"github.com/dkern/branchwood/internal/position"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "", "path to configuration settings file (TOML)")
	logLvl := flag.String("loglvl", "info", "standard log level (critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFEN, "FEN of the position to search or run perft on")
	perft := flag.Int("perft", 0, "run perft to the given depth from -fen and exit")
	movetime := flag.Int("movetime", 0, "search time budget in milliseconds (0 uses the configured default)")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.Setup(*configFile)
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	// Packages that capture a logger in a package-level var do so before
	// config.Setup reads the level from file or command line, so the
	// level must be reapplied here.
	logging.GetLog()
	logging.GetSearchLog()

	e := engine.New()
	if err := e.SetPosition(*fen); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *perft > 0 {
		runPerft(e, *perft)
		return
	}

	result := e.Go(*movetime)
	out.Printf("bestmove %s\n", result.BestMove.UCI())
	out.Printf("info depth %d score %s nodes %d\n", result.Depth, result.Value, result.Nodes)
}

func runPerft(e *engine.Engine, depth int) {
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := e.Perft(d)
		elapsed := time.Since(start)
		out.Printf("perft %d: %d nodes in %s\n", d, nodes, elapsed)
	}
}

func printVersionInfo() {
	out.Println("branchwood - a UCI-core chess engine")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
