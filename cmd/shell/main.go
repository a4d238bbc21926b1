package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"gridpath/astar"
	"gridpath/grid"
	"gridpath/shell"
)

var (
	color   = flag.Bool("color", isatty.IsTerminal(os.Stdout.Fd()), "color the grid printout")
	debug   = flag.Bool("debug", false, "log search details to stderr")
	mapPath = flag.String("map", "", "read the grid from a text file instead of prompting")
)

func main() {
	flag.Parse()

	logger := zap.NewNop()
	if *debug {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	sh := shell.New(os.Stdin, os.Stdout, astar.New(astar.WithLogger(logger)), *color)
	if *mapPath != "" {
		byteArr, err := ioutil.ReadFile(*mapPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if sh.Grid, err = grid.Parse(string(byteArr)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if _, err := sh.Run(); err != nil {
		logger.Error("shell", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
