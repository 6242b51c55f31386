package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/qnkhuat/tetristerm/pkg"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/tetris"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

type options struct {
	width, height int
	seed          int64
	period        float64
	nick          string
	scoreServer   string
	theme         string
	themes        string
	log           string
}

func main() {
	var o options
	flag.IntVar(&o.width, "width", DefaultWidth, "board width in cells")
	flag.IntVar(&o.height, "height", DefaultHeight, "board height in cells")
	flag.Int64Var(&o.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.Float64Var(&o.period, "period", tetris.MovingPeriod, "seconds between gravity steps")
	flag.StringVar(&o.nick, "nick", "", "nickname shown on the leaderboard")
	flag.StringVar(&o.scoreServer, "score-server", "", "address of the scoreboard server")
	flag.StringVar(&o.theme, "theme", gui.ThemeBasic.Name, "name of the color theme")
	flag.StringVar(&o.themes, "themes", "", "path to a JSON file with extra themes")
	flag.StringVar(&o.log, "log", "./tetris.log", "path to log file")
	flag.Parse()

	if err := run(o); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "tetris: %s\n", err)
		os.Exit(1)
	}
}

func run(o options) error {
	width, height, seed := o.width, o.height, o.seed
	if width < 4 || height < 4 {
		return fmt.Errorf("board must be at least 4x4, got %dx%d", width, height)
	}
	if o.period <= 0 {
		return fmt.Errorf("period must be positive, got %f", o.period)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	if err := pkg.InitLog(o.log, "CLIENT: "); err != nil {
		return err
	}

	var themes []gui.ThemeHex
	if o.themes != "" {
		var err error
		if themes, err = gui.LoadThemes(o.themes); err != nil {
			return err
		}
	}
	theme, err := gui.ImportThemes(o.theme, themes)
	if err != nil {
		return fmt.Errorf("%s: %w", o.theme, err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	player := pkg.Nickname(o.nick)
	log.Printf("New game for %s, seed %d", player, seed)

	size := tetris.Size{Width: width, Height: height}
	cl := gui.NewClient(gui.Config{
		Size: size,
		Options: []tetris.Option{
			tetris.WithSelector(tetris.NewBagSelector(tetris.NewRandomizer(seed))),
			tetris.WithSpawn(tetris.Point{X: (width - 4) / 2, Y: 0}),
			tetris.WithPeriod(o.period),
		},
		Theme:       theme,
		Player:      player,
		ScoreServer: o.scoreServer,
	})

	if err := cl.Run(); err != nil {
		return err
	}

	g := cl.State.Game
	bold := color.New(color.Bold)
	fmt.Printf("%s scored %s with %s lines in %s\n",
		color.CyanString(player),
		bold.Sprint(g.Score()),
		bold.Sprint(g.Lines()),
		cl.State.Clock)
	return nil
}
