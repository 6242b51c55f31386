package gui

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/tetris"
	"github.com/rivo/tview"
)

const (
	FrameRate      = time.Second / 60
	requestTimeout = 5 * time.Second
	leaderboardLen = 10
)

const helpText = `[::b]Keys[::-]
←/h  left
→/l  right
↓/j  soft drop
↑/z/x/k  rotate
space  hard drop
r  restart
q  quit`

type Config struct {
	Size        tetris.Size
	Options     []tetris.Option
	Theme       Theme
	Player      string
	ScoreServer string
}

// Client runs one game in a tview application. The engine is only touched
// from the application's event loop.
type Client struct {
	App    *tview.Application
	Layout *tview.Grid
	Box    *tview.Box
	Help   *tview.TextView
	Scores *tview.Table

	State       *GameState
	ScoreServer string

	done     chan struct{}
	stopOnce sync.Once
}

func NewClient(cfg Config) *Client {
	cl := &Client{
		App:         tview.NewApplication(),
		ScoreServer: cfg.ScoreServer,
		done:        make(chan struct{}),
	}

	opts := append([]tetris.Option{}, cfg.Options...)
	opts = append(opts, tetris.WithHaltOnBlockedSpawn(), tetris.WithHandler(cl.handle))
	cl.State = NewGameState(tetris.NewGame(cfg.Size, opts...), cfg.Theme, cfg.Player)

	cl.Box = tview.NewBox().SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		Render(screen, x+1, y, cl.State)
		return x, y, width, height
	})

	cl.Help = tview.NewTextView().
		SetDynamicColors(true).
		SetText(helpText)

	cl.Scores = tview.NewTable()
	cl.Scores.SetBorder(true).SetTitle(" Leaderboard ")

	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(cl.Help, 9, 0, false).
		AddItem(cl.Scores, 0, 1, false)

	w, h := Area(cfg.Size)
	cl.Layout = tview.NewGrid().
		SetRows(h, -1).
		SetColumns(w+1, 36, -1).
		AddItem(cl.Box, 0, 0, 2, 1, 0, 0, true).
		AddItem(side, 0, 1, 2, 1, 0, 0, false)

	cl.App.SetRoot(cl.Layout, true).SetInputCapture(cl.handleKey)
	cl.setLeaderboard(nil)

	return cl
}

// Update advances the engine and the clock by dt. It must run on the event
// loop.
func (cl *Client) Update(dt time.Duration) {
	if cl.State.Game.IsGameOver() {
		return
	}

	cl.State.Game.Update(dt.Seconds())
	cl.State.Clock.Advance(dt)
}

func (cl *Client) tick() {
	t := time.NewTicker(FrameRate)
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-cl.done:
			return
		case now := <-t.C:
			dt := now.Sub(last)
			last = now
			cl.App.QueueUpdateDraw(func() {
				cl.Update(dt)
			})
		}
	}
}

func (cl *Client) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if isQuit(ev) {
		cl.Stop()
		return nil
	}

	a := ActionFor(ev)
	if a == event.ActionUnknown {
		return ev
	}

	cl.Process(a)
	return nil
}

// Process applies a to the game. Only restart is accepted once the game is
// over.
func (cl *Client) Process(a event.Action) {
	g := cl.State.Game
	if g.IsGameOver() && a != event.ActionRestart {
		return
	}

	if a == event.ActionRestart {
		cl.State.Clock.Reset()
		cl.State.Msg = ""
	}
	g.ProcessAction(a)
}

// handle receives engine events. It runs synchronously inside engine calls.
func (cl *Client) handle(ev interface{}) {
	// The first spawn happens before State is set
	if cl.State == nil {
		return
	}

	switch ev := ev.(type) {
	case event.LinesClearedEvent:
		cl.State.Msg = fmt.Sprintf("+%d", ev.Score)
	case event.GameOverEvent:
		cl.State.Clock.Pause()
		cl.State.Msg = fmt.Sprintf("Game over, %d points. Press r to restart", ev.Score)
		log.Printf("Game over: score %d lines %d", ev.Score, ev.Lines)

		if cl.ScoreServer != "" {
			score := pkg.MessageScore{
				Name:    cl.State.Player,
				Score:   ev.Score,
				Lines:   ev.Lines,
				Seconds: int(cl.State.Clock.Elapsed.Seconds()),
			}
			go cl.submit(score)
		}
	}
}

func (cl *Client) submit(score pkg.MessageScore) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	lb, err := pkg.SubmitScore(ctx, cl.ScoreServer, score)
	if err != nil {
		log.Printf("Failed to submit score: %s", err)
		return
	}

	cl.App.QueueUpdateDraw(func() {
		if lb.Rank > 0 {
			cl.State.Msg = fmt.Sprintf("Game over, %d points, rank #%d. Press r to restart", score.Score, lb.Rank)
		}
		cl.setLeaderboard(lb.Entries)
	})
}

func (cl *Client) refreshLeaderboard() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	lb, err := pkg.FetchLeaderboard(ctx, cl.ScoreServer, leaderboardLen)
	if err != nil {
		log.Printf("Failed to fetch leaderboard: %s", err)
		return
	}

	cl.App.QueueUpdateDraw(func() {
		cl.setLeaderboard(lb.Entries)
	})
}

func (cl *Client) setLeaderboard(entries []pkg.Entry) {
	t := cl.State.Theme
	cl.Scores.Clear()

	if cl.ScoreServer == "" {
		cl.Scores.SetCell(0, 0, tview.NewTableCell("offline").SetTextColor(t.Label))
		return
	}

	header := []string{"#", "Name", "Score", "Lines"}
	for col, h := range header {
		cl.Scores.SetCell(0, col, tview.NewTableCell(h).
			SetTextColor(t.Label).
			SetSelectable(false))
	}

	for i, e := range entries {
		row := i + 1
		color := t.Value
		if e.Name == cl.State.Player {
			color = t.Player
		}
		cl.Scores.SetCell(row, 0, tview.NewTableCell(fmt.Sprint(row)).SetTextColor(t.Label))
		cl.Scores.SetCell(row, 1, tview.NewTableCell(e.Name).SetTextColor(color).SetExpansion(1))
		cl.Scores.SetCell(row, 2, tview.NewTableCell(fmt.Sprint(e.Score)).SetTextColor(color).SetAlign(tview.AlignRight))
		cl.Scores.SetCell(row, 3, tview.NewTableCell(fmt.Sprint(e.Lines)).SetTextColor(color).SetAlign(tview.AlignRight))
	}
}

// SetScreen runs the client on s instead of the terminal
func (cl *Client) SetScreen(s tcell.Screen) {
	cl.App.SetScreen(s)
}

// Run blocks until the client is stopped
func (cl *Client) Run() error {
	go cl.tick()
	if cl.ScoreServer != "" {
		go cl.refreshLeaderboard()
	}

	defer cl.stopTicker()
	return cl.App.Run()
}

func (cl *Client) stopTicker() {
	cl.stopOnce.Do(func() {
		close(cl.done)
	})
}

func (cl *Client) Stop() {
	cl.stopTicker()
	cl.App.Stop()
}
