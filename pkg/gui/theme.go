package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name       string      `json:"name"`
	Background tcell.Color `json:"background"`
	Border     tcell.Color `json:"border"`
	Label      tcell.Color `json:"label"`
	Value      tcell.Color `json:"value"`
	Player     tcell.Color `json:"player"`
	Clock      tcell.Color `json:"clock"`
	Msg        tcell.Color `json:"msg"`
	GameOver   tcell.Color `json:"gameOver"`
}

// ThemeHex is the form themes are stored in on disk
type ThemeHex struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Border     string `json:"border"`
	Label      string `json:"label"`
	Value      string `json:"value"`
	Player     string `json:"player"`
	Clock      string `json:"clock"`
	Msg        string `json:"msg"`
	GameOver   string `json:"gameOver"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		Name:       t.Name,
		Background: fmtHex(t.Background.Hex()),
		Border:     fmtHex(t.Border.Hex()),
		Label:      fmtHex(t.Label.Hex()),
		Value:      fmtHex(t.Value.Hex()),
		Player:     fmtHex(t.Player.Hex()),
		Clock:      fmtHex(t.Clock.Hex()),
		Msg:        fmtHex(t.Msg.Hex()),
		GameOver:   fmtHex(t.GameOver.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		Name:       t.Name,
		Background: tcell.GetColor(t.Background),
		Border:     tcell.GetColor(t.Border),
		Label:      tcell.GetColor(t.Label),
		Value:      tcell.GetColor(t.Value),
		Player:     tcell.GetColor(t.Player),
		Clock:      tcell.GetColor(t.Clock),
		Msg:        tcell.GetColor(t.Msg),
		GameOver:   tcell.GetColor(t.GameOver),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, errors.New("theme: no theme found")
}

// LoadThemes reads a JSON array of ThemeHex from path
func LoadThemes(path string) ([]ThemeHex, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	var themes []ThemeHex
	if err := json.Unmarshal(b, &themes); err != nil {
		return nil, fmt.Errorf("theme: parse %s: %w", path, err)
	}

	return themes, nil
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:       "basic",
	Background: tcell.ColorDefault,
	Border:     tcell.Color247,
	Label:      tcell.Color247,
	Value:      tcell.ColorDefault,
	Player:     tcell.Color45,
	Clock:      tcell.Color122,
	Msg:        tcell.Color160,
	GameOver:   tcell.Color167,
}

var ThemeDark = Theme{
	Name:       "dark",
	Background: tcell.Color233,
	Border:     tcell.Color240,
	Label:      tcell.Color245,
	Value:      tcell.Color252,
	Player:     tcell.Color223,
	Clock:      tcell.Color226,
	Msg:        tcell.Color218,
	GameOver:   tcell.Color160,
}

var BuiltinThemes = []Theme{ThemeBasic, ThemeDark}
