package gui

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeHexRoundTrip(t *testing.T) {
	for _, theme := range BuiltinThemes {
		hex := theme.Hex()
		assert.Equal(t, hex, hex.Theme().Hex(), theme.Name)
	}
}

func TestFmtHexDefault(t *testing.T) {
	assert.Equal(t, "#0", fmtHex(tcell.ColorDefault.Hex()))
	assert.Equal(t, tcell.ColorDefault, tcell.GetColor("#0"))
	assert.Equal(t, "#ff0000", fmtHex(tcell.NewRGBColor(255, 0, 0).Hex()))
}

func TestImportThemes(t *testing.T) {
	custom := ThemeHex{Name: "dark", Border: "#00ff00"}

	theme, err := ImportThemes("dark", []ThemeHex{custom})
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), theme.Border)

	theme, err = ImportThemes("dark", nil)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	_, err = ImportThemes("missing", []ThemeHex{custom})
	assert.Error(t, err)
}

func TestLoadThemes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themes.json")

	b, err := json.Marshal([]ThemeHex{ThemeBasic.Hex(), {Name: "mono", Msg: "#ffffff"}})
	require.NoError(t, err)
	require.NoError(t, ioutil.WriteFile(path, b, 0644))

	themes, err := LoadThemes(path)
	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, "mono", themes[1].Name)

	theme, err := ImportThemes("mono", themes)
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), theme.Msg)
}

func TestLoadThemesErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadThemes(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(dir, "bad.json")
	require.NoError(t, ioutil.WriteFile(path, []byte("{"), 0644))
	_, err = LoadThemes(path)
	assert.Error(t, err)
}
