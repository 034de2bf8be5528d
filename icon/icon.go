// Package icon renders feedback symbols in the user's preferred variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares.
package icon

import (
	"github.com/spf13/viper"
	"github.com/stackr-cli/stackr/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns all icon variant names.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Push
	Pop
	Peek
	Empty
	Search
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success: {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:    {emoji: "💀", nerd: "", plain: "✗", kaomoji: "(╥﹏╥)", squares: "🟥"},
	Push:    {emoji: "📥", nerd: "", plain: "+", kaomoji: "(•̀ᴗ•́)", squares: "🟦"},
	Pop:     {emoji: "📤", nerd: "", plain: "-", kaomoji: "(ﾉ◕ヮ◕)ﾉ", squares: "🟪"},
	Peek:    {emoji: "👀", nerd: "", plain: "?", kaomoji: "(¬‿¬)", squares: "🟨"},
	Empty:   {emoji: "🫙", nerd: "", plain: "o", kaomoji: "(・・ )", squares: "⬜"},
	Search:  {emoji: "🔍", nerd: "", plain: "/", kaomoji: "(⊙_☉)", squares: "🟫"},
}

// Get renders i using the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
