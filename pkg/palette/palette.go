// Package palette defines the closed set of color themes a logo can be
// drawn from.
//
// Themes are a fixed enum; each maps to a static, ordered table of RGB hex
// values. There is no way to register a theme at runtime.
package palette

import (
	"slices"
	"strings"

	"github.com/utensils/hexalith/pkg/errors"
)

// Theme identifies a palette.
type Theme uint8

const (
	Mesos Theme = iota
	Google
	Blues
	Greens
	Reds
	Purples
	Rainbow

	themeCount
)

// Default is used when no theme is requested.
const Default = Mesos

type entry struct {
	name   string
	about  string
	colors []string
}

var themes = [themeCount]entry{
	Mesos: {"mesos", "Mesosphere brand colors", []string{
		"#FFCC09", "#F68A21", "#E42728", "#E81F6F", "#BD3D93",
		"#71459B", "#4D499C", "#3960A9", "#20B7E8", "#46B78C",
		"#49B650", "#78BF44", "#B3675E", "#3EAF51", "#5A4FCF",
	}},
	Google: {"google", "Google brand colors", []string{
		"#4285F4", "#EA4335", "#FBBC05", "#34A853", "#1A73E8",
		"#D93025", "#F9AB00", "#1E8E3E", "#174EA6", "#A50E0E",
		"#E37400", "#0D652D", "#5BB974", "#81C995", "#8AB4F8",
	}},
	Blues: {"blues", "Shades of blue", []string{
		"#0D47A1", "#1565C0", "#1976D2", "#1E88E5", "#2196F3",
		"#42A5F5", "#64B5F6", "#90CAF9", "#BBDEFB", "#2962FF",
		"#0277BD", "#01579B", "#039BE5", "#03A9F4", "#29B6F6",
	}},
	Greens: {"greens", "Shades of green", []string{
		"#1B5E20", "#2E7D32", "#388E3C", "#43A047", "#4CAF50",
		"#66BB6A", "#81C784", "#A5D6A7", "#C8E6C9", "#00C853",
		"#00695C", "#00796B", "#00897B", "#009688", "#26A69A",
	}},
	Reds: {"reds", "Shades of red", []string{
		"#B71C1C", "#C62828", "#D32F2F", "#E53935", "#F44336",
		"#EF5350", "#E57373", "#EF9A9A", "#FFCDD2", "#DD2C00",
		"#BF360C", "#E64A19", "#F4511E", "#FF5722", "#FF7043",
	}},
	Purples: {"purples", "Shades of purple", []string{
		"#4A148C", "#6A1B9A", "#7B1FA2", "#8E24AA", "#9C27B0",
		"#AB47BC", "#BA68C8", "#CE93D8", "#E1BEE7", "#880E4F",
		"#AD1457", "#C2185B", "#D81B60", "#E91E63", "#EC407A",
	}},
	Rainbow: {"rainbow", "Full spectrum", []string{
		"#FF0000", "#FF4500", "#FF8C00", "#FFA500", "#FFD700",
		"#FFFF00", "#ADFF2F", "#32CD32", "#008000", "#00FF7F",
		"#00FFFF", "#1E90FF", "#0000FF", "#4B0082", "#8A2BE2",
		"#FF00FF", "#C71585",
	}},
}

// String returns the theme's lowercase name.
func (t Theme) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return themes[t].name
}

// Valid reports whether t is one of the defined themes.
func (t Theme) Valid() bool { return t < themeCount }

// Describe returns a one-line description.
func (t Theme) Describe() string {
	if !t.Valid() {
		return ""
	}
	return themes[t].about
}

// Colors returns a copy of the theme's hex color table, in palette order.
func (t Theme) Colors() []string {
	if !t.Valid() {
		return nil
	}
	return slices.Clone(themes[t].colors)
}

// Len returns the number of colors in the theme.
func (t Theme) Len() int {
	if !t.Valid() {
		return 0
	}
	return len(themes[t].colors)
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Theme) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Parse resolves a theme name, case-insensitively. An empty name yields
// [Default].
func Parse(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default, nil
	}
	for i := range themeCount {
		if themes[i].name == name {
			return Theme(i), nil
		}
	}
	return Default, errors.InvalidParameter("theme", "one of "+strings.Join(Names(), ", "), "\""+name+"\"")
}

// All returns every theme in declaration order.
func All() []Theme {
	out := make([]Theme, themeCount)
	for i := range out {
		out[i] = Theme(i)
	}
	return out
}

// Names returns every theme name in declaration order.
func Names() []string {
	out := make([]string, themeCount)
	for i := range out {
		out[i] = themes[i].name
	}
	return out
}
