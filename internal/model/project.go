package model

import "time"

// Project attribute names.
const (
	AttrName      = "name"
	AttrColorName = "color_name"
	AttrColorHex  = "color_hex"
)

// ProjectNameMaxLength is the longest project name the API accepts.
const ProjectNameMaxLength = 128

// Project groups tasks. ColorName and ColorHex travel together.
type Project struct {
	ID        string
	Name      string
	ColorName string
	ColorHex  string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Color is one entry of the project palette.
type Color struct {
	Name string
	Hex  string
}

// DefaultColor is used when a project is created without a color.
var DefaultColor = Color{Name: "slate", Hex: "#64748b"}

// Palette lists the colors a project may use.
var Palette = []Color{
	DefaultColor,
	{Name: "red", Hex: "#ef4444"},
	{Name: "orange", Hex: "#f97316"},
	{Name: "amber", Hex: "#f59e0b"},
	{Name: "green", Hex: "#22c55e"},
	{Name: "teal", Hex: "#14b8a6"},
	{Name: "blue", Hex: "#3b82f6"},
	{Name: "violet", Hex: "#8b5cf6"},
	{Name: "pink", Hex: "#ec4899"},
}

// LookupColor returns the palette entry for name.
func LookupColor(name string) (Color, bool) {
	for _, c := range Palette {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}
