package theme

// Theme names accepted by the preview entry point. The active name is also
// the class toggled on the document root.
const (
	Light = "light"
	Dark  = "dark"
)

// Token is a named design token and its value for one palette.
type Token struct {
	Name  string
	Value string
}

// Palette is an ordered token set.
type Palette []Token

// Value returns the value of the named token.
func (p Palette) Value(name string) (string, bool) {
	for _, t := range p {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

// LightPalette applies under :root.
var LightPalette = Palette{
	{"background", "0 0% 100%"},
	{"foreground", "0 0% 3.9%"},
	{"card", "0 0% 100%"},
	{"card-foreground", "0 0% 3.9%"},
	{"popover", "0 0% 100%"},
	{"popover-foreground", "0 0% 3.9%"},
	{"primary", "0 0% 9%"},
	{"primary-foreground", "0 0% 98%"},
	{"secondary", "0 0% 96.1%"},
	{"secondary-foreground", "0 0% 9%"},
	{"muted", "0 0% 96.1%"},
	{"muted-foreground", "0 0% 45.1%"},
	{"accent", "0 0% 96.1%"},
	{"accent-foreground", "0 0% 9%"},
	{"destructive", "0 84.2% 60.2%"},
	{"destructive-foreground", "0 0% 98%"},
	{"border", "0 0% 89.8%"},
	{"input", "0 0% 89.8%"},
	{"ring", "0 0% 3.9%"},
	{"radius", "0.5rem"},
}

// DarkPalette applies under the .dark root class. Radius is inherited from
// the light palette.
var DarkPalette = Palette{
	{"background", "0 0% 3.9%"},
	{"foreground", "0 0% 98%"},
	{"card", "0 0% 3.9%"},
	{"card-foreground", "0 0% 98%"},
	{"popover", "0 0% 3.9%"},
	{"popover-foreground", "0 0% 98%"},
	{"primary", "0 0% 98%"},
	{"primary-foreground", "0 0% 9%"},
	{"secondary", "0 0% 14.9%"},
	{"secondary-foreground", "0 0% 98%"},
	{"muted", "0 0% 14.9%"},
	{"muted-foreground", "0 0% 63.9%"},
	{"accent", "0 0% 14.9%"},
	{"accent-foreground", "0 0% 9%"},
	{"destructive", "0 62.8% 30.6%"},
	{"destructive-foreground", "0 0% 98%"},
	{"border", "0 0% 14.9%"},
	{"input", "0 0% 14.9%"},
	{"ring", "0 0% 83.1%"},
}

// ColorGroup maps a utility color name to its token. Groups with a
// foreground token get a nested DEFAULT/foreground pair in the utility config.
type ColorGroup struct {
	Name          string
	HasForeground bool
}

// UtilityColors lists the token colors exposed as utility classes.
var UtilityColors = []ColorGroup{
	{Name: "background"},
	{Name: "foreground"},
	{Name: "primary", HasForeground: true},
	{Name: "secondary", HasForeground: true},
	{Name: "muted", HasForeground: true},
	{Name: "accent", HasForeground: true},
}
