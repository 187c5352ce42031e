package alert

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/termalert/pkg/geom"
)

// LoadTheme reads a YAML theme file and applies it over base. Fields
// absent from the file keep their base values, so a theme file only
// needs to name what it changes.
func LoadTheme(path string, base Theme) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read theme: %w", err)
	}
	return parseTheme(data, base)
}

func parseTheme(data []byte, base Theme) (Theme, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("parse theme: %w", err)
	}
	return f.apply(base), nil
}

// themeFile is the YAML shape of a theme override. Every field is
// optional; pointers distinguish "absent" from zero.
type themeFile struct {
	Size                *sizeSpec           `yaml:"size"`
	ContentInset        *insetSpec          `yaml:"content_inset"`
	InformativeOffset   *int                `yaml:"informative_offset"`
	ButtonOffset        *int                `yaml:"button_offset"`
	ImageOffset         *pointSpec          `yaml:"image_offset"`
	HelpImageLeftOffset *int                `yaml:"help_image_left_offset"`
	SuppressionOffset   *pointSpec          `yaml:"suppression_offset"`
	UnitsPerCol         *int                `yaml:"units_per_col"`
	UnitsPerRow         *int                `yaml:"units_per_row"`
	TextColor           *colorSpec          `yaml:"text_color"`
	MessageBold         *bool               `yaml:"message_bold"`
	InformativeFaint    *bool               `yaml:"informative_faint"`
	Border              *colorSpec          `yaml:"border"`
	ButtonColor         *colorSpec          `yaml:"button_color"`
	ButtonFocus         *colorSpec          `yaml:"button_focus"`
	SuppressText        *colorSpec          `yaml:"suppress_text"`
	Icons               map[string]iconSpec `yaml:"icons"`
}

type sizeSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type pointSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type insetSpec struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
}

type iconSpec struct {
	Glyph string    `yaml:"glyph"`
	Color colorSpec `yaml:"color"`
}

// colorSpec accepts either a single color scalar applied to both light
// and dark backgrounds, or an explicit {light, dark} mapping.
type colorSpec struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

func (c *colorSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Light = node.Value
		c.Dark = node.Value
		return nil
	}
	type plain colorSpec
	return node.Decode((*plain)(c))
}

func (c colorSpec) adaptive() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
}

func (f themeFile) apply(base Theme) Theme {
	out := base
	if f.Size != nil {
		out.Size = geom.Size{Width: f.Size.Width, Height: f.Size.Height}
	}
	if f.ContentInset != nil {
		out.ContentInset = geom.Insets{
			Top:    f.ContentInset.Top,
			Right:  f.ContentInset.Right,
			Bottom: f.ContentInset.Bottom,
			Left:   f.ContentInset.Left,
		}
	}
	if f.InformativeOffset != nil {
		out.InformativeOffset = *f.InformativeOffset
	}
	if f.ButtonOffset != nil {
		out.ButtonOffset = *f.ButtonOffset
	}
	if f.ImageOffset != nil {
		out.ImageOffset = geom.Point{X: f.ImageOffset.X, Y: f.ImageOffset.Y}
	}
	if f.HelpImageLeftOffset != nil {
		out.HelpImageLeftOffset = *f.HelpImageLeftOffset
	}
	if f.SuppressionOffset != nil {
		out.SuppressionOffset = geom.Point{X: f.SuppressionOffset.X, Y: f.SuppressionOffset.Y}
	}
	if f.UnitsPerCol != nil {
		out.UnitsPerCol = *f.UnitsPerCol
	}
	if f.UnitsPerRow != nil {
		out.UnitsPerRow = *f.UnitsPerRow
	}
	if f.TextColor != nil {
		out.TextColor = f.TextColor.adaptive()
	}
	if f.MessageBold != nil {
		out.MessageBold = *f.MessageBold
	}
	if f.InformativeFaint != nil {
		out.InformativeFaint = *f.InformativeFaint
	}
	if f.Border != nil {
		out.Border = f.Border.adaptive()
	}
	if f.ButtonColor != nil {
		out.ButtonColor = f.ButtonColor.adaptive()
	}
	if f.ButtonFocus != nil {
		out.ButtonFocus = f.ButtonFocus.adaptive()
	}
	if f.SuppressText != nil {
		out.SuppressText = f.SuppressText.adaptive()
	}
	if len(f.Icons) > 0 {
		icons := make(map[Style]Icon, len(base.StyleIcons))
		for k, v := range base.StyleIcons {
			icons[k] = v
		}
		for name, spec := range f.Icons {
			icon := Icon{Glyph: spec.Glyph, Color: spec.Color.adaptive()}
			switch name {
			case "warning":
				icons[StyleWarning] = icon
			case "informational":
				icons[StyleInformational] = icon
			case "critical":
				icons[StyleCritical] = icon
			case "help":
				out.HelpIcon = icon
			case "help_pressed":
				out.HelpIconPressed = icon
			}
		}
		out.StyleIcons = icons
	}
	return out
}
