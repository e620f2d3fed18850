package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"tracklist/internal/adapters/tui/styles"
	"tracklist/internal/domain"
)

// RenderHelpLine renders key bindings as "key desc" pairs separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a status message, red when isError
func RenderMessage(message string, isError bool) string {
	switch {
	case message == "":
		return ""
	case isError:
		return styles.ErrorMsg.Render(message)
	default:
		return styles.Success.Render(message)
	}
}

// RenderMuted renders secondary text
func RenderMuted(text string) string {
	return styles.MutedText.Render(text)
}

// ViewBuilder assembles a screen top to bottom
type ViewBuilder struct {
	b strings.Builder
}

func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title followed by a blank line
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	return v.Raw(styles.Title.Render(title) + "\n\n")
}

// Subtitle adds a subtitle followed by a blank line
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	return v.Raw(styles.Subtitle.Render(subtitle) + "\n\n")
}

func (v *ViewBuilder) Line(text string) *ViewBuilder {
	return v.Raw(text + "\n")
}

func (v *ViewBuilder) BlankLine() *ViewBuilder {
	return v.Raw("\n")
}

// Message adds a status message and a blank line, or nothing when empty
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	return v.Raw(RenderMessage(message, isError) + "\n\n")
}

func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	return v.Raw(RenderHelpLine(bindings...))
}

func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

// String returns the screen padded by the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}

// RenderDesignRef renders a design's name above its muted path
func RenderDesignRef(ref domain.DesignRef) string {
	if ref.Path == "" {
		return ""
	}
	return styles.StatValue.Render(ref.Name) + "\n" + RenderMuted(ref.Path)
}
