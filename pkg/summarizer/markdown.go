package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the generator version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Render Summary"))

	fmt.Fprintf(&b, "## %s\n\n", t("Track"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Title"), orDash(s.Track.Title))
	fmt.Fprintf(&b, "| %s | %s |\n\n", t("Artist"), orDash(s.Track.Artist))

	fmt.Fprintf(&b, "## %s\n\n", t("Render"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Mode"), orDash(s.Render.Mode))
	if s.Render.Variant != "" {
		fmt.Fprintf(&b, "| %s | %s |\n", t("Gradient"), s.Render.Variant)
	}
	fmt.Fprintf(&b, "| %s | %s |\n", t("Primary Color"), swatch(s.Render.Primary))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Secondary Color"), swatch(s.Render.Secondary))
	if s.Render.TextColor != "" {
		fmt.Fprintf(&b, "| %s | %s |\n", t("Text Color"), swatch(s.Render.TextColor))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("File"), orDash(s.Output.Path))
	fmt.Fprintf(&b, "| %s | %dx%d |\n", t("Display"), s.Output.Width, s.Output.Height)
	if s.Output.FileSize > 0 {
		fmt.Fprintf(&b, "| %s | %s |\n", t("File Size"), formatBytes(s.Output.FileSize))
	}
	fmt.Fprintf(&b, "| %s | %d ms |\n\n", t("Render Time"), s.Output.ElapsedMs)

	b.WriteString("---\n\n")
	generated := s.GeneratedAt.Format(time.RFC3339)
	if f.version != "" {
		fmt.Fprintf(&b, "%s syncwall %s, %s\n", t("Generated by"), f.version, generated)
	} else {
		fmt.Fprintf(&b, "%s syncwall, %s\n", t("Generated by"), generated)
	}

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func swatch(hex string) string {
	if hex == "" {
		return "-"
	}
	return "`" + hex + "`"
}

// formatBytes renders n with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Ensure MarkdownFormatter implements Formatter
var _ Formatter = (*MarkdownFormatter)(nil)
