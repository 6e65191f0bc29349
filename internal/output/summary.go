// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/staranto/cacheprime/internal/config"
)

// Formats accepted by Emit.
var Formats = []string{"text", "json", "yaml"}

// Row is one label/value line of a summary table.
type Row [2]string

// Bytes renders n both humanized and exact, e.g. "1.0 GiB (1073741824)".
func Bytes(n int64) string {
	if n < 0 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s (%d)", humanize.IBytes(uint64(n)), n)
}

// IsTerminal reports whether w is a terminal. Anything that is not an
// *os.File is treated as a pipe.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Summary renders rows as a borderless two column table. Color is only applied
// when requested and w is a terminal.
func Summary(w io.Writer, title string, rows []Row, color bool) {
	if len(rows) == 0 {
		return
	}

	var (
		labelStyle = lipgloss.NewStyle().Align(lipgloss.Left)
		valueStyle = lipgloss.NewStyle().Align(lipgloss.Left).PaddingLeft(2)
		titleStyle = lipgloss.NewStyle().Bold(true)
	)

	if color && IsTerminal(w) {
		titleColor, labelColor, valueColor := getColors("colors")
		titleStyle = titleStyle.Foreground(lipgloss.Color(titleColor))
		labelStyle = labelStyle.Foreground(lipgloss.Color(labelColor))
		valueStyle = valueStyle.Foreground(lipgloss.Color(valueColor))
	} else {
		titleStyle = lipgloss.NewStyle()
	}

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{r[0], r[1]})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return labelStyle
			}
			return valueStyle
		}).
		Rows(data...)

	if title != "" {
		fmt.Fprintln(w, titleStyle.Render(title))
	}
	fmt.Fprintln(w, t.String())
}

// Emit writes v as JSON or YAML. Text is the caller's business, so it is
// rejected here.
func Emit(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// getColors returns configured color values for summary rendering.
func getColors(key string) (title string, label string, value string) {
	title, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	label, _ = config.GetString(fmt.Sprintf("%s.label", key), "#ffffff")
	value, _ = config.GetString(fmt.Sprintf("%s.value", key), "#00c8f0")
	return
}
