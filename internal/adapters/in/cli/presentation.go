package cli

import (
	"fmt"
	"io"

	"github.com/nexuslab/nexus/internal/adapters/in/cli/ui/styles"
	"github.com/nexuslab/nexus/internal/domain"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

var cliWritef = func(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

func cliRenderMuted(msg string) string {
	return styles.Theme.Muted.Render(msg)
}

func cliRenderListItem(msg string) string {
	return styles.RenderListItem(msg)
}

func cliRenderLabel(label string) string {
	return styles.Theme.Bold.Render(label)
}

func cliRenderMeta(label, value string) string {
	return cliRenderLabel(label) + " " + styles.Theme.Muted.Render(value)
}

func cliRenderStatus(status domain.WorkspaceStatus) string {
	return styles.RenderStatus(status)
}

func cliRenderBadge(status domain.WorkspaceStatus) string {
	return styles.RenderBadge(status)
}

func cliRenderSuccess(msg string) string {
	return styles.RenderSuccess(msg)
}

func cliRenderError(msg string) string {
	return styles.RenderError(msg)
}

func cliRenderWarning(msg string) string {
	return styles.RenderWarning(msg)
}

func cliRenderInfo(msg string) string {
	return styles.RenderInfo(msg)
}
