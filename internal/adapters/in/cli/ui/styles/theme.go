package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nexuslab/nexus/internal/domain"
)

// Theme contains the composed styles of the CLI.
var Theme = struct {
	Title lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	BadgeSuccess lipgloss.Style
	BadgeError   lipgloss.Style
	BadgeWarning lipgloss.Style
	BadgeInfo    lipgloss.Style
	BadgePending lipgloss.Style

	ListItem   lipgloss.Style
	ListBullet lipgloss.Style
}{
	Title: lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
	Muted: lipgloss.NewStyle().Foreground(ColorTextMuted),
	Bold:  lipgloss.NewStyle().Bold(true).Foreground(ColorText),

	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Info:    lipgloss.NewStyle().Foreground(ColorInfo),

	BadgeSuccess: lipgloss.NewStyle().Foreground(ColorBg).Background(ColorSuccess).Padding(0, 1),
	BadgeError:   lipgloss.NewStyle().Foreground(ColorBg).Background(ColorError).Padding(0, 1),
	BadgeWarning: lipgloss.NewStyle().Foreground(ColorBg).Background(ColorWarning).Padding(0, 1),
	BadgeInfo:    lipgloss.NewStyle().Foreground(ColorBg).Background(ColorInfo).Padding(0, 1),
	BadgePending: lipgloss.NewStyle().Foreground(ColorBg).Background(ColorTextMuted).Padding(0, 1),

	ListItem:   lipgloss.NewStyle().Foreground(ColorText).PaddingLeft(1),
	ListBullet: lipgloss.NewStyle().Foreground(ColorAccent),
}

// RenderStatus returns a colored workspace status.
func RenderStatus(status domain.WorkspaceStatus) string {
	return StatusStyle(status).Render(IconDot + " " + string(status))
}

// RenderBadge returns a compact badge for a workspace status.
func RenderBadge(status domain.WorkspaceStatus) string {
	switch status {
	case domain.StatusRunning:
		return Theme.BadgeSuccess.Render(string(status))
	case domain.StatusError:
		return Theme.BadgeError.Render(string(status))
	case domain.StatusDestroying, domain.StatusPaused:
		return Theme.BadgeWarning.Render(string(status))
	case domain.StatusPending:
		return Theme.BadgePending.Render(string(status))
	default:
		return Theme.BadgeInfo.Render(string(status))
	}
}

// StatusStyle is the foreground style used for a workspace status.
func StatusStyle(status domain.WorkspaceStatus) lipgloss.Style {
	switch status {
	case domain.StatusRunning:
		return Theme.Success
	case domain.StatusError:
		return Theme.Error
	case domain.StatusDestroying, domain.StatusPaused, domain.StatusPending:
		return Theme.Warning
	default:
		return Theme.Muted
	}
}

// RenderListItem returns a list item with a bullet.
func RenderListItem(item string) string {
	return Theme.ListBullet.Render(IconBullet) + Theme.ListItem.Render(item)
}

// RenderError returns a styled error message.
func RenderError(msg string) string {
	return Theme.Error.Render(IconError + " " + msg)
}

// RenderSuccess returns a styled success message.
func RenderSuccess(msg string) string {
	return Theme.Success.Render(IconSuccess + " " + msg)
}

// RenderWarning returns a styled warning message.
func RenderWarning(msg string) string {
	return Theme.Warning.Render(IconWarning + " " + msg)
}

// RenderInfo returns a styled info message.
func RenderInfo(msg string) string {
	return Theme.Info.Render(IconInfo + " " + msg)
}
