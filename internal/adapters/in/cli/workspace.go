package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nexuslab/nexus/internal/adapters/in/cli/ui/components"
	"github.com/nexuslab/nexus/internal/adapters/in/cli/ui/styles"
	"github.com/nexuslab/nexus/internal/boundaries/in"
	"github.com/nexuslab/nexus/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

var workspaceListColumns = []components.Column{
	{Title: "NAME", Width: 24},
	{Title: "STATUS", Width: 12, Style: func(v string) lipgloss.Style {
		return styles.StatusStyle(domain.WorkspaceStatus(v))
	}},
	{Title: "IMAGE", Width: 28},
	{Title: "PORTS", Width: 28},
	{Title: "BRANCH", Width: 24},
	{Title: "CREATED", Width: 18},
}

type createOptions struct {
	image         string
	resourceClass string
	repo          string
	source        string
	branch        string
	displayName   string
	env           []string
	envFiles      []string
	labels        []string
	ports         []string
	healthCmd     string
	hooks         []string
	idleTimeout   time.Duration
	shutdown      string
}

func (o createOptions) request(name string) (domain.CreateWorkspaceRequest, error) {
	env, err := parseKeyValues(o.env, "env")
	if err != nil {
		return domain.CreateWorkspaceRequest{}, err
	}
	labels, err := parseKeyValues(o.labels, "label")
	if err != nil {
		return domain.CreateWorkspaceRequest{}, err
	}
	services, err := o.services()
	if err != nil {
		return domain.CreateWorkspaceRequest{}, err
	}
	hooks, err := o.parseHooks()
	if err != nil {
		return domain.CreateWorkspaceRequest{}, err
	}
	if o.idleTimeout < 0 {
		return domain.CreateWorkspaceRequest{}, fmt.Errorf("invalid --idle-timeout %s: must not be negative", o.idleTimeout)
	}
	shutdown := domain.ShutdownBehavior(o.shutdown)
	if shutdown != "" && !shutdown.IsValid() {
		return domain.CreateWorkspaceRequest{}, fmt.Errorf("invalid --shutdown %q: expected stop, pause or destroy", o.shutdown)
	}

	return domain.CreateWorkspaceRequest{
		Name:        name,
		DisplayName: o.displayName,
		RepoPath:    o.repo,
		SourcePath:  o.source,
		Branch:      o.branch,
		Labels:      labels,
		Config: domain.WorkspaceConfig{
			Image:            o.image,
			ResourceClass:    domain.ResourceClass(o.resourceClass),
			Env:              env,
			EnvFiles:         o.envFiles,
			Services:         services,
			Hooks:            hooks,
			IdleTimeout:      o.idleTimeout,
			ShutdownBehavior: shutdown,
		},
	}, nil
}

// services builds the main service from --port and --health-cmd. Without
// either, nil is returned and the default main port applies.
func (o createOptions) services() ([]domain.ServiceConfig, error) {
	if len(o.ports) == 0 && o.healthCmd == "" {
		return nil, nil
	}

	svc := domain.DefaultServicePorts()[0]
	if len(o.ports) > 0 {
		pairs, err := parseKeyValues(o.ports, "port")
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(pairs))
		for name := range pairs {
			names = append(names, name)
		}
		sort.Strings(names)

		svc.Ports = nil
		for _, name := range names {
			port, err := strconv.Atoi(pairs[name])
			if err != nil || port <= 0 || port > 65535 {
				return nil, fmt.Errorf("invalid port %q: expected NAME=CONTAINER_PORT", name+"="+pairs[name])
			}
			svc.Ports = append(svc.Ports, domain.PortMapping{
				Name:          name,
				Protocol:      domain.ProtocolTCP,
				ContainerPort: port,
				Visibility:    domain.VisibilityPrivate,
			})
		}
	}
	if o.healthCmd != "" {
		svc.HealthCheck = &domain.HealthCheckConfig{Command: []string{o.healthCmd}}
	}
	return []domain.ServiceConfig{svc}, nil
}

func (o createOptions) parseHooks() (domain.WorkspaceHooks, error) {
	var hooks domain.WorkspaceHooks
	for _, h := range o.hooks {
		phase, script, ok := strings.Cut(h, "=")
		if !ok || strings.TrimSpace(script) == "" {
			return hooks, fmt.Errorf("invalid hook %q: expected PHASE=SCRIPT", h)
		}
		if err := hooks.Add(phase, script); err != nil {
			return hooks, err
		}
	}
	return hooks, nil
}

func newCreateCmd(root *rootOptions) *cobra.Command {
	var opts createOptions

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a workspace",
		Long: `Create a workspace container with its own host ports.

With --repo, a git worktree of the repository is created on the branch
nexus/<name> and synced into the container. With --source, a plain directory
is synced instead. The workspace is left stopped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request(args[0])
			if err != nil {
				return err
			}
			return withWorkspaces(cmd, root, func(ctx context.Context, svc in.WorkspaceService) error {
				return runCreate(ctx, svc, req, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVar(&opts.image, "image", "", "Container image (default from config)")
	cmd.Flags().StringVar(&opts.resourceClass, "class", "", "Resource class: small, medium, large or xlarge")
	cmd.Flags().StringVar(&opts.repo, "repo", "", "Local git repository to create a worktree from")
	cmd.Flags().StringVar(&opts.branch, "branch", "", "Base branch of the worktree (default HEAD)")
	cmd.Flags().StringVar(&opts.source, "source", "", "Directory to sync when no repository is given")
	cmd.Flags().StringVar(&opts.displayName, "display-name", "", "Human readable name")
	cmd.Flags().StringArrayVarP(&opts.env, "env", "e", nil, "Environment variable KEY=VALUE (repeatable)")
	cmd.Flags().StringArrayVar(&opts.envFiles, "env-file", nil, "Env file merged into the workspace .env (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.labels, "label", "l", nil, "Label KEY=VALUE (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.ports, "port", "p", nil, "Service port NAME=CONTAINER_PORT (repeatable, default main=3000)")
	cmd.Flags().StringVar(&opts.healthCmd, "health-cmd", "", "Shell command the runtime probes to report the workspace healthy")
	cmd.Flags().StringArrayVar(&opts.hooks, "hook", nil, "Lifecycle hook PHASE=SCRIPT, e.g. postStart='npm run seed' (repeatable)")
	cmd.Flags().DurationVar(&opts.idleTimeout, "idle-timeout", 0, "Shut the workspace down after this long without activity (default from config, 0 never)")
	cmd.Flags().StringVar(&opts.shutdown, "shutdown", "", "Idle shutdown behavior: stop, pause or destroy (default from config)")

	return cmd
}

func newStartCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start <name>",
		Short: "Start a workspace and wait until it is healthy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspaces(cmd, root, func(ctx context.Context, svc in.WorkspaceService) error {
				return runStart(ctx, svc, args[0], cmd.OutOrStdout())
			})
		},
	}
}

func newStopCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stop <name>",
		Short: "Stop a running workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspaces(cmd, root, func(ctx context.Context, svc in.WorkspaceService) error {
				return runStop(ctx, svc, args[0], cmd.OutOrStdout())
			})
		},
	}
}

func newRemoveCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"delete"},
		Short:   "Remove a workspace, its container, ports and worktree",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspaces(cmd, root, func(ctx context.Context, svc in.WorkspaceService) error {
				return runRemove(ctx, svc, args[0], cmd.OutOrStdout())
			})
		},
	}
}

func newStatusCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status [name]",
		Short: "Reconcile and show workspace status",
		Long: `Show a workspace, after reconciling its recorded status with the container
runtime. Without a name, every workspace is reconciled and listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspaces(cmd, root, func(ctx context.Context, svc in.WorkspaceService) error {
				if len(args) == 0 {
					return runReconcile(ctx, svc, cmd.OutOrStdout())
				}
				return runStatus(ctx, svc, args[0], cmd.OutOrStdout())
			})
		},
	}
}

func newListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List workspaces as recorded",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withWorkspaces(cmd, root, func(ctx context.Context, svc in.WorkspaceService) error {
				return runList(ctx, svc, cmd.OutOrStdout())
			})
		},
	}
}

func newExecCmd(root *rootOptions) *cobra.Command {
	var (
		opts domain.ExecOptions
		env  []string
	)

	cmd := &cobra.Command{
		Use:   "exec <name> -- <command> [args...]",
		Short: "Run a command inside a workspace",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseKeyValues(env, "env"); err != nil {
				return err
			}
			opts.Env = env
			return withWorkspaces(cmd, root, func(ctx context.Context, svc in.WorkspaceService) error {
				return runExec(ctx, svc, args[0], args[1:], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			})
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&opts.User, "user", "u", "", "User to run the command as")
	cmd.Flags().StringVarP(&opts.WorkingDir, "workdir", "w", "", "Working directory inside the container")
	cmd.Flags().StringArrayVarP(&env, "env", "e", nil, "Environment variable KEY=VALUE (repeatable)")

	return cmd
}

func newLogsCmd(root *rootOptions) *cobra.Command {
	var (
		opts  domain.LogsOptions
		since time.Duration
	)

	cmd := &cobra.Command{
		Use:   "logs <name>",
		Short: "Print the logs of a workspace container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if since > 0 {
				opts.Since = time.Now().Add(-since)
			}
			return withWorkspaces(cmd, root, func(ctx context.Context, svc in.WorkspaceService) error {
				return runLogs(ctx, svc, args[0], opts, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().IntVarP(&opts.Tail, "tail", "n", 0, "Number of lines from the end (0 for all)")
	cmd.Flags().DurationVar(&since, "since", 0, "Only logs newer than this duration, e.g. 10m")
	cmd.Flags().BoolVarP(&opts.Timestamps, "timestamps", "t", false, "Prefix lines with timestamps")

	return cmd
}

func runCreate(ctx context.Context, svc in.WorkspaceService, req domain.CreateWorkspaceRequest, out io.Writer) error {
	ws, err := svc.Create(ctx, req)
	if err != nil {
		return err
	}

	if err := cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Workspace %s created", ws.Name))); err != nil {
		return err
	}
	return writeWorkspaceDetails(out, ws)
}

func runStart(ctx context.Context, svc in.WorkspaceService, name string, out io.Writer) error {
	ws, err := svc.Start(ctx, name)
	if err != nil {
		return err
	}

	if err := cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Workspace %s started", ws.Name))); err != nil {
		return err
	}
	for _, p := range ws.Ports {
		if err := cliWriteLine(out, cliRenderListItem(formatPort(p))); err != nil {
			return err
		}
	}
	return nil
}

func runStop(ctx context.Context, svc in.WorkspaceService, name string, out io.Writer) error {
	ws, err := svc.Stop(ctx, name)
	if err != nil {
		return err
	}
	return cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Workspace %s stopped", ws.Name)))
}

func runRemove(ctx context.Context, svc in.WorkspaceService, name string, out io.Writer) error {
	if err := svc.Delete(ctx, name); err != nil {
		return err
	}
	return cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Workspace %s removed", name)))
}

func runStatus(ctx context.Context, svc in.WorkspaceService, name string, out io.Writer) error {
	ws, err := svc.Status(ctx, name)
	if err != nil {
		return err
	}
	return writeWorkspaceDetails(out, ws)
}

func runList(ctx context.Context, svc in.WorkspaceService, out io.Writer) error {
	list, err := svc.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}
	return writeWorkspaceTable(out, "Workspaces", list)
}

func runReconcile(ctx context.Context, svc in.WorkspaceService, out io.Writer) error {
	list, err := svc.Reconcile(ctx)
	if err != nil {
		return fmt.Errorf("failed to reconcile workspaces: %w", err)
	}
	return writeWorkspaceTable(out, "Workspaces (reconciled)", list)
}

func runExec(ctx context.Context, svc in.WorkspaceService, name string, command []string, opts domain.ExecOptions, stdout, stderr io.Writer) error {
	res, err := svc.Exec(ctx, name, command, opts)
	if err != nil {
		return err
	}

	if _, err := stdout.Write(res.Stdout); err != nil {
		return err
	}
	if _, err := stderr.Write(res.Stderr); err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &exitCodeError{code: res.ExitCode}
	}
	return nil
}

func runLogs(ctx context.Context, svc in.WorkspaceService, name string, opts domain.LogsOptions, out io.Writer) error {
	logs, err := svc.Logs(ctx, name, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, logs)
	return err
}

func writeWorkspaceTable(out io.Writer, title string, list []*domain.Workspace) error {
	if len(list) == 0 {
		return cliWriteLine(out, cliRenderMuted("No workspaces found"))
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	if err := cliWriteLine(out, cliRenderTitle(title)); err != nil {
		return err
	}

	table := components.NewTable(workspaceListColumns...)
	for _, ws := range list {
		ports := make([]string, 0, len(ws.Ports))
		for _, p := range ws.Ports {
			ports = append(ports, fmt.Sprintf("%d->%d", p.HostPort, p.ContainerPort))
		}
		table.Append(
			ws.Name,
			string(ws.Status),
			ws.Config.Image,
			strings.Join(ports, ","),
			ws.Branch,
			formatTime(ws.CreatedAt),
		)
	}
	if err := cliWriteLine(out, table.String()); err != nil {
		return err
	}
	return cliWriteLine(out, cliRenderInfo(fmt.Sprintf("Total workspaces: %d", len(list))))
}

func writeWorkspaceDetails(out io.Writer, ws *domain.Workspace) error {
	title := ws.Name
	if ws.DisplayName != "" && ws.DisplayName != ws.Name {
		title = fmt.Sprintf("%s (%s)", ws.DisplayName, ws.Name)
	}
	if err := cliWritef(out, "%s %s\n", cliRenderTitle(title), cliRenderBadge(ws.Status)); err != nil {
		return err
	}

	lines := []string{cliRenderLabel("Status:") + " " + cliRenderStatus(ws.Status)}
	switch {
	case ws.StatusMessage == "":
	case ws.Status == domain.StatusError:
		lines = append(lines, cliRenderWarning(ws.StatusMessage))
	default:
		lines = append(lines, cliRenderMeta("Message:", ws.StatusMessage))
	}
	lines = append(lines,
		cliRenderMeta("ID:", ws.ID),
		cliRenderMeta("Image:", ws.Config.Image),
	)
	if ws.Config.ResourceClass != "" {
		lines = append(lines, cliRenderMeta("Class:", string(ws.Config.ResourceClass)))
	}
	if id := ws.ContainerID(); id != "" {
		lines = append(lines, cliRenderMeta("Container:", shortID(id)))
	}
	if ws.Branch != "" {
		lines = append(lines, cliRenderMeta("Branch:", ws.Branch))
	}
	if ws.WorktreePath != "" {
		lines = append(lines, cliRenderMeta("Worktree:", ws.WorktreePath))
	}
	lines = append(lines, cliRenderMeta("Created:", formatTime(ws.CreatedAt)))
	if !ws.LastActiveAt.IsZero() {
		lines = append(lines, cliRenderMeta("Last active:", formatTime(ws.LastActiveAt)))
	}

	for _, line := range lines {
		if err := cliWriteLine(out, "  "+line); err != nil {
			return err
		}
	}

	if len(ws.Ports) == 0 {
		return nil
	}
	if err := cliWriteLine(out, "  "+cliRenderMeta("Ports:", "")); err != nil {
		return err
	}
	for _, p := range ws.Ports {
		if err := cliWriteLine(out, "    "+cliRenderListItem(formatPort(p))); err != nil {
			return err
		}
	}
	return nil
}

func formatPort(p domain.PortMapping) string {
	return fmt.Sprintf("%s %d->%d/%s", p.Name, p.HostPort, p.ContainerPort, p.Protocol)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// parseKeyValues parses KEY=VALUE pairs. Keys must be non-empty.
func parseKeyValues(pairs []string, flag string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	result := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --%s %q: expected KEY=VALUE", flag, pair)
		}
		result[key] = value
	}
	return result, nil
}
