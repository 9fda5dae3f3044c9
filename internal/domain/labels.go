package domain

// Label keys used by nexus for container and network metadata.
const (
	LabelWorkspace     = "nexus.workspace"
	LabelWorkspaceName = "nexus.workspace.name"
	LabelManaged       = "nexus.managed"
	LabelCreated       = "nexus.created"
	LabelResourceClass = "nexus.resource-class"
)

// WorkspaceLabels returns the labels stamped on every workspace container.
func WorkspaceLabels(id, name string, extra map[string]string) map[string]string {
	labels := make(map[string]string, len(extra)+3)
	for k, v := range extra {
		labels[k] = v
	}
	labels[LabelWorkspace] = id
	labels[LabelWorkspaceName] = name
	labels[LabelManaged] = "true"
	return labels
}
