package domain

import "time"

// Protocol is a transport protocol for a port binding.
type Protocol string

const (
	ProtocolTCP Protocol = "tcp"
	ProtocolUDP Protocol = "udp"
)

// Visibility controls who may reach a published port.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
	VisibilityOrg     Visibility = "org"
)

// PortMapping binds a host port to a container port for one named service.
// A HostPort of zero asks the port manager to pick one.
type PortMapping struct {
	Name          string     `json:"name"`
	Protocol      Protocol   `json:"protocol"`
	ContainerPort int        `json:"containerPort"`
	HostPort      int        `json:"hostPort"`
	Visibility    Visibility `json:"visibility"`
	URL           string     `json:"url,omitempty"`
}

// PortState is the state of a port table entry.
type PortState string

const (
	PortAllocated PortState = "allocated"
	PortReleased  PortState = "released"
)

// PortAllocation is one row of the persisted port table.
type PortAllocation struct {
	WorkspaceID   string     `json:"workspaceId"`
	Service       string     `json:"service"`
	HostPort      int        `json:"hostPort"`
	ContainerPort int        `json:"containerPort"`
	Protocol      Protocol   `json:"protocol"`
	Visibility    Visibility `json:"visibility,omitempty"`
	State         PortState  `json:"state"`
}

// PortTable is the persisted form of all allocations.
type PortTable struct {
	Ports     []PortAllocation `json:"ports"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// PortRange is an inclusive-start, exclusive-end range of host ports.
type PortRange struct {
	Start int
	End   int
}

// Size returns the number of ports in the range.
func (r PortRange) Size() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether port lies in the range.
func (r PortRange) Contains(port int) bool {
	return port >= r.Start && port < r.End
}

// Well-known host port ranges.
var (
	PortRangeReserved = PortRange{Start: 32768, End: 32799}
	PortRangeDocker   = PortRange{Start: 32800, End: 34999}
	PortRangeSprite   = PortRange{Start: 35000, End: 39999}
	PortRangeDynamic  = PortRange{Start: 40000, End: 65535}
)

// DefaultServicePorts is used when a workspace declares no services.
func DefaultServicePorts() []ServiceConfig {
	return []ServiceConfig{{
		Name: "main",
		Ports: []PortMapping{{
			Name:          "main",
			Protocol:      ProtocolTCP,
			ContainerPort: 3000,
			Visibility:    VisibilityPrivate,
		}},
	}}
}
