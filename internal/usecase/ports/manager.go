// Package ports implements the host port allocation use case.
package ports

import (
	"context"
	"math/rand/v2"

	"github.com/bnema/zerowrap"

	"github.com/nexuslab/nexus/internal/boundaries/out"
	"github.com/nexuslab/nexus/internal/domain"
)

// Manager allocates host ports for workspace services from a fixed range.
// Every allocation and release is a single locked read-modify-write of the
// persisted table, so a failed call leaves the table untouched.
type Manager struct {
	store     out.PortStore
	portRange domain.PortRange
	intN      func(n int) int
}

// NewManager creates a port manager drawing from portRange.
func NewManager(store out.PortStore, portRange domain.PortRange) *Manager {
	return &Manager{
		store:     store,
		portRange: portRange,
		intN:      rand.IntN,
	}
}

// Range returns the configured host port range.
func (m *Manager) Range() domain.PortRange {
	return m.portRange
}

// AllocatePorts claims a host port for every declared service port. A zero
// HostPort is drawn at random from the range; explicit ports are honored but
// must be unclaimed. A config without services gets the default main port.
func (m *Manager) AllocatePorts(ctx context.Context, workspaceID string, config domain.WorkspaceConfig) ([]domain.PortMapping, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "AllocatePorts",
		zerowrap.FieldEntityID: workspaceID,
	})
	log := zerowrap.FromCtx(ctx)

	services := config.Services
	if len(services) == 0 {
		services = domain.DefaultServicePorts()
	}

	var mappings []domain.PortMapping
	err := m.store.UpdatePorts(ctx, func(table *domain.PortTable) error {
		mappings = mappings[:0]
		claimed := make(map[int]bool, len(table.Ports))
		for _, p := range table.Ports {
			if p.State == domain.PortAllocated {
				claimed[p.HostPort] = true
			}
		}

		for _, svc := range services {
			for _, port := range svc.Ports {
				hostPort := port.HostPort
				if hostPort == 0 {
					drawn, err := m.draw(claimed)
					if err != nil {
						return err
					}
					hostPort = drawn
				} else if claimed[hostPort] {
					return domain.NewPortAllocationError(hostPort, "port already allocated", nil)
				}
				claimed[hostPort] = true

				mapping := normalize(port)
				mapping.HostPort = hostPort
				mappings = append(mappings, mapping)
				table.Ports = append(table.Ports, domain.PortAllocation{
					WorkspaceID:   workspaceID,
					Service:       svc.Name,
					HostPort:      hostPort,
					ContainerPort: mapping.ContainerPort,
					Protocol:      mapping.Protocol,
					Visibility:    mapping.Visibility,
					State:         domain.PortAllocated,
				})
			}
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Msg("port allocation failed")
		return nil, err
	}

	log.Info().Int(zerowrap.FieldCount, len(mappings)).Msg("ports allocated")
	return mappings, nil
}

// draw picks unclaimed ports uniformly at random, giving up after as many
// draws as the range holds.
func (m *Manager) draw(claimed map[int]bool) (int, error) {
	size := m.portRange.Size()
	for i := 0; i < size; i++ {
		candidate := m.portRange.Start + m.intN(size)
		if !claimed[candidate] {
			return candidate, nil
		}
	}
	return 0, domain.NewPortExhaustedError(nil)
}

func normalize(p domain.PortMapping) domain.PortMapping {
	if p.Protocol == "" {
		p.Protocol = domain.ProtocolTCP
	}
	if p.Visibility == "" {
		p.Visibility = domain.VisibilityPrivate
	}
	if p.Name == "" {
		p.Name = "main"
	}
	return p
}

// ReleasePorts frees every port owned by workspaceID. Entries are marked
// released and pruned within the same locked write.
func (m *Manager) ReleasePorts(ctx context.Context, workspaceID string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "ReleasePorts",
		zerowrap.FieldEntityID: workspaceID,
	})
	log := zerowrap.FromCtx(ctx)

	released := 0
	err := m.store.UpdatePorts(ctx, func(table *domain.PortTable) error {
		released = 0
		for i := range table.Ports {
			if table.Ports[i].WorkspaceID == workspaceID {
				table.Ports[i].State = domain.PortReleased
			}
		}
		kept := table.Ports[:0]
		for _, p := range table.Ports {
			if p.WorkspaceID == workspaceID && p.State == domain.PortReleased {
				released++
				continue
			}
			kept = append(kept, p)
		}
		table.Ports = kept
		return nil
	})
	if err != nil {
		return log.WrapErr(err, "failed to release ports")
	}

	log.Info().Int(zerowrap.FieldCount, released).Msg("ports released")
	return nil
}

// GetAllocatedPorts returns every allocation in the allocated state.
func (m *Manager) GetAllocatedPorts(ctx context.Context) ([]domain.PortAllocation, error) {
	table, err := m.store.LoadPorts(ctx)
	if err != nil {
		return nil, err
	}
	var result []domain.PortAllocation
	for _, p := range table.Ports {
		if p.State == domain.PortAllocated {
			result = append(result, p)
		}
	}
	return result, nil
}
