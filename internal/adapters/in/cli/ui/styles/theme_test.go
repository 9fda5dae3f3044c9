package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexuslab/nexus/internal/domain"
)

func TestRenderBadge_ContainsStatus(t *testing.T) {
	for _, status := range domain.AllStatuses() {
		assert.Contains(t, RenderBadge(status), string(status))
		assert.Contains(t, RenderStatus(status), string(status))
	}
}

func TestRenderMessages_CarryIcons(t *testing.T) {
	assert.Contains(t, RenderSuccess("created"), IconSuccess)
	assert.Contains(t, RenderError("boom"), IconError)
	assert.Contains(t, RenderWarning("careful"), IconWarning)
	assert.Contains(t, RenderInfo("note"), "note")
	assert.Contains(t, RenderListItem("item"), IconBullet)
}
