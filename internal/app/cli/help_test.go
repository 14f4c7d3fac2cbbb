package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logweave/internal/config"
)

func Test_RenderTitle(t *testing.T) {
	result := RenderTitle()

	assert.Contains(t, result, config.AppName)
	assert.Contains(t, result, config.Version)
	assert.Contains(t, result, config.AppDescription)
}

func Test_renderHelp(t *testing.T) {
	result := renderHelp()

	for _, e := range usageEntries {
		assert.Contains(t, result, e.usage)
	}

	assert.Contains(t, result, "Examples:")
	assert.Contains(t, result, "--help")
}
