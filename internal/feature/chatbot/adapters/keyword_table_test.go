package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticKnowledge(t *testing.T) {
	kb := NewStaticKnowledge()

	assert.Contains(t, kb.Topics(), "jardin")
	assert.NotEmpty(t, kb.Rules())
	for _, r := range kb.Rules() {
		assert.NotEmpty(t, r.Keywords)
		assert.NotEmpty(t, r.Reply)
	}
}
