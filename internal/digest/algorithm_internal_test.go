package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptorsMatchProvider(t *testing.T) {
	for name, alg := range registry {
		t.Run(name, func(t *testing.T) {
			h := alg.newHash()
			assert.Equal(t, h.BlockSize(), alg.blockSize, "block size")
			assert.Equal(t, h.Size(), alg.size, "output size")
			assert.Len(t, h.Sum(nil), alg.size)
		})
	}
}
