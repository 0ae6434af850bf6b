package stats

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tumberger/zkcore/internal/circuits"
	"github.com/tumberger/zkcore/logger"
)

func TestCircuitStatistics(t *testing.T) {
	assert := require.New(t)
	logger.Disable()

	s := NewGlobalStats()
	assert.NoError(s.Collect())
	assert.Len(s.Stats, len(circuits.Circuits))

	assert.Equal(snippetStats{
		NbConstraints:  4,
		NbWires:        7,
		NbCoefficients: 5, // 0, 1, 2, -1 and -5
		DegreeT:        4,
		DegreeH:        2,
	}, s.Stats["quartic/gf79"])
	assert.Equal(s.Stats["quartic/gf79"], s.Stats["quartic/bn254"])

	product := s.Stats["product/bn254"]
	assert.Equal(3, product.NbConstraints)
	assert.Equal(8, product.NbWires)
	assert.Equal(3, product.DegreeT)

	for name, cs := range s.Stats {
		assert.Equal(cs.NbConstraints, cs.DegreeT, name)
		assert.LessOrEqual(cs.DegreeH, cs.NbConstraints-2, name)
	}
}

func TestSaveLoad(t *testing.T) {
	assert := require.New(t)
	logger.Disable()

	s := NewGlobalStats()
	assert.NoError(s.Collect())

	dir := t.TempDir()
	path := filepath.Join(dir, "stats.cbor")
	assert.NoError(s.Save(path))

	loaded := NewGlobalStats()
	assert.NoError(loaded.Load(path))
	assert.Equal(s.Stats, loaded.Stats)

	// encoding is deterministic
	other := filepath.Join(dir, "stats2.cbor")
	assert.NoError(loaded.Save(other))
	b1, err := os.ReadFile(path)
	assert.NoError(err)
	b2, err := os.ReadFile(other)
	assert.NoError(err)
	assert.True(bytes.Equal(b1, b2))

	assert.Error(loaded.Load(filepath.Join(dir, "missing.cbor")))
}
