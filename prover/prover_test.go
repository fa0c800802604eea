package prover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/gnark/frontend"
	"github.com/stretchr/testify/require"
)

// y == x^2
type squareCircuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (c *squareCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(api.Mul(c.X, c.X), c.Y)
	return nil
}

func TestGroth16Pipeline(t *testing.T) {
	g, err := SetupGroth16(&squareCircuit{}, "")
	require.NoError(t, err)
	require.Greater(t, g.NbConstraints(), 0)

	proof, public, err := g.Prove(&squareCircuit{X: 7, Y: 49})
	require.NoError(t, err)
	require.NoError(t, g.Verify(proof, public))

	_, _, err = g.Prove(&squareCircuit{X: 7, Y: 50})
	require.Error(t, err)
}

func TestPlonkPipeline(t *testing.T) {
	p, err := SetupPlonk(&squareCircuit{}, "")
	require.NoError(t, err)
	require.Greater(t, p.NbConstraints(), 0)

	proof, public, err := p.Prove(&squareCircuit{X: 6, Y: 36})
	require.NoError(t, err)
	require.NoError(t, p.Verify(proof, public))

	_, _, err = p.Prove(&squareCircuit{X: 6, Y: 35})
	require.Error(t, err)
}

func TestGroth16Cache(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "square_groth16.cache")

	_, err := SetupGroth16(&squareCircuit{}, cachePath)
	require.NoError(t, err)
	info, err := os.Stat(cachePath)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))

	// second setup loads from cache and still proves correctly
	g, err := SetupGroth16(&squareCircuit{}, cachePath)
	require.NoError(t, err)
	proof, public, err := g.Prove(&squareCircuit{X: 3, Y: 9})
	require.NoError(t, err)
	require.NoError(t, g.Verify(proof, public))
}

func TestPlonkCache(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "square_plonk.cache")

	_, err := SetupPlonk(&squareCircuit{}, cachePath)
	require.NoError(t, err)

	p, err := SetupPlonk(&squareCircuit{}, cachePath)
	require.NoError(t, err)
	proof, public, err := p.Prove(&squareCircuit{X: 4, Y: 16})
	require.NoError(t, err)
	require.NoError(t, p.Verify(proof, public))
}

func TestCorruptCacheIsRebuilt(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "corrupt.cache")
	require.NoError(t, os.WriteFile(cachePath, []byte("not a constraint system"), 0o600))

	g, err := SetupGroth16(&squareCircuit{}, cachePath)
	require.NoError(t, err)
	proof, public, err := g.Prove(&squareCircuit{X: 2, Y: 4})
	require.NoError(t, err)
	require.NoError(t, g.Verify(proof, public))
}
