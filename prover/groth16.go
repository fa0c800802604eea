// Package prover wraps gnark's compile/setup/prove/verify flow for the
// example binaries. Both supported proving systems get the same treatment:
// compile the circuit, run the setup, and optionally cache the compiled
// constraint system together with the key pair on disk so repeat runs skip
// the expensive part.
package prover

import (
	"errors"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	cs "github.com/consensys/gnark/constraint/bn254"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/zkstudy/gnark-fibonacci/internal/logger"
)

// Groth16 bundles a compiled R1CS with its Groth16 key pair.
type Groth16 struct {
	ccs *cs.R1CS
	pk  groth16.ProvingKey
	vk  groth16.VerifyingKey
}

// SetupGroth16 compiles the circuit over BN254 and runs the Groth16 setup.
// When cachePath is non-empty, previously saved artifacts are loaded from it
// instead; an unreadable cache is logged and rebuilt.
func SetupGroth16(circuit frontend.Circuit, cachePath string) (*Groth16, error) {
	log := logger.Logger()

	if cachePath != "" {
		g := &Groth16{
			ccs: &cs.R1CS{},
			pk:  groth16.NewProvingKey(ecc.BN254),
			vk:  groth16.NewVerifyingKey(ecc.BN254),
		}
		err := loadArtifacts(cachePath, g.ccs, g.pk, g.vk)
		if err == nil {
			log.Debug().Str("path", cachePath).Msg("loaded groth16 artifacts from cache")
			return g, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", cachePath).Msg("groth16 cache unusable, rebuilding")
		}
	}

	compiled, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	pk, vk, err := groth16.Setup(compiled)
	if err != nil {
		return nil, fmt.Errorf("groth16 setup: %w", err)
	}
	g := &Groth16{ccs: compiled.(*cs.R1CS), pk: pk, vk: vk}
	log.Info().Int("constraints", g.ccs.GetNbConstraints()).Msg("compiled groth16 circuit")

	if cachePath != "" {
		if err := saveArtifacts(cachePath, g.ccs, g.pk, g.vk); err != nil {
			log.Warn().Err(err).Str("path", cachePath).Msg("failed to save groth16 cache")
		}
	}
	return g, nil
}

// Prove builds the full witness from the assignment and produces a proof.
// The returned witness holds the public part only, ready for Verify.
func (g *Groth16) Prove(assignment frontend.Circuit) (groth16.Proof, witness.Witness, error) {
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, nil, fmt.Errorf("witness: %w", err)
	}
	public, err := w.Public()
	if err != nil {
		return nil, nil, fmt.Errorf("public witness: %w", err)
	}
	proof, err := groth16.Prove(g.ccs, g.pk, w)
	if err != nil {
		return nil, nil, fmt.Errorf("groth16 prove: %w", err)
	}
	return proof, public, nil
}

// Verify checks the proof against the public witness.
func (g *Groth16) Verify(proof groth16.Proof, public witness.Witness) error {
	if err := groth16.Verify(proof, g.vk, public); err != nil {
		return fmt.Errorf("groth16 verify: %w", err)
	}
	return nil
}

// NbConstraints reports the size of the compiled constraint system.
func (g *Groth16) NbConstraints() int {
	return g.ccs.GetNbConstraints()
}
