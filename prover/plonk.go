package prover

import (
	"errors"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/backend/witness"
	cs "github.com/consensys/gnark/constraint/bn254"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test/unsafekzg"

	"github.com/zkstudy/gnark-fibonacci/internal/logger"
)

// Plonk bundles a compiled SparseR1CS with its PLONK key pair.
type Plonk struct {
	ccs *cs.SparseR1CS
	pk  plonk.ProvingKey
	vk  plonk.VerifyingKey
}

// SetupPlonk compiles the circuit over BN254 and runs the PLONK setup on a
// locally generated KZG SRS (unsafekzg; fine for examples, not for
// production). When cachePath is non-empty, previously saved artifacts are
// loaded from it instead; an unreadable cache is logged and rebuilt.
func SetupPlonk(circuit frontend.Circuit, cachePath string) (*Plonk, error) {
	log := logger.Logger()

	if cachePath != "" {
		p := &Plonk{
			ccs: &cs.SparseR1CS{},
			pk:  plonk.NewProvingKey(ecc.BN254),
			vk:  plonk.NewVerifyingKey(ecc.BN254),
		}
		err := loadArtifacts(cachePath, p.ccs, p.pk, p.vk)
		if err == nil {
			log.Debug().Str("path", cachePath).Msg("loaded plonk artifacts from cache")
			return p, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", cachePath).Msg("plonk cache unusable, rebuilding")
		}
	}

	compiled, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	srs, srsLagrange, err := unsafekzg.NewSRS(compiled)
	if err != nil {
		return nil, fmt.Errorf("kzg srs: %w", err)
	}
	pk, vk, err := plonk.Setup(compiled, srs, srsLagrange)
	if err != nil {
		return nil, fmt.Errorf("plonk setup: %w", err)
	}
	p := &Plonk{ccs: compiled.(*cs.SparseR1CS), pk: pk, vk: vk}
	log.Info().Int("constraints", p.ccs.GetNbConstraints()).Msg("compiled plonk circuit")

	if cachePath != "" {
		if err := saveArtifacts(cachePath, p.ccs, p.pk, p.vk); err != nil {
			log.Warn().Err(err).Str("path", cachePath).Msg("failed to save plonk cache")
		}
	}
	return p, nil
}

// Prove builds the full witness from the assignment and produces a proof.
// The returned witness holds the public part only, ready for Verify.
func (p *Plonk) Prove(assignment frontend.Circuit) (plonk.Proof, witness.Witness, error) {
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, nil, fmt.Errorf("witness: %w", err)
	}
	public, err := w.Public()
	if err != nil {
		return nil, nil, fmt.Errorf("public witness: %w", err)
	}
	proof, err := plonk.Prove(p.ccs, p.pk, w)
	if err != nil {
		return nil, nil, fmt.Errorf("plonk prove: %w", err)
	}
	return proof, public, nil
}

// Verify checks the proof against the public witness.
func (p *Plonk) Verify(proof plonk.Proof, public witness.Witness) error {
	if err := plonk.Verify(proof, p.vk, public); err != nil {
		return fmt.Errorf("plonk verify: %w", err)
	}
	return nil
}

// NbConstraints reports the size of the compiled constraint system.
func (p *Plonk) NbConstraints() int {
	return p.ccs.GetNbConstraints()
}
