// Example 1: prove knowledge of the Fibonacci chain
//
//	fibo(0) = 1, fibo(1) = 1, fibo(n) = fibo(n-1) + fibo(n-2)
//
// with Groth16 over BN254.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zkstudy/gnark-fibonacci/fibonacci"
	"github.com/zkstudy/gnark-fibonacci/internal/logger"
	"github.com/zkstudy/gnark-fibonacci/prover"
	"github.com/zkstudy/gnark-fibonacci/sequence"
)

func main() {
	n := flag.Uint("n", 9, "term index to prove")
	cacheDir := flag.String("cache", "", "directory for compiled circuit artifacts (empty disables caching)")
	flag.Parse()

	log := logger.Logger()

	value := sequence.Classic(*n)
	log.Info().Uint("n", *n).Str("value", value.String()).Msg("fibonacci term")

	var cachePath string
	if *cacheDir != "" {
		cachePath = filepath.Join(*cacheDir, fmt.Sprintf("fibo_groth16_%d.cache", *n))
	}

	g, err := prover.SetupGroth16(fibonacci.NewCircuit(*n), cachePath)
	if err != nil {
		log.Error().Err(err).Msg("setup failed")
		os.Exit(1)
	}

	proof, public, err := g.Prove(fibonacci.NewAssignment(*n))
	if err != nil {
		log.Error().Err(err).Msg("proving failed")
		os.Exit(1)
	}
	if err := g.Verify(proof, public); err != nil {
		log.Error().Err(err).Msg("verification failed")
		os.Exit(1)
	}

	log.Info().Uint("n", *n).Str("value", value.String()).Msg("groth16 proof verified")
}
