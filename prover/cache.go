package prover

import (
	"fmt"
	"io"
	"os"
)

// saveArtifacts writes the artifacts to a single file, in order. gnark's
// constraint systems and keys all implement io.WriterTo with self-delimiting
// encodings, so concatenation round-trips.
func saveArtifacts(path string, artifacts ...io.WriterTo) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}
	defer file.Close()

	for _, a := range artifacts {
		if _, err := a.WriteTo(file); err != nil {
			return fmt.Errorf("write artifact: %w", err)
		}
	}
	return nil
}

// loadArtifacts reads the artifacts back in the order they were saved. The
// caller passes freshly constructed zero values sized for the right curve.
func loadArtifacts(path string, artifacts ...io.ReaderFrom) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, a := range artifacts {
		if _, err := a.ReadFrom(file); err != nil {
			return fmt.Errorf("read artifact: %w", err)
		}
	}
	return nil
}
