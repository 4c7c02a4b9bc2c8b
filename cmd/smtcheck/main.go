// Command smtcheck drives a compacted sparse Merkle tree through a
// sequence of random updates and checks that every inserted key proves
// correctly, both alone and in a batch, then validates the final tree.
// It exists to exercise the library end to end; it is not a benchmark
// harness.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log/slog"
	"os"

	smt "github.com/itzmeanjan/sparse-merkle-tree"
	"github.com/itzmeanjan/sparse-merkle-tree/core"
	"github.com/itzmeanjan/sparse-merkle-tree/hash"
)

func main() {
	count := flag.Int("leaves", 256, "number of random leaves to insert")
	useBlake3 := flag.Bool("blake3", false, "use BLAKE3 instead of TurboSHAKE128")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	factory := hash.TurboShake128Factory()
	if *useBlake3 {
		factory = hash.Blake3Factory()
	}

	if err := run(logger, factory, *count); err != nil {
		logger.Error("smtcheck failed", "error", err)
		os.Exit(1)
	}
	logger.Info("smtcheck passed", "leaves", *count)
}

func run(logger *slog.Logger, factory core.Factory, count int) error {
	metrics := &smt.Metrics{}
	tree := smt.New(factory, smt.WithLogger(logger), smt.WithMetrics(metrics))

	keys := make([]core.Key, count)
	values := make([]core.Hash256, count)
	for i := range keys {
		if _, err := rand.Read(keys[i][:]); err != nil {
			return fmt.Errorf("generating key %d: %w", i, err)
		}
		if _, err := rand.Read(values[i][:]); err != nil {
			return fmt.Errorf("generating value %d: %w", i, err)
		}
		if err := tree.Update(keys[i], values[i]); err != nil {
			return fmt.Errorf("updating key %d: %w", i, err)
		}
	}

	for i, key := range keys {
		leaf, err := tree.Get(key)
		if err != nil {
			return fmt.Errorf("getting key %d: %w", i, err)
		}
		proof, err := tree.MerkleProof([]core.Key{key})
		if err != nil {
			return fmt.Errorf("proving key %d: %w", i, err)
		}
		ok, err := tree.VerifyProof(proof, []smt.LeafQuery{{Key: key, Leaf: leaf}})
		if err != nil {
			return fmt.Errorf("verifying key %d: %w", i, err)
		}
		if !ok {
			return fmt.Errorf("proof for key %d did not verify", i)
		}
	}

	batch := append([]core.Key(nil), keys...)
	proof, err := tree.MerkleProof(batch)
	if err != nil {
		return fmt.Errorf("building batch proof: %w", err)
	}
	core.SortHash256(batch)
	leaves := make([]smt.LeafQuery, len(batch))
	for i, key := range batch {
		leaf, err := tree.Get(key)
		if err != nil {
			return fmt.Errorf("getting batch key %d: %w", i, err)
		}
		leaves[i] = smt.LeafQuery{Key: key, Leaf: leaf}
	}
	ok, err := tree.VerifyProof(proof, leaves)
	if err != nil {
		return fmt.Errorf("verifying batch proof: %w", err)
	}
	if !ok {
		return fmt.Errorf("batch proof did not verify")
	}

	if err := tree.Validate(); err != nil {
		return fmt.Errorf("validating tree: %w", err)
	}

	logger.Info("tree stats",
		"updates", metrics.Updates(),
		"gets", metrics.Gets(),
		"proofsBuilt", metrics.ProofsBuilt(),
		"proofsVerified", metrics.ProofsVerified(),
	)
	return nil
}
