package huffman

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Input is one set of arguments for Build.
type Input struct {
	Symbols     []Symbol
	Frequencies []int64
}

// BuildAll builds one Tree per Input, running up to GOMAXPROCS builds at a
// time.  Every build uses its own Queue and node storage; nothing is shared
// between them.
//
// The first failure cancels builds that have not started yet, and is returned
// wrapped with the index of the offending Input.
//
func BuildAll(ctx context.Context, inputs []Input) ([]*Tree, error) {
	trees := make([]*Tree, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for index := range inputs {
		index := index
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tree, err := Build(inputs[index].Symbols, inputs[index].Frequencies)
			if err != nil {
				return fmt.Errorf("input %d: %w", index, err)
			}
			trees[index] = tree
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}
