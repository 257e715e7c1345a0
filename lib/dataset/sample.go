package dataset

import (
	"fmt"
	"math/rand"

	"github.com/ValentinKolb/pRDD/lib/dataset/util"
)

// --------------------------------------------------------------------------
// Sample
// --------------------------------------------------------------------------

// samplePart keeps each parent element independently with probability rate.
// The per-partition generator is re-seeded on every Iter call, so the
// partition stays re-iterable: repeated iterations draw the same elements.
type samplePart[E any] struct {
	base
	parent Partition[E]
	rate   float64
	seed   int64
}

func (p *samplePart[E]) Iter() Iterator[E] {
	return iterate(&p.base, func() Iterator[E] {
		rng := rand.New(rand.NewSource(p.seed))
		return &filterIter[E]{
			inner: p.parent.Iter(),
			pred: func(E) bool {
				// Float64 draws from [0, 1), so rate 0 drops everything and
				// rate 1 keeps everything.
				return rng.Float64() < p.rate
			},
		}
	})
}

// Sample creates a dataset keeping each element independently with the given
// probability, one child partition per parent partition. Rates 0 and 1 are
// exact (empty / pass-through).
//
// When the context configuration carries a sample seed, every partition
// derives its generator from (seed, partition id) and the result is
// reproducible. Without a seed each partition draws a random base seed at
// construction: the dataset is still re-iterable within its lifetime, but the
// selection differs between runs.
func (d *Dataset[E]) Sample(rate float64) (*Dataset[E], error) {
	if rate < 0 || rate > 1 {
		return nil, NewError(RetCConfig,
			fmt.Sprintf("sample rate %v outside [0, 1]", rate))
	}

	cfg := d.ctx.Config()
	parts := make([]Partition[E], len(d.parts))
	for i, parent := range d.parts {
		b := newBase(d.ctx, parent.ID())

		baseSeed := cfg.SampleSeed
		if !cfg.SampleSeeded {
			baseSeed = util.GenerateSeed()
		}

		parts[i] = &samplePart[E]{
			base:   b,
			parent: parent,
			rate:   rate,
			seed:   util.MixSeed(baseSeed, uint32(b.ID())),
		}
	}
	return newDataset(d.ctx, parts), nil
}
