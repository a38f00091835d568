package rendering

import (
	"context"
	"fmt"
	"runtime"

	"github.com/mmuldo/colorimetry/cct"
	"github.com/mmuldo/colorimetry/internal/parallel"
	"github.com/mmuldo/colorimetry/spectral"
)

// Evaluation bundles every rendering metric for one light source.
type Evaluation struct {
	CCT      float64     `json:"cct"`
	Duv      float64     `json:"duv"`
	Category string      `json:"category"`
	CRI      *CRIResult  `json:"cri"`
	TLCI     *TLCIResult `json:"tlci"`
	TM30     *TM30Result `json:"tm30"`
}

// Evaluate computes CRI, TLCI and TM-30 for d, sharing the resampling, CCT
// estimate and reference illuminant.
func Evaluate(d *spectral.Distribution) (*Evaluation, error) {
	s, err := prepare(d)
	if err != nil {
		return nil, err
	}
	return &Evaluation{
		CCT:      s.estimate.CCT,
		Duv:      s.estimate.Duv,
		Category: cct.Interpret(s.estimate.CCT).String(),
		CRI:      s.cri(),
		TLCI:     s.tlci(),
		TM30:     s.tm30(),
	}, nil
}

// Options configures an Evaluator.
type Options struct {
	// Workers is the pool size; zero or negative uses GOMAXPROCS.
	Workers int
}

func (o *Options) normalize() Options {
	if o == nil {
		return Options{Workers: runtime.GOMAXPROCS(0)}
	}
	out := *o
	if out.Workers <= 0 {
		out.Workers = runtime.GOMAXPROCS(0)
	}
	return out
}

// Evaluator scores batches of spectra concurrently.
type Evaluator struct {
	pool *parallel.WorkerPool
}

// NewEvaluator starts an evaluator. Call Close to stop its workers.
func NewEvaluator(opts *Options) *Evaluator {
	o := opts.normalize()
	return &Evaluator{pool: parallel.NewWorkerPool(o.Workers)}
}

// Close stops the worker pool. Batch fails after Close.
func (e *Evaluator) Close() {
	e.pool.Close()
}

// BatchItem is the outcome for one spectrum of a batch: either an
// Evaluation or an error.
type BatchItem struct {
	Index      int         `json:"index"`
	Evaluation *Evaluation `json:"evaluation,omitempty"`
	Err        error       `json:"-"`
}

// Batch evaluates every distribution and returns one item per input, in
// input order. Items not started before ctx is done carry ctx's error, which
// is also returned.
func (e *Evaluator) Batch(ctx context.Context, spds []*spectral.Distribution) ([]BatchItem, error) {
	items := make([]BatchItem, len(spds))
	work := make([]func(), len(spds))
	for i, d := range spds {
		i, d := i, d
		items[i].Index = i
		work[i] = func() {
			if err := ctx.Err(); err != nil {
				items[i].Err = err
				return
			}
			items[i].Evaluation, items[i].Err = Evaluate(d)
		}
	}

	if err := e.pool.ExecuteAll(work); err != nil {
		return nil, fmt.Errorf("rendering: batch: %w", err)
	}
	return items, ctx.Err()
}
