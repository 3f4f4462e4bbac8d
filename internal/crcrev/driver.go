package crcrev

import (
	"context"
	"iter"
	"log"
	"math/big"

	"golang.org/x/sync/errgroup"

	"crcrev/internal/crcmodel"
	"crcrev/internal/gf2"
)

type refPair struct{ refin, refout bool }

// refComb lists every (refin, refout) combination still open given
// what the caller already pinned down: one of four, or as few as one
// when both flags are known.
func refComb(refin, refout *bool) []refPair {
	refins := []bool{false, true}
	if refin != nil {
		refins = []bool{*refin}
	}
	refouts := []bool{false, true}
	if refout != nil {
		refouts = []bool{*refout}
	}
	combos := make([]refPair, 0, len(refins)*len(refouts))
	for _, ri := range refins {
		for _, ro := range refouts {
			combos = append(combos, refPair{ri, ro})
		}
	}
	return combos
}

func validate(spec Builder, samples []Sample) error {
	if spec.Width == 0 {
		return &MissingParameterError{Name: "width"}
	}
	known := 0
	if spec.Poly != nil {
		known++
	}
	if spec.Init != nil {
		known++
	}
	if spec.XorOut != nil {
		known++
	}
	if len(samples)+known < 3 {
		return &MissingParameterError{Name: "at least 3 parameters/files"}
	}
	if spec.Init == nil && allSameLength(samples) {
		return &UnsuitableFilesError{Reason: "need at least one file with a different length"}
	}
	return nil
}

// Reverse enumerates every CRC algorithm consistent with spec and
// samples, as a lazily produced sequence. Every (refin, refout) branch
// runs in its own goroutine from the start; the consumer breaking out
// of a range loop over the result stops each branch at its next
// candidate, and Reverse returns once all branch goroutines have
// stopped.
//
// diag, when non-nil and verbosity > 0, receives one line per emitted
// candidate; pass nil to stay silent.
func Reverse(spec Builder, samples []Sample, verbosity int, diag *log.Logger) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		if err := validate(spec, samples); err != nil {
			for range refComb(spec.RefIn, spec.RefOut) {
				if !yield(Result{Err: err}) {
					return
				}
			}
			return
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		g, ctx := errgroup.WithContext(ctx)

		results := make(chan Result)
		for _, rc := range refComb(spec.RefIn, spec.RefOut) {
			rc := rc
			g.Go(func() error {
				for r := range reverseBranch(spec, samples, verbosity, diag, rc.refin, rc.refout) {
					select {
					case results <- r:
					case <-ctx.Done():
						return nil
					}
				}
				return nil
			})
		}
		go func() {
			g.Wait()
			close(results)
		}()

		for r := range results {
			if !yield(r) {
				cancel()
				for range results {
				}
				return
			}
		}
	}
}

func prepareKnownInit(v *big.Int) *gf2.Poly {
	if v == nil {
		return nil
	}
	p := bigToPoly(v)
	return &p
}

func prepareKnownGenerator(width int, v *big.Int) *gf2.Poly {
	if v == nil {
		return nil
	}
	p := bigToPoly(v)
	p.AddTo(gf2.Monomial(width))
	return &p
}

func prepareKnownXorout(width int, v *big.Int, refout bool) *gf2.Poly {
	if v == nil {
		return nil
	}
	r := maskBig(v, width)
	if refout {
		r = reflectBig(r, width)
	}
	p := bigToPoly(r)
	return &p
}

// reverseBranch runs the full recovery pipeline for one fixed
// (refin, refout) combination, yielding every candidate Spec it finds.
func reverseBranch(spec Builder, samples []Sample, verbosity int, diag *log.Logger, refin, refout bool) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		width := spec.Width
		knownInit := prepareKnownInit(spec.Init)
		knownPoly := prepareKnownGenerator(width, spec.Poly)
		knownXorout := prepareKnownXorout(width, spec.XorOut, refout)

		carriers := intake(width, refin, refout, samples)
		if knownInit != nil {
			carriers = removeInits(carriers, knownInit)
		}

		rest, xorCarrier := removeXorouts(carriers, knownXorout)
		deferred, hull := findPolyHull(knownPoly, rest, width)

		pm, hull, ok := findInit(knownInit, hull, deferred)
		if !ok || hull.Deg() <= 0 {
			return
		}

		xorCarrier.Poly = gf2.Rem(xorCarrier.Poly, hull)

		factors := gf2.Factor(hull)
		nbytes := byteLen(width) + 1

		for _, g := range findProdComb(width, factors) {
			polyValue := gf2.Add(g, gf2.Monomial(width))
			polyInt := polyToBig(polyValue, nbytes)

			for _, pair := range iterInits(pm, g, xorCarrier) {
				initInt := polyToBig(pair.Init, nbytes)
				xoroutInt := polyToBig(pair.Xorout, nbytes)
				xoroutInt = condReverseBig(xoroutInt, width, refout)

				sp := crcmodel.Spec{
					Width:  width,
					Poly:   maskBig(polyInt, width),
					Init:   maskBig(initInt, width),
					XorOut: maskBig(xoroutInt, width),
					RefIn:  refin,
					RefOut: refout,
				}
				if verbosity > 0 && diag != nil {
					diag.Printf("candidate %s", sp)
				}
				if !yield(Result{Spec: sp}) {
					return
				}
			}
		}
	}
}

func condReverseBig(v *big.Int, width int, refout bool) *big.Int {
	if !refout {
		return v
	}
	return reflectBig(v, width)
}
