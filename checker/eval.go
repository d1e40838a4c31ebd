package checker

import (
	"context"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/logger"
	"golang.org/x/sync/errgroup"

	"github.com/yuwen01/gemini/iterable"
	"github.com/yuwen01/gemini/relation"
)

var ErrUnsatisfied = errors.New("checker: relation not satisfied")

// CheckStream checks a streamed relation the way an elastic prover would read
// it: every matrix is traversed in both orders, concurrently, and recombined
// with Z to compare against ZA, ZB and ZC. The vectors are materialized; the
// matrices never are.
func CheckStream(ctx context.Context, s *relation.Stream) error {
	log := logger.Logger()
	if err := checkLengths(s); err != nil {
		return err
	}

	z := iterable.Collect(s.Z)
	products := [3][]fr.Element{
		iterable.Collect(s.ZA),
		iterable.Collect(s.ZB),
		iterable.Collect(s.ZC),
	}
	if err := checkHadamard(products[0], products[1], products[2]); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	passes := []struct {
		name string
		m    relation.MatrixStream
		want []fr.Element
		eval func(context.Context, relation.MatrixStream, []fr.Element, int) ([]fr.Element, error)
	}{
		{"A row-major", s.ARowMaj, products[0], EvalRowMajor},
		{"B row-major", s.BRowMaj, products[1], EvalRowMajor},
		{"C row-major", s.CRowMaj, products[2], EvalRowMajor},
		{"A column-major", s.AColMaj, products[0], EvalColMajor},
		{"B column-major", s.BColMaj, products[1], EvalColMajor},
		{"C column-major", s.CColMaj, products[2], EvalColMajor},
	}
	for _, p := range passes {
		p := p
		g.Go(func() error {
			got, err := p.eval(ctx, p.m, z, len(p.want))
			if err != nil {
				return fmt.Errorf("%s: %w", p.name, err)
			}
			for i := range got {
				if !got[i].Equal(&p.want[i]) {
					return fmt.Errorf("%w: %s: row %d", ErrUnsatisfied, p.name, i)
				}
			}
			log.Debug().Str("pass", p.name).Int("items", p.m.Len()).Msg("matrix checked")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().
		Int("nbConstraints", len(products[0])).
		Int("nbVariables", len(z)).
		Int("nonZero", s.NonZero).
		Msg("relation satisfied")
	return nil
}

func checkLengths(s *relation.Stream) error {
	vectors := []struct {
		name string
		v    relation.VectorStream
	}{
		{"witness", s.Witness}, {"z", s.Z}, {"z_a", s.ZA}, {"z_b", s.ZB}, {"z_c", s.ZC},
	}
	for _, x := range vectors {
		if err := iterable.Verify(x.v); err != nil {
			return fmt.Errorf("%s: %w", x.name, err)
		}
	}
	for i, m := range []relation.MatrixStream{s.ARowMaj, s.BRowMaj, s.CRowMaj, s.AColMaj, s.BColMaj, s.CColMaj} {
		if err := iterable.Verify(m); err != nil {
			return fmt.Errorf("matrix %d: %w", i, err)
		}
	}
	if s.ZB.Len() != s.ZA.Len() || s.ZC.Len() != s.ZA.Len() {
		return fmt.Errorf("%w: products have lengths %d, %d, %d", ErrUnsatisfied, s.ZA.Len(), s.ZB.Len(), s.ZC.Len())
	}
	if s.Witness.Len() > s.Z.Len() {
		return fmt.Errorf("%w: witness longer than z", ErrUnsatisfied)
	}
	return nil
}

func checkHadamard(za, zb, zc []fr.Element) error {
	var t fr.Element
	for i := range za {
		t.Mul(&za[i], &zb[i])
		if !t.Equal(&zc[i]) {
			return fmt.Errorf("%w: constraint %d", ErrUnsatisfied, i)
		}
	}
	return nil
}
