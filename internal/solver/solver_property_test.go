package solver

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestFibonacciRecurrence_PropertyBased verifies the defining recurrence of
// the Fibonacci sequence:
//
//	F(n) = F(n-1) + F(n-2) for n >= 2
//
// The test generates random indices within the int64-safe range and asserts
// that the recurrence holds for the memoized concurrent solver.
func TestFibonacciRecurrence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	s := newTestSolver()
	ctx := context.Background()

	properties.Property("satisfies the Fibonacci recurrence", prop.ForAll(
		func(n int) bool {
			fn, err := s.Solve(ctx, n)
			if err != nil {
				t.Logf("Solve(%d): %v", n, err)
				return false
			}
			fn1, err := s.Solve(ctx, n-1)
			if err != nil {
				t.Logf("Solve(%d): %v", n-1, err)
				return false
			}
			fn2, err := s.Solve(ctx, n-2)
			if err != nil {
				t.Logf("Solve(%d): %v", n-2, err)
				return false
			}
			return fn == fn1+fn2
		},
		gen.IntRange(2, 45),
	))

	properties.Property("values are strictly increasing beyond F(2)", prop.ForAll(
		func(n int) bool {
			fn, err := s.Solve(ctx, n)
			if err != nil {
				return false
			}
			fnNext, err := s.Solve(ctx, n+1)
			if err != nil {
				return false
			}
			return fnNext > fn
		},
		gen.IntRange(2, 44),
	))

	properties.Property("negative indices are rejected", prop.ForAll(
		func(n int) bool {
			_, err := s.Solve(ctx, n)
			return err != nil
		},
		gen.IntRange(-1000, -1),
	))

	properties.TestingRun(t)
}

// TestCassinisIdentity_PropertyBased verifies Cassini's Identity:
//
//	F(n-1) * F(n+1) - F(n)^2 = (-1)^n
//
// which provides an independent correctness oracle for the solver. Indices
// are kept small enough that the intermediate products fit in int64.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	s := newTestSolver()
	ctx := context.Background()

	properties.Property("satisfies Cassini's Identity", prop.ForAll(
		func(n int) bool {
			fnMinus1, err := s.Solve(ctx, n-1)
			if err != nil {
				return false
			}
			fn, err := s.Solve(ctx, n)
			if err != nil {
				return false
			}
			fnPlus1, err := s.Solve(ctx, n+1)
			if err != nil {
				return false
			}

			lhs := fnMinus1*fnPlus1 - fn*fn
			want := int64(1)
			if n%2 == 1 {
				want = -1
			}
			return lhs == want
		},
		gen.IntRange(1, 40),
	))

	properties.TestingRun(t)
}
