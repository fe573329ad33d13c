// Package solver implements the memoized recursive Fibonacci solver. Each
// solve recurses concurrently on its two sub-problems through a shared,
// mutex-guarded memoization cache. The cache lock is deliberately not held
// across the recursive sub-computations, so two concurrent solves of the same
// uncached index may both compute it; both writes store the same correct
// value. The cache is unbounded and lives for the whole process.
package solver
