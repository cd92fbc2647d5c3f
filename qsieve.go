/*
Package qsieve implements a self-initializing Quadratic Sieve for
factoring large composite integers. The library features:

    - A pure Go implementation of 128-bit and Montgomery modular arithmetic.
    - A concurrent, self-initializing sieve over a dynamically sized factor base.
    - A structured Gaussian elimination pass over GF(2) for the linear algebra step.

qsieve aims at splitting semiprimes up to roughly 120 decimal digits by
harnessing Go's concurrency model for the sieving phase, in the same
spirit as the lattice libraries this package grew out of.
*/
package qsieve

// Version is the semantic version of this module.
const Version = "0.1.0"
