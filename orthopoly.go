/*
Package orthopoly computes orthonormal polynomial bases with respect to weighted inner products.

The packages are layered, each using only the ones listed before it:

	polynomial    dense univariate polynomials: evaluation, arithmetic, formatting
	quadrature    Gauss-Legendre rules of order 1 to 5 and a composite integrator
	innerproduct  <P, Q> = int w(x) P(x) Q(x) dx for Legendre, Chebyshev and custom weights
	orthobasis    modified Gram-Schmidt on the monomials, Gram matrix diagnostics

The command cmd/orthopoly prints the Legendre and Chebyshev bases and checks them
against the roots of the classical polynomials.
*/
package orthopoly
