/*
Package polynomials is a small library of low-degree polynomials over float64.
It provides distinct value types for the scalar, linear, quadratic, cubic and quartic cases,
with evaluation, differentiation, arithmetic along the degree promotion lattice,
canonical textual rendering and closed-form root finding for the linear and quadratic cases.
*/
package polynomials
