// Package cryptoalg defines the interfaces of the cipher processors used by
// the application layer, so that services depend on behavior rather than on
// a concrete cipher implementation.
package cryptoalg
