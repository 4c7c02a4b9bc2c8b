// Package hash provides concrete hash capabilities implementing
// core.Hasher. Two are mandated by the tree's design: TurboSHAKE128 and
// BLAKE3. Each lives behind its own negative build tag (turboshake.go
// under !noturboshake, blake3.go under !noblake3) so either can be
// dropped from a build while the other remains; building with both tags
// set leaves only the generic core.Hasher interface, satisfying a
// minimal configuration with no default hash capability.
package hash
