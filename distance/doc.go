/*
Package distance computes pairwise percent identities over an alignment and
converts them into a symmetric distance matrix suitable for hierarchical
clustering.

Identity is measured column by column over the full alignment length: a
column counts as identical when both sequences carry exactly the same
character there (case-sensitive), and a gap only matches another gap. The
distance between two sequences is 1 - identity/100.

Every function in this package is pure. Contract violations by the caller
(unequal lengths, missing scores, identities out of range) are reported as
*InputError values.
*/
package distance
