/*
Package fasta reads and writes sequences in FASTA format, plain or aligned.

Each entry is a '>' header line followed by any number of residue lines.
Blank lines and surrounding whitespace are ignored. Unless a Reader is told
to trust its input, residues are restricted to letters, '*' and '-', and
lower case letters are read as upper case. An AlignedReader additionally
requires every sequence to have the same length, which is what the distance
and tree building packages expect of their input.
*/
package fasta
