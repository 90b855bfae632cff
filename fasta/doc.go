/*
Package fasta provides routines for reading and writing FASTA files. Routines
are also provided to read and write aligned fasta files.

A FASTA file is a sequence of entries, each a header line starting with '>'
followed by one or more sequence lines. The reader is streaming: it pulls
bytes through a fixed-size buffer.Buffer and never holds more than one entry
in memory.

The rules the reader applies are:

	Blank lines before the first header are skipped. Any other content
	before it is an error.

	The name is the rest of the header line, kept verbatim.

	Only printable ASCII other than space (33 to 126) is kept from sequence
	lines. Whitespace and control bytes are dropped.

	A '>' only starts a new entry when it is the first byte of a line. A '>'
	anywhere else is part of the sequence.

	Every entry must have a non-empty name and a non-empty sequence.

No check is made that the residues form a valid nucleotide or amino acid
alphabet.
*/
package fasta
