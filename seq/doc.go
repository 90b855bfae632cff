/*
Package seq defines the values shared by the FASTA and FASTQ readers in this
module: the Record type they produce, the Reader interface they both
satisfy, the errors they return and the options used to construct them.

A Record is a plain value. Readers fill it in name, sequence, scores order
and hand it to the caller without keeping a reference to it.

Two kinds of error are returned by readers. An *IOError means the file could
not be opened or read. A *FormatError means the input does not follow the
expected grammar. Both are fatal to the reader that returned them: its
position in the input is no longer aligned to a record, so it must not be
used again.
*/
package seq
