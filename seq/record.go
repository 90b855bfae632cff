package seq

// DefaultQualityOffset is the Phred+33 encoding offset used by FASTQ
// readers and writers unless configured otherwise.
const DefaultQualityOffset = 33

// A Record is a single entry read from a FASTA or FASTQ file.
//
// Name is the header line without its leading delimiter ('>' or '@') and
// without the line terminator. Sequence contains the residues with all
// whitespace removed. Scores is empty for FASTA records; for FASTQ records it
// has exactly one score per residue.
type Record struct {
	Name     string
	Sequence string
	Scores   []int8
}

// Len returns the number of residues in the record.
func (r Record) Len() int {
	return len(r.Sequence)
}

// HasScores reports whether the record carries quality scores.
func (r Record) HasScores() bool {
	return len(r.Scores) > 0
}

// Format returns FASTQ for records with scores and FASTA otherwise.
func (r Record) Format() Format {
	if r.HasScores() {
		return FASTQ
	}
	return FASTA
}

// Quality encodes the scores back into printable quality bytes using the
// given offset. It returns nil if the record has no scores.
func (r Record) Quality(offset int) []byte {
	if !r.HasScores() {
		return nil
	}
	qual := make([]byte, len(r.Scores))
	for i, s := range r.Scores {
		qual[i] = byte(int(s) + offset)
	}
	return qual
}

// MeanScore returns the arithmetic mean of the scores, or 0 if there are
// none.
func (r Record) MeanScore() float64 {
	if !r.HasScores() {
		return 0
	}
	sum := 0
	for _, s := range r.Scores {
		sum += int(s)
	}
	return float64(sum) / float64(len(r.Scores))
}
