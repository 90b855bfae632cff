package fasta_test

import (
	"fmt"
	"strings"

	"github.com/TuftsBCB/seqio/fasta"
)

func ExampleReader() {
	input := ">seq1 first\nATCG\nAT>CG\n>seq2\nGG CC\n"

	r := fasta.NewReader(strings.NewReader(input))
	defer r.Close()
	for r.HasNext() {
		rec, err := r.Next()
		if err != nil {
			fmt.Println("bad entry:", err)
			return
		}
		fmt.Printf("%s: %s\n", rec.Name, rec.Sequence)
	}
	// Output:
	// seq1 first: ATCGAT>CG
	// seq2: GGCC
}
