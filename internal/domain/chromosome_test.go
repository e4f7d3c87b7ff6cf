package domain

import (
	"reflect"
	"testing"
)

func TestChromosomeCounts(t *testing.T) {
	c := Chromosome{
		CustomerGene(2), SeparatorGene(), CustomerGene(4), CustomerGene(3), SeparatorGene(),
	}

	if got := c.SeparatorCount(); got != 2 {
		t.Fatalf("SeparatorCount = %d, want 2", got)
	}
	if got := c.CustomerIDs(); !reflect.DeepEqual(got, []int{2, 4, 3}) {
		t.Fatalf("CustomerIDs = %v, want [2 4 3]", got)
	}
}

func TestChromosomeCloneIsIndependent(t *testing.T) {
	c := Chromosome{CustomerGene(2), SeparatorGene(), CustomerGene(3)}

	clone := c.Clone()
	clone[0] = CustomerGene(9)

	if c[0].Customer != 2 {
		t.Fatalf("mutating a clone changed the original: %v", c)
	}
}

func TestChromosomeString(t *testing.T) {
	c := Chromosome{CustomerGene(3), CustomerGene(7), SeparatorGene(), CustomerGene(2)}

	if got := c.String(); got != "3 7 | 2" {
		t.Fatalf("String = %q, want %q", got, "3 7 | 2")
	}
}
