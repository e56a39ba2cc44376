package node

import (
	"testing"

	"github.com/modsagraphy/universa/internal/types"
)

func TestVoteTally_SetsStayDisjointAcrossFlips(t *testing.T) {
	tally := newVoteTally()
	peers := []types.NodeInfo{nodeB, nodeC, nodeD}

	tally.record(nodeB, true)
	tally.record(nodeC, false)
	tally.record(nodeB, false)
	tally.record(nodeB, true)
	tally.record(nodeD, true)
	tally.record(nodeD, false)

	for _, p := range peers {
		_, pos := tally.positive[p]
		_, neg := tally.negative[p]
		if pos && neg {
			t.Fatalf("%s is counted on both sides", p.Name)
		}
	}

	if _, ok := tally.positive[nodeB]; !ok {
		t.Fatal("latest vote for B was positive")
	}
	if _, ok := tally.negative[nodeC]; !ok {
		t.Fatal("latest vote for C was negative")
	}
	if _, ok := tally.negative[nodeD]; !ok {
		t.Fatal("latest vote for D was negative")
	}
	if len(tally.positive)+len(tally.negative) != 3 {
		t.Fatalf("expected 3 voters, got %d positive %d negative",
			len(tally.positive), len(tally.negative))
	}
}

func TestVoteTally_HasReportsEitherSide(t *testing.T) {
	tally := newVoteTally()

	if tally.has(nodeB) {
		t.Fatal("empty tally must not report a voter")
	}

	tally.record(nodeB, true)
	tally.record(nodeC, false)

	if !tally.has(nodeB) || !tally.has(nodeC) {
		t.Fatal("recorded voters must be reported")
	}
	if tally.has(nodeD) {
		t.Fatal("silent peer must not be reported")
	}

	tally.record(nodeB, false)
	if !tally.has(nodeB) {
		t.Fatal("a flipped voter is still a voter")
	}
}
