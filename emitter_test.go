package huffman

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/icza/bitio"
)

func checkPrefixFree(t *testing.T, cb Codebook) {
	t.Helper()
	codes := cb.Map()
	for a, ca := range codes {
		if ca.Len() == 0 {
			t.Errorf("symbol %d has an empty code", a)
		}
		for b, cc := range codes {
			if a == b {
				continue
			}
			if ca.HasPrefix(cc) {
				t.Errorf("code %s for symbol %d has code %s for symbol %d as a prefix", ca, a, cc, b)
			}
		}
	}
}

func TestCodes_Dump(t *testing.T) {
	tree, err := BuildCounts([]int64{5, 9, 12, 13, 16, 45})
	if err != nil {
		t.Fatalf("BuildCounts failed: %v", err)
	}
	cb := tree.Codes()
	checkPrefixFree(t, cb)

	expectDump := strings.Join([]string{
		"Codebook{\n",
		"\tLen() = 6\n",
		"\tMaxLength() = 4\n",
		"\tLookup(0) = \"1100\"\n",
		"\tLookup(1) = \"1101\"\n",
		"\tLookup(2) = \"100\"\n",
		"\tLookup(3) = \"101\"\n",
		"\tLookup(4) = \"111\"\n",
		"\tLookup(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = cb.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestWalk_PreOrder(t *testing.T) {
	tree, err := BuildCounts([]int64{5, 9, 12, 13, 16, 45})
	if err != nil {
		t.Fatalf("BuildCounts failed: %v", err)
	}

	expectSymbols := []Symbol{5, 2, 3, 0, 1, 4}
	expectCodes := []string{"0", "100", "101", "1100", "1101", "111"}

	var index int
	tree.Walk(func(symbol Symbol, code Code) bool {
		if index >= len(expectSymbols) {
			t.Fatalf("too many leaves")
		}
		if symbol != expectSymbols[index] {
			t.Errorf("leaf %d: expected symbol %d, got %d", index, expectSymbols[index], symbol)
		}
		if !code.Equal(MakeCode(expectCodes[index])) {
			t.Errorf("leaf %d: expected code %q, got %s", index, expectCodes[index], code)
		}
		index++
		return true
	})
	if index != len(expectSymbols) {
		t.Errorf("expected %d leaves, visited %d", len(expectSymbols), index)
	}
}

func TestWalk_StopsEarly(t *testing.T) {
	tree := mustBuild(t, workedSymbols, workedFrequencies)
	var calls int
	tree.Walk(func(Symbol, Code) bool {
		calls++
		return calls < 3
	})
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestWalk_Idempotent(t *testing.T) {
	tree := mustBuild(t, workedSymbols, workedFrequencies)
	first := tree.Codes().Map()
	second := tree.Codes().Map()
	if len(first) != len(second) {
		t.Fatalf("mapping sizes differ: %d vs %d", len(first), len(second))
	}
	for symbol, hc := range first {
		if !hc.Equal(second[symbol]) {
			t.Errorf("symbol %d: %s vs %s", symbol, hc, second[symbol])
		}
	}
}

func TestCodes_WorkedExample(t *testing.T) {
	tree := mustBuild(t, workedSymbols, workedFrequencies)
	cb := tree.Codes()
	checkPrefixFree(t, cb)

	if cb.Len() != len(workedSymbols) {
		t.Errorf("expected %d codes, got %d", len(workedSymbols), cb.Len())
	}

	// Lighter symbols never get shorter codes than heavier ones.
	for i := range workedSymbols {
		for j := range workedSymbols {
			if workedFrequencies[i] >= workedFrequencies[j] {
				continue
			}
			ci, _ := cb.Lookup(workedSymbols[i])
			cj, _ := cb.Lookup(workedSymbols[j])
			if ci.Len() < cj.Len() {
				t.Errorf("%q (freq %d) has %s, shorter than %q (freq %d) with %s",
					rune(workedSymbols[i]), workedFrequencies[i], ci,
					rune(workedSymbols[j]), workedFrequencies[j], cj)
			}
		}
	}

	// A full tree satisfies Kraft's inequality with equality.
	var kraft float64
	for _, symbol := range cb.Symbols() {
		hc, _ := cb.Lookup(symbol)
		kraft += 1 / float64(uint64(1)<<uint(hc.Len()))
	}
	if kraft != 1 {
		t.Errorf("expected Kraft sum 1, got %v", kraft)
	}
}

func TestCodes_SingleSymbol(t *testing.T) {
	tree := mustBuild(t, []Symbol{'a'}, []int64{5})
	cb := tree.Codes()
	if cb.Len() != 1 {
		t.Fatalf("expected 1 code, got %d", cb.Len())
	}
	hc, found := cb.Lookup('a')
	if !found {
		t.Fatal("no code for 'a'")
	}
	if !hc.Equal(MakeCode("0")) {
		t.Errorf("expected code \"0\", got %s", hc)
	}
}

func TestCodes_TwoSymbols(t *testing.T) {
	tree := mustBuild(t, []Symbol{'a', 'b'}, []int64{1, 1})
	cb := tree.Codes()
	checkPrefixFree(t, cb)
	for _, symbol := range []Symbol{'a', 'b'} {
		hc, _ := cb.Lookup(symbol)
		if hc.Len() != 1 {
			t.Errorf("%q: expected a 1-bit code, got %s", rune(symbol), hc)
		}
	}
	if cb.MaxLength() != 1 {
		t.Errorf("expected MaxLength() 1, got %d", cb.MaxLength())
	}
}

func TestCodes_LargeAlphabet(t *testing.T) {
	counts := make([]int64, 256)
	for i := range counts {
		counts[i] = int64(i%17) + 1
	}
	tree, err := BuildCounts(counts)
	if err != nil {
		t.Fatalf("BuildCounts failed: %v", err)
	}
	cb := tree.Codes()
	if cb.Len() != 256 {
		t.Errorf("expected 256 codes, got %d", cb.Len())
	}
	checkPrefixFree(t, cb)
	if expect, actual := referenceCost(counts), tree.Cost(); expect != actual {
		t.Errorf("expected cost %d, got %d", expect, actual)
	}
}

func TestCodebook_LookupReturnsCopy(t *testing.T) {
	tree := mustBuild(t, workedSymbols, workedFrequencies)
	cb := tree.Codes()
	hc, _ := cb.Lookup('f')
	original := hc.Clone()
	hc[0] ^= 1
	again, _ := cb.Lookup('f')
	if !again.Equal(original) {
		t.Errorf("Codebook was modified through Lookup: %s vs %s", again, original)
	}
	if _, found := cb.Lookup('z'); found {
		t.Error("unexpected code for 'z'")
	}
}

func TestCodebook_Write(t *testing.T) {
	tree, err := BuildCounts([]int64{5, 9, 12, 13, 16, 45})
	if err != nil {
		t.Fatalf("BuildCounts failed: %v", err)
	}
	cb := tree.Codes()

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	// "1100" + "0" + "111" + "101" → 1100 0111 1010 0000
	for _, symbol := range []Symbol{0, 5, 4, 3} {
		if err := cb.Write(w, symbol); err != nil {
			t.Fatalf("Write(%d) failed: %v", symbol, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	expect := []byte{0xc7, 0xa0}
	if !bytes.Equal(expect, buf.Bytes()) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, buf.Bytes())
	}

	if err := cb.Write(w, 99); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}
