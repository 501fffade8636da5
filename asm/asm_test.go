package asm

import (
	"strings"
	"testing"
)

func TestAssembleParsesTokensInOrder(t *testing.T) {
	listing := "0100 3E 02\n0102 C6 03 (* add 3 *)\n0104\tFE 05\n\n"
	got, err := Assemble(strings.NewReader(listing), 0)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := []byte{0x3E, 0x02, 0xC6, 0x03, 0xFE, 0x05}
	if string(got) != string(want) {
		t.Fatalf("Assemble() = % X, want % X", got, want)
	}
}

func TestAssembleZeroFillsOffset(t *testing.T) {
	got, err := Assemble(strings.NewReader("0004 AB"), 4)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := []byte{0x00, 0x00, 0x00, 0x00, 0xAB}
	if string(got) != string(want) {
		t.Fatalf("Assemble() = % X, want % X", got, want)
	}
}

func TestAssembleIgnoresNonListingLines(t *testing.T) {
	got, err := Assemble(strings.NewReader("; a comment with no address column\n0100 00\n"), 0)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if string(got) != string([]byte{0x00}) {
		t.Fatalf("Assemble() = % X, want [00]", got)
	}
}

func TestAssembleRejectsTooManyTokens(t *testing.T) {
	if _, err := Assemble(strings.NewReader("0100 01 02 03 04"), 0); err == nil {
		t.Fatalf("Assemble should reject a line with more than 3 byte tokens")
	}
}

func TestAssembleRejectsBadHex(t *testing.T) {
	if _, err := Assemble(strings.NewReader("0100 ZZ"), 0); err == nil {
		t.Fatalf("Assemble should reject a non-hex token")
	}
}
