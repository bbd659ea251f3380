package domain

import (
	"strings"
	"testing"
)

func TestNewDocumentMasksMiddleGroups(t *testing.T) {
	doc := NewDocument("123.456.789-09")

	if doc.DisplayNumber != "123.***.***-09" {
		t.Fatalf("expected display number 123.***.***-09, got %s", doc.DisplayNumber)
	}
	if strings.Contains(doc.DisplayNumber, "456") || strings.Contains(doc.DisplayNumber, "789") {
		t.Fatalf("display number leaks masked digit groups: %s", doc.DisplayNumber)
	}
}

func TestNewDocumentMasksUnformattedInput(t *testing.T) {
	doc := NewDocument("12345678909")

	if doc.DisplayNumber != "123******09" {
		t.Fatalf("expected display number 123******09, got %s", doc.DisplayNumber)
	}
}

func TestNewDocumentFingerprintIgnoresFormatting(t *testing.T) {
	formatted := NewDocument("123.456.789-09")
	plain := NewDocument("12345678909")

	if formatted.Fingerprint != plain.Fingerprint {
		t.Fatal("expected identical fingerprints for the same number in different formats")
	}
	if len(formatted.Fingerprint) != 64 {
		t.Fatalf("expected a 64-char hex fingerprint, got %d chars", len(formatted.Fingerprint))
	}
}

func TestNewDocumentFingerprintDiffersByNumber(t *testing.T) {
	a := NewDocument("123.456.789-09")
	b := NewDocument("987.654.321-00")

	if a.Fingerprint == b.Fingerprint {
		t.Fatal("expected different fingerprints for different numbers")
	}
	if a.Equal(b) {
		t.Fatal("expected documents with different numbers not to be equal")
	}
}

func TestDocumentEqual(t *testing.T) {
	a := NewDocument("123.456.789-09")
	b := NewDocument("123.456.789-09")

	if !a.Equal(b) {
		t.Fatal("expected documents built from the same raw value to be equal")
	}
}
