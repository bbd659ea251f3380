package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Document is the privacy-preserving form of a CPF. Only the anonymized
// display number and the digest of the digits survive construction; the raw
// document is never stored or compared directly.
type Document struct {
	DisplayNumber string
	Fingerprint   string
}

func NewDocument(raw string) Document {
	return Document{
		DisplayNumber: anonymize(raw),
		Fingerprint:   fingerprint(raw),
	}
}

// Equal compares both the display form and the fingerprint.
func (d Document) Equal(other Document) bool {
	return d.DisplayNumber == other.DisplayNumber && d.Fingerprint == other.Fingerprint
}

func (d Document) String() string {
	return d.DisplayNumber
}

// fingerprint digests the document's digits only, so the same number maps to
// the same value regardless of separators or spacing.
func fingerprint(raw string) string {
	sum := sha256.Sum256([]byte(digitsOf(raw)))
	return hex.EncodeToString(sum[:])
}

// anonymize keeps the first and last digit groups and stars out every group
// between them, preserving separators: 123.456.789-09 becomes 123.***.***-09.
// Input without separators keeps the three leading and two trailing digits.
func anonymize(raw string) string {
	out := []rune(raw)
	groups := digitGroups(out)

	if len(groups) >= 3 {
		for _, g := range groups[1 : len(groups)-1] {
			for i := g.start; i < g.end; i++ {
				out[i] = '*'
			}
		}
		return string(out)
	}

	total := len(digitsOf(raw))
	seen := 0
	for i, r := range out {
		if r < '0' || r > '9' {
			continue
		}
		if seen >= 3 && seen < total-2 {
			out[i] = '*'
		}
		seen++
	}
	return string(out)
}

type digitGroup struct {
	start int
	end   int
}

func digitGroups(rs []rune) []digitGroup {
	var groups []digitGroup
	i := 0
	for i < len(rs) {
		if rs[i] < '0' || rs[i] > '9' {
			i++
			continue
		}
		j := i
		for j < len(rs) && rs[j] >= '0' && rs[j] <= '9' {
			j++
		}
		groups = append(groups, digitGroup{start: i, end: j})
		i = j
	}
	return groups
}

func digitsOf(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
