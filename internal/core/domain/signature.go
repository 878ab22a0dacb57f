package domain

// SignatureHeadLen is the number of leading bytes read for the signature scan.
const SignatureHeadLen = 32

// SignatureHint is a byte pattern expected at a fixed offset.
type SignatureHint struct {
	Offset  int
	Pattern []byte
	Program Program
}

// Matches reports whether head carries the pattern at the hint offset.
// A head too short to hold the pattern never matches.
func (h SignatureHint) Matches(head []byte) bool {
	if h.Offset < 0 || len(h.Pattern) == 0 {
		return false
	}
	end := h.Offset + len(h.Pattern)
	if end > len(head) {
		return false
	}
	return string(head[h.Offset:end]) == string(h.Pattern)
}

// SignatureTable is scanned in order; the first matching hint wins.
type SignatureTable []SignatureHint

// DefaultSignatureTable returns the known signatures of both applications.
func DefaultSignatureTable() SignatureTable {
	return SignatureTable{
		{Offset: 0, Pattern: []byte("SQLite format"), Program: Primary},
		{Offset: 8, Pattern: []byte("Version"), Program: Primary},
		{Offset: 0, Pattern: []byte("FuP_pHySPCD%"), Program: Secondary},
	}
}

// Match returns the identity of the first hint that matches head.
func (t SignatureTable) Match(head []byte) Program {
	for _, hint := range t {
		if hint.Matches(head) {
			return hint.Program
		}
	}
	return Unknown
}
