// Package signature identifies a file from the bytes at the start of it.
package signature

import (
	"io"
	"os"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/zerr"
)

// Checker implements ports.SignatureChecker over a fixed table.
type Checker struct {
	table domain.SignatureTable
}

// NewChecker returns a Checker using the known signatures of both applications.
func NewChecker() *Checker {
	return NewCheckerWithTable(domain.DefaultSignatureTable())
}

// NewCheckerWithTable returns a Checker scanning table in order.
func NewCheckerWithTable(table domain.SignatureTable) *Checker {
	return &Checker{table: table}
}

// Check reads at most domain.SignatureHeadLen bytes of path and matches them.
func (c *Checker) Check(path string) (domain.Program, error) {
	//nolint:gosec // G304: path is the file the user asked to open
	f, err := os.Open(path)
	if err != nil {
		return domain.Unknown, unreadable(err, path)
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, domain.SignatureHeadLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return domain.Unknown, unreadable(err, path)
	}

	return c.CheckBytes(head[:n]), nil
}

// CheckBytes matches an already-read head. It has no side effects.
func (c *Checker) CheckBytes(head []byte) domain.Program {
	return c.table.Match(head)
}

func unreadable(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrFileUnreadable.Error()), "path", path)
}
