// Package test provides shared helpers for the Staffable test suites.
package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path for a fresh sqlite database. Every test gets
// its own file so suites never see each other's data.
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String()+".db")
}
