package io

import (
	"fmt"
	"io"
	"os"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/warehouse"
)

// WriteTree encodes a layout tree as pretty-printed JSON and writes it to w.
// The output can be re-read with [warehouse.UnmarshalTree].
func WriteTree(t *warehouse.Tree, w io.Writer) error {
	data, err := warehouse.MarshalTree(t)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportTree writes a layout tree to a JSON file at path.
// This is a convenience wrapper around [WriteTree] for file-based output.
func ExportTree(t *warehouse.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteTree(t, f)
}
