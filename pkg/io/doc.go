// Package io provides import and export for warehouse configurations and
// computed layout trees.
//
// # Overview
//
// Configurations are accepted in JSON or TOML; the format is chosen by file
// extension. Layout trees are exported as pretty-printed JSON, the format
// consumed by the rendering frontends and re-importable for inspection.
//
// # Config Format
//
// A minimal JSON configuration:
//
//	{
//	  "dimensions": {"width": 30, "length": 60, "height": 12, "unit": "m"},
//	  "num_sections": 2,
//	  "sections": [
//	    {"num_floors": 4, "num_rows": 8, "num_columns": 4},
//	    {"num_floors": 4, "num_rows": 8, "num_columns": 4}
//	  ]
//	}
//
// The same structure is accepted as TOML. Field names and semantics are
// defined by [warehouse.Config]; this package performs no validation beyond
// decoding, so a decoded config still has to pass [warehouse.Validate].
//
// # Import
//
// Use [ImportConfig] to read a config from a file path, or [ReadConfig] to
// read from any io.Reader with an explicit format:
//
//	cfg, err := io.ImportConfig("warehouse.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Export
//
// Use [ExportTree] to write a computed tree to a file, or [WriteTree] to
// write to any io.Writer:
//
//	err := io.ExportTree(tree, "layout.json")
//
// Exported trees round-trip through [warehouse.ReadTreeFile] byte-for-byte,
// so downstream tools can rely on stable output.
package io
