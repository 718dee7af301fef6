// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates a Format value Decode cannot handle.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrSyntax indicates malformed input in any format.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrUnknownLabel indicates a node name that is not in the document.
	ErrUnknownLabel = errors.New("graphio: unknown node label")
)

// Format selects a document encoding.
type Format uint8

const (
	Text Format = iota
	JSON
	YAML
	HCL
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case HCL:
		return "hcl"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// FormatOf picks the format from a file extension; unknown extensions are
// read as Text.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".hcl":
		return HCL
	default:
		return Text
	}
}
