// SPDX-License-Identifier: MIT

// Package cli parses the spbench command line into a Config and carries the
// process exit code of a failed run in ExitError.
package cli
