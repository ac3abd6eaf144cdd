package almanac

import _ "embed"

// Version exposes the version of the library, embedded from the
// VERSION file at the repository root.
//
//go:embed VERSION
var Version string
