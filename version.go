package markov

import _ "embed"

// Version is the release of the markov module and its CLI.
//
//go:embed VERSION
var Version string
