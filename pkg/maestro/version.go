// Package maestro holds build-time facts about the module.
package maestro

// Version is the release version, overridable with
// -ldflags "-X github.com/mesh-intelligence/maestro/pkg/maestro.Version=...".
var Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/maestro"
