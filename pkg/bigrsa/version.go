package bigrsa

// Version is set at build time via
// -ldflags "-X github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa.Version=v1.2.3".
var Version = "v0.0.0-in-progress"

// ModuleVersion returns the semantic version populated at build time. In
// development it defaults to v0.0.0-in-progress.
func ModuleVersion() string {
	return Version
}
