package version

// version is set at build time with
// -ldflags "-X github.com/cbodonnell/lanes/pkg/version.version=v1.2.3"
var version = "dev"

// Get returns the build version of the client.
func Get() string {
	return version
}
