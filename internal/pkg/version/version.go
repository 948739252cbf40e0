// Package version holds build metadata of the service and its container image.
package version

// Overridable at build time via -ldflags "-X".
var (
	Name      = "account-reactive"
	Version   = "0.1-SNAPSHOT"
	Namespace = "wisskirchenj"
	Commit    = "unknown"
)

// ImageName returns the container image reference the service is published under.
func ImageName() string {
	return Namespace + "/" + Name + ":" + Version
}
