//go:build !portable && !dev

package platform

// portableSaves reports whether saved data lives alongside the executable
// instead of in a per-user OS-managed directory. Enabled by building with
// the "portable" or "dev" tag.
const portableSaves = false
