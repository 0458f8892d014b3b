//go:build darwin && !ios

package devicecheck

// macOS builds; Catalyst builds carry the ios tag and are excluded
const hostOS = OSMacOS
