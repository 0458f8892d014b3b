//go:build maccatalyst

package devicecheck

// catalystBuild is set by gomobile's maccatalyst target, which also sets ios and macos
const catalystBuild = true
