//go:build !maccatalyst

package devicecheck

const catalystBuild = false
