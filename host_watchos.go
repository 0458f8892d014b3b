//go:build ios && watchos && !visionos

package devicecheck

const hostOS = OSWatchOS
