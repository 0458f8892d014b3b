//go:build ios && visionos

package devicecheck

const hostOS = OSVisionOS
