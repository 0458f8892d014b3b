//go:build ios && tvos && !watchos && !visionos

package devicecheck

const hostOS = OSTVOS
