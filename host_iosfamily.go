//go:build ios && !tvos && !watchos && !visionos

package devicecheck

// gomobile sets the ios tag for iOS, iOS simulator and Mac Catalyst targets
const hostOS = OSIOS
