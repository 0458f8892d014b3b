//go:build tools

package devicecheck

// gomobile bind needs golang.org/x/mobile/bind resolvable from this module
import _ "golang.org/x/mobile/bind"
