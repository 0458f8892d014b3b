// Package apple queries Apple system frameworks without cgo.
//
// UIKit is loaded with purego and messaged through the Objective-C runtime;
// the hardware model comes from sysctl. On other systems every lookup returns
// ErrUnsupported.
package apple

import "errors"

// ErrUnsupported is returned when a lookup has no meaning on this system
var ErrUnsupported = errors.New("apple: unsupported on this system")
