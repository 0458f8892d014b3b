package apple

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

// UIKit locations. Catalyst processes resolve the iOSSupport copy.
var uikitPaths = []string{
	"/System/Library/Frameworks/UIKit.framework/UIKit",
	"/System/iOSSupport/System/Library/Frameworks/UIKit.framework/UIKit",
}

// openLibrary loads a dynamic library so its classes register with the runtime
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
}

var loadUIKit = sync.OnceValue(func() error {
	var errs []error
	for _, path := range uikitPaths {
		if _, err := openLibrary(path); err != nil {
			errs = append(errs, fmt.Errorf("dlopen %s: %w", path, err))
			continue
		}
		return nil
	}
	return errors.Join(errs...)
})

// UserInterfaceIdiom returns [[UIDevice currentDevice] userInterfaceIdiom]
func UserInterfaceIdiom() (int, error) {
	if err := loadUIKit(); err != nil {
		return -1, fmt.Errorf("failed to load UIKit: %w", err)
	}

	cls := objc.GetClass("UIDevice")
	if cls == 0 {
		return -1, errors.New("UIDevice class not registered")
	}

	device := objc.ID(cls).Send(objc.RegisterName("currentDevice"))
	if device == 0 {
		return -1, errors.New("UIDevice currentDevice returned nil")
	}

	return objc.Send[int](device, objc.RegisterName("userInterfaceIdiom")), nil
}
