package exceptions

import (
	"github.com/shaldengeki/crafting-interpreters/common"
)

// Cast returns the first error in the unwrap chain of err that has type T.
func Cast[T any](err error) (T, bool) {
	for err != nil {
		if interfaceError, isInterface := err.(T); isInterface {
			return interfaceError, true
		}
		unwrapper, isUnwrapper := err.(interface{ Unwrap() error })
		if !isUnwrapper {
			break
		}
		err = unwrapper.Unwrap()
	}
	return common.DefaultValue[T](), false
}
