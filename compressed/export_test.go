package compressed

import "unsafe"

func unsafePointerOf[T any](s []T) unsafe.Pointer {
	return unsafe.Pointer(&s[0])
}
