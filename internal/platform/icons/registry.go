package icons

// Pixel grids the source art is drawn on.
const (
	SizeStandard = 16
	SizeLarge    = 20
)

// Paths16 returns the path data for name on the 16px grid, in drawing order.
func Paths16(name Name) []string {
	return paths16(name)
}

// Paths20 returns the path data for name on the 20px grid, in drawing order.
func Paths20(name Name) []string {
	return paths20(name)
}

// PathsForSize picks the art for a rendered size. Only SizeStandard uses the
// 16px grid; every other size scales the 20px art.
func PathsForSize(name Name, size int) []string {
	if size == SizeStandard {
		return paths16(name)
	}
	return paths20(name)
}

// GridSize returns the viewBox side for a rendered size.
//
// This threshold differs from PathsForSize: sizes 17 to 19 pair 20px art
// with a 16px viewBox and clip it. Callers are expected to use 16 or >= 20.
func GridSize(size int) int {
	if size >= SizeLarge {
		return SizeLarge
	}
	return SizeStandard
}
