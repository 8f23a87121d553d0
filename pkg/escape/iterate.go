package escape

// Iterate runs z = z^2 + c from z = 0 and returns the iteration index after
// which |z|^2 first exceeds 4, or maxIt if it never does.
func Iterate(cre, cim float64, maxIt uint) uint {
	var zre, zim float64 = 0, 0
	for it := uint(0); it < maxIt; it += 1 {
		// z = z ^ 2 + c
		copyZre := zre
		zre = zre*zre - zim*zim + cre
		zim = copyZre*zim*2 + cim
		if zre*zre+zim*zim > 4 {
			return it
		}
	}
	return maxIt
}
