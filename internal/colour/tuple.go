package colour

import "fmt"

// EncodeTuple packs the pair (a, b), each in [0,max], into the single integer
// (max+1)*a + b.
func EncodeTuple(a, b, max int) (int, error) {
	if a < 0 || b < 0 || a > max || b > max {
		return 0, fmt.Errorf("%w: tuple (%d, %d) exceeds %d", ErrOutOfRange, a, b, max)
	}
	return (max+1)*a + b, nil
}

// DecodeTuple is the inverse of EncodeTuple.
func DecodeTuple(n, max int) (a, b int, err error) {
	base := max + 1
	if max < 0 || n < 0 || n > base*base {
		return 0, 0, fmt.Errorf("%w: %d is not a tuple of max %d", ErrOutOfRange, n, max)
	}
	return n / base, n % base, nil
}
