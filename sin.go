package fastsin

// tableSize is the number of samples covering one full period.
const tableSize = 256

// invTwoPi is 1/(2*pi) rounded to single precision.
const invTwoPi = 0.159154943092

// Sin returns an approximation of sin(x) for x in radians.
//
// The input is folded into one period, mapped onto the 256-sample table
// and interpolated with a cubic 4-point kernel. The result stays within
// [-1, 1] up to a tiny interpolation overshoot. Sin never fails and
// performs no allocation; NaN and Inf inputs propagate through the
// float32 arithmetic unhandled.
func Sin(x float32) float32 {
	// Scale from [0, 2*pi) per period to [0, 1).
	in := x * invTwoPi

	// Truncation rounds toward zero; shift negative inputs one period
	// down so the fractional position always lands in [0, 1).
	n := int32(in)
	if x < 0 {
		n--
	}

	in -= float32(n)

	pos := tableSize * in
	index := int32(pos)
	fract := pos - float32(index)

	// Rounding is not expected to push pos outside [0, 256), but the
	// fetch below must never leave the table.
	if index < 0 {
		index = 0
	} else if index > tableSize {
		index = tableSize
	}

	// Four nearest samples around the fractional position.
	a := sinTable[index]
	b := sinTable[index+1]
	c := sinTable[index+2]
	d := sinTable[index+3]

	// Cubic 4-point Lagrange weights:
	//
	//	wa = -(1/6)*t^3 + (1/2)*t^2 - (1/3)*t
	//	wb =  (1/2)*t^3 -       t^2 - (1/2)*t + 1
	//	wc = -(1/2)*t^3 + (1/2)*t^2 +       t
	//	wd =  (1/6)*t^3 - (1/6)*t
	//
	// evaluated through shared subexpressions to cut multiplies.
	fractSq := fract * fract
	fractBy2 := fract * 0.5
	fractBy6 := fract * 0.166666667
	fractBy3 := fract * 0.3333333333333
	fractSqBy2 := fractSq * 0.5
	frBy2xFrSq := fractBy2 * fractSq
	frBy6xFrSq := fractBy6 * fractSq

	wa := fractSqBy2 - fractBy3 - frBy6xFrSq
	wb := frBy2xFrSq - fractSq + (1 - fractBy2)
	wc := fractSqBy2 + fract - frBy2xFrSq
	wd := frBy6xFrSq - fractBy6

	return a*wa + b*wb + c*wc + d*wd
}
