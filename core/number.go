package core

import "math"

// numberToken is the result of a pure, read-only scan of a number
// starting at some offset: no cursor in Buffer moves while scanning.
// Offsets are absolute positions into the backing slice.
type numberToken struct {
	negative bool

	intStart, intEnd int

	hasDot bool
	dotPos int

	fracStart, fracEnd int

	hasExp         bool
	expSign        int
	expDigitsStart int
	expDigitsEnd   int

	tokenEnd int

	nonZeroStart int // -1 if the value is all zeros
	nonZeroEnd   int
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// order returns the power of ten represented by the digit at absolute
// position p, ignoring any explicit exponent suffix.
func (t numberToken) order(p int) int64 {
	if p < t.intEnd {
		return int64(t.intEnd - 1 - p)
	}
	return -int64(p - t.dotPos)
}

// scanNumber tokenizes the number at data[pos:end] without mutating
// anything. Grounded on lighterjson.c's do_number's first two scan
// loops (integer/fraction digits, then exponent).
func scanNumber(data []byte, pos, end int) numberToken {
	var t numberToken
	t.nonZeroStart = -1
	t.nonZeroEnd = -1

	i := pos
	if i < end && data[i] == '-' {
		t.negative = true
		i++
	}

	t.intStart = i
	for i < end && isDigit(data[i]) {
		if data[i] != '0' {
			if t.nonZeroStart == -1 {
				t.nonZeroStart = i
			}
			t.nonZeroEnd = i
		}
		i++
	}
	t.intEnd = i

	if i < end && data[i] == '.' {
		t.hasDot = true
		t.dotPos = i
		i++
		t.fracStart = i
		for i < end && isDigit(data[i]) {
			if data[i] != '0' {
				if t.nonZeroStart == -1 {
					t.nonZeroStart = i
				}
				t.nonZeroEnd = i
			}
			i++
		}
		t.fracEnd = i
	} else {
		t.fracStart = i
		t.fracEnd = i
	}

	if i < end && (data[i] == 'e' || data[i] == 'E') {
		ePos := i
		ei := i + 1
		sign := 1
		if ei < end && (data[ei] == '+' || data[ei] == '-') {
			if data[ei] == '-' {
				sign = -1
			}
			ei++
		}
		digStart := ei
		j := ei
		for j < end && isDigit(data[j]) {
			j++
		}
		if j > digStart {
			t.hasExp = true
			t.expSign = sign
			t.expDigitsStart = digStart
			t.expDigitsEnd = j
			i = j
		} else {
			i = ePos // dangling 'e' with no digits: not part of the number
		}
	}
	t.tokenEnd = i
	return t
}

func parseExpDigits(data []byte, lo, hi, sign int) int64 {
	var v int64
	for i := lo; i < hi; i++ {
		d := int64(data[i] - '0')
		if v > (math.MaxInt64-d)/10 {
			v = math.MaxInt64 / 10
			continue
		}
		v = v*10 + d
	}
	return int64(sign) * v
}

// extractDigits pulls the digit values (0-9, not ASCII) from [lo, hi]
// inclusive, skipping the decimal point if it falls in range.
func extractDigits(data []byte, lo, hi, dotPos int, hasDot bool) []byte {
	digits := make([]byte, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		if hasDot && p == dotPos {
			continue
		}
		digits = append(digits, data[p]-'0')
	}
	return digits
}

// roundDigits rounds digits (spanning orders maxExponent..minExponent)
// half-away-from-zero to the decimal place roundOrder, which the
// caller has already verified satisfies minExponent < roundOrder <=
// maxExponent. Trailing zeros left behind by rounding are stripped,
// advancing the returned minExponent to match.
func roundDigits(digits []byte, maxExponent, roundOrder int64) ([]byte, int64, int64) {
	keepCount := int(maxExponent - roundOrder + 1)
	roundDigit := digits[keepCount]
	digits = digits[:keepCount]

	if roundDigit >= 5 {
		i := len(digits) - 1
		for i >= 0 {
			if digits[i] == 9 {
				digits[i] = 0
				i--
				continue
			}
			digits[i]++
			break
		}
		if i < 0 {
			carried := make([]byte, len(digits)+1)
			carried[0] = 1
			copy(carried[1:], digits)
			digits = carried
			maxExponent++
		}
	}

	minExponent := roundOrder
	for len(digits) > 1 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
		minExponent++
	}
	return digits, maxExponent, minExponent
}

// shapeZeroes computes the padding-zero count and which kind of
// padding it is: 1 for trailing zeros (min_exponent > 0, pure integer
// wider than its significant digits), 2 for leading zeros (max_exponent
// < 0, a value less than one), 0 for neither (the digit run spans the
// decimal point on its own).
func shapeZeroes(maxExponent, minExponent int64) (int64, int) {
	if minExponent > 0 {
		return minExponent, 1
	}
	if maxExponent < 0 {
		return -maxExponent, 2
	}
	return 0, 0
}

func appendDigits(out []byte, digits []byte) []byte {
	for _, d := range digits {
		out = append(out, d+'0')
	}
	return out
}

func appendInt64(out []byte, v int64) []byte {
	if v == 0 {
		return append(out, '0')
	}
	start := len(out)
	for v > 0 {
		out = append(out, byte(v%10)+'0')
		v /= 10
	}
	// digits were appended least-significant first; reverse them
	for l, r := start, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

// buildOutput renders the final canonical byte form once rounding and
// shape selection have settled on digits/maxExponent/minExponent. The
// exponential-shape exponent is the order of the leading significant
// digit (max_exponent), which normalizes the mantissa to exactly one
// digit before the point, matching e.g. 0.00012 -> "1.2E-4".
func buildOutput(negative bool, digits []byte, maxExponent int64, shapeExp bool, newExponent, zeroes int64, kind int) []byte {
	out := make([]byte, 0, len(digits)+8)
	if negative {
		out = append(out, '-')
	}

	if shapeExp {
		out = append(out, digits[0]+'0')
		if len(digits) > 1 {
			out = append(out, '.')
			out = appendDigits(out, digits[1:])
		}
		out = append(out, 'E')
		e := newExponent
		if e < 0 {
			out = append(out, '-')
			e = -e
		}
		return appendInt64(out, e)
	}

	switch kind {
	case 1: // trailing zero padding: pure integer wider than its digits
		out = appendDigits(out, digits)
		for k := int64(0); k < zeroes; k++ {
			out = append(out, '0')
		}
	case 2: // leading zero padding: value less than one
		out = append(out, '0', '.')
		for k := int64(1); k < zeroes; k++ {
			out = append(out, '0')
		}
		out = appendDigits(out, digits)
	default: // spans the decimal point with no padding required
		newDecimal := int(maxExponent + 1)
		for i, d := range digits {
			if i == newDecimal {
				out = append(out, '.')
			}
			out = append(out, d+'0')
		}
	}
	return out
}

// rewriteNumber consumes the number token starting at buf.Cur(),
// rounds it per cfg, and rewrites it to its canonical shortest form.
//
// Grounded on lighterjson.c's do_number. Unlike the original, which
// splices in place byte-by-byte reusing unchanged spans, this rebuilds
// the whole token from its decomposed digits and emits it in one shot
// via Buffer.Skip+EmitBytes; it is simpler to get right and the result
// is never longer than the token it replaces (rounding and shortest-
// form selection only ever remove digits or trade them for an 'E'
// suffix, and an exponential form that would outgrow the input keeps
// the digits as an integer mantissa instead), so the Cursor Buffer's
// write-behind-read invariant holds.
func rewriteNumber(buf *Buffer, cfg Config, diags *Diagnostics) {
	start := buf.Pos()
	data := buf.Bytes()
	t := scanNumber(data, start, buf.End())

	if t.tokenEnd <= start {
		buf.Pass(1)
		return
	}

	if t.nonZeroStart == -1 {
		buf.Skip(t.tokenEnd - start)
		buf.Emit('0')
		return
	}

	var exponentValue int64
	if t.hasExp {
		exponentValue = parseExpDigits(data, t.expDigitsStart, t.expDigitsEnd, t.expSign)
	}

	maxExponent := t.order(t.nonZeroStart) + exponentValue
	minExponent := t.order(t.nonZeroEnd) + exponentValue
	digits := extractDigits(data, t.nonZeroStart, t.nonZeroEnd, t.dotPos, t.hasDot)

	if cfg.roundingEnabled() {
		roundOrder := -cfg.Precision
		if roundOrder > maxExponent {
			buf.Skip(t.tokenEnd - start)
			buf.Emit('0')
			return
		}
		if roundOrder > minExponent {
			digits, maxExponent, minExponent = roundDigits(digits, maxExponent, roundOrder)
		}
	}

	zeroes, kind := shapeZeroes(maxExponent, minExponent)
	shapeExp := zeroes >= 3
	var newExponent int64
	if shapeExp {
		newExponent = maxExponent
		zeroes = 0
	}

	out := buildOutput(t.negative, digits, maxExponent, shapeExp, newExponent, zeroes, kind)
	if shapeExp && len(out) > t.tokenEnd-start {
		// Normalizing can lengthen a short input ("12e-5" -> "1.2E-4");
		// use the digits as an integer mantissa with min_exponent instead.
		out = out[:0]
		if t.negative {
			out = append(out, '-')
		}
		out = append(appendDigits(out, digits), 'E')
		e := minExponent
		if e < 0 {
			out = append(out, '-')
			e = -e
		}
		out = appendInt64(out, e)
	}
	buf.Skip(t.tokenEnd - start)
	buf.EmitBytes(out)
}
