package utils

import "math"

// Lerp maps inputRangePosition from the input range onto the output range,
// clamped to the output range.
func Lerp(outputRangeStart, outputRangeEnd, inputRangeStart, inputRangeEnd, inputRangePosition float64) float64 {
	if inputRangeEnd == inputRangeStart {
		return outputRangeEnd
	}

	pct := (inputRangePosition - inputRangeStart) / (inputRangeEnd - inputRangeStart)
	rescaled := outputRangeStart + pct*(outputRangeEnd-outputRangeStart)

	return Clamp(rescaled, math.Min(outputRangeStart, outputRangeEnd), math.Max(outputRangeStart, outputRangeEnd))
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
