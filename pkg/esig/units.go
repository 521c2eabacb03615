package esig

// PointsPerMillimeter is the number of PDF points (1/72 inch) in a millimeter.
const PointsPerMillimeter = 72 / 25.4

// MillimetersToPoints converts millimeters to the point unit used for
// element locations and dimensions.
func MillimetersToPoints(mm float64) float64 {
	return mm * PointsPerMillimeter
}

// PointsToMillimeters converts points to millimeters.
func PointsToMillimeters(pt float64) float64 {
	return pt / PointsPerMillimeter
}
