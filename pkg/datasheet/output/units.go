package output

// mmPerInch is the number of millimeters in one inch.
const mmPerInch = 25.4

// texPointsPerInch is the TeX point (pt), not the PostScript big point.
const texPointsPerInch = 72.27

// InchesToMM converts inches to millimeters.
func InchesToMM(in float64) float64 {
	return in * mmPerInch
}

// PointsToMM converts TeX points to millimeters. The LaTeX output sizes its
// spacing rule in pt; the PDF engine works in mm.
func PointsToMM(pt float64) float64 {
	return pt / texPointsPerInch * mmPerInch
}
