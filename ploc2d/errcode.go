package ploc2d

// errorCatalog maps the numeric error codes reported by the PLOC2D to
// human-readable descriptions, per the device manual. Built once, never
// mutated.
var errorCatalog = map[string]string{
	"9100": "image acquisition failed",
	"9101": "could not store image to SD card",
	"9200": "no valid image found",
	"9210": "not calibrated",
	"9202": "not aligned",
	"9203": "job not valid",
	"9400": "alignment failed",
	"9401": "alignment target not found",
	"9600": "locate failed",
	"9601": "locate failed, score too low",
	"9999": "unknown error",
}

// DescribeError resolves a device error code to its human-readable text.
// It returns an empty string when the code is empty or not in the catalog.
func DescribeError(code string) string {
	return errorCatalog[code]
}
