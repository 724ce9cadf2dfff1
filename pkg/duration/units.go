package duration

// Milliseconds per unit.
const (
	millisecondFactor = 1
	secondFactor      = 1000
	minuteFactor      = 60 * secondFactor
	hourFactor        = 60 * minuteFactor
)

// integerUnits maps every recognized unit spelling to its factor.
var integerUnits = map[string]int64{
	"ms":           millisecondFactor,
	"milli":        millisecondFactor,
	"millis":       millisecondFactor,
	"millisecond":  millisecondFactor,
	"milliseconds": millisecondFactor,

	"s":       secondFactor,
	"sec":     secondFactor,
	"second":  secondFactor,
	"seconds": secondFactor,

	"m":       minuteFactor,
	"min":     minuteFactor,
	"minute":  minuteFactor,
	"minutes": minuteFactor,

	"h":     hourFactor,
	"hr":    hourFactor,
	"hour":  hourFactor,
	"hours": hourFactor,
}

// fractionalUnits is the subset of integerUnits that accepts a fractional
// magnitude. Milliseconds and hours are integer only.
var fractionalUnits = map[string]int64{
	"s":       secondFactor,
	"sec":     secondFactor,
	"second":  secondFactor,
	"seconds": secondFactor,

	"m":       minuteFactor,
	"min":     minuteFactor,
	"minute":  minuteFactor,
	"minutes": minuteFactor,
}

// Units returns the recognized unit spellings and their size in
// milliseconds.
func Units() map[string]int64 {
	units := make(map[string]int64, len(integerUnits))
	for k, v := range integerUnits {
		units[k] = v
	}
	return units
}
