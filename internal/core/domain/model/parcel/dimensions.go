package parcel

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

const minDimensionCm = 0.1

// Dimensions holds the measured size of a parcel in centimeters.
type Dimensions struct {
	x float64
	y float64
	z float64
}

// NewDimensions validates each side against the 0.1 cm minimum.
func NewDimensions(x, y, z float64) (Dimensions, error) {
	for name, v := range map[string]float64{"dimensionX": x, "dimensionY": y, "dimensionZ": z} {
		if v < minDimensionCm {
			return Dimensions{}, errs.NewValueIsOutOfRangeError(name, v, minDimensionCm, nil)
		}
	}
	return Dimensions{x: x, y: y, z: z}, nil
}

func (d Dimensions) X() float64 { return d.x }
func (d Dimensions) Y() float64 { return d.y }
func (d Dimensions) Z() float64 { return d.z }

// Volume returns x*y*z in cubic centimeters.
func (d Dimensions) Volume() float64 {
	return d.x * d.y * d.z
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%.1fx%.1fx%.1f", d.x, d.y, d.z)
}
