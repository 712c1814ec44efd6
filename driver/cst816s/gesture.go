package cst816s

import (
	"fmt"

	"touchpanel.dev/regmap"
)

// Gesture is a touch motion classified by the controller. Which
// gestures are reported is controlled through SetMotionMask, the long
// press delay through SetLongPressTime.
type Gesture uint8

const (
	NoGesture   Gesture = 0x00
	SlideUp     Gesture = 0x01
	SlideDown   Gesture = 0x02
	SlideLeft   Gesture = 0x03
	SlideRight  Gesture = 0x04
	SingleClick Gesture = 0x05
	DoubleClick Gesture = 0x0B
	LongPress   Gesture = 0x0C
)

// gestureNames is the table of known variants; raw values outside it
// fail decoding. The codes are not contiguous.
var gestureNames = map[Gesture]string{
	NoGesture:   "none",
	SlideUp:     "slide up",
	SlideDown:   "slide down",
	SlideLeft:   "slide left",
	SlideRight:  "slide right",
	SingleClick: "single click",
	DoubleClick: "double click",
	LongPress:   "long press",
}

func decodeGesture(raw uint32) (Gesture, error) {
	g := Gesture(raw)
	if _, ok := gestureNames[g]; !ok {
		return NoGesture, &regmap.UnknownVariantError{Field: "Gesture", Raw: raw}
	}
	return g, nil
}

func (g Gesture) String() string {
	if s, ok := gestureNames[g]; ok {
		return s
	}
	return fmt.Sprintf("Gesture(%#02x)", uint8(g))
}
