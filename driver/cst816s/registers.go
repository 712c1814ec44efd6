package cst816s

import "touchpanel.dev/regmap"

// Register map of the CST816S. Addresses follow the vendor register
// table; Xpos and Ypos are virtual 16-bit registers spanning the H/L
// byte pairs at 0x03..0x06, read big-endian in one transfer.
var (
	regGestureID = regmap.Register{Name: "GestureId", Addr: 0x01, Bits: 8, Access: regmap.ReadOnly}
	regFingerNum = regmap.Register{Name: "FingerNum", Addr: 0x02, Bits: 8, Access: regmap.ReadOnly}
	regXpos      = regmap.Register{Name: "Xpos", Addr: 0x03, Bits: 16, Access: regmap.ReadOnly}
	regYpos      = regmap.Register{Name: "Ypos", Addr: 0x05, Bits: 16, Access: regmap.ReadOnly}

	// Touch channel baseline calibration values.
	regBPC0 = regmap.Register{Name: "BPC0", Addr: 0xB0, Bits: 16, Access: regmap.ReadOnly}
	regBPC1 = regmap.Register{Name: "BPC1", Addr: 0xB2, Bits: 16, Access: regmap.ReadOnly}

	regChipID    = regmap.Register{Name: "ChipId", Addr: 0xA7, Bits: 8, Access: regmap.ReadOnly}
	regProjID    = regmap.Register{Name: "ProjId", Addr: 0xA8, Bits: 8, Access: regmap.ReadOnly}
	regFwVersion = regmap.Register{Name: "FwVersion", Addr: 0xA9, Bits: 8, Access: regmap.ReadOnly}

	// Writing 0x03 here supposedly enters deep sleep. The command is
	// not in the vendor documentation and the driver does not manage
	// power modes; the register is listed for completeness only.
	regDeepSleep = regmap.Register{Name: "DeepSleep", Addr: 0xE5, Bits: 8, Access: regmap.WriteOnly}

	regMotionMask    = regmap.Register{Name: "MotionMask", Addr: 0xEC, Bits: 3, Access: regmap.ReadWrite}
	regIrqPulseWidth = regmap.Register{Name: "IrqPulseWidth", Addr: 0xED, Bits: 8, Access: regmap.ReadWrite}
	// Quick-scanning period in 10ms units, range 1-30.
	regNorScanPer = regmap.Register{Name: "NorScanPer", Addr: 0xEE, Bits: 8, Access: regmap.ReadWrite}
	// Gesture sliding area angle control, tan(angle)*10.
	regMotionSlAngle  = regmap.Register{Name: "MotionSlAngle", Addr: 0xEF, Bits: 8, Access: regmap.ReadWrite}
	regLpAutoWakeTime = regmap.Register{Name: "LpAutoWakeTime", Addr: 0xF4, Bits: 3, Access: regmap.ReadWrite}
	regLpScanTH       = regmap.Register{Name: "LpScanTH", Addr: 0xF5, Bits: 8, Access: regmap.ReadWrite}
	regLpScanWin      = regmap.Register{Name: "LpScanWin", Addr: 0xF6, Bits: 2, Access: regmap.ReadWrite}
	regLpScanFreq     = regmap.Register{Name: "LpScanFreq", Addr: 0xF7, Bits: 8, Access: regmap.ReadWrite}
	regLpScanIdac     = regmap.Register{Name: "LpScanIdac", Addr: 0xF8, Bits: 8, Access: regmap.ReadWrite}
	regAutoSleepTime  = regmap.Register{Name: "AutoSleepTime", Addr: 0xF9, Bits: 8, Access: regmap.ReadWrite}
	regIrqCtl         = regmap.Register{Name: "IrqCtl", Addr: 0xFA, Bits: 8, Access: regmap.ReadWrite}
	regAutoReset      = regmap.Register{Name: "AutoReset", Addr: 0xFB, Bits: 8, Access: regmap.ReadWrite}
	regLongPressTime  = regmap.Register{Name: "LongPressTime", Addr: 0xFC, Bits: 8, Access: regmap.ReadWrite}
	regIOCtl          = regmap.Register{Name: "IOCtl", Addr: 0xFD, Bits: 3, Access: regmap.ReadWrite}
	regDisAutoSleep   = regmap.Register{Name: "DisAutoSleep", Addr: 0xFE, Bits: 8, Access: regmap.ReadWrite}
)

// Registers lists every register of the map in address order, for
// callers driving Read and Write directly instead of the typed
// accessors.
var Registers = []regmap.Register{
	regGestureID,
	regFingerNum,
	regXpos,
	regYpos,
	regChipID,
	regProjID,
	regFwVersion,
	regBPC0,
	regBPC1,
	regDeepSleep,
	regMotionMask,
	regIrqPulseWidth,
	regNorScanPer,
	regMotionSlAngle,
	regLpAutoWakeTime,
	regLpScanTH,
	regLpScanWin,
	regLpScanFreq,
	regLpScanIdac,
	regAutoSleepTime,
	regIrqCtl,
	regAutoReset,
	regLongPressTime,
	regIOCtl,
	regDisAutoSleep,
}

var (
	// The coordinate registers carry 12 significant bits.
	fieldPos = regmap.Field{Name: "pos", Off: 0, Bits: 12}
	// FingerNum reports zero or one finger in its low bit.
	fieldFinger = regmap.Field{Name: "finger", Off: 0, Bits: 1}

	// MotionMask flags.
	fieldEnDClick = regmap.Field{Name: "EnDClick", Off: 0, Bits: 1}
	fieldEnConUD  = regmap.Field{Name: "EnConUD", Off: 1, Bits: 1}
	fieldEnConLR  = regmap.Field{Name: "EnConLR", Off: 2, Bits: 1}

	// IrqCtl flags.
	fieldOnceWLP  = regmap.Field{Name: "OnceWLP", Off: 0, Bits: 1}
	fieldEnMotion = regmap.Field{Name: "EnMotion", Off: 4, Bits: 1}
	fieldEnChange = regmap.Field{Name: "EnChange", Off: 5, Bits: 1}
	fieldEnTouch  = regmap.Field{Name: "EnTouch", Off: 6, Bits: 1}
	fieldEnTest   = regmap.Field{Name: "EnTest", Off: 7, Bits: 1}
)
