package fuzztests

import "testing"

const maxSeedBytes = 4 << 10 // 4 KiB — ограничение для тестового корпуса

// textSeeds are literals the float grammar has tripped over before.
var textSeeds = []string{
	"",
	"0",
	"0.0",
	"+3.14",
	"-3.14",
	"1.",
	".789",
	"-.5",
	"1e7",
	"-1E-7",
	".3e-2",
	"1.e4",
	"-1.234E-12",
	"-1.234E-",
	"1e+",
	"0.00000000000000000087",
	"123.500",
	"0.000",
	"1e99999999999",
	"nan",
	"inf",
	"infinity",
	"INFINITY;",
	"abc",
	"0x1be2;",
	"c5a31be201;",
	"ffffffff",
}

func addTextSeeds(f *testing.F) {
	for _, s := range textSeeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func addBinarySeeds(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xff})
	f.Add([]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	f.Add([]byte{0x41, 0x48, 0x00, 0x00})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
