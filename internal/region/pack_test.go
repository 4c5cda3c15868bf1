package region

import "testing"

func TestPackUnpackU16RoundTrip(t *testing.T) {
	cases := []uint16{0, 1, 255, 256, 32767, 65535}
	for _, v := range cases {
		buf := make([]byte, 2)
		PackU16(buf, v)
		if got := UnpackU16(buf); got != v {
			t.Errorf("UnpackU16(PackU16(%d)) = %d", v, got)
		}
	}
}

func TestPackU16IsLittleEndian(t *testing.T) {
	buf := make([]byte, 2)
	PackU16(buf, 0x0102)
	if buf[0] != 0x02 || buf[1] != 0x01 {
		t.Errorf("PackU16(0x0102) = %v, want low byte first", buf)
	}
}
