// seehuhn.de/go/colormap - colour maps built from lists of colours
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package preview

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"seehuhn.de/go/icc"
)

// Tag signatures used by matrix/TRC display profiles.
const (
	tagMediaWhitePoint icc.TagType = 0x77747074 // "wtpt"
	tagRedColorant     icc.TagType = 0x7258595A // "rXYZ"
	tagGreenColorant   icc.TagType = 0x6758595A // "gXYZ"
	tagBlueColorant    icc.TagType = 0x6258595A // "bXYZ"
	tagRedTRC          icc.TagType = 0x72545243 // "rTRC"
	tagGreenTRC        icc.TagType = 0x67545243 // "gTRC"
	tagBlueTRC         icc.TagType = 0x62545243 // "bTRC"
)

const (
	srgbDescription = "sRGB"
	srgbCopyright   = "No copyright, use freely"
)

// srgbProfile returns an ICC version 2 display profile for sRGB.
// The colorants are adapted to the D50 profile connection space.
var srgbProfile = sync.OnceValue(func() []byte {
	trc := srgbCurve(1024)
	p := &icc.Profile{
		Version:         icc.Version2_1_0,
		Class:           icc.DisplayDeviceProfile,
		ColorSpace:      icc.RGBSpace,
		PCS:             icc.PCSXYZSpace,
		CreationDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RenderingIntent: icc.Perceptual,
		TagData: map[icc.TagType][]byte{
			icc.ProfileDescription: descTag(srgbDescription),
			icc.Copyright:          textTag(srgbCopyright),
			tagMediaWhitePoint:     xyzTag(0.9642, 1.0000, 0.8249),
			tagRedColorant:         xyzTag(0.4360, 0.2225, 0.0139),
			tagGreenColorant:       xyzTag(0.3851, 0.7169, 0.0971),
			tagBlueColorant:        xyzTag(0.1431, 0.0606, 0.7141),
			tagRedTRC:              trc,
			tagGreenTRC:            trc,
			tagBlueTRC:             trc,
		},
	}
	return p.Encode()
})

// srgbCurve returns a "curv" tag sampling the sRGB transfer function at n
// equidistant points.
func srgbCurve(n int) []byte {
	buf := make([]byte, 12, 12+2*n)
	copy(buf, "curv")
	binary.BigEndian.PutUint32(buf[8:], uint32(n))
	for i := range n {
		v := float64(i) / float64(n-1)
		if v <= 0.04045 {
			v /= 12.92
		} else {
			v = math.Pow((v+0.055)/1.055, 2.4)
		}
		buf = binary.BigEndian.AppendUint16(buf, uint16(math.Round(v*65535)))
	}
	return buf
}

// xyzTag returns an "XYZ " tag holding a single XYZ value.
func xyzTag(x, y, z float64) []byte {
	buf := make([]byte, 8, 20)
	copy(buf, "XYZ ")
	for _, v := range []float64{x, y, z} {
		buf = binary.BigEndian.AppendUint32(buf, uint32(int32(math.Round(v*65536))))
	}
	return buf
}

// textTag returns a "text" tag.
func textTag(s string) []byte {
	buf := make([]byte, 8, 9+len(s))
	copy(buf, "text")
	buf = append(buf, s...)
	return append(buf, 0)
}

// descTag returns a version 2 "desc" tag with an ASCII description and
// empty Unicode and ScriptCode parts.
func descTag(s string) []byte {
	buf := make([]byte, 8, 12+len(s)+1+8+3+67)
	copy(buf, "desc")
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)+1))
	buf = append(buf, s...)
	buf = append(buf, 0)
	buf = append(buf, make([]byte, 4+4+2+1+67)...)
	return buf
}
