package cli

import (
	"encoding/binary"
	"fmt"
)

const tagOrientation = 0x0112

// parseTIFFStartFromJPEG scans JPEG segments to find an APP1 Exif block and returns
// the offset in data where the TIFF header begins.
func parseTIFFStartFromJPEG(data []byte) (int, error) {
	if len(data) < 4 {
		return -1, fmt.Errorf("data too short")
	}
	i := 2 // skip initial 0xFF 0xD8
	for i+4 < len(data) {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker == 0xDA { // start of scan
			break
		}
		segLen := int(data[i+2])<<8 | int(data[i+3])
		if marker == 0xE1 && segLen >= 8 {
			// check for "Exif\0\0"
			if i+10 <= len(data) && string(data[i+4:i+10]) == "Exif\x00\x00" {
				return i + 10, nil
			}
		}
		if segLen <= 2 {
			i += 2
		} else {
			i += 2 + segLen
		}
	}
	return -1, fmt.Errorf("no exif segment")
}

// readIFD0Short returns the first SHORT value of tag in IFD0 of the TIFF block
// starting at tiffStart.
func readIFD0Short(data []byte, tiffStart int, tag uint16) (int, error) {
	if tiffStart+8 > len(data) {
		return 0, fmt.Errorf("tiff header truncated")
	}
	var order binary.ByteOrder
	switch string(data[tiffStart : tiffStart+2]) {
	case "MM":
		order = binary.BigEndian
	case "II":
		order = binary.LittleEndian
	default:
		return 0, fmt.Errorf("unknown tiff byte order")
	}
	if order.Uint16(data[tiffStart+2:tiffStart+4]) != 0x002A {
		return 0, fmt.Errorf("invalid tiff magic")
	}
	ifd := tiffStart + int(order.Uint32(data[tiffStart+4:tiffStart+8]))
	if ifd+2 > len(data) || ifd <= tiffStart {
		return 0, fmt.Errorf("ifd truncated")
	}
	n := int(order.Uint16(data[ifd : ifd+2]))
	for e := 0; e < n; e++ {
		ent := ifd + 2 + e*12
		if ent+12 > len(data) {
			break
		}
		if order.Uint16(data[ent:ent+2]) != tag {
			continue
		}
		// type 3 = SHORT, value stored inline
		if typ := order.Uint16(data[ent+2 : ent+4]); typ != 3 {
			return 0, fmt.Errorf("tag 0x%04x has type %d, want SHORT", tag, typ)
		}
		return int(order.Uint16(data[ent+8 : ent+10])), nil
	}
	return 0, fmt.Errorf("tag 0x%04x not found", tag)
}

// extractJPEGOrientation returns the EXIF orientation (1..8) from JPEG bytes.
func extractJPEGOrientation(data []byte) (int, error) {
	tiffStart, err := parseTIFFStartFromJPEG(data)
	if err != nil {
		return 0, err
	}
	o, err := readIFD0Short(data, tiffStart, tagOrientation)
	if err != nil {
		return 0, err
	}
	if o < 1 || o > 8 {
		return 0, fmt.Errorf("orientation %d out of range", o)
	}
	return o, nil
}
