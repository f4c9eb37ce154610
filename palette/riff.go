package palette

import (
	"encoding/binary"
	"fmt"
	"io"

	"pixgrid/colors"

	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

const palVersion = 0x0300

// ReadFrom reads every palette of a RIFF PAL stream.
func ReadFrom(r io.Reader) ([]Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	return readPalettes(rd, string(formType[:]))
}

func readPalettes(r *riff.Reader, ident string) ([]Palette, error) {
	var res []Palette

	for {
		id, size, data, err := r.Next()
		if err != nil {
			if err == io.EOF {
				break
			}

			return res, fmt.Errorf("could not read chunk %q#%d: %w", ident, len(res), err)
		}

		chunkIdent := fmt.Sprintf("%s%d", ident, len(res))
		switch id {
		case riff.LIST:
			listType, list, lerr := riff.NewListReader(size, data)
			if lerr != nil {
				return res, fmt.Errorf("could not read list from chunk %q: %w", chunkIdent, lerr)
			} else if listType != palType {
				return res, fmt.Errorf("chunk %q unsupported list type: %s", chunkIdent, string(listType[:]))
			}

			listRes, lerr := readPalettes(list, fmt.Sprintf("%s.%s", chunkIdent, listType[:]))
			res = append(res, listRes...)
			if lerr != nil {
				return res, lerr
			}
		case dataType:
			pal, err := readPalette(data, chunkIdent)
			if err != nil {
				return res, err
			}
			res = append(res, pal)
		default:
			// other chunks (e.g. INFO) carry nothing we need
		}
	}

	return res, nil
}

func readPalette(r io.Reader, ident string) (Palette, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("could not read header from chunk %s: %w", ident, err)
	}

	ver := binary.LittleEndian.Uint16(buf)
	if ver != palVersion {
		return nil, fmt.Errorf("unsupported palette version in chunk %s: %#x", ident, ver)
	}

	count := binary.LittleEndian.Uint16(buf[2:])
	res := make(Palette, count)
	for i := range count {
		if _, err := io.ReadFull(r, buf); err != nil {
			return res[:i], fmt.Errorf("could not read color %d/%d from chunk %s: %w", i, count, ident, err)
		}

		res[i] = colors.RGB{
			R: buf[0],
			G: buf[1],
			B: buf[2],
		}
	}

	return res, nil
}

// WriteTo writes pals as a single RIFF PAL stream, one data chunk per palette,
// and returns the number of bytes written.
func WriteTo(w io.Writer, pals []Palette) (int64, error) {
	n := 4
	for _, pal := range pals {
		n += 4 + 4 + 4 + len(pal)*4 // chunk id + chunk size + palVersion + palNumEntries + 4 bytes/color
	}

	var count int64
	header := append(riffType[:], binary.LittleEndian.AppendUint32(nil, uint32(n))...)
	header = append(header, palType[:]...)
	if err := writeBytes(w, header, &count); err != nil {
		return count, fmt.Errorf("could not write RIFF header: %w", err)
	}

	for i, pal := range pals {
		if err := writePalette(w, pal, &count); err != nil {
			return count, fmt.Errorf("could not write chunk %d: %w", i, err)
		}
	}

	return count, nil
}

func writePalette(w io.Writer, pal Palette, count *int64) error {
	if len(pal) > 0xffff {
		return fmt.Errorf("too many colors: %d", len(pal))
	}

	head := append(dataType[:], binary.LittleEndian.AppendUint32(nil, uint32(4+len(pal)*4))...)
	head = binary.LittleEndian.AppendUint16(head, palVersion)
	head = binary.LittleEndian.AppendUint16(head, uint16(len(pal)))
	if err := writeBytes(w, head, count); err != nil {
		return fmt.Errorf("could not write chunk header: %w", err)
	}

	for i, c := range pal {
		if err := writeBytes(w, []byte{c.R, c.G, c.B, 0x00}, count); err != nil {
			return fmt.Errorf("could not write color %d/%d: %w", i, len(pal), err)
		}
	}

	return nil
}

func writeBytes(w io.Writer, b []byte, count *int64) error {
	n, err := w.Write(b)
	*count += int64(n)
	if err != nil {
		return err
	} else if n != len(b) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(b))
	}

	return nil
}
