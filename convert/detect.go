package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// srcEncoding describes unicode encoding detected from a BOM at the
// beginning of a source file.
type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

var examType = filetype.NewType("exam", "application/x-exam+xml")

func init() {
	filetype.AddMatcher(examType, examMatcher)
}

// examMatcher recognizes exam XML sources by their root element, tolerating
// a BOM, leading whitespace and an XML declaration.
func examMatcher(buf []byte) bool {
	buf = skipBOM(buf)
	buf = bytes.TrimLeft(buf, " \t\r\n")
	if bytes.HasPrefix(buf, []byte("<?xml")) {
		i := bytes.Index(buf, []byte("?>"))
		if i < 0 {
			return false
		}
		buf = bytes.TrimLeft(buf[i+2:], " \t\r\n")
	}
	return bytes.HasPrefix(buf, []byte("<exam"))
}

func skipBOM(buf []byte) []byte {
	switch detectUTF(buf) {
	case encUTF8:
		return buf[3:]
	case encUTF16BigEndian, encUTF16LittleEndian:
		return buf[2:]
	case encUTF32BigEndian, encUTF32LittleEndian:
		return buf[4:]
	}
	return buf
}

// isArchiveFile checks if file specified by path is a zip archive.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false, err
	}
	return filetype.Is(buf[:n], "zip"), nil
}

// isExamFile checks if file specified by path is an exam XML source and
// reports unicode encoding detected from its BOM if any.
func isExamFile(path string) (bool, srcEncoding, error) {
	if !strings.EqualFold(filepath.Ext(path), ".xml") {
		return false, encUnknown, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, encUnknown, err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false, encUnknown, err
	}
	return sniffExam(buf[:n])
}

// isExamInArchive checks if file inside zip archive is an exam XML source.
func isExamInArchive(f *zip.File) (bool, srcEncoding, error) {
	if !strings.EqualFold(filepath.Ext(f.FileHeader.Name), ".xml") {
		return false, encUnknown, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	buf := make([]byte, 512)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, encUnknown, err
	}
	return sniffExam(buf[:n])
}

func sniffExam(buf []byte) (bool, srcEncoding, error) {
	enc := detectUTF(buf)
	if !examMatcher(buf) {
		return false, encUnknown, nil
	}
	return true, enc, nil
}

// selectReader wraps r with a decoder matching detected source encoding so
// downstream XML parsing always sees UTF-8.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUnknown:
		return r
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder())
	default:
		panic("unsupported source encoding")
	}
}

func detectUTF(buf []byte) srcEncoding {
	if len(buf) >= 4 {
		if isUTF32BigEndianBOM4(buf) {
			return encUTF32BigEndian
		}
		if isUTF32LittleEndianBOM4(buf) {
			return encUTF32LittleEndian
		}
	}
	if len(buf) >= 3 && isUTF8BOM3(buf) {
		return encUTF8
	}
	if len(buf) >= 2 {
		if isUTF16BigEndianBOM2(buf) {
			return encUTF16BigEndian
		}
		if isUTF16LittleEndianBOM2(buf) {
			return encUTF16LittleEndian
		}
	}
	return encUnknown
}

func isUTF8BOM3(buf []byte) bool {
	return buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}
