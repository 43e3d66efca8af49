package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

var examContent = []byte(`<?xml version="1.0" encoding="UTF-8"?>
<exam id="e1" title="Midterm">
<block class="exam-part"><para>Compute the limit.</para></block>
</exam>`)

func TestIsArchiveFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("non-zip extension", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "test.txt")
		if err := os.WriteFile(filePath, []byte("not a zip"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		got, err := isArchiveFile(filePath)
		if err != nil {
			t.Errorf("isArchiveFile() error = %v", err)
		}
		if got {
			t.Error("isArchiveFile() = true, want false")
		}
	})

	t.Run("zip extension but invalid content", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "test.zip")
		if err := os.WriteFile(filePath, []byte("not a real zip file"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		got, err := isArchiveFile(filePath)
		if err != nil {
			t.Errorf("isArchiveFile() error = %v", err)
		}
		if got {
			t.Error("isArchiveFile() = true, want false")
		}
	})

	t.Run("valid zip file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "test2.zip")
		zipFile, err := os.Create(filePath)
		if err != nil {
			t.Fatalf("Failed to create zip file: %v", err)
		}
		w := zip.NewWriter(zipFile)
		f, err := w.Create("midterm.xml")
		if err != nil {
			t.Fatalf("Failed to create file in zip: %v", err)
		}
		f.Write(examContent)
		w.Close()
		zipFile.Close()

		got, err := isArchiveFile(filePath)
		if err != nil {
			t.Errorf("isArchiveFile() error = %v", err)
		}
		if !got {
			t.Error("isArchiveFile() = false, want true")
		}
	})

	t.Run("nonexistent file", func(t *testing.T) {
		if _, err := isArchiveFile("/nonexistent/file.zip"); err == nil {
			t.Error("Expected error for non-existent file, got nil")
		}
	})
}

func TestIsExamFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		filename string
		content  []byte
		wantExam bool
		wantEnc  srcEncoding
	}{
		{
			name:     "valid exam file",
			filename: "midterm.xml",
			content:  examContent,
			wantExam: true,
			wantEnc:  encUnknown,
		},
		{
			name:     "exam with UTF-8 BOM",
			filename: "midterm-bom.xml",
			content:  append([]byte{0xEF, 0xBB, 0xBF}, examContent...),
			wantExam: true,
			wantEnc:  encUTF8,
		},
		{
			name:     "no XML declaration",
			filename: "bare.xml",
			content:  []byte("<exam><para>text</para></exam>"),
			wantExam: true,
			wantEnc:  encUnknown,
		},
		{
			name:     "uppercase extension",
			filename: "midterm.XML",
			content:  examContent,
			wantExam: true,
			wantEnc:  encUnknown,
		},
		{
			name:     "non-xml extension",
			filename: "midterm.txt",
			content:  examContent,
			wantExam: false,
			wantEnc:  encUnknown,
		},
		{
			name:     "xml extension but different root",
			filename: "other.xml",
			content:  []byte(`<?xml version="1.0"?><quiz/>`),
			wantExam: false,
			wantEnc:  encUnknown,
		},
		{
			name:     "xml extension but not xml",
			filename: "garbage.xml",
			content:  []byte("not an XML file"),
			wantExam: false,
			wantEnc:  encUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := filepath.Join(tmpDir, tt.filename)
			if err := os.WriteFile(filePath, tt.content, 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			gotExam, gotEnc, err := isExamFile(filePath)
			if err != nil {
				t.Errorf("isExamFile() error = %v", err)
				return
			}
			if gotExam != tt.wantExam {
				t.Errorf("isExamFile() = %v, want %v", gotExam, tt.wantExam)
			}
			if gotEnc != tt.wantEnc {
				t.Errorf("isExamFile() encoding = %v, want %v", gotEnc, tt.wantEnc)
			}
		})
	}

	t.Run("nonexistent file", func(t *testing.T) {
		if _, _, err := isExamFile("/nonexistent/file.xml"); err == nil {
			t.Error("Expected error for non-existent file, got nil")
		}
	})
}

func TestIsExamInArchive(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "exams.zip")

	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)
	entries := []struct {
		name    string
		content []byte
	}{
		{"midterm.xml", examContent},
		{"notes.txt", []byte("not an exam")},
		{"midterm-bom.xml", append([]byte{0xEF, 0xBB, 0xBF}, examContent...)},
	}
	for _, e := range entries {
		f, err := w.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Store})
		if err != nil {
			t.Fatalf("Failed to create file in zip: %v", err)
		}
		if _, err := f.Write(e.content); err != nil {
			t.Fatalf("Failed to write to zip: %v", err)
		}
	}
	w.Close()
	zipFile.Close()

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("Failed to open zip: %v", err)
	}
	defer r.Close()

	tests := []struct {
		name     string
		fileIdx  int
		wantExam bool
		wantEnc  srcEncoding
	}{
		{"exam file in archive", 0, true, encUnknown},
		{"non-exam file in archive", 1, false, encUnknown},
		{"exam with BOM in archive", 2, true, encUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotExam, gotEnc, err := isExamInArchive(r.File[tt.fileIdx])
			if err != nil {
				t.Errorf("isExamInArchive() error = %v", err)
				return
			}
			if gotExam != tt.wantExam {
				t.Errorf("isExamInArchive() = %v, want %v", gotExam, tt.wantExam)
			}
			if gotEnc != tt.wantEnc {
				t.Errorf("isExamInArchive() encoding = %v, want %v", gotEnc, tt.wantEnc)
			}
		})
	}
}

func TestDetectUTF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want srcEncoding
	}{
		{"UTF-8 BOM", []byte{0xEF, 0xBB, 0xBF, 0x00}, encUTF8},
		{"UTF-16 Big Endian BOM", []byte{0xFE, 0xFF, 0x00, 0x00}, encUTF16BigEndian},
		{"UTF-16 Little Endian BOM", []byte{0xFF, 0xFE, 0x01, 0x00}, encUTF16LittleEndian},
		{"UTF-32 Big Endian BOM", []byte{0x00, 0x00, 0xFE, 0xFF}, encUTF32BigEndian},
		{"UTF-32 Little Endian BOM", []byte{0xFF, 0xFE, 0x00, 0x00}, encUTF32LittleEndian},
		{"No BOM", []byte{0x00, 0x01, 0x02, 0x03}, encUnknown},
		{"short buffer", []byte{0xEF}, encUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectUTF(tt.buf); got != tt.want {
				t.Errorf("detectUTF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectReader(t *testing.T) {
	t.Run("unknown encoding passes through", func(t *testing.T) {
		data := []byte("test data")
		r := selectReader(bytes.NewReader(data), encUnknown)
		got, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("got %q, want %q", got, data)
		}
	})

	t.Run("UTF-8 BOM stripped", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("<exam/>")...)
		r := selectReader(bytes.NewReader(data), encUTF8)
		got, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}
		if !bytes.Equal(got, []byte("<exam/>")) {
			t.Errorf("got %q, want %q", got, "<exam/>")
		}
	})

	t.Run("UTF-16 LE decoded", func(t *testing.T) {
		data := []byte{0xFF, 0xFE, '<', 0x00, 'e', 0x00, '>', 0x00}
		r := selectReader(bytes.NewReader(data), encUTF16LittleEndian)
		got, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}
		if !bytes.Equal(got, []byte("<e>")) {
			t.Errorf("got %q, want %q", got, "<e>")
		}
	})

	t.Run("invalid encoding panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic for invalid encoding, but didn't panic")
			}
		}()
		selectReader(bytes.NewReader([]byte("test")), srcEncoding(999))
	})
}
