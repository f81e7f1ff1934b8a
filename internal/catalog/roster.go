package catalog

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// NameSize - длина поля имени в записи (0x1C)
	NameSize = 28
	// RecordSize - полный размер записи (0x20)
	RecordSize = NameSize + 4
)

// ErrMalformedRoster - файл пустой или его размер не кратен RecordSize
var ErrMalformedRoster = errors.New("mob roster is invalid / incorrectly sized")

// RecordHeader - точное представление записи в файле.
// binary.Read читает ее целиком: только массивы и числа.
type RecordHeader struct {
	Name     [NameSize]byte
	ServerID uint32
}

// Record - одна запись ростера зоны
type Record struct {
	Name     string // Имя до первого NUL, без обрезки пробелов
	ServerID uint32
}

// TargetIndex - индекс слота сущности (младшие 11 бит серверного ID)
func (r Record) TargetIndex() int {
	return int(r.ServerID & 0x07FF)
}

// Zone - зона, закодированная в серверном ID
func (r Record) Zone() int {
	return int((r.ServerID >> 0x0C) & 0x7F)
}

// TrimmedName - имя без пробелов по краям (так его сравнивает таргетинг)
func (r Record) TrimmedName() string {
	return strings.TrimSpace(r.Name)
}

// LoadRoster читает файл ростера целиком
func LoadRoster(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster %s: %w", path, err)
	}
	return ParseRoster(data)
}

// ParseRoster разбирает содержимое файла ростера
func ParseRoster(data []byte) ([]Record, error) {
	if len(data) == 0 || len(data)%RecordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedRoster, len(data))
	}
	return readRecords(bytes.NewReader(data), len(data)/RecordSize)
}

func readRecords(r io.Reader, count int) ([]Record, error) {
	records := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		var h RecordHeader
		if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", i, err)
		}
		records = append(records, Record{
			Name:     cString(h.Name[:]),
			ServerID: h.ServerID,
		})
	}
	return records, nil
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// WriteRoster пишет записи в формате ростера (синтетические файлы для тестов и tools/mobdat)
func WriteRoster(w io.Writer, records []Record) error {
	for _, rec := range records {
		nameBytes := []byte(rec.Name)
		if len(nameBytes) > NameSize {
			return fmt.Errorf("name too long: %q (%d > %d)", rec.Name, len(nameBytes), NameSize)
		}

		var h RecordHeader
		copy(h.Name[:], nameBytes)
		h.ServerID = rec.ServerID

		if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
			return fmt.Errorf("failed to write record %q: %w", rec.Name, err)
		}
	}
	return nil
}

// SaveRoster создает файл ростера по пути path
func SaveRoster(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteRoster(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close roster %s: %w", path, err)
	}
	return nil
}
