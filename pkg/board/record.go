package board

import (
	"encoding/base64"
	"encoding/json"
	"io"

	"github.com/ecbingo/ecbingo/pkg/errors"
)

// record is the persisted form of a Board. The mark grid is not stored: a
// cell is marked iff its label is a key of Markers, plus the free space.
type record struct {
	Categories []string          `json:"categories"`
	Markers    map[string]string `json:"markers"`
}

// legacyRecord additionally accepts the "emotes" key used by older tools.
type legacyRecord struct {
	record
	Emotes map[string]string `json:"emotes"`
}

// MarshalJSON encodes b as {"categories": [...], "markers": {"B4": "<base64>"}}.
func (b *Board) MarshalJSON() ([]byte, error) {
	rec := record{
		Categories: b.Categories(),
		Markers:    make(map[string]string, len(b.markers)),
	}
	for p, blob := range b.markers {
		rec.Markers[p.String()] = base64.StdEncoding.EncodeToString(blob)
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes a record and rebuilds the mark grid from its markers.
// Malformed records fail with CORRUPT_RECORD; marker keys outside the grid
// fail with INVALID_POINT.
func (b *Board) UnmarshalJSON(data []byte) error {
	var rec legacyRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return errors.Wrap(errors.ErrCodeCorruptRecord, err, "decode board record")
	}
	if rec.Markers == nil {
		rec.Markers = rec.Emotes
	}
	if len(rec.Categories) != CategoryCount {
		return errors.New(errors.ErrCodeCorruptRecord,
			"record has %d categories, want %d", len(rec.Categories), CategoryCount)
	}

	next := empty()
	copy(next.categories[:], rec.Categories)
	for label, enc := range rec.Markers {
		p, err := ParsePoint(label)
		if err != nil {
			return err
		}
		blob, err := base64.StdEncoding.DecodeString(enc)
		if err != nil {
			return errors.Wrap(errors.ErrCodeCorruptRecord, err, "marker %s is not valid base64", label)
		}
		next.marks[p.col][p.row] = true
		next.markers[p] = blob
	}
	if err := next.validate(); err != nil {
		return err
	}
	*b = *next
	return nil
}

// Decode reads one board record from r.
func Decode(r io.Reader) (*Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCorruptRecord, err, "read board record")
	}
	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		if errors.GetCode(err) == "" {
			return nil, errors.Wrap(errors.ErrCodeCorruptRecord, err, "decode board record")
		}
		return nil, err
	}
	return &b, nil
}

// Encode writes b to w as a single JSON line.
func Encode(w io.Writer, b *Board) error {
	return json.NewEncoder(w).Encode(b)
}
