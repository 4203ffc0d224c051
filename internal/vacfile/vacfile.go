// Package vacfile reads and writes .vac (Vedic Astrology Chart) files: a
// versioned UTF-8 JSON document holding one assembled chart.
//
// Persistence failures never propagate as faults. Save reports success as a
// bool and Load reports absence, with the cause logged, so callers can
// re-prompt instead of crashing.
package vacfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Gauthampro7/vedic-astrology-app/internal/astro"
	"github.com/Gauthampro7/vedic-astrology-app/internal/birth"
	"github.com/Gauthampro7/vedic-astrology-app/internal/chart"
)

// Version is the current .vac schema version.
const Version = "1.0"

// Extension is the canonical file extension.
const Extension = ".vac"

// document is the on-disk schema. House keys serialize as strings ("1".."12")
// through Go's integer-keyed map encoding.
type document struct {
	Version   string                    `json:"version"`
	Created   string                    `json:"created"`
	BirthInfo *birth.Info               `json:"birth_info"`
	Ayanamsa  *float64                  `json:"ayanamsa"`
	Planets   map[string]astro.Position `json:"planets"`
	Houses    map[int]float64           `json:"houses"`
}

// Summary is the lightweight descriptor extracted by Summarize for listing
// and preview, without reconstructing a full chart.
type Summary struct {
	Place   string
	Date    string
	Time    string
	Created string
	Version string
}

// Handler saves and loads charts. now is swappable for tests.
type Handler struct {
	log *zap.Logger
	now func() time.Time
}

// NewHandler returns a Handler logging through the given logger. A nil logger
// is replaced with a no-op one.
func NewHandler(log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{log: log, now: time.Now}
}

// EnsureExtension appends the .vac extension when path does not already
// carry it.
func EnsureExtension(path string) string {
	if strings.HasSuffix(path, Extension) {
		return path
	}
	return path + Extension
}

// Save writes the chart to path as a v1.0 .vac document. The write goes to a
// temp file in the target directory first and is renamed into place, so a
// failed write never leaves a truncated chart behind. Returns false on any
// I/O error, with the cause logged.
func (h *Handler) Save(c *chart.Chart, path string) bool {
	path = EnsureExtension(path)

	ayanamsa := c.Ayanamsa
	doc := document{
		Version:   Version,
		Created:   h.now().Format(time.RFC3339),
		BirthInfo: &c.BirthInfo,
		Ayanamsa:  &ayanamsa,
		Planets:   c.Planets,
		Houses:    c.Houses,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		h.log.Error("encode chart", zap.String("path", path), zap.Error(err))
		return false
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".vac-*")
	if err != nil {
		h.log.Error("create temp file", zap.String("path", path), zap.Error(err))
		return false
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		h.log.Error("write chart", zap.String("path", path), zap.Error(err))
		return false
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		h.log.Error("close chart file", zap.String("path", path), zap.Error(err))
		return false
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		h.log.Error("replace chart file", zap.String("path", path), zap.Error(err))
		return false
	}

	h.log.Info("chart saved", zap.String("path", path))
	return true
}

// Load reads a .vac file and reconstructs a fresh chart. Malformed JSON or
// missing required fields yield (nil, false), never a fault. A version other
// than the current one logs a warning but reconstruction is still attempted.
func (h *Handler) Load(path string) (*chart.Chart, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		h.log.Error("read chart file", zap.String("path", path), zap.Error(err))
		return nil, false
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		h.log.Error("invalid JSON in chart file", zap.String("path", path), zap.Error(err))
		return nil, false
	}

	if doc.Version != Version {
		h.log.Warn("chart file version may not be compatible",
			zap.String("path", path),
			zap.String("version", doc.Version),
			zap.String("supported", Version))
	}

	if err := checkRequired(&doc); err != nil {
		h.log.Error("chart file missing required fields", zap.String("path", path), zap.Error(err))
		return nil, false
	}

	c := &chart.Chart{
		BirthInfo: *doc.BirthInfo,
		Planets:   doc.Planets,
		Houses:    doc.Houses,
		Ayanamsa:  *doc.Ayanamsa,
	}

	h.log.Info("chart loaded", zap.String("path", path))
	return c, true
}

func checkRequired(doc *document) error {
	if doc.BirthInfo == nil {
		return errors.New("no birth_info")
	}
	if doc.Ayanamsa == nil {
		return errors.New("no ayanamsa")
	}
	if doc.Planets == nil {
		return errors.New("no planets")
	}
	if doc.Houses == nil {
		return errors.New("no houses")
	}
	if err := doc.BirthInfo.Validate(); err != nil {
		return fmt.Errorf("birth_info: %w", err)
	}
	return nil
}

// Summarize extracts the listing descriptor from a .vac file without
// reconstructing the chart.
func (h *Handler) Summarize(path string) (Summary, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		h.log.Error("read chart file", zap.String("path", path), zap.Error(err))
		return Summary{}, false
	}

	var head struct {
		Version   string      `json:"version"`
		Created   string      `json:"created"`
		BirthInfo *birth.Info `json:"birth_info"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		h.log.Error("invalid JSON in chart file", zap.String("path", path), zap.Error(err))
		return Summary{}, false
	}
	if head.BirthInfo == nil {
		h.log.Error("chart file missing birth_info", zap.String("path", path))
		return Summary{}, false
	}

	s := Summary{
		Place:   head.BirthInfo.Place,
		Date:    head.BirthInfo.Date,
		Time:    head.BirthInfo.Time,
		Created: head.Created,
		Version: head.Version,
	}
	if s.Created == "" {
		s.Created = "Unknown"
	}
	if s.Version == "" {
		s.Version = "Unknown"
	}
	return s, true
}
