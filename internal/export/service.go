package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/phenobase/trait-extractor/internal/entity"
	"github.com/phenobase/trait-extractor/internal/repository"
)

// Service produces XLSX workbooks of extracted triples for curator
// review outside the annotation UI.
type Service struct {
	triples repository.TripleRepository
	logger  *slog.Logger
}

func NewService(triples repository.TripleRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{triples: triples, logger: logger}
}

// ExportTriplesXLSX returns an XLSX workbook (as bytes) for the triples
// matching the filter, one row per triple with its evidence sentence.
func (s *Service) ExportTriplesXLSX(ctx context.Context, filter entity.TripleFilter) ([]byte, error) {
	start := time.Now()

	triples, err := s.triples.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query triples: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Triples"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Source Entity",
		"Source Type",
		"Relation",
		"Sink Entity",
		"Sink Type",
		"Trait",
		"Value",
		"Unit",
		"Confidence",
		"Status",
		"Model Profile",
		"Sentence",
		"Document ID",
		"Job ID",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, t := range triples {
		values := []any{
			t.SourceEntityName,
			t.SourceEntityAttr,
			t.RelationType,
			t.SinkEntityName,
			t.SinkEntityAttr,
			deref(t.TraitName),
			deref(t.TraitValue),
			deref(t.Unit),
			t.Confidence,
			string(t.Status),
			t.ModelProfile,
			t.Sentence,
			derefInt(t.DocumentID),
			derefInt(t.JobID),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("triples exported",
		"rows", len(triples),
		"elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) any {
	if i == nil {
		return ""
	}
	return *i
}
