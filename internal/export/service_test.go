package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/entity"
)

type stubTriples struct {
	triples []entity.Triple
}

func (s *stubTriples) InsertBatch(_ context.Context, triples []entity.Triple) (int, error) {
	return len(triples), nil
}

func (s *stubTriples) ListByJob(context.Context, int) ([]entity.Triple, error) {
	return s.triples, nil
}

func (s *stubTriples) List(context.Context, entity.TripleFilter) ([]entity.Triple, error) {
	return s.triples, nil
}

func TestExportTriplesXLSX(t *testing.T) {
	trait := "leaf length"
	unit := "cm"
	docID := 7
	jobID := 3
	repo := &stubTriples{triples: []entity.Triple{{
		SourceEntityName: "Quercus robur",
		SourceEntityAttr: "taxon",
		RelationType:     "has_trait",
		SinkEntityName:   "leaf length",
		SinkEntityAttr:   "trait",
		Confidence:       0.87,
		ModelProfile:     "spacy-sm",
		Status:           constants.TripleStatusRaw,
		TraitName:        &trait,
		Unit:             &unit,
		DocumentID:       &docID,
		JobID:            &jobID,
		Sentence:         "Quercus robur has long leaves.",
	}}}

	data, err := NewService(repo, nil).ExportTriplesXLSX(context.Background(), entity.TripleFilter{})
	if err != nil {
		t.Fatalf("ExportTriplesXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Triples")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("workbook has %d rows, want header + 1", len(rows))
	}
	if rows[0][0] != "Source Entity" || rows[0][11] != "Sentence" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "Quercus robur" || rows[1][2] != "has_trait" {
		t.Errorf("data row = %v", rows[1])
	}
	if rows[1][7] != "cm" {
		t.Errorf("unit cell = %q, want cm", rows[1][7])
	}
}

func TestExportEmptyResult(t *testing.T) {
	data, err := NewService(&stubTriples{}, nil).ExportTriplesXLSX(context.Background(), entity.TripleFilter{})
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Triples")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("workbook has %d rows, want header only", len(rows))
	}
}
