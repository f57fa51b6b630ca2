package service

import (
	"context"
	"strings"

	"github.com/phenobase/trait-extractor/internal/api"
	"github.com/phenobase/trait-extractor/internal/entity"
)

// ExtractPayload serves the peer side of /extract_triples: run the
// local adapter over documents supplied on the wire and return
// normalized triples. Nothing is persisted here; that is the caller's
// side of the contract.
func (s *Service) ExtractPayload(ctx context.Context, profileName string, docs []api.DocumentPayload, jobID *int) ([]entity.Triple, error) {
	if _, err := s.profiles.Get(profileName); err != nil {
		return nil, err
	}

	a, release, err := s.adapters.Acquire(profileName)
	if err != nil {
		return nil, err
	}
	defer release()

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	results, err := a.Extract(ctx, texts)
	if err != nil {
		return nil, err
	}

	var triples []entity.Triple
	for i, inner := range results {
		doc := docs[i]
		if strings.TrimSpace(doc.Text) == "" {
			continue
		}
		docID := doc.ID
		for _, raw := range inner {
			canon := a.Normalize(raw)
			sentence := canon.Sentence
			if sentence == "" {
				sentence = snippet(doc.Text, 200)
			}
			triples = append(triples, entity.Triple{
				SourceEntityName: canon.SourceEntityName,
				SourceEntityAttr: canon.SourceEntityAttr,
				RelationType:     canon.RelationType,
				SinkEntityName:   canon.SinkEntityName,
				SinkEntityAttr:   canon.SinkEntityAttr,
				Confidence:       canon.Confidence,
				ModelProfile:     canon.ModelProfile,
				Status:           canon.Status,
				TraitName:        optional(canon.TraitName),
				TraitValue:       optional(canon.TraitValue),
				Unit:             optional(canon.Unit),
				ProjectID:        doc.Metadata.ProjectID,
				DocumentID:       &docID,
				JobID:            jobID,
				Sentence:         sentence,
			})
		}
	}
	return triples, nil
}
