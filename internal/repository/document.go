package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/gen/ent"
	"github.com/phenobase/trait-extractor/gen/ent/document"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/entity"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Document, error)
	Register(ctx context.Context, req RegisterDocumentRequest) (*entity.Document, error)
	UpdateStatus(ctx context.Context, id int, status constants.DocumentStatus) error
}

// RegisterDocumentRequest registers a source file as an extractable
// document. TextContent may be supplied directly; otherwise the file at
// FilePath is read.
type RegisterDocumentRequest struct {
	ProjectID   *int
	FilePath    string
	TextContent string
	Doi         string
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	if log == nil {
		log = slog.Default()
	}
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) GetByID(ctx context.Context, id int) (*entity.Document, error) {
	row, err := r.ent.Document.Query().
		Where(document.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("DOCUMENT_NOT_FOUND",
				fmt.Sprintf("document %d", id), common.ErrNotFound)
		}
		r.log.Error("document lookup failed", "document_id", id, "err", err)
		return nil, err
	}
	return documentFromRow(row), nil
}

func (r *documentRepo) Register(ctx context.Context, req RegisterDocumentRequest) (*entity.Document, error) {
	text := req.TextContent
	if text == "" && req.FilePath != "" {
		raw, err := os.ReadFile(req.FilePath)
		if err != nil {
			return nil, fmt.Errorf("read document file: %w", err)
		}
		text = string(raw)
	}

	create := r.ent.Document.Create().
		SetFilePath(req.FilePath).
		SetTextContent(text).
		SetStatus(string(constants.DocumentStatusRegistered)).
		SetNillableProjectID(req.ProjectID)
	if req.Doi != "" {
		sum := sha256.Sum256([]byte(req.Doi))
		create = create.
			SetDoi(req.Doi).
			SetDoiHash(hex.EncodeToString(sum[:]))
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("document register failed", "file_path", req.FilePath, "err", err)
		return nil, err
	}
	r.log.Info("document registered", "document_id", row.ID, "file_path", req.FilePath, "bytes", len(text))
	return documentFromRow(row), nil
}

func (r *documentRepo) UpdateStatus(ctx context.Context, id int, status constants.DocumentStatus) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("document status update failed", "document_id", id, "err", err)
		return err
	}
	return nil
}

func documentFromRow(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:          row.ID,
		ProjectID:   row.ProjectID,
		FilePath:    row.FilePath,
		TextContent: row.TextContent,
		Doi:         row.Doi,
		DoiHash:     row.DoiHash,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
