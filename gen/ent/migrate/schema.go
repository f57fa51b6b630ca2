// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "project_id", Type: field.TypeInt, Nullable: true},
		{Name: "file_path", Type: field.TypeString},
		{Name: "text_content", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "doi", Type: field.TypeString, Nullable: true},
		{Name: "doi_hash", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "registered"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_project_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "document_doi_hash",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
		},
	}
	// ExtractionJobColumns holds the columns for the "extraction_job" table.
	ExtractionJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "project_id", Type: field.TypeInt, Nullable: true},
		{Name: "model_profile", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString, Default: "no_training"},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "total", Type: field.TypeInt},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "total_triples", Type: field.TypeInt, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ExtractionJobTable holds the schema information for the "extraction_job" table.
	ExtractionJobTable = &schema.Table{
		Name:       "extraction_job",
		Columns:    ExtractionJobColumns,
		PrimaryKey: []*schema.Column{ExtractionJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractionjob_project_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobColumns[1], ExtractionJobColumns[4], ExtractionJobColumns[10]},
			},
			{
				Name:    "extractionjob_model_profile_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobColumns[2], ExtractionJobColumns[4]},
			},
		},
	}
	// JobDocumentColumns holds the columns for the "job_document" table.
	JobDocumentColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "document_id", Type: field.TypeInt},
		{Name: "job_id", Type: field.TypeInt},
	}
	// JobDocumentTable holds the schema information for the "job_document" table.
	JobDocumentTable = &schema.Table{
		Name:       "job_document",
		Columns:    JobDocumentColumns,
		PrimaryKey: []*schema.Column{JobDocumentColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_document_documents_job_documents",
				Columns:    []*schema.Column{JobDocumentColumns[2]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "job_document_extraction_job_job_documents",
				Columns:    []*schema.Column{JobDocumentColumns[3]},
				RefColumns: []*schema.Column{ExtractionJobColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobdocument_job_id_position",
				Unique:  true,
				Columns: []*schema.Column{JobDocumentColumns[3], JobDocumentColumns[1]},
			},
			{
				Name:    "jobdocument_job_id_document_id",
				Unique:  true,
				Columns: []*schema.Column{JobDocumentColumns[3], JobDocumentColumns[2]},
			},
			{
				Name:    "jobdocument_document_id",
				Unique:  false,
				Columns: []*schema.Column{JobDocumentColumns[2]},
			},
		},
	}
	// SentencesColumns holds the columns for the "sentences" table.
	SentencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeInt, Nullable: true},
	}
	// SentencesTable holds the schema information for the "sentences" table.
	SentencesTable = &schema.Table{
		Name:       "sentences",
		Columns:    SentencesColumns,
		PrimaryKey: []*schema.Column{SentencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sentences_documents_sentences",
				Columns:    []*schema.Column{SentencesColumns[3]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sentence_document_id",
				Unique:  false,
				Columns: []*schema.Column{SentencesColumns[3]},
			},
		},
	}
	// TrainingRunColumns holds the columns for the "training_run" table.
	TrainingRunColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "model_profile", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "artifact_path", Type: field.TypeString, Nullable: true},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TrainingRunTable holds the schema information for the "training_run" table.
	TrainingRunTable = &schema.Table{
		Name:       "training_run",
		Columns:    TrainingRunColumns,
		PrimaryKey: []*schema.Column{TrainingRunColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trainingrun_model_profile_created_at",
				Unique:  false,
				Columns: []*schema.Column{TrainingRunColumns[1], TrainingRunColumns[6]},
			},
		},
	}
	// TriplesColumns holds the columns for the "triples" table.
	TriplesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_entity_name", Type: field.TypeString},
		{Name: "source_entity_attr", Type: field.TypeString},
		{Name: "relation_type", Type: field.TypeString},
		{Name: "sink_entity_name", Type: field.TypeString},
		{Name: "sink_entity_attr", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "model_profile", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "raw"},
		{Name: "trait_name", Type: field.TypeString, Nullable: true},
		{Name: "trait_value", Type: field.TypeString, Nullable: true},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeInt, Nullable: true},
		{Name: "doi_hash", Type: field.TypeString, Nullable: true},
		{Name: "contributor_email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeInt, Nullable: true},
		{Name: "job_id", Type: field.TypeInt, Nullable: true},
		{Name: "sentence_id", Type: field.TypeInt},
	}
	// TriplesTable holds the schema information for the "triples" table.
	TriplesTable = &schema.Table{
		Name:       "triples",
		Columns:    TriplesColumns,
		PrimaryKey: []*schema.Column{TriplesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "triples_documents_triples",
				Columns:    []*schema.Column{TriplesColumns[16]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "triples_extraction_job_triples",
				Columns:    []*schema.Column{TriplesColumns[17]},
				RefColumns: []*schema.Column{ExtractionJobColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "triples_sentences_triples",
				Columns:    []*schema.Column{TriplesColumns[18]},
				RefColumns: []*schema.Column{SentencesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "triple_job_id",
				Unique:  false,
				Columns: []*schema.Column{TriplesColumns[17]},
			},
			{
				Name:    "triple_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{TriplesColumns[12], TriplesColumns[8]},
			},
			{
				Name:    "triple_document_id",
				Unique:  false,
				Columns: []*schema.Column{TriplesColumns[16]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ExtractionJobTable,
		JobDocumentTable,
		SentencesTable,
		TrainingRunTable,
		TriplesTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractionJobTable.Annotation = &entsql.Annotation{
		Table: "extraction_job",
	}
	JobDocumentTable.ForeignKeys[0].RefTable = DocumentsTable
	JobDocumentTable.ForeignKeys[1].RefTable = ExtractionJobTable
	JobDocumentTable.Annotation = &entsql.Annotation{
		Table: "job_document",
	}
	SentencesTable.ForeignKeys[0].RefTable = DocumentsTable
	SentencesTable.Annotation = &entsql.Annotation{
		Table: "sentences",
	}
	TrainingRunTable.Annotation = &entsql.Annotation{
		Table: "training_run",
	}
	TriplesTable.ForeignKeys[0].RefTable = DocumentsTable
	TriplesTable.ForeignKeys[1].RefTable = ExtractionJobTable
	TriplesTable.ForeignKeys[2].RefTable = SentencesTable
	TriplesTable.Annotation = &entsql.Annotation{
		Table: "triples",
	}
}
