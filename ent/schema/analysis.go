package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Analysis holds the schema definition for the Analysis entity.
// One record per uploaded architecture diagram; the record doubles as the
// work-queue entry (workers claim OPEN rows).
type Analysis struct {
	ent.Schema
}

// Fields of the Analysis.
func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_id").
			Unique().
			Immutable(),
		field.String("code").
			Unique().
			Immutable().
			Comment("Externally visible short identifier (TMA-XXXXXXXX)"),
		field.String("image_path").
			Comment("Stored image filename under the upload root"),
		field.String("mime_type").
			Comment("Detected MIME type of the uploaded image"),
		field.Enum("status").
			Values("OPEN", "RUNNING", "DONE", "FAILED").
			Default("OPEN"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the job (OPEN to RUNNING)"),
		field.Time("finished_at").
			Optional().
			Nillable().
			Comment("When the job reached a terminal status"),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Full analysis payload, present only when status is DONE"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Failure reason, present only when status is FAILED"),
		field.Text("processing_logs").
			Optional().
			Comment("Append-only per-stage processing log"),
	}
}

// Indexes of the Analysis.
func (Analysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),

		// Composite index for the worker claim query (status=OPEN, FIFO).
		index.Fields("status", "created_at"),
	}
}

// Annotations for PostgreSQL-specific features.
func (Analysis) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analyses"},
	}
}
