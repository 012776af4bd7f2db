// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysesColumns holds the columns for the "analyses" table.
	AnalysesColumns = []*schema.Column{
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "image_path", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"OPEN", "RUNNING", "DONE", "FAILED"}, Default: "OPEN"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processing_logs", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// AnalysesTable holds the schema information for the "analyses" table.
	AnalysesTable = &schema.Table{
		Name:       "analyses",
		Columns:    AnalysesColumns,
		PrimaryKey: []*schema.Column{AnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysis_status",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[4]},
			},
			{
				Name:    "analysis_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[5]},
			},
			{
				Name:    "analysis_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[4], AnalysesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysesTable,
	}
)

func init() {
	AnalysesTable.Annotation = &entsql.Annotation{
		Table: "analyses",
	}
}
