// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "filename", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "sha256", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "project_documents", Type: field.TypeString},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_projects_documents",
				Columns:    []*schema.Column{DocumentsColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// EnvelopesColumns holds the columns for the "envelopes" table.
	EnvelopesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "subject", Type: field.TypeString, Default: "Please sign"},
		{Name: "message", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "sent", "completed"}, Default: "draft"},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "requester_name", Type: field.TypeString, Nullable: true},
		{Name: "requester_email", Type: field.TypeString, Nullable: true},
		{Name: "document_envelopes", Type: field.TypeString},
		{Name: "project_envelopes", Type: field.TypeString},
	}
	// EnvelopesTable holds the schema information for the "envelopes" table.
	EnvelopesTable = &schema.Table{
		Name:       "envelopes",
		Columns:    EnvelopesColumns,
		PrimaryKey: []*schema.Column{EnvelopesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "envelopes_documents_envelopes",
				Columns:    []*schema.Column{EnvelopesColumns[9]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "envelopes_projects_envelopes",
				Columns:    []*schema.Column{EnvelopesColumns[10]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "envelope_status",
				Unique:  false,
				Columns: []*schema.Column{EnvelopesColumns[5]},
			},
		},
	}
	// EnvelopeFieldsColumns holds the columns for the "envelope_fields" table.
	EnvelopeFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "page", Type: field.TypeInt, Default: 1},
		{Name: "x", Type: field.TypeFloat64},
		{Name: "y", Type: field.TypeFloat64},
		{Name: "w", Type: field.TypeFloat64},
		{Name: "h", Type: field.TypeFloat64},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"signature", "initials", "text", "date", "checkbox"}},
		{Name: "required", Type: field.TypeBool, Default: true},
		{Name: "role", Type: field.TypeString, Default: "Signer"},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "font_family", Type: field.TypeString, Nullable: true},
		{Name: "envelope_fields", Type: field.TypeString},
		{Name: "signer_fields", Type: field.TypeString, Nullable: true},
	}
	// EnvelopeFieldsTable holds the schema information for the "envelope_fields" table.
	EnvelopeFieldsTable = &schema.Table{
		Name:       "envelope_fields",
		Columns:    EnvelopeFieldsColumns,
		PrimaryKey: []*schema.Column{EnvelopeFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "envelope_fields_envelopes_fields",
				Columns:    []*schema.Column{EnvelopeFieldsColumns[11]},
				RefColumns: []*schema.Column{EnvelopesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "envelope_fields_signers_fields",
				Columns:    []*schema.Column{EnvelopeFieldsColumns[12]},
				RefColumns: []*schema.Column{SignersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "actor", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"created", "sent", "opened", "filled", "consented", "completed", "sealed"}},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "ip", Type: field.TypeString, Nullable: true},
		{Name: "ua", Type: field.TypeString, Nullable: true},
		{Name: "prev_hash", Type: field.TypeString},
		{Name: "hash", Type: field.TypeString},
		{Name: "envelope_events", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_envelopes_events",
				Columns:    []*schema.Column{EventsColumns[9]},
				RefColumns: []*schema.Column{EnvelopesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// FinalArtifactsColumns holds the columns for the "final_artifacts" table.
	FinalArtifactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "storage_key_pdf", Type: field.TypeString},
		{Name: "storage_key_audit", Type: field.TypeString},
		{Name: "sha256_final", Type: field.TypeString},
		{Name: "sealed_at", Type: field.TypeTime},
		{Name: "envelope_artifact", Type: field.TypeString, Unique: true},
	}
	// FinalArtifactsTable holds the schema information for the "final_artifacts" table.
	FinalArtifactsTable = &schema.Table{
		Name:       "final_artifacts",
		Columns:    FinalArtifactsColumns,
		PrimaryKey: []*schema.Column{FinalArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "final_artifacts_envelopes_artifact",
				Columns:    []*schema.Column{FinalArtifactsColumns[6]},
				RefColumns: []*schema.Column{EnvelopesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "access_token", Type: field.TypeString, Unique: true},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// ProjectInvestorsColumns holds the columns for the "project_investors" table.
	ProjectInvestorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: "Investor"},
		{Name: "routing_order", Type: field.TypeInt, Default: 1},
		{Name: "units_invested", Type: field.TypeFloat64, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "project_investors", Type: field.TypeString},
	}
	// ProjectInvestorsTable holds the schema information for the "project_investors" table.
	ProjectInvestorsTable = &schema.Table{
		Name:       "project_investors",
		Columns:    ProjectInvestorsColumns,
		PrimaryKey: []*schema.Column{ProjectInvestorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_investors_projects_investors",
				Columns:    []*schema.Column{ProjectInvestorsColumns[9]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "projectinvestor_routing_order",
				Unique:  false,
				Columns: []*schema.Column{ProjectInvestorsColumns[6]},
			},
		},
	}
	// SignersColumns holds the columns for the "signers" table.
	SignersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: "Signer"},
		{Name: "routing_order", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed"}, Default: "pending"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "opened_at", Type: field.TypeTime, Nullable: true},
		{Name: "ip_first", Type: field.TypeString, Nullable: true},
		{Name: "ua_first", Type: field.TypeString, Nullable: true},
		{Name: "envelope_signers", Type: field.TypeString},
	}
	// SignersTable holds the schema information for the "signers" table.
	SignersTable = &schema.Table{
		Name:       "signers",
		Columns:    SignersColumns,
		PrimaryKey: []*schema.Column{SignersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "signers_envelopes_signers",
				Columns:    []*schema.Column{SignersColumns[12]},
				RefColumns: []*schema.Column{EnvelopesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "signer_status",
				Unique:  false,
				Columns: []*schema.Column{SignersColumns[7]},
			},
		},
	}
	// SignerFieldValuesColumns holds the columns for the "signer_field_values" table.
	SignerFieldValuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "envelope_field_values", Type: field.TypeString},
		{Name: "signer_values", Type: field.TypeString},
	}
	// SignerFieldValuesTable holds the schema information for the "signer_field_values" table.
	SignerFieldValuesTable = &schema.Table{
		Name:       "signer_field_values",
		Columns:    SignerFieldValuesColumns,
		PrimaryKey: []*schema.Column{SignerFieldValuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "signer_field_values_envelope_fields_values",
				Columns:    []*schema.Column{SignerFieldValuesColumns[3]},
				RefColumns: []*schema.Column{EnvelopeFieldsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "signer_field_values_signers_values",
				Columns:    []*schema.Column{SignerFieldValuesColumns[4]},
				RefColumns: []*schema.Column{SignersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		EnvelopesTable,
		EnvelopeFieldsTable,
		EventsTable,
		FinalArtifactsTable,
		ProjectsTable,
		ProjectInvestorsTable,
		SignersTable,
		SignerFieldValuesTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = ProjectsTable
	EnvelopesTable.ForeignKeys[0].RefTable = DocumentsTable
	EnvelopesTable.ForeignKeys[1].RefTable = ProjectsTable
	EnvelopeFieldsTable.ForeignKeys[0].RefTable = EnvelopesTable
	EnvelopeFieldsTable.ForeignKeys[1].RefTable = SignersTable
	EventsTable.ForeignKeys[0].RefTable = EnvelopesTable
	FinalArtifactsTable.ForeignKeys[0].RefTable = EnvelopesTable
	ProjectInvestorsTable.ForeignKeys[0].RefTable = ProjectsTable
	SignersTable.ForeignKeys[0].RefTable = EnvelopesTable
	SignerFieldValuesTable.ForeignKeys[0].RefTable = EnvelopeFieldsTable
	SignerFieldValuesTable.ForeignKeys[1].RefTable = SignersTable
}
