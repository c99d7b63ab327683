// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "agent_id", Type: field.TypeInt},
		{Name: "patient_id", Type: field.TypeInt, Nullable: true},
		{Name: "clinique_id", Type: field.TypeInt, Nullable: true},
		{Name: "date_rdv", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "cancelled"}, Default: "pending"},
		{Name: "full_name", Type: field.TypeString, Size: 200},
		{Name: "phone", Type: field.TypeString, Size: 20},
		{Name: "intervention", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "clinic_quote_path", Type: field.TypeString, Nullable: true, Size: 1024},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_agent_id_status_date_rdv",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[8], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_clinique_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[6], AppointmentsColumns[8]},
			},
			{
				Name:    "appointment_patient_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_status_date_rdv",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[8], AppointmentsColumns[7]},
			},
		},
	}
	// AssistanceQuotesColumns holds the columns for the "assistance_quotes" table.
	AssistanceQuotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "quote_id", Type: field.TypeInt},
		{Name: "label", Type: field.TypeString, Size: 255},
		{Name: "amount_cents", Type: field.TypeInt64},
	}
	// AssistanceQuotesTable holds the schema information for the "assistance_quotes" table.
	AssistanceQuotesTable = &schema.Table{
		Name:       "assistance_quotes",
		Columns:    AssistanceQuotesColumns,
		PrimaryKey: []*schema.Column{AssistanceQuotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assistancequote_quote_id",
				Unique:  false,
				Columns: []*schema.Column{AssistanceQuotesColumns[2]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// QuotesColumns holds the columns for the "quotes" table.
	QuotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "appointment_id", Type: field.TypeInt, Unique: true},
		{Name: "created_by", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "refused"}, Default: "pending"},
		{Name: "total_clinique_cents", Type: field.TypeInt64},
		{Name: "total_assistance_cents", Type: field.TypeInt64},
		{Name: "total_quote_cents", Type: field.TypeInt64},
		{Name: "file_path", Type: field.TypeString, Nullable: true, Size: 1024},
		{Name: "file_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sent_to_patient_at", Type: field.TypeTime, Nullable: true},
		{Name: "sent_by", Type: field.TypeInt, Nullable: true},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
	}
	// QuotesTable holds the schema information for the "quotes" table.
	QuotesTable = &schema.Table{
		Name:       "quotes",
		Columns:    QuotesColumns,
		PrimaryKey: []*schema.Column{QuotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quote_status",
				Unique:  false,
				Columns: []*schema.Column{QuotesColumns[5]},
			},
			{
				Name:    "quote_sent_to_patient_at",
				Unique:  false,
				Columns: []*schema.Column{QuotesColumns[12]},
			},
		},
	}
	// RolesColumns holds the columns for the "roles" table.
	RolesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "name", Type: field.TypeEnum, Enums: []string{"administrateur", "superviseur", "confirmateur", "agent", "clinique", "patient"}},
	}
	// RolesTable holds the schema information for the "roles" table.
	RolesTable = &schema.Table{
		Name:       "roles",
		Columns:    RolesColumns,
		PrimaryKey: []*schema.Column{RolesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "role_user_id_name",
				Unique:  true,
				Columns: []*schema.Column{RolesColumns[2], RolesColumns[3]},
			},
			{
				Name:    "role_name",
				Unique:  false,
				Columns: []*schema.Column{RolesColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "clinic_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_is_active",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AssistanceQuotesTable,
		NotificationsTable,
		QuotesTable,
		RolesTable,
		UsersTable,
	}
)

func init() {
}
