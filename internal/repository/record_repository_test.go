package repository

import (
	"testing"
	"time"

	"github.com/segyhp/travel-crm/internal/casing"
	"github.com/segyhp/travel-crm/internal/domain"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name     string
		schema   *casing.Schema
		filter   ListFilter
		expected string
		args     []interface{}
	}{
		{
			name:     "no filter",
			schema:   domain.CustomerSchema,
			expected: "SELECT * FROM customers ORDER BY created_at ASC, id ASC",
		},
		{
			name:   "search and tag on customers",
			schema: domain.CustomerSchema,
			filter: ListFilter{
				Search:        "kaya",
				SearchColumns: []string{"name", "email", "not_a_column"},
				Tag:           "vip",
				SortBy:        "name",
			},
			expected: "SELECT * FROM customers WHERE (name ILIKE $1 OR email ILIKE $1) AND (',' || COALESCE(tags, '') || ',') LIKE $2 ORDER BY name ASC, id ASC",
			args:     []interface{}{"%kaya%", "%,vip,%"},
		},
		{
			name:     "search wildcards escaped",
			schema:   domain.CustomerSchema,
			filter:   ListFilter{Search: "50%_off", SearchColumns: []string{"notes"}},
			expected: "SELECT * FROM customers WHERE (notes ILIKE $1) ORDER BY created_at ASC, id ASC",
			args:     []interface{}{`%50\%\_off%`},
		},
		{
			name:     "status and customer on visa applications",
			schema:   domain.VisaApplicationSchema,
			filter:   ListFilter{Status: domain.VisaStatusSubmitted, CustomerID: "c-1", SortBy: "appointment_date", SortDesc: true, Limit: 20, Offset: 40},
			expected: "SELECT * FROM visa_applications WHERE status = $1 AND customer_id = $2 ORDER BY appointment_date DESC, id ASC LIMIT $3 OFFSET $4",
			args:     []interface{}{"submitted", "c-1", 20, 40},
		},
		{
			name:     "customer on tours uses participants",
			schema:   domain.TourSchema,
			filter:   ListFilter{CustomerID: "c-9"},
			expected: "SELECT * FROM tours WHERE $1 = ANY(participants) ORDER BY created_at ASC, id ASC",
			args:     []interface{}{"c-9"},
		},
		{
			name:     "undeclared filters ignored",
			schema:   domain.TourSchema,
			filter:   ListFilter{Tag: "vip", SortBy: "name; DROP TABLE tours"},
			expected: "SELECT * FROM tours ORDER BY created_at ASC, id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListQuery(tt.schema, tt.filter)
			assert.Equal(t, tt.expected, query)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestNormalizeRow(t *testing.T) {
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	row := map[string]interface{}{
		"id":           []byte("0b7e6f7e-6a4d-4f0e-9a43-9f5c2f1a7c11"),
		"name":         "Kapadokya",
		"participants": []byte(`{c-1,c-2}`),
		"activities":   []byte(`[{"name":"balloon"}]`),
		"start_date":   created,
		"end_date":     nil,
		"created_at":   created,
	}

	out := normalizeRow(domain.TourSchema, row)

	assert.Equal(t, "0b7e6f7e-6a4d-4f0e-9a43-9f5c2f1a7c11", out["id"])
	assert.Equal(t, []string{"c-1", "c-2"}, out["participants"])
	assert.Equal(t, `[{"name":"balloon"}]`, out["activities"])
	assert.Equal(t, created, out["start_date"])
	assert.Nil(t, out["end_date"])

	empty := normalizeRow(domain.TourSchema, map[string]interface{}{"participants": nil})
	assert.Equal(t, []string{}, empty["participants"])
}

func TestWritableColumnsAndBindArgs(t *testing.T) {
	record := casing.Record{
		"id":           "t-1",
		"name":         "Balkans",
		"created_at":   "2024-01-01T00:00:00Z",
		"participants": []any{"c-1", "c-2"},
		"rogue_column": "x",
	}

	assert.Equal(t, []string{"created_at", "id", "name", "participants"}, writableColumns(domain.TourSchema, record, false))

	columns := writableColumns(domain.TourSchema, record, true)
	assert.Equal(t, []string{"name", "participants"}, columns)

	args := bindArgs(domain.TourSchema, record, columns)
	assert.Equal(t, "Balkans", args["name"])
	assert.Equal(t, pq.StringArray{"c-1", "c-2"}, args["participants"])
	assert.NotContains(t, args, "rogue_column")
}
