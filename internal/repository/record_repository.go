package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/segyhp/travel-crm/internal/casing"
	apperrors "github.com/segyhp/travel-crm/pkg/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	columnID           = "id"
	columnCreatedAt    = "created_at"
	columnStatus       = "status"
	columnTags         = "tags"
	columnCustomerID   = "customer_id"
	columnParticipants = "participants"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type recordRepository struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) List(ctx context.Context, schema *casing.Schema, filter ListFilter) ([]casing.Record, error) {
	query, args := buildListQuery(schema, filter)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}
	defer rows.Close()

	return scanRecords(schema, rows)
}

func (r *recordRepository) Get(ctx context.Context, schema *casing.Schema, id string) (casing.Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.WrapRecordNotFound(schema.Table(), id)
	}

	query := fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, schema.Table())

	row := make(map[string]interface{})
	err := r.db.QueryRowxContext(ctx, query, id).MapScan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.WrapRecordNotFound(schema.Table(), id)
	}
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return normalizeRow(schema, row), nil
}

func (r *recordRepository) Create(ctx context.Context, schema *casing.Schema, record casing.Record) (casing.Record, error) {
	columns := writableColumns(schema, record, false)
	if len(columns) == 0 {
		return nil, apperrors.WrapDatabaseError(fmt.Errorf("no %s columns to insert", schema.Table()))
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (:%s) RETURNING *`,
		schema.Table(),
		strings.Join(columns, ", "),
		strings.Join(columns, ", :"),
	)

	return r.namedReturning(ctx, schema, query, bindArgs(schema, record, columns), "")
}

func (r *recordRepository) Update(ctx context.Context, schema *casing.Schema, id string, record casing.Record) (casing.Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.WrapRecordNotFound(schema.Table(), id)
	}

	columns := writableColumns(schema, record, true)
	if len(columns) == 0 {
		return r.Get(ctx, schema, id)
	}

	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = fmt.Sprintf("%s = :%s", col, col)
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = :id RETURNING *`,
		schema.Table(),
		strings.Join(assignments, ", "),
	)

	args := bindArgs(schema, record, columns)
	args[columnID] = id

	return r.namedReturning(ctx, schema, query, args, id)
}

func (r *recordRepository) Delete(ctx context.Context, schema *casing.Schema, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.WrapRecordNotFound(schema.Table(), id)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, schema.Table())

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.WrapDatabaseError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.WrapDatabaseError(err)
	}
	if affected == 0 {
		return apperrors.WrapRecordNotFound(schema.Table(), id)
	}

	return nil
}

func (r *recordRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *recordRepository) namedReturning(ctx context.Context, schema *casing.Schema, query string, args map[string]interface{}, id string) (casing.Record, error) {
	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}
	defer rows.Close()

	records, err := scanRecords(schema, rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.WrapRecordNotFound(schema.Table(), id)
	}

	return records[0], nil
}

func scanRecords(schema *casing.Schema, rows *sqlx.Rows) ([]casing.Record, error) {
	records := make([]casing.Record, 0)
	for rows.Next() {
		row := make(map[string]interface{})
		if err := rows.MapScan(row); err != nil {
			return nil, apperrors.WrapDatabaseError(err)
		}
		records = append(records, normalizeRow(schema, row))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}
	return records, nil
}

// normalizeRow turns driver values into plain Go values. lib/pq hands back
// uuid, numeric, jsonb and array columns as raw bytes.
func normalizeRow(schema *casing.Schema, row map[string]interface{}) casing.Record {
	out := make(casing.Record, len(row))
	for col, value := range row {
		field, declared := schema.Column(col)
		isList := declared && field.Kind == casing.List

		switch v := value.(type) {
		case []byte:
			if isList {
				var list pq.StringArray
				if err := list.Scan(v); err == nil {
					out[col] = []string(list)
					continue
				}
			}
			out[col] = string(v)
		case nil:
			if isList {
				out[col] = []string{}
				continue
			}
			out[col] = nil
		default:
			out[col] = v
		}
	}
	return out
}

// writableColumns returns the declared columns present in record, sorted.
// Undeclared keys are dropped so only known identifiers reach the SQL text.
func writableColumns(schema *casing.Schema, record casing.Record, forUpdate bool) []string {
	columns := make([]string, 0, len(record))
	for key := range record {
		if _, ok := schema.Column(key); !ok {
			continue
		}
		if forUpdate && (key == columnID || key == columnCreatedAt) {
			continue
		}
		columns = append(columns, key)
	}
	sort.Strings(columns)
	return columns
}

func bindArgs(schema *casing.Schema, record casing.Record, columns []string) map[string]interface{} {
	args := make(map[string]interface{}, len(columns)+1)
	for _, col := range columns {
		value := record[col]
		if field, _ := schema.Column(col); field.Kind == casing.List {
			value = pq.StringArray(toStringList(value))
		}
		args[col] = value
	}
	return args
}

func toStringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		if list == "" {
			return []string{}
		}
		return []string{list}
	default:
		return []string{}
	}
}

func buildListQuery(schema *casing.Schema, filter ListFilter) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)
	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	has := func(col string) bool {
		_, ok := schema.Column(col)
		return ok
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		var columns []string
		for _, col := range filter.SearchColumns {
			if has(col) {
				columns = append(columns, col)
			}
		}
		if len(columns) > 0 {
			placeholder := next("%" + likeEscaper.Replace(search) + "%")
			matches := make([]string, len(columns))
			for i, col := range columns {
				matches[i] = fmt.Sprintf("%s ILIKE %s", col, placeholder)
			}
			conditions = append(conditions, "("+strings.Join(matches, " OR ")+")")
		}
	}

	if filter.Status != "" && has(columnStatus) {
		conditions = append(conditions, fmt.Sprintf("status = %s", next(filter.Status)))
	}

	if tag := strings.TrimSpace(filter.Tag); tag != "" && has(columnTags) {
		conditions = append(conditions, fmt.Sprintf("(',' || COALESCE(tags, '') || ',') LIKE %s",
			next("%,"+likeEscaper.Replace(tag)+",%")))
	}

	if filter.CustomerID != "" {
		switch {
		case has(columnCustomerID):
			conditions = append(conditions, fmt.Sprintf("customer_id = %s", next(filter.CustomerID)))
		case has(columnParticipants):
			conditions = append(conditions, fmt.Sprintf("%s = ANY(participants)", next(filter.CustomerID)))
		}
	}

	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	b.WriteString(schema.Table())
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}

	order := columnCreatedAt
	if filter.SortBy != "" && has(filter.SortBy) {
		order = filter.SortBy
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	fmt.Fprintf(&b, " ORDER BY %s %s, id ASC", order, direction)

	if filter.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %s", next(filter.Limit))
	}
	if filter.Offset > 0 {
		fmt.Fprintf(&b, " OFFSET %s", next(filter.Offset))
	}

	return b.String(), args
}
