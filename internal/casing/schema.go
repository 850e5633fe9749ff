package casing

// Schema is the declared field table of one entity. Keys missing from the
// table are still converted, using the derived naming rule.
type Schema struct {
	table     string
	fields    []Field
	byApp     map[string]Field
	byStorage map[string]Field
}

// NewSchema builds a schema for the given table
func NewSchema(table string, fields ...Field) *Schema {
	s := &Schema{
		table:     table,
		fields:    fields,
		byApp:     make(map[string]Field, len(fields)),
		byStorage: make(map[string]Field, len(fields)),
	}
	for _, f := range fields {
		s.byApp[f.App] = f
		s.byStorage[f.Storage] = f
	}
	return s
}

func (s *Schema) Table() string {
	return s.table
}

func (s *Schema) Fields() []Field {
	return s.fields
}

// Columns lists the declared storage columns in declaration order
func (s *Schema) Columns() []string {
	cols := make([]string, len(s.fields))
	for i, f := range s.fields {
		cols[i] = f.Storage
	}
	return cols
}

// Column reports the declared field for a storage column
func (s *Schema) Column(storage string) (Field, bool) {
	f, ok := s.byStorage[storage]
	return f, ok
}

// Key reports the declared field for an application key
func (s *Schema) Key(app string) (Field, bool) {
	f, ok := s.byApp[app]
	return f, ok
}

func (s *Schema) storageField(app string) Field {
	if f, ok := s.byApp[app]; ok {
		return f
	}
	storage := SnakeCase(app)
	return Field{App: app, Storage: storage, Kind: derivedKind(storage)}
}

func (s *Schema) applicationField(storage string) Field {
	if f, ok := s.byStorage[storage]; ok {
		return f
	}
	return Field{App: CamelCase(storage), Storage: storage, Kind: derivedKind(storage)}
}

// ToStorage returns a new record in storage shape
func (s *Schema) ToStorage(r Record) Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for key, value := range r {
		f := s.storageField(key)
		out[f.Storage] = toStorageValue(f.Kind, value)
	}
	return out
}

// ToApplication returns a new record in application shape
func (s *Schema) ToApplication(r Record) Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for key, value := range r {
		f := s.applicationField(key)
		out[f.App] = toApplicationValue(f.Kind, value)
	}
	return out
}

// ToApplicationAll converts every record of rs
func (s *Schema) ToApplicationAll(rs []Record) []Record {
	out := make([]Record, len(rs))
	for i, r := range rs {
		out[i] = s.ToApplication(r)
	}
	return out
}
