package schema

// Field is one named declaration: a parameter or a return field.
type Field struct {
	Name string
	Type Type
}

// Signature describes a recorded function's shape: its parameters in
// call order and its return fields in declaration order. Parameter and
// return-field names share one namespace in the derived table; keeping
// them distinct is the declarer's job, not checked here.
type Signature struct {
	Params  []Field
	Results []Field
}

// ColumnSpec describes one derived table column. Equality is
// structural across all three fields.
type ColumnSpec struct {
	Name    string
	SQLType string
	Mods    string
}

// CreateLine renders the column as one body line of a CREATE TABLE
// statement. The modifier token is omitted entirely when empty, so a
// nullable column renders as a bare type.
func (c ColumnSpec) CreateLine() string {
	line := "    " + c.Name + " " + c.SQLType
	if c.Mods != "" {
		line += " " + c.Mods
	}
	return line
}

// ParamColumns derives column specs for the signature's parameters,
// preserving declaration order. An empty parameter list derives an
// empty column list.
func ParamColumns(sig Signature) []ColumnSpec {
	return columns(sig.Params)
}

// ResultColumns derives column specs for the signature's return
// fields, preserving declaration order.
func ResultColumns(sig Signature) []ColumnSpec {
	return columns(sig.Results)
}

func columns(fields []Field) []ColumnSpec {
	specs := make([]ColumnSpec, 0, len(fields))
	for _, f := range fields {
		sqlType, mods := Column(f.Type)
		specs = append(specs, ColumnSpec{Name: f.Name, SQLType: sqlType, Mods: mods})
	}
	return specs
}
