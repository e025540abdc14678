package metadata

// Placeholder is recorded for any descriptor attribute whose source element is
// missing or empty.
const Placeholder = "N/A"

// FieldRecord describes one field descriptor file.
type FieldRecord struct {
	Label   string `json:"label"`
	APIName string `json:"api_name"`
	Type    string `json:"type"`
}

// ValidationRuleRecord describes one active validation rule. Inactive rules
// never produce a record.
type ValidationRuleRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Formula     string `json:"formula"`
}

// DocumentationSet groups the records extracted for a single object, in
// resolution order.
type DocumentationSet struct {
	Object string                 `json:"object"`
	Fields []FieldRecord          `json:"fields,omitempty"`
	Rules  []ValidationRuleRecord `json:"rules,omitempty"`
}

// Empty reports whether the set holds neither fields nor rules.
func (s DocumentationSet) Empty() bool {
	return len(s.Fields) == 0 && len(s.Rules) == 0
}

// HasRules reports whether at least one active rule was collected.
func (s DocumentationSet) HasRules() bool {
	return len(s.Rules) > 0
}

// Clone returns a copy whose slices can be mutated without affecting s.
func (s DocumentationSet) Clone() DocumentationSet {
	cloned := DocumentationSet{Object: s.Object}
	if len(s.Fields) > 0 {
		cloned.Fields = append([]FieldRecord(nil), s.Fields...)
	}
	if len(s.Rules) > 0 {
		cloned.Rules = append([]ValidationRuleRecord(nil), s.Rules...)
	}
	return cloned
}
