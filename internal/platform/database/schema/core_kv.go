// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreKVTable represents the 'core.kv' table
type CoreKVTable struct {
	Table     string
	Key       string
	Value     string
	UpdatedAt string
}

// CoreKV is the schema definition for core.kv
var CoreKV = CoreKVTable{
	Table:     "core.kv",
	Key:       "key",
	Value:     "value",
	UpdatedAt: "updated_at",
}

func (t CoreKVTable) Columns() []string {
	return []string{t.Key, t.Value, t.UpdatedAt}
}
