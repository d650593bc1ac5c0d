// Package config provides configuration structures for values, validity maps
// and dispatchers.
//
// Configs are used only during construction and then turned into domain
// objects. Observer and Dispatcher fields are names resolved at runtime
// through the observability and dispatch registries, which keeps every
// config serializable:
//
//	{"value": {"null_safe": true, "observer": "slog", "dispatcher": "loop"}}
//
// Each config has a DefaultXConfig constructor and a Merge method that
// applies the non-zero fields of a source config. LoadConfig and Decode both
// merge onto DefaultConfig, so partial documents are valid.
package config
