// Package schema provides helper functions for creating JSON Schema definitions.
//
// This package contains utilities for creating JSON Schema objects used in
// tool parameter definitions. It provides type-safe convenience functions for
// common schema patterns.
//
// Example usage:
//
//	import "github.com/opskit/kubeagent/src/schema"
//
//	// Create a simple string schema
//	nameSchema := schema.CreateStringSchema("Pod name")
//
//	// Create an object schema with properties
//	paramsSchema := schema.CreateObjectSchema(map[string]*jsonschema.Schema{
//		"name": schema.CreateStringSchema("Pod name"),
//		"tail": schema.CreateIntSchema("Number of log lines", 100),
//	}, []string{"name"}) // name is required
package schema
