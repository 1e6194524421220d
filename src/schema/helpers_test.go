package schema

import (
	"testing"

	jsonschema "github.com/swaggest/jsonschema-go"
)

func TestCreateStringSchema(t *testing.T) {
	schema := CreateStringSchema("Pod name")

	if schema == nil {
		t.Fatal("Expected schema to be non-nil")
	}

	if schema.Description == nil || *schema.Description != "Pod name" {
		t.Errorf("Expected description 'Pod name', got %v", schema.Description)
	}

	if schema.Type == nil || schema.Type.SimpleTypes == nil {
		t.Fatal("Expected type to be set")
	}

	expectedType := jsonschema.SimpleType("string")
	if *schema.Type.SimpleTypes != expectedType {
		t.Errorf("Expected type 'string', got %v", *schema.Type.SimpleTypes)
	}
}

func TestCreateBoolSchema(t *testing.T) {
	schema := CreateBoolSchema("List recursively", false)

	if schema == nil {
		t.Fatal("Expected schema to be non-nil")
	}

	if schema.Description == nil || *schema.Description != "List recursively" {
		t.Errorf("Expected description 'List recursively', got %v", schema.Description)
	}

	if schema.Type == nil || schema.Type.SimpleTypes == nil {
		t.Fatal("Expected type to be set")
	}

	expectedType := jsonschema.SimpleType("boolean")
	if *schema.Type.SimpleTypes != expectedType {
		t.Errorf("Expected type 'boolean', got %v", *schema.Type.SimpleTypes)
	}

	if schema.Default == nil || *schema.Default != false {
		t.Errorf("Expected default false, got %v", schema.Default)
	}
}

func TestCreateIntSchema(t *testing.T) {
	schema := CreateIntSchema("Number of log lines", 100)

	if schema == nil {
		t.Fatal("Expected schema to be non-nil")
	}

	if schema.Description == nil || *schema.Description != "Number of log lines" {
		t.Errorf("Expected description 'Number of log lines', got %v", schema.Description)
	}

	if schema.Type == nil || schema.Type.SimpleTypes == nil {
		t.Fatal("Expected type to be set")
	}

	expectedType := jsonschema.SimpleType("integer")
	if *schema.Type.SimpleTypes != expectedType {
		t.Errorf("Expected type 'integer', got %v", *schema.Type.SimpleTypes)
	}

	if schema.Default == nil || *schema.Default != 100 {
		t.Errorf("Expected default 100, got %v", schema.Default)
	}
}

func TestCreateStringArraySchema(t *testing.T) {
	schema := CreateStringArraySchema("Webhook events")

	if schema == nil {
		t.Fatal("Expected schema to be non-nil")
	}

	if schema.Description == nil || *schema.Description != "Webhook events" {
		t.Errorf("Expected description 'Webhook events', got %v", schema.Description)
	}

	expectedType := jsonschema.SimpleType("array")
	if schema.Type == nil || schema.Type.SimpleTypes == nil || *schema.Type.SimpleTypes != expectedType {
		t.Fatal("Expected type 'array'")
	}

	if schema.Items == nil || schema.Items.SchemaOrBool == nil || schema.Items.SchemaOrBool.TypeObject == nil {
		t.Fatal("Expected items schema to be set")
	}

	itemType := jsonschema.SimpleType("string")
	if *schema.Items.SchemaOrBool.TypeObject.Type.SimpleTypes != itemType {
		t.Errorf("Expected item type 'string', got %v", *schema.Items.SchemaOrBool.TypeObject.Type.SimpleTypes)
	}
}

func TestCreateObjectSchema(t *testing.T) {
	properties := map[string]*jsonschema.Schema{
		"name":     CreateStringSchema("Deployment name"),
		"replicas": CreateIntegerSchema("Desired replica count"),
	}
	required := []string{"name", "replicas"}

	schema := CreateObjectSchema(properties, required)

	if schema == nil {
		t.Fatal("Expected schema to be non-nil")
	}

	if schema.Type == nil || schema.Type.SimpleTypes == nil {
		t.Fatal("Expected type to be set")
	}

	expectedType := jsonschema.SimpleType("object")
	if *schema.Type.SimpleTypes != expectedType {
		t.Errorf("Expected type 'object', got %v", *schema.Type.SimpleTypes)
	}

	if len(schema.Properties) != 2 {
		t.Errorf("Expected 2 properties, got %d", len(schema.Properties))
	}

	if len(schema.Required) != 2 || schema.Required[0] != "name" {
		t.Errorf("Expected required fields [name replicas], got %v", schema.Required)
	}
}
