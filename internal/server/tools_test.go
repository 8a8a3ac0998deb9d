package server

import (
	"testing"

	"github.com/ironsheep/target-follow/internal/target"
)

func toolMap() map[string]Tool {
	m := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		m[tool.Name] = tool
	}
	return m
}

func TestGetToolDefinitions(t *testing.T) {
	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"image_crop",
		"image_crop_sector",
		"image_sample_color",
		"target_locate",
		"target_mask",
		"target_overlay",
		"target_crop",
		"target_config",
	}

	tools := toolMap()
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
	for _, name := range expectedTools {
		if _, ok := tools[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			if tool.InputSchema["properties"] == nil {
				t.Error("InputSchema properties is nil")
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	for name, tool := range toolMap() {
		if name == "target_config" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			hasPath := false
			for _, r := range required {
				if r == "path" {
					hasPath = true
				}
			}
			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_TargetToolsShareArguments(t *testing.T) {
	tools := toolMap()
	for _, name := range []string{"target_locate", "target_mask", "target_overlay", "target_crop"} {
		props, ok := tools[name].InputSchema["properties"].(map[string]interface{})
		if !ok {
			t.Fatalf("%s: properties should be a map", name)
		}
		for _, arg := range []string{"path", "reload", "hue_min", "hue_max"} {
			if _, ok := props[arg]; !ok {
				t.Errorf("%s is missing argument %s", name, arg)
			}
		}
	}
}

func TestToolDefinitions_SectorEnum(t *testing.T) {
	props := toolMap()["image_crop_sector"].InputSchema["properties"].(map[string]interface{})
	sector := props["sector"].(map[string]interface{})

	enum, ok := sector["enum"].([]string)
	if !ok {
		t.Fatal("sector enum should be a string slice")
	}
	if len(enum) != len(target.Sectors) {
		t.Fatalf("enum has %d values, want %d", len(enum), len(target.Sectors))
	}
	for i, s := range target.Sectors {
		if enum[i] != string(s) {
			t.Errorf("enum[%d]: got %s, want %s", i, enum[i], s)
		}
	}
}
