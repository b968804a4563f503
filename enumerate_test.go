package vklayers

import (
	"bytes"
	"testing"

	vk "github.com/vulkan-go/vulkan"
)

var testLayers = []LayerInfo{{
	Name:                  "VK_LAYER_TEST_alpha",
	SpecVersion:           Version{Major: 1, Minor: 0, Patch: 0},
	ImplementationVersion: 3,
	Description:           "test layer",
}}

func TestEnumerateLayerPropertiesCountOnly(t *testing.T) {
	var count uint32
	if res := EnumerateLayerProperties(testLayers, &count, nil); res != vk.Success {
		t.Fatalf("count query failed: %d", res)
	}
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}
}

func TestEnumerateLayerPropertiesFill(t *testing.T) {
	count := uint32(1)
	props := make([]vk.LayerProperties, 1)
	if res := EnumerateLayerProperties(testLayers, &count, props); res != vk.Success {
		t.Fatalf("fill query failed: %d", res)
	}
	name := props[0].LayerName[:]
	nul := bytes.IndexByte(name, 0)
	if nul < 0 {
		t.Fatalf("layer name not NUL terminated")
	}
	if got := string(name[:nul]); got != testLayers[0].Name {
		t.Fatalf("expected layer name %q, got %q", testLayers[0].Name, got)
	}
	if props[0].ImplementationVersion != 3 {
		t.Fatalf("implementation version not carried through")
	}
	if props[0].SpecVersion != testLayers[0].SpecVersion.VKVersion() {
		t.Fatalf("spec version not carried through")
	}
}

func TestEnumerateLayerPropertiesTruncation(t *testing.T) {
	two := append([]LayerInfo{}, testLayers...)
	two = append(two, LayerInfo{Name: "VK_LAYER_TEST_beta"})

	count := uint32(1)
	props := make([]vk.LayerProperties, 1)
	if res := EnumerateLayerProperties(two, &count, props); res != vk.Incomplete {
		t.Fatalf("expected incomplete on truncation, got %d", res)
	}
	if count != 1 {
		t.Fatalf("truncated count should be 1, got %d", count)
	}
}

func TestEnumerateExtensionProperties(t *testing.T) {
	count := uint32(99)
	if res := EnumerateExtensionProperties(&count, nil); res != vk.Success {
		t.Fatalf("extension query failed: %d", res)
	}
	if count != 0 {
		t.Fatalf("expected zero extensions, got %d", count)
	}
}

func TestLayerInfoPropertiesTruncatesLongStrings(t *testing.T) {
	long := LayerInfo{Name: string(bytes.Repeat([]byte{'x'}, 400))}
	p := long.Properties()
	if p.LayerName[len(p.LayerName)-1] != 0 {
		t.Fatalf("overlong name not NUL terminated")
	}
}
