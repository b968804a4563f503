package vklayers

import (
	vk "github.com/vulkan-go/vulkan"
)

// EnumerateLayerProperties implements the count/array query protocol
// for a layer's own metadata. With a nil output slice only the count
// is written; with a slice, up to *count entries are filled and
// vk.Incomplete reports truncation. The same function serves the
// instance-level and device-level enumerations, which return
// identical metadata for a single layer.
func EnumerateLayerProperties(layers []LayerInfo, count *uint32, properties []vk.LayerProperties) vk.Result {
	if properties == nil {
		*count = uint32(len(layers))
		return vk.Success
	}
	n := len(layers)
	if int(*count) < n {
		n = int(*count)
	}
	for i := 0; i < n; i++ {
		properties[i] = layers[i].Properties()
	}
	*count = uint32(n)
	if n < len(layers) {
		return vk.Incomplete
	}
	return vk.Success
}

// EnumerateExtensionProperties reports the layer's extension set,
// which is empty for both layers in this module.
func EnumerateExtensionProperties(count *uint32, properties []vk.ExtensionProperties) vk.Result {
	*count = 0
	return vk.Success
}
