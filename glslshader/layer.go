// Package glslshader implements VK_LAYER_OCULUS_glsl_shader, an
// intercepting layer that compiles shader source carried in a tagged
// SPIR-V container at vkCreateShaderModule time and hands the driver
// the resulting SPIR-V instead. Payloads that are not tagged
// containers, genuine SPIR-V included, pass through untouched.
package glslshader

import (
	"log/slog"

	vk "github.com/vulkan-go/vulkan"

	"github.com/celer/vklayers"
	"github.com/celer/vklayers/glslang"
	"github.com/celer/vklayers/metrics"
)

// LayerName is the canonical name applications use to enable the
// layer.
const LayerName = "VK_LAYER_OCULUS_glsl_shader"

var layerInfo = vklayers.LayerInfo{
	Name:                  LayerName,
	SpecVersion:           vklayers.Version{Major: 1, Minor: 0, Patch: 0},
	ImplementationVersion: 1,
	Description:           "Compiles GLSL in tagged SPIR-V containers at shader module creation",
}

// Options configure a Layer. The zero value works: default settings,
// the pure-Go naga back-end, a logger built from the settings.
type Options struct {
	Settings vklayers.Settings
	Compiler glslang.Compiler
	Logger   *slog.Logger
}

// Layer is one loaded copy of the shader layer. It holds its own
// registry; two layers in a chain never share per-handle state.
type Layer struct {
	registry *vklayers.Registry
	compiler glslang.Compiler
	// limits is fixed at construction; every compile runs under the
	// same set.
	limits glslang.ResourceLimits
	log    *slog.Logger
	stats  *metrics.Metrics
}

func New(opts Options) *Layer {
	settings := opts.Settings.WithDefaults()
	l := &Layer{
		registry: vklayers.NewRegistry(),
		compiler: opts.Compiler,
		limits:   glslang.DefaultResourceLimits,
		log:      opts.Logger,
	}
	if l.compiler == nil {
		l.compiler = glslang.NewNagaCompiler()
	}
	if l.log == nil {
		l.log = vklayers.NewLogger(settings)
	}
	if settings.EnableMetrics {
		l.stats = metrics.New()
	}
	return l
}

func (l *Layer) Info() vklayers.LayerInfo { return layerInfo }

// EnumerateInstanceLayerProperties reports the layer's metadata.
func (l *Layer) EnumerateInstanceLayerProperties(count *uint32, properties []vk.LayerProperties) vk.Result {
	return vklayers.EnumerateLayerProperties([]vklayers.LayerInfo{layerInfo}, count, properties)
}

// EnumerateDeviceLayerProperties reports the same metadata at device
// level.
func (l *Layer) EnumerateDeviceLayerProperties(physicalDevice vk.PhysicalDevice, count *uint32, properties []vk.LayerProperties) vk.Result {
	return vklayers.EnumerateLayerProperties([]vklayers.LayerInfo{layerInfo}, count, properties)
}

// EnumerateInstanceExtensionProperties reports no extensions.
func (l *Layer) EnumerateInstanceExtensionProperties(layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result {
	return vklayers.EnumerateExtensionProperties(count, properties)
}

// EnumerateDeviceExtensionProperties reports no extensions.
func (l *Layer) EnumerateDeviceExtensionProperties(physicalDevice vk.PhysicalDevice, layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result {
	return vklayers.EnumerateExtensionProperties(count, properties)
}

// GetInstanceProcAddr returns the layer's hook for the names it
// intercepts and forwards everything else down the chain.
func (l *Layer) GetInstanceProcAddr(instance vk.Instance, name string) vklayers.ProcAddr {
	switch name {
	case "vkGetInstanceProcAddr":
		return vklayers.GetInstanceProcAddrFunc(l.GetInstanceProcAddr)
	case "vkGetDeviceProcAddr":
		return vklayers.GetDeviceProcAddrFunc(l.GetDeviceProcAddr)
	case "vkCreateInstance":
		return vklayers.CreateInstanceFunc(l.createInstance)
	case "vkDestroyInstance":
		return vklayers.DestroyInstanceFunc(l.destroyInstance)
	case "vkCreateDevice":
		return vklayers.CreateDeviceFunc(l.createDevice)
	case "vkEnumerateInstanceLayerProperties":
		return vklayers.EnumerateInstanceLayerPropertiesFunc(l.EnumerateInstanceLayerProperties)
	case "vkEnumerateInstanceExtensionProperties":
		return vklayers.EnumerateInstanceExtensionPropertiesFunc(l.EnumerateInstanceExtensionProperties)
	case "vkEnumerateDeviceLayerProperties":
		return vklayers.EnumerateDeviceLayerPropertiesFunc(l.EnumerateDeviceLayerProperties)
	case "vkEnumerateDeviceExtensionProperties":
		return vklayers.EnumerateDeviceExtensionPropertiesFunc(l.EnumerateDeviceExtensionProperties)
	}
	if instance == nil {
		return nil
	}
	rec := l.registry.FindInstance(instance)
	if rec == nil {
		return nil
	}
	return rec.Dispatch.GetInstanceProcAddr(instance, name)
}

// GetDeviceProcAddr is the device-level lookup.
func (l *Layer) GetDeviceProcAddr(device vk.Device, name string) vklayers.ProcAddr {
	switch name {
	case "vkGetDeviceProcAddr":
		return vklayers.GetDeviceProcAddrFunc(l.GetDeviceProcAddr)
	case "vkCreateShaderModule":
		return vklayers.CreateShaderModuleFunc(l.createShaderModule)
	case "vkDestroyDevice":
		return vklayers.DestroyDeviceFunc(l.destroyDevice)
	}
	if device == nil {
		return nil
	}
	rec := l.registry.FindDevice(device)
	if rec == nil {
		return nil
	}
	return rec.Dispatch.GetDeviceProcAddr(device, name)
}

func (l *Layer) createInstance(info *vklayers.InstanceCreateInfo, instance *vk.Instance) vk.Result {
	rec, res := vklayers.CreateInstanceThroughChain(l.registry, info, instance)
	if res != vk.Success {
		l.log.Warn("instance creation failed", "layer", LayerName, "result", res)
		return res
	}
	l.log.Debug("instance created", "layer", LayerName, "instance", rec.Instance)
	return vk.Success
}

func (l *Layer) destroyInstance(instance vk.Instance) {
	rec := l.registry.FindInstance(instance)
	if rec == nil {
		return
	}
	rec.Dispatch.DestroyInstance(instance)
	l.registry.RemoveInstance(instance)
}

func (l *Layer) createDevice(physicalDevice vk.PhysicalDevice, info *vklayers.DeviceCreateInfo, device *vk.Device) vk.Result {
	_, res := vklayers.CreateDeviceThroughChain(l.registry, physicalDevice, info, device)
	return res
}

func (l *Layer) destroyDevice(device vk.Device) {
	rec := l.registry.FindDevice(device)
	if rec == nil {
		return
	}
	rec.Dispatch.DestroyDevice(device)
	l.registry.RemoveDevice(device)
}

// createShaderModule substitutes compiled SPIR-V for a recognised
// container and forwards everything else verbatim. A back-end failure
// surfaces as an invalid-shader error without touching the driver.
func (l *Layer) createShaderModule(device vk.Device, info *vk.ShaderModuleCreateInfo, module *vk.ShaderModule) vk.Result {
	rec := l.registry.FindDevice(device)
	if rec == nil {
		return vk.ErrorInitializationFailed
	}

	container, ok := ParseContainer(info)
	if !ok {
		if l.stats != nil {
			l.stats.ShaderModules.WithLabelValues("passthrough").Inc()
		}
		return rec.Dispatch.CreateShaderModule(device, info, module)
	}

	stage, ok := glslang.StageFromFlagBits(container.Stage)
	if !ok {
		l.log.Warn("tagged shader container carries unknown stage",
			"layer", LayerName, "stage", uint32(container.Stage))
		if l.stats != nil {
			l.stats.ShaderModules.WithLabelValues("failed").Inc()
		}
		return vk.ErrorInvalidShaderNv
	}

	words, err := l.compiler.Compile(container.Source, stage, l.limits)
	if err != nil {
		l.log.Warn("shader compilation failed", "layer", LayerName,
			"stage", stage, "error", err)
		if l.stats != nil {
			l.stats.ShaderModules.WithLabelValues("failed").Inc()
		}
		return vk.ErrorInvalidShaderNv
	}

	l.log.Debug("shader compiled", "layer", LayerName, "stage", stage,
		"source_bytes", len(container.Source), "spirv_words", len(words))
	if l.stats != nil {
		l.stats.ShaderModules.WithLabelValues("compiled").Inc()
	}

	compiled := vk.ShaderModuleCreateInfo{
		SType:    info.SType,
		Flags:    info.Flags,
		CodeSize: uint(4 * len(words)),
		PCode:    words,
	}
	return rec.Dispatch.CreateShaderModule(device, &compiled, module)
}
