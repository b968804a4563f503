package vklayers

import (
	vk "github.com/vulkan-go/vulkan"
)

// ProcAddr is the Go rendering of PFN_vkVoidFunction: an opaque
// function value that the caller asserts to the named PFN type for
// the symbol it asked for. A nil ProcAddr means the symbol is not
// provided at this point in the chain.
type ProcAddr any

// Getter signatures for the two chain entry points.
type (
	GetInstanceProcAddrFunc func(instance vk.Instance, name string) ProcAddr
	GetDeviceProcAddrFunc   func(device vk.Device, name string) ProcAddr
)

// PFN types for every symbol the layers hook or forward through a
// dispatch table. The data structures are vulkan-go's; the create
// infos that must carry a Go pNext chain are defined in this package.
type (
	CreateInstanceFunc  func(info *InstanceCreateInfo, instance *vk.Instance) vk.Result
	DestroyInstanceFunc func(instance vk.Instance)

	EnumerateInstanceLayerPropertiesFunc     func(count *uint32, properties []vk.LayerProperties) vk.Result
	EnumerateInstanceExtensionPropertiesFunc func(layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result

	EnumeratePhysicalDevicesFunc               func(instance vk.Instance, count *uint32, devices []vk.PhysicalDevice) vk.Result
	GetPhysicalDeviceQueueFamilyPropertiesFunc func(physicalDevice vk.PhysicalDevice, count *uint32, properties []vk.QueueFamilyProperties)
	EnumerateDeviceExtensionPropertiesFunc     func(physicalDevice vk.PhysicalDevice, layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result
	EnumerateDeviceLayerPropertiesFunc         func(physicalDevice vk.PhysicalDevice, count *uint32, properties []vk.LayerProperties) vk.Result

	CreateDeviceFunc   func(physicalDevice vk.PhysicalDevice, info *DeviceCreateInfo, device *vk.Device) vk.Result
	DestroyDeviceFunc  func(device vk.Device)
	DeviceWaitIdleFunc func(device vk.Device) vk.Result

	GetDeviceQueueFunc func(device vk.Device, familyIndex, queueIndex uint32, queue *vk.Queue)

	CreateShaderModuleFunc  func(device vk.Device, info *vk.ShaderModuleCreateInfo, module *vk.ShaderModule) vk.Result
	DestroyShaderModuleFunc func(device vk.Device, module vk.ShaderModule)

	QueueSubmitFunc     func(queue vk.Queue, submits []vk.SubmitInfo, fence vk.Fence) vk.Result
	QueueWaitIdleFunc   func(queue vk.Queue) vk.Result
	QueuePresentFunc    func(queue vk.Queue, info *vk.PresentInfo) vk.Result
	QueueBindSparseFunc func(queue vk.Queue, binds []vk.BindSparseInfo, fence vk.Fence) vk.Result
)

// InstanceCreateInfo mirrors VkInstanceCreateInfo with a Go extension
// chain in Next.
type InstanceCreateInfo struct {
	Next any

	ApplicationName    string
	EngineName         string
	ApplicationVersion uint32
	EngineVersion      uint32
	APIVersion         uint32

	EnabledLayers     []string
	EnabledExtensions []string
}

// DeviceCreateInfo mirrors VkDeviceCreateInfo with a Go extension
// chain in Next.
type DeviceCreateInfo struct {
	Next any

	QueueCreateInfos  []vk.DeviceQueueCreateInfo
	EnabledLayers     []string
	EnabledExtensions []string
	EnabledFeatures   []vk.PhysicalDeviceFeatures
}

// InstanceDispatch is the bundle of next-layer instance functions,
// captured once when the instance is created and immutable after.
// Reads never need a lock.
type InstanceDispatch struct {
	GetInstanceProcAddr GetInstanceProcAddrFunc
	GetDeviceProcAddr   GetDeviceProcAddrFunc

	DestroyInstance                        DestroyInstanceFunc
	EnumeratePhysicalDevices               EnumeratePhysicalDevicesFunc
	GetPhysicalDeviceQueueFamilyProperties GetPhysicalDeviceQueueFamilyPropertiesFunc
	EnumerateDeviceExtensionProperties     EnumerateDeviceExtensionPropertiesFunc
	EnumerateDeviceLayerProperties         EnumerateDeviceLayerPropertiesFunc
	CreateDevice                           CreateDeviceFunc
}

// DeviceDispatch is the per-device counterpart of InstanceDispatch.
type DeviceDispatch struct {
	GetDeviceProcAddr GetDeviceProcAddrFunc

	DestroyDevice  DestroyDeviceFunc
	DeviceWaitIdle DeviceWaitIdleFunc
	GetDeviceQueue GetDeviceQueueFunc

	CreateShaderModule  CreateShaderModuleFunc
	DestroyShaderModule DestroyShaderModuleFunc

	QueueSubmit     QueueSubmitFunc
	QueueWaitIdle   QueueWaitIdleFunc
	QueuePresent    QueuePresentFunc
	QueueBindSparse QueueBindSparseFunc
}

// resolve looks up one symbol through a getter and keeps it only when
// the next layer returned a value of the expected PFN type. Symbols a
// driver does not implement (extension entry points, typically) stay
// nil in the table.
func resolve[F any](dst *F, get func(name string) ProcAddr, name string) {
	if fn, ok := get(name).(F); ok {
		*dst = fn
	}
}

// NewInstanceDispatch populates an instance table by iterating the
// known instance-level symbols through the captured next-layer getter.
func NewInstanceDispatch(instance vk.Instance, gpa GetInstanceProcAddrFunc) *InstanceDispatch {
	get := func(name string) ProcAddr { return gpa(instance, name) }
	t := &InstanceDispatch{GetInstanceProcAddr: gpa}
	resolve(&t.GetDeviceProcAddr, get, "vkGetDeviceProcAddr")
	resolve(&t.DestroyInstance, get, "vkDestroyInstance")
	resolve(&t.EnumeratePhysicalDevices, get, "vkEnumeratePhysicalDevices")
	resolve(&t.GetPhysicalDeviceQueueFamilyProperties, get, "vkGetPhysicalDeviceQueueFamilyProperties")
	resolve(&t.EnumerateDeviceExtensionProperties, get, "vkEnumerateDeviceExtensionProperties")
	resolve(&t.EnumerateDeviceLayerProperties, get, "vkEnumerateDeviceLayerProperties")
	resolve(&t.CreateDevice, get, "vkCreateDevice")
	return t
}

// NewDeviceDispatch populates a device table through the next-layer
// device getter.
func NewDeviceDispatch(device vk.Device, gdpa GetDeviceProcAddrFunc) *DeviceDispatch {
	get := func(name string) ProcAddr { return gdpa(device, name) }
	t := &DeviceDispatch{GetDeviceProcAddr: gdpa}
	resolve(&t.DestroyDevice, get, "vkDestroyDevice")
	resolve(&t.DeviceWaitIdle, get, "vkDeviceWaitIdle")
	resolve(&t.GetDeviceQueue, get, "vkGetDeviceQueue")
	resolve(&t.CreateShaderModule, get, "vkCreateShaderModule")
	resolve(&t.DestroyShaderModule, get, "vkDestroyShaderModule")
	resolve(&t.QueueSubmit, get, "vkQueueSubmit")
	resolve(&t.QueueWaitIdle, get, "vkQueueWaitIdle")
	resolve(&t.QueuePresent, get, "vkQueuePresentKHR")
	resolve(&t.QueueBindSparse, get, "vkQueueBindSparse")
	return t
}
