package vklayers

import (
	vk "github.com/vulkan-go/vulkan"
)

// LayerFunction discriminates what a linkage node in a create-info
// chain carries. Layers only consume link info; the loader data
// callback variant exists so unrelated nodes are skipped rather than
// misread.
type LayerFunction int32

const (
	LayerLinkInfo LayerFunction = iota
	LoaderDataCallback
)

// LayerInstanceLink is one element of the loader's chain of
// instance-level getters. Each layer consumes the head and forwards
// the tail.
type LayerInstanceLink struct {
	Next                *LayerInstanceLink
	GetInstanceProcAddr GetInstanceProcAddrFunc
}

// LayerDeviceLink is the device-level counterpart; it carries both
// getters because resolving vkCreateDevice itself goes through the
// instance getter.
type LayerDeviceLink struct {
	Next                *LayerDeviceLink
	GetInstanceProcAddr GetInstanceProcAddrFunc
	GetDeviceProcAddr   GetDeviceProcAddrFunc
}

// LayerInstanceCreateInfo is the linkage node the loader threads onto
// InstanceCreateInfo.Next.
type LayerInstanceCreateInfo struct {
	Next     any
	Function LayerFunction
	Layer    *LayerInstanceLink
}

// LayerDeviceCreateInfo is the linkage node threaded onto
// DeviceCreateInfo.Next.
type LayerDeviceCreateInfo struct {
	Next     any
	Function LayerFunction
	Layer    *LayerDeviceLink
}

// ChainNode is implemented by extension structures that participate
// in a create-info Next chain; a node the walker cannot advance past
// ends the walk.
type ChainNode interface {
	NextNode() any
}

func (c *LayerInstanceCreateInfo) NextNode() any { return c.Next }
func (c *LayerDeviceCreateInfo) NextNode() any   { return c.Next }

func findInstanceLinkInfo(chain any) *LayerInstanceCreateInfo {
	for node := chain; node != nil; {
		if ci, ok := node.(*LayerInstanceCreateInfo); ok && ci.Function == LayerLinkInfo {
			return ci
		}
		next, ok := node.(ChainNode)
		if !ok {
			return nil
		}
		node = next.NextNode()
	}
	return nil
}

func findDeviceLinkInfo(chain any) *LayerDeviceCreateInfo {
	for node := chain; node != nil; {
		if ci, ok := node.(*LayerDeviceCreateInfo); ok && ci.Function == LayerLinkInfo {
			return ci
		}
		next, ok := node.(ChainNode)
		if !ok {
			return nil
		}
		node = next.NextNode()
	}
	return nil
}

// CreateInstanceThroughChain performs the layer protocol for
// vkCreateInstance: locate the linkage node, capture the next-layer
// getter, advance the chain exactly once, forward the create, and on
// success build the record and register it under the new handle's
// dispatch key.
//
// A missing or malformed linkage node aborts with
// vk.ErrorInitializationFailed before any downstream call; no record
// is allocated and the caller's chain is left untouched.
func CreateInstanceThroughChain(reg *Registry, info *InstanceCreateInfo, instance *vk.Instance) (*InstanceRecord, vk.Result) {
	ci := findInstanceLinkInfo(info.Next)
	if ci == nil || ci.Layer == nil || ci.Layer.GetInstanceProcAddr == nil {
		return nil, vk.ErrorInitializationFailed
	}
	gpa := ci.Layer.GetInstanceProcAddr
	ci.Layer = ci.Layer.Next

	create, ok := gpa(nil, "vkCreateInstance").(CreateInstanceFunc)
	if !ok {
		return nil, vk.ErrorInitializationFailed
	}
	if res := create(info, instance); res != vk.Success {
		return nil, res
	}

	rec := &InstanceRecord{
		Instance: *instance,
		Dispatch: NewInstanceDispatch(*instance, gpa),
	}
	reg.AddInstance(rec)
	return rec, vk.Success
}

// CreateDeviceThroughChain is the device-side twin. The instance
// record is found through the physical device, which shares the
// instance's dispatch key. The caller passes the create info it wants
// forwarded, which may differ from what the application supplied.
func CreateDeviceThroughChain(reg *Registry, physicalDevice vk.PhysicalDevice, info *DeviceCreateInfo, device *vk.Device) (*DeviceRecord, vk.Result) {
	inst := reg.FindInstanceFor(physicalDevice)
	if inst == nil {
		return nil, vk.ErrorInitializationFailed
	}
	ci := findDeviceLinkInfo(info.Next)
	if ci == nil || ci.Layer == nil || ci.Layer.GetInstanceProcAddr == nil || ci.Layer.GetDeviceProcAddr == nil {
		return nil, vk.ErrorInitializationFailed
	}
	gipa := ci.Layer.GetInstanceProcAddr
	gdpa := ci.Layer.GetDeviceProcAddr
	ci.Layer = ci.Layer.Next

	create, ok := gipa(inst.Instance, "vkCreateDevice").(CreateDeviceFunc)
	if !ok {
		return nil, vk.ErrorInitializationFailed
	}
	if res := create(physicalDevice, info, device); res != vk.Success {
		return nil, res
	}

	rec := &DeviceRecord{
		Device:   *device,
		Instance: inst,
		Dispatch: NewDeviceDispatch(*device, gdpa),
	}
	reg.AddDevice(rec)
	return rec, vk.Success
}
