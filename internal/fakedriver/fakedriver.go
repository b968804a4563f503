// Package fakedriver is a minimal in-process Vulkan driver for layer
// tests. It mints dispatchable handles whose first word is a real
// dispatch-table pointer, answers the queue-family and queue
// retrieval calls from a configured family list, and records
// everything forwarded to it so tests can assert on what reached the
// bottom of the chain.
package fakedriver

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"github.com/celer/vklayers"
)

// handleBlock backs a dispatchable handle: the first word is the
// dispatch-table pointer the loader ABI promises.
type handleBlock struct {
	dispatch uintptr
	_        [3]uintptr
}

type dispatchTable struct {
	_ [8]uintptr
}

type queueKey struct {
	family uint32
	index  uint32
}

// Driver is one fake driver instance.
type Driver struct {
	mu sync.Mutex

	table *dispatchTable // shared first word for all handles

	Families []vk.QueueFamilyProperties

	// Call records.
	CreateInstanceCalls     int
	CreateDeviceCalls       int
	ForwardedQueueInfos     [][]vk.DeviceQueueCreateInfo
	ForwardedQueueRequests  []QueueRequest
	ForwardedShaderPayloads [][]uint32

	// CreateShaderModuleResult overrides the result of forwarded
	// shader-module creations when non-success.
	CreateShaderModuleResult vk.Result

	// SubmitDelay stretches each forwarded submit so overlap, were
	// the layer to allow it, becomes observable.
	SubmitDelay time.Duration

	instance vk.Instance
	device   vk.Device
	queues   map[queueKey]vk.Queue

	activeSubmits  int32
	overlapped     atomic.Bool
	submitSequence []vk.Queue

	// Handle blocks are referenced only through vulkan-go handle
	// types, which are pointers to a cgo incomplete type the GC does
	// not trace. This slice is the Go-visible reference that keeps
	// every minted block alive.
	blocksMu sync.Mutex
	blocks   []*handleBlock
}

// QueueRequest is one forwarded vkGetDeviceQueue call.
type QueueRequest struct {
	Family uint32
	Index  uint32
}

func New(families ...vk.QueueFamilyProperties) *Driver {
	return &Driver{
		table:    &dispatchTable{},
		Families: families,
		queues:   map[queueKey]vk.Queue{},
	}
}

func (d *Driver) mintHandle() unsafe.Pointer {
	b := &handleBlock{dispatch: uintptr(unsafe.Pointer(d.table))}
	d.blocksMu.Lock()
	d.blocks = append(d.blocks, b)
	d.blocksMu.Unlock()
	return unsafe.Pointer(b)
}

// InstanceLink returns a chain terminated by this driver, as the
// loader would hand it to the bottom-most layer.
func (d *Driver) InstanceLink() *vklayers.LayerInstanceLink {
	return &vklayers.LayerInstanceLink{GetInstanceProcAddr: d.GetInstanceProcAddr}
}

// DeviceLink is the device-chain counterpart.
func (d *Driver) DeviceLink() *vklayers.LayerDeviceLink {
	return &vklayers.LayerDeviceLink{
		GetInstanceProcAddr: d.GetInstanceProcAddr,
		GetDeviceProcAddr:   d.GetDeviceProcAddr,
	}
}

// Instance returns the instance handle minted by the last create.
func (d *Driver) Instance() vk.Instance { return d.instance }

// PhysicalDevice mints the one physical device, sharing the
// instance's dispatch word.
func (d *Driver) PhysicalDevice() vk.PhysicalDevice {
	return vk.PhysicalDevice(d.mintHandle())
}

// MintDevice mints a device handle that went through no layer, for
// exercising lookups that must miss.
func (d *Driver) MintDevice() vk.Device {
	return vk.Device(d.mintHandle())
}

// MintQueue is MintDevice's queue counterpart.
func (d *Driver) MintQueue() vk.Queue {
	return vk.Queue(d.mintHandle())
}

// Overlapped reports whether two submits ever ran concurrently.
func (d *Driver) Overlapped() bool { return d.overlapped.Load() }

// SubmitSequence returns the queues of forwarded submits in driver
// order.
func (d *Driver) SubmitSequence() []vk.Queue {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]vk.Queue(nil), d.submitSequence...)
}

func (d *Driver) GetInstanceProcAddr(instance vk.Instance, name string) vklayers.ProcAddr {
	switch name {
	case "vkGetInstanceProcAddr":
		return vklayers.GetInstanceProcAddrFunc(d.GetInstanceProcAddr)
	case "vkGetDeviceProcAddr":
		return vklayers.GetDeviceProcAddrFunc(d.GetDeviceProcAddr)
	case "vkCreateInstance":
		return vklayers.CreateInstanceFunc(d.createInstance)
	case "vkDestroyInstance":
		return vklayers.DestroyInstanceFunc(func(vk.Instance) {})
	case "vkGetPhysicalDeviceQueueFamilyProperties":
		return vklayers.GetPhysicalDeviceQueueFamilyPropertiesFunc(d.getQueueFamilyProperties)
	case "vkCreateDevice":
		return vklayers.CreateDeviceFunc(d.createDevice)
	}
	return nil
}

func (d *Driver) GetDeviceProcAddr(device vk.Device, name string) vklayers.ProcAddr {
	switch name {
	case "vkGetDeviceProcAddr":
		return vklayers.GetDeviceProcAddrFunc(d.GetDeviceProcAddr)
	case "vkDestroyDevice":
		return vklayers.DestroyDeviceFunc(func(vk.Device) {})
	case "vkGetDeviceQueue":
		return vklayers.GetDeviceQueueFunc(d.getDeviceQueue)
	case "vkCreateShaderModule":
		return vklayers.CreateShaderModuleFunc(d.createShaderModule)
	case "vkDestroyShaderModule":
		return vklayers.DestroyShaderModuleFunc(func(vk.Device, vk.ShaderModule) {})
	case "vkQueueSubmit":
		return vklayers.QueueSubmitFunc(d.queueSubmit)
	case "vkQueueWaitIdle":
		return vklayers.QueueWaitIdleFunc(func(vk.Queue) vk.Result { return vk.Success })
	case "vkQueuePresentKHR":
		return vklayers.QueuePresentFunc(d.queuePresent)
	case "vkQueueBindSparse":
		return vklayers.QueueBindSparseFunc(d.queueBindSparse)
	}
	return nil
}

func (d *Driver) createInstance(info *vklayers.InstanceCreateInfo, instance *vk.Instance) vk.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.CreateInstanceCalls++
	d.instance = vk.Instance(d.mintHandle())
	*instance = d.instance
	return vk.Success
}

func (d *Driver) getQueueFamilyProperties(physicalDevice vk.PhysicalDevice, count *uint32, properties []vk.QueueFamilyProperties) {
	if properties == nil {
		*count = uint32(len(d.Families))
		return
	}
	n := copy(properties, d.Families)
	*count = uint32(n)
}

func (d *Driver) createDevice(physicalDevice vk.PhysicalDevice, info *vklayers.DeviceCreateInfo, device *vk.Device) vk.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.CreateDeviceCalls++
	infos := make([]vk.DeviceQueueCreateInfo, len(info.QueueCreateInfos))
	copy(infos, info.QueueCreateInfos)
	d.ForwardedQueueInfos = append(d.ForwardedQueueInfos, infos)
	d.device = vk.Device(d.mintHandle())
	*device = d.device
	return vk.Success
}

func (d *Driver) getDeviceQueue(device vk.Device, familyIndex, queueIndex uint32, queue *vk.Queue) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ForwardedQueueRequests = append(d.ForwardedQueueRequests, QueueRequest{familyIndex, queueIndex})
	key := queueKey{familyIndex, queueIndex}
	q, ok := d.queues[key]
	if !ok {
		q = vk.Queue(d.mintHandle())
		d.queues[key] = q
	}
	*queue = q
}

func (d *Driver) createShaderModule(device vk.Device, info *vk.ShaderModuleCreateInfo, module *vk.ShaderModule) vk.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	words := make([]uint32, len(info.PCode))
	copy(words, info.PCode)
	d.ForwardedShaderPayloads = append(d.ForwardedShaderPayloads, words)
	if d.CreateShaderModuleResult != vk.Success {
		return d.CreateShaderModuleResult
	}
	*module = vk.NullShaderModule
	return vk.Success
}

func (d *Driver) enterQueueOp(queue vk.Queue) {
	if atomic.AddInt32(&d.activeSubmits, 1) > 1 {
		d.overlapped.Store(true)
	}
	d.mu.Lock()
	d.submitSequence = append(d.submitSequence, queue)
	d.mu.Unlock()
	if d.SubmitDelay > 0 {
		time.Sleep(d.SubmitDelay)
	}
}

func (d *Driver) leaveQueueOp() {
	atomic.AddInt32(&d.activeSubmits, -1)
}

func (d *Driver) queueSubmit(queue vk.Queue, submits []vk.SubmitInfo, fence vk.Fence) vk.Result {
	d.enterQueueOp(queue)
	defer d.leaveQueueOp()
	return vk.Success
}

func (d *Driver) queuePresent(queue vk.Queue, info *vk.PresentInfo) vk.Result {
	d.enterQueueOp(queue)
	defer d.leaveQueueOp()
	return vk.Success
}

func (d *Driver) queueBindSparse(queue vk.Queue, binds []vk.BindSparseInfo, fence vk.Fence) vk.Result {
	d.enterQueueOp(queue)
	defer d.leaveQueueOp()
	return vk.Success
}
