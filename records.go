package vklayers

import (
	"sync"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// InstanceRecord is the per-instance state a layer keeps: the handle
// and the next-layer dispatch table captured at creation.
type InstanceRecord struct {
	Instance vk.Instance
	Dispatch *InstanceDispatch
}

// DeviceRecord is the per-device state. QueueFamilies is the driver's
// real queue-family properties snapshotted at device creation; it
// never changes for the life of the device. The mutex guards the
// device's queue records in the registry.
type DeviceRecord struct {
	Device        vk.Device
	Instance      *InstanceRecord
	Dispatch      *DeviceDispatch
	QueueFamilies []vk.QueueFamilyProperties

	mu sync.Mutex
}

func (d *DeviceRecord) Lock()   { d.mu.Lock() }
func (d *DeviceRecord) Unlock() { d.mu.Unlock() }

// RealQueueCount returns the driver's queue count for a family, 0 for
// an out-of-range index.
func (d *DeviceRecord) RealQueueCount(family uint32) uint32 {
	if int(family) >= len(d.QueueFamilies) {
		return 0
	}
	return d.QueueFamilies[family].QueueCount
}

// QueueRecord is created for every distinct queue handle the device
// ever returns. The mutex serialises per-queue operations: virtual
// queues fold onto one handle, so one lock is what keeps their
// submissions from overlapping downstream.
type QueueRecord struct {
	Queue  vk.Queue
	Device *DeviceRecord

	mu sync.Mutex
}

func (q *QueueRecord) Lock()   { q.mu.Lock() }
func (q *QueueRecord) Unlock() { q.mu.Unlock() }

// Registry holds one handle map per record kind for a layer.
// Instances and devices are keyed by dispatch key, so physical
// devices resolve to their instance and queues to their device;
// queue records are keyed by the queue handle itself.
type Registry struct {
	mu        sync.Mutex
	instances *HandleMap[InstanceRecord]
	devices   *HandleMap[DeviceRecord]

	queueMu sync.Mutex
	queues  *HandleMap[QueueRecord]
}

func NewRegistry() *Registry {
	return &Registry{
		instances: NewHandleMap[InstanceRecord](),
		devices:   NewHandleMap[DeviceRecord](),
		queues:    NewHandleMap[QueueRecord](),
	}
}

func (r *Registry) AddInstance(rec *InstanceRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances.Add(DispatchKey(unsafe.Pointer(rec.Instance)), rec)
}

func (r *Registry) RemoveInstance(instance vk.Instance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances.Remove(DispatchKey(unsafe.Pointer(instance)))
}

func (r *Registry) FindInstance(instance vk.Instance) *InstanceRecord {
	rec, _ := r.instances.Find(DispatchKey(unsafe.Pointer(instance)))
	return rec
}

// FindInstanceFor resolves a physical device to its instance record
// through the shared dispatch key.
func (r *Registry) FindInstanceFor(physicalDevice vk.PhysicalDevice) *InstanceRecord {
	rec, _ := r.instances.Find(DispatchKey(unsafe.Pointer(physicalDevice)))
	return rec
}

func (r *Registry) AddDevice(rec *DeviceRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices.Add(DispatchKey(unsafe.Pointer(rec.Device)), rec)
}

func (r *Registry) RemoveDevice(device vk.Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices.Remove(DispatchKey(unsafe.Pointer(device)))
}

func (r *Registry) FindDevice(device vk.Device) *DeviceRecord {
	rec, _ := r.devices.Find(DispatchKey(unsafe.Pointer(device)))
	return rec
}

// FindDeviceForQueue resolves a queue handle to its device record;
// queues carry their device's dispatch key in their first word.
func (r *Registry) FindDeviceForQueue(queue vk.Queue) *DeviceRecord {
	rec, _ := r.devices.Find(DispatchKey(unsafe.Pointer(queue)))
	return rec
}

// SeedQueue ensures a record exists for a queue handle, creating it
// on first sight. Callers hold the owning device's lock, which
// serialises creation; the map's own mutex covers the rare case of
// two devices seeding concurrently.
func (r *Registry) SeedQueue(dev *DeviceRecord, queue vk.Queue) *QueueRecord {
	key := HandleKey(unsafe.Pointer(queue))
	r.queueMu.Lock()
	defer r.queueMu.Unlock()
	if rec, ok := r.queues.Find(key); ok {
		return rec
	}
	rec := &QueueRecord{Queue: queue, Device: dev}
	r.queues.Add(key, rec)
	return rec
}

func (r *Registry) FindQueue(queue vk.Queue) *QueueRecord {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()
	rec, _ := r.queues.Find(HandleKey(unsafe.Pointer(queue)))
	return rec
}

// PurgeDeviceQueues drops, in a single pass, every queue record whose
// device back-pointer matches. Called from the device-destruction
// hook under the device lock.
func (r *Registry) PurgeDeviceQueues(dev *DeviceRecord) {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()
	var keys []uintptr
	r.queues.Walk(func(key uintptr, rec *QueueRecord) bool {
		if rec.Device == dev {
			keys = append(keys, key)
		}
		return true
	})
	for _, key := range keys {
		r.queues.Remove(key)
	}
}
