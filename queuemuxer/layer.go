// Package queuemuxer implements VK_LAYER_OCULUS_queue_muxer, an
// intercepting layer that virtualises device queues. A family the
// driver exposes with fewer queues than the advertised minimum is
// reported inflated; at device creation the request is clamped back
// to what the driver really has; queue retrievals beyond the real
// count fold onto the last physical queue; and every operation on a
// queue handle is serialised on a per-queue mutex, so submissions the
// application believed parallel stay functionally correct on the
// shared handle at the cost of parallelism.
//
// QueueBindSparse is wrapped along with submit, wait-idle and
// present: the layer cannot know whether a folded virtual queue will
// receive sparse binds, and a bind racing a submit on the shared real
// queue would break the single-queue ordering the fold relies on.
package queuemuxer

import (
	"log/slog"

	vk "github.com/vulkan-go/vulkan"

	"github.com/celer/vklayers"
	"github.com/celer/vklayers/metrics"
)

// LayerName is the canonical name applications use to enable the
// layer.
const LayerName = "VK_LAYER_OCULUS_queue_muxer"

var layerInfo = vklayers.LayerInfo{
	Name:                  LayerName,
	SpecVersion:           vklayers.Version{Major: 1, Minor: 0, Patch: 0},
	ImplementationVersion: 1,
	Description:           "Virtualises device queues beyond the driver's real per-family counts",
}

// Options configure a Layer; the zero value uses the defaults.
type Options struct {
	Settings vklayers.Settings
	Logger   *slog.Logger
}

// Layer is one loaded copy of the queue muxer.
type Layer struct {
	registry *vklayers.Registry
	minCount uint32
	log      *slog.Logger
	stats    *metrics.Metrics
}

func New(opts Options) *Layer {
	settings := opts.Settings.WithDefaults()
	l := &Layer{
		registry: vklayers.NewRegistry(),
		minCount: settings.MinQueueCount,
		log:      opts.Logger,
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

// MinQueueCount is the advertised per-family floor.
func (l *Layer) MinQueueCount() uint32 { return l.minCount }

func (l *Layer) EnumerateInstanceLayerProperties(count *uint32, properties []vk.LayerProperties) vk.Result {
	return vklayers.EnumerateLayerProperties([]vklayers.LayerInfo{layerInfo}, count, properties)
}

func (l *Layer) EnumerateDeviceLayerProperties(physicalDevice vk.PhysicalDevice, count *uint32, properties []vk.LayerProperties) vk.Result {
	return vklayers.EnumerateLayerProperties([]vklayers.LayerInfo{layerInfo}, count, properties)
}

func (l *Layer) EnumerateInstanceExtensionProperties(layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result {
	return vklayers.EnumerateExtensionProperties(count, properties)
}

func (l *Layer) EnumerateDeviceExtensionProperties(physicalDevice vk.PhysicalDevice, layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result {
	return vklayers.EnumerateExtensionProperties(count, properties)
}

// GetInstanceProcAddr returns the layer's hooks and forwards the rest.
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
	case "vkGetPhysicalDeviceQueueFamilyProperties":
		return vklayers.GetPhysicalDeviceQueueFamilyPropertiesFunc(l.getPhysicalDeviceQueueFamilyProperties)
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
	case "vkDestroyDevice":
		return vklayers.DestroyDeviceFunc(l.destroyDevice)
	case "vkGetDeviceQueue":
		return vklayers.GetDeviceQueueFunc(l.getDeviceQueue)
	case "vkQueueSubmit":
		return vklayers.QueueSubmitFunc(l.queueSubmit)
	case "vkQueueWaitIdle":
		return vklayers.QueueWaitIdleFunc(l.queueWaitIdle)
	case "vkQueuePresentKHR":
		return vklayers.QueuePresentFunc(l.queuePresent)
	case "vkQueueBindSparse":
		return vklayers.QueueBindSparseFunc(l.queueBindSparse)
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
	_, res := vklayers.CreateInstanceThroughChain(l.registry, info, instance)
	if res != vk.Success {
		l.log.Warn("instance creation failed", "layer", LayerName, "result", res)
	}
	return res
}

func (l *Layer) destroyInstance(instance vk.Instance) {
	rec := l.registry.FindInstance(instance)
	if rec == nil {
		return
	}
	rec.Dispatch.DestroyInstance(instance)
	l.registry.RemoveInstance(instance)
}

// getPhysicalDeviceQueueFamilyProperties forwards the query and, when
// the caller supplied an output array, raises each family's count to
// the advertised floor in place. Count-only queries pass through; the
// family count itself is never inflated.
func (l *Layer) getPhysicalDeviceQueueFamilyProperties(physicalDevice vk.PhysicalDevice, count *uint32, properties []vk.QueueFamilyProperties) {
	inst := l.registry.FindInstanceFor(physicalDevice)
	if inst == nil {
		return
	}
	inst.Dispatch.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, count, properties)
	if properties == nil {
		return
	}
	for i := range properties[:*count] {
		if properties[i].QueueCount < l.minCount {
			properties[i].QueueCount = l.minCount
		}
	}
}

// createDevice snapshots the driver's real queue-family properties,
// clamps every requested queue count down to them, and forwards a
// substituted create info. The snapshot lands on the device record
// only when creation succeeds.
func (l *Layer) createDevice(physicalDevice vk.PhysicalDevice, info *vklayers.DeviceCreateInfo, device *vk.Device) vk.Result {
	inst := l.registry.FindInstanceFor(physicalDevice)
	if inst == nil {
		return vk.ErrorInitializationFailed
	}

	var familyCount uint32
	inst.Dispatch.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, &familyCount, nil)
	families := make([]vk.QueueFamilyProperties, familyCount)
	inst.Dispatch.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, &familyCount, families)

	clamped := *info
	clamped.QueueCreateInfos = make([]vk.DeviceQueueCreateInfo, len(info.QueueCreateInfos))
	copy(clamped.QueueCreateInfos, info.QueueCreateInfos)
	for i := range clamped.QueueCreateInfos {
		qci := &clamped.QueueCreateInfos[i]
		if int(qci.QueueFamilyIndex) >= len(families) {
			continue
		}
		real := families[qci.QueueFamilyIndex].QueueCount
		if qci.QueueCount > real {
			l.log.Debug("clamping requested queue count", "layer", LayerName,
				"family", qci.QueueFamilyIndex, "requested", qci.QueueCount, "real", real)
			qci.QueueCount = real
			if len(qci.PQueuePriorities) > int(real) {
				qci.PQueuePriorities = qci.PQueuePriorities[:real]
			}
		}
	}

	rec, res := vklayers.CreateDeviceThroughChain(l.registry, physicalDevice, &clamped, device)
	if res != vk.Success {
		return res
	}
	rec.QueueFamilies = families
	return vk.Success
}

func (l *Layer) destroyDevice(device vk.Device) {
	rec := l.registry.FindDevice(device)
	if rec == nil {
		return
	}
	rec.Dispatch.DestroyDevice(device)
	rec.Lock()
	l.registry.PurgeDeviceQueues(rec)
	rec.Unlock()
	l.registry.RemoveDevice(device)
}

// getDeviceQueue folds a virtual index onto the last physical queue
// of its family and pre-seeds the record for the returned handle, so
// later per-queue operations find it without contention.
func (l *Layer) getDeviceQueue(device vk.Device, familyIndex, queueIndex uint32, queue *vk.Queue) {
	rec := l.registry.FindDevice(device)
	if rec == nil {
		return
	}
	if real := rec.RealQueueCount(familyIndex); real > 0 && queueIndex >= real {
		l.log.Debug("folding virtual queue", "layer", LayerName,
			"family", familyIndex, "virtual", queueIndex, "physical", real-1)
		queueIndex = real - 1
		if l.stats != nil {
			l.stats.QueueRetrievals.WithLabelValues("folded").Inc()
		}
	} else if l.stats != nil {
		l.stats.QueueRetrievals.WithLabelValues("direct").Inc()
	}

	rec.Dispatch.GetDeviceQueue(device, familyIndex, queueIndex, queue)
	if *queue == nil {
		return
	}
	rec.Lock()
	l.registry.SeedQueue(rec, *queue)
	rec.Unlock()
}

// queueRecord finds or lazily creates the record for a queue handle;
// a per-queue operation may arrive before any GetDeviceQueue when
// another layer handed the handle out.
func (l *Layer) queueRecord(queue vk.Queue) (*vklayers.QueueRecord, *vklayers.DeviceRecord) {
	dev := l.registry.FindDeviceForQueue(queue)
	if dev == nil {
		return nil, nil
	}
	if rec := l.registry.FindQueue(queue); rec != nil {
		return rec, dev
	}
	dev.Lock()
	rec := l.registry.SeedQueue(dev, queue)
	dev.Unlock()
	return rec, dev
}

// serialised runs one forwarded call under the per-queue lock. The
// lock covers exactly that call; downstream results are surfaced
// verbatim.
func (l *Layer) serialised(queue vk.Queue, op string, call func(*vklayers.DeviceRecord) vk.Result) vk.Result {
	rec, dev := l.queueRecord(queue)
	if rec == nil {
		return vk.ErrorDeviceLost
	}
	if l.stats != nil {
		l.stats.QueueOps.WithLabelValues(op).Inc()
	}
	rec.Lock()
	defer rec.Unlock()
	return call(dev)
}

func (l *Layer) queueSubmit(queue vk.Queue, submits []vk.SubmitInfo, fence vk.Fence) vk.Result {
	return l.serialised(queue, "submit", func(dev *vklayers.DeviceRecord) vk.Result {
		return dev.Dispatch.QueueSubmit(queue, submits, fence)
	})
}

func (l *Layer) queueWaitIdle(queue vk.Queue) vk.Result {
	return l.serialised(queue, "wait_idle", func(dev *vklayers.DeviceRecord) vk.Result {
		return dev.Dispatch.QueueWaitIdle(queue)
	})
}

func (l *Layer) queuePresent(queue vk.Queue, info *vk.PresentInfo) vk.Result {
	return l.serialised(queue, "present", func(dev *vklayers.DeviceRecord) vk.Result {
		return dev.Dispatch.QueuePresent(queue, info)
	})
}

func (l *Layer) queueBindSparse(queue vk.Queue, binds []vk.BindSparseInfo, fence vk.Fence) vk.Result {
	return l.serialised(queue, "bind_sparse", func(dev *vklayers.DeviceRecord) vk.Result {
		return dev.Dispatch.QueueBindSparse(queue, binds, fence)
	})
}
