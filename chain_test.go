package vklayers_test

import (
	"testing"

	vk "github.com/vulkan-go/vulkan"

	"github.com/celer/vklayers"
	"github.com/celer/vklayers/internal/fakedriver"
)

func TestCreateInstanceThroughChain(t *testing.T) {
	driver := fakedriver.New()
	reg := vklayers.NewRegistry()

	info := &vklayers.InstanceCreateInfo{
		Next: &vklayers.LayerInstanceCreateInfo{
			Function: vklayers.LayerLinkInfo,
			Layer:    driver.InstanceLink(),
		},
		ApplicationName: "chain-test",
	}

	var instance vk.Instance
	rec, res := vklayers.CreateInstanceThroughChain(reg, info, &instance)
	if res != vk.Success {
		t.Fatalf("create through chain failed: %d", res)
	}
	if rec == nil || rec.Instance != instance {
		t.Fatalf("record does not carry the created instance")
	}
	if driver.CreateInstanceCalls != 1 {
		t.Fatalf("driver saw %d creates, expected 1", driver.CreateInstanceCalls)
	}
	if found := reg.FindInstance(instance); found != rec {
		t.Fatalf("registry does not resolve the new instance to its record")
	}

	// The physical devices of that instance resolve to the same record
	// through the shared dispatch word.
	if found := reg.FindInstanceFor(driver.PhysicalDevice()); found != rec {
		t.Fatalf("physical device did not resolve to the instance record")
	}
}

func TestCreateInstanceChainAdvancesOnce(t *testing.T) {
	driver := fakedriver.New()
	reg := vklayers.NewRegistry()

	// Two links: a stand-in for a lower layer, then the driver. After
	// one create the head must point at the driver's link.
	tail := driver.InstanceLink()
	linkInfo := &vklayers.LayerInstanceCreateInfo{
		Function: vklayers.LayerLinkInfo,
		Layer: &vklayers.LayerInstanceLink{
			Next:                tail,
			GetInstanceProcAddr: driver.GetInstanceProcAddr,
		},
	}
	info := &vklayers.InstanceCreateInfo{Next: linkInfo}

	var instance vk.Instance
	if _, res := vklayers.CreateInstanceThroughChain(reg, info, &instance); res != vk.Success {
		t.Fatalf("create through chain failed: %d", res)
	}
	if linkInfo.Layer != tail {
		t.Fatalf("chain head not advanced to the next link")
	}
}

func TestCreateInstanceMissingLinkInfo(t *testing.T) {
	driver := fakedriver.New()
	reg := vklayers.NewRegistry()

	cases := []struct {
		name string
		next any
	}{
		{"no chain", nil},
		{"wrong function", &vklayers.LayerInstanceCreateInfo{
			Function: vklayers.LoaderDataCallback,
			Layer:    driver.InstanceLink(),
		}},
		{"nil link", &vklayers.LayerInstanceCreateInfo{Function: vklayers.LayerLinkInfo}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := &vklayers.InstanceCreateInfo{Next: tc.next}
			var instance vk.Instance
			_, res := vklayers.CreateInstanceThroughChain(reg, info, &instance)
			if res != vk.ErrorInitializationFailed {
				t.Fatalf("expected initialization failure, got %d", res)
			}
		})
	}
	if driver.CreateInstanceCalls != 0 {
		t.Fatalf("malformed chain still reached the driver")
	}
}

func TestCreateDeviceThroughChain(t *testing.T) {
	driver := fakedriver.New(vk.QueueFamilyProperties{QueueCount: 2})
	reg := vklayers.NewRegistry()

	var instance vk.Instance
	instInfo := &vklayers.InstanceCreateInfo{
		Next: &vklayers.LayerInstanceCreateInfo{
			Function: vklayers.LayerLinkInfo,
			Layer:    driver.InstanceLink(),
		},
	}
	if _, res := vklayers.CreateInstanceThroughChain(reg, instInfo, &instance); res != vk.Success {
		t.Fatalf("instance create failed: %d", res)
	}

	devInfo := &vklayers.DeviceCreateInfo{
		Next: &vklayers.LayerDeviceCreateInfo{
			Function: vklayers.LayerLinkInfo,
			Layer:    driver.DeviceLink(),
		},
		QueueCreateInfos: []vk.DeviceQueueCreateInfo{{QueueCount: 1}},
	}
	var device vk.Device
	rec, res := vklayers.CreateDeviceThroughChain(reg, driver.PhysicalDevice(), devInfo, &device)
	if res != vk.Success {
		t.Fatalf("device create failed: %d", res)
	}
	if rec.Device != device || rec.Instance == nil {
		t.Fatalf("device record incomplete")
	}
	if found := reg.FindDevice(device); found != rec {
		t.Fatalf("registry does not resolve the new device")
	}
	if driver.CreateDeviceCalls != 1 {
		t.Fatalf("driver saw %d device creates, expected 1", driver.CreateDeviceCalls)
	}
}

func TestCreateDeviceUnknownPhysicalDevice(t *testing.T) {
	driver := fakedriver.New()
	reg := vklayers.NewRegistry()

	devInfo := &vklayers.DeviceCreateInfo{
		Next: &vklayers.LayerDeviceCreateInfo{
			Function: vklayers.LayerLinkInfo,
			Layer:    driver.DeviceLink(),
		},
	}
	var device vk.Device
	_, res := vklayers.CreateDeviceThroughChain(reg, driver.PhysicalDevice(), devInfo, &device)
	if res != vk.ErrorInitializationFailed {
		t.Fatalf("expected initialization failure for unknown physical device, got %d", res)
	}
	if driver.CreateDeviceCalls != 0 {
		t.Fatalf("create reached the driver without an instance record")
	}
}
