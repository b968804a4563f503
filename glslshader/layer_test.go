package glslshader_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"

	"github.com/celer/vklayers"
	"github.com/celer/vklayers/glslang"
	"github.com/celer/vklayers/glslshader"
	"github.com/celer/vklayers/internal/fakedriver"
)

// stubCompiler records what it was asked to compile and returns a
// canned word stream.
type stubCompiler struct {
	source []byte
	stage  glslang.Stage
	limits []glslang.ResourceLimits
	calls  int
	out    []uint32
	err    error
}

func (c *stubCompiler) Compile(source []byte, stage glslang.Stage, limits glslang.ResourceLimits) ([]uint32, error) {
	c.calls++
	c.source = append([]byte(nil), source...)
	c.stage = stage
	c.limits = append(c.limits, limits)
	if c.err != nil {
		return nil, c.err
	}
	return c.out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setup runs the layer's own create-instance and create-device hooks
// over a fake driver and returns the handle needed for shader calls.
func setup(t *testing.T, compiler glslang.Compiler) (*glslshader.Layer, *fakedriver.Driver, vk.Device) {
	t.Helper()
	driver := fakedriver.New(vk.QueueFamilyProperties{QueueCount: 1})
	layer := glslshader.New(glslshader.Options{Compiler: compiler, Logger: discardLogger()})

	createInstance, ok := layer.GetInstanceProcAddr(nil, "vkCreateInstance").(vklayers.CreateInstanceFunc)
	require.True(t, ok)
	var instance vk.Instance
	res := createInstance(&vklayers.InstanceCreateInfo{
		Next: &vklayers.LayerInstanceCreateInfo{
			Function: vklayers.LayerLinkInfo,
			Layer:    driver.InstanceLink(),
		},
	}, &instance)
	require.Equal(t, vk.Success, res)

	createDevice, ok := layer.GetInstanceProcAddr(nil, "vkCreateDevice").(vklayers.CreateDeviceFunc)
	require.True(t, ok)
	var device vk.Device
	res = createDevice(driver.PhysicalDevice(), &vklayers.DeviceCreateInfo{
		Next: &vklayers.LayerDeviceCreateInfo{
			Function: vklayers.LayerLinkInfo,
			Layer:    driver.DeviceLink(),
		},
		QueueCreateInfos: []vk.DeviceQueueCreateInfo{{QueueCount: 1}},
	}, &device)
	require.Equal(t, vk.Success, res)
	return layer, driver, device
}

func createShaderModuleHook(t *testing.T, layer *glslshader.Layer, device vk.Device) vklayers.CreateShaderModuleFunc {
	t.Helper()
	hook, ok := layer.GetDeviceProcAddr(device, "vkCreateShaderModule").(vklayers.CreateShaderModuleFunc)
	require.True(t, ok)
	return hook
}

// container builds a tagged payload: magic, zero, stage tag, then the
// source padded to a word boundary with newlines.
func container(t *testing.T, stageTag uint32, source string) *vk.ShaderModuleCreateInfo {
	t.Helper()
	payload := []byte(source)
	for len(payload)%4 != 0 {
		payload = append(payload, '\n')
	}
	data := append([]byte{0x03, 0x02, 0x23, 0x07, 0, 0, 0, 0,
		byte(stageTag), byte(stageTag >> 8), byte(stageTag >> 16), byte(stageTag >> 24)}, payload...)
	words, err := glslang.BytesToWords(data)
	require.NoError(t, err)
	return &vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(data)),
		PCode:    words,
	}
}

func TestTaggedContainerIsCompiled(t *testing.T) {
	compiled := []uint32{0x07230203, 0x00010000, 7, 0, 0}
	stub := &stubCompiler{out: compiled}
	layer, driver, device := setup(t, stub)
	create := createShaderModuleHook(t, layer, device)

	var module vk.ShaderModule
	res := create(device, container(t, uint32(vk.ShaderStageVertexBit), "void main(){}"), &module)
	require.Equal(t, vk.Success, res)

	require.Equal(t, 1, stub.calls)
	assert.Equal(t, glslang.StageVertex, stub.stage)
	assert.Equal(t, "void main(){}\n\n\n", string(stub.source))

	require.Len(t, driver.ForwardedShaderPayloads, 1)
	forwarded := driver.ForwardedShaderPayloads[0]
	assert.Equal(t, compiled, forwarded)
	// The driver saw a plausible SPIR-V stream, not a container.
	assert.Equal(t, uint32(0x07230203), forwarded[0])
	assert.NotZero(t, forwarded[1])
}

func TestEveryCompileRunsUnderFixedLimits(t *testing.T) {
	stub := &stubCompiler{out: []uint32{0x07230203, 0x00010000, 1}}
	layer, _, device := setup(t, stub)
	create := createShaderModuleHook(t, layer, device)

	var module vk.ShaderModule
	require.Equal(t, vk.Success, create(device, container(t, uint32(vk.ShaderStageVertexBit), "void main(){}"), &module))
	require.Equal(t, vk.Success, create(device, container(t, uint32(vk.ShaderStageComputeBit), "void main(){}"), &module))

	require.Len(t, stub.limits, 2)
	for _, limits := range stub.limits {
		assert.Equal(t, glslang.DefaultResourceLimits, limits)
	}
}

func TestGenuineSpirvPassesThrough(t *testing.T) {
	stub := &stubCompiler{out: []uint32{1}}
	layer, driver, device := setup(t, stub)
	create := createShaderModuleHook(t, layer, device)

	// Word 1 is a real version, so this is not a container.
	data := []byte{0x03, 0x02, 0x23, 0x07, 0x00, 0x00, 0x01, 0x00, 0x0b, 0x00, 0x00, 0x00}
	words, err := glslang.BytesToWords(data)
	require.NoError(t, err)
	info := &vk.ShaderModuleCreateInfo{CodeSize: uint(len(data)), PCode: words}

	var module vk.ShaderModule
	require.Equal(t, vk.Success, create(device, info, &module))

	assert.Zero(t, stub.calls)
	require.Len(t, driver.ForwardedShaderPayloads, 1)
	assert.Equal(t, words, driver.ForwardedShaderPayloads[0])
}

func TestShortPayloadPassesThrough(t *testing.T) {
	stub := &stubCompiler{}
	layer, driver, device := setup(t, stub)
	create := createShaderModuleHook(t, layer, device)

	info := &vk.ShaderModuleCreateInfo{CodeSize: 8, PCode: []uint32{0x07230203, 0}}
	var module vk.ShaderModule
	require.Equal(t, vk.Success, create(device, info, &module))
	assert.Zero(t, stub.calls)
	require.Len(t, driver.ForwardedShaderPayloads, 1)
}

func TestCompileFailureDoesNotReachDriver(t *testing.T) {
	stub := &stubCompiler{err: errors.New("syntax error")}
	layer, driver, device := setup(t, stub)
	create := createShaderModuleHook(t, layer, device)

	var module vk.ShaderModule
	res := create(device, container(t, uint32(vk.ShaderStageFragmentBit), "broken"), &module)
	assert.Equal(t, vk.ErrorInvalidShaderNv, res)
	assert.Empty(t, driver.ForwardedShaderPayloads)
}

func TestUnknownStageTagFails(t *testing.T) {
	stub := &stubCompiler{out: []uint32{1}}
	layer, driver, device := setup(t, stub)
	create := createShaderModuleHook(t, layer, device)

	// Two stage bits at once is not a valid tag.
	tag := uint32(vk.ShaderStageVertexBit | vk.ShaderStageFragmentBit)
	var module vk.ShaderModule
	res := create(device, container(t, tag, "void main(){}"), &module)
	assert.Equal(t, vk.ErrorInvalidShaderNv, res)
	assert.Zero(t, stub.calls)
	assert.Empty(t, driver.ForwardedShaderPayloads)
}

func TestUnknownDeviceFails(t *testing.T) {
	stub := &stubCompiler{}
	layer, _, device := setup(t, stub)
	create := createShaderModuleHook(t, layer, device)

	stranger := fakedriver.New().MintDevice()
	var module vk.ShaderModule
	res := create(stranger, container(t, uint32(vk.ShaderStageVertexBit), "x"), &module)
	assert.Equal(t, vk.ErrorInitializationFailed, res)
}

func TestLayerEnumeration(t *testing.T) {
	layer := glslshader.New(glslshader.Options{Logger: discardLogger()})

	var count uint32
	require.Equal(t, vk.Success, layer.EnumerateInstanceLayerProperties(&count, nil))
	require.Equal(t, uint32(1), count)

	props := make([]vk.LayerProperties, 1)
	require.Equal(t, vk.Success, layer.EnumerateInstanceLayerProperties(&count, props))
	assert.Contains(t, string(props[0].LayerName[:]), glslshader.LayerName)

	require.Equal(t, vk.Success, layer.EnumerateInstanceExtensionProperties("", &count, nil))
	assert.Zero(t, count)
}
