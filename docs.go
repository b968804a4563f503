/*
Package vklayers implements the shared machinery for a pair of Vulkan
intercepting layers: VK_LAYER_OCULUS_glsl_shader, which compiles GLSL
carried inside a tagged SPIR-V container at vkCreateShaderModule time,
and VK_LAYER_OCULUS_queue_muxer, which lets applications request more
device queues than the driver exposes by folding the excess onto the
last physical queue.

A layer sits in the dispatch chain between the application and the
native driver. It presents the driver's call surface to whoever is
above it, and for every live instance and device it holds a dispatch
table of the next layer's functions, captured once at creation. Calls
the layer does not care about are forwarded through that table
untouched; the handful it does care about are observed and may rewrite
their inputs or outputs before forwarding.

This package provides the pieces both layers share: the hash-indexed
registry mapping handles to per-handle records, the dispatch tables
and the string-keyed procedure resolution that fills them, the
create-call chain plumbing that locates the next layer's getters, the
layer metadata enumeration surface, and settings/logging. The layers
themselves live in the glslshader and queuemuxer subpackages; the
format translation tables, the KTX container reader, the base64
utilities and the shader compiler boundary are the format, ktx,
base64 and glslang subpackages.

Handles, results and the structures that cross the layer boundary are
the types of github.com/vulkan-go/vulkan. The loader linkage
structures (LayerInstanceCreateInfo and friends) are defined here
because they belong to the layer protocol rather than to the core API,
and no Go binding carries them.

A function pointer in the C ABI becomes a typed Go func value here.
GetInstanceProcAddr and GetDeviceProcAddr return ProcAddr (an untyped
value); callers assert it to the named PFN type, which is the Go
rendering of casting PFN_vkVoidFunction to the right signature.
*/
package vklayers
