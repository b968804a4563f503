package vklayers

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// Version is used to specify versions of components.
type Version struct {
	Major int
	Minor int
	Patch int
}

// VKVersion returns a Vulkan compatible version representation.
func (v Version) VKVersion() uint32 {
	return vk.MakeVersion(v.Major, v.Minor, v.Patch)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// LayerInfo is what a layer reports through the enumeration surface:
// its canonical name, the API version it was written against, an
// implementation revision, and a human-readable description.
type LayerInfo struct {
	Name                  string
	SpecVersion           Version
	ImplementationVersion uint32
	Description           string
}

// Properties renders the metadata as a vk.LayerProperties for callers
// that speak the Vulkan enumeration types. Strings are truncated to
// the ABI's fixed fields, NUL terminated.
func (l LayerInfo) Properties() vk.LayerProperties {
	var p vk.LayerProperties
	copyTruncated(p.LayerName[:], l.Name)
	copyTruncated(p.Description[:], l.Description)
	p.SpecVersion = l.SpecVersion.VKVersion()
	p.ImplementationVersion = l.ImplementationVersion
	return p
}

func copyTruncated(dst []byte, s string) {
	n := copy(dst, s)
	if n == len(dst) {
		n--
	}
	dst[n] = 0
}
