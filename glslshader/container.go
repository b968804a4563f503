package glslshader

import (
	vk "github.com/vulkan-go/vulkan"

	"github.com/celer/vklayers/glslang"
)

// A tagged GLSL container rides inside an ordinary shader-module
// payload. Word 0 is the SPIR-V magic and word 1 is zero; zero is
// never a valid SPIR-V version word, so real SPIR-V can never be
// mistaken for a container. Word 2 is a single-bit
// VkShaderStageFlagBits value and the remaining bytes are UTF-8
// shader source.
const (
	spirvMagic     = 0x07230203
	containerWords = 3
)

// Container is the decoded form of a tagged payload.
type Container struct {
	Stage  vk.ShaderStageFlagBits
	Source []byte
}

// ParseContainer recognises a tagged payload in a shader-module
// create info. Anything it does not recognise, including genuine
// SPIR-V, reports false and must be forwarded unchanged.
func ParseContainer(info *vk.ShaderModuleCreateInfo) (Container, bool) {
	size := int(info.CodeSize)
	if size < 4*containerWords || size%4 != 0 {
		return Container{}, false
	}
	words := info.PCode
	if 4*len(words) < size {
		return Container{}, false
	}
	if words[0] != spirvMagic || words[1] != 0 {
		return Container{}, false
	}
	source := glslang.WordsToBytes(words[containerWords : size/4])
	return Container{
		Stage:  vk.ShaderStageFlagBits(words[2]),
		Source: source,
	}, true
}
