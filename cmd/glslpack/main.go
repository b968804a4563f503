// glslpack wraps GLSL source into the tagged container the
// VK_LAYER_OCULUS_glsl_shader layer recognises, or compiles it
// straight to SPIR-V with the same backend the layer uses.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/celer/vklayers/glslang"
)

var stageNames = map[string]glslang.Stage{
	"vertex":   glslang.StageVertex,
	"tessctrl": glslang.StageTessControl,
	"tesseval": glslang.StageTessEvaluation,
	"geometry": glslang.StageGeometry,
	"fragment": glslang.StageFragment,
	"compute":  glslang.StageCompute,
}

func main() {
	stageName := flag.String("stage", "vertex", "shader stage: vertex, tessctrl, tesseval, geometry, fragment, compute")
	output := flag.String("o", "", "output file (default: stdout)")
	compile := flag.Bool("compile", false, "emit compiled SPIR-V instead of a tagged container")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: glslpack [flags] <source.glsl>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	stage, ok := stageNames[*stageName]
	if !ok {
		fmt.Fprintf(os.Stderr, "glslpack: unknown stage %q\n", *stageName)
		os.Exit(2)
	}

	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "glslpack: %v\n", err)
		os.Exit(1)
	}

	var out []byte
	if *compile {
		words, err := glslang.NewNagaCompiler().Compile(source, stage, glslang.DefaultResourceLimits)
		if err != nil {
			fmt.Fprintf(os.Stderr, "glslpack: %v\n", err)
			os.Exit(1)
		}
		out = glslang.WordsToBytes(words)
	} else {
		out = pack(source, stage)
	}

	if *output == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			fmt.Fprintf(os.Stderr, "glslpack: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := os.WriteFile(*output, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "glslpack: %v\n", err)
		os.Exit(1)
	}
}

// pack builds the tagged container: the SPIR-V magic, a zero version
// word where no real module has one, the stage tag, then the source
// padded to a word boundary with newlines.
func pack(source []byte, stage glslang.Stage) []byte {
	padded := append([]byte(nil), source...)
	for len(padded)%4 != 0 {
		padded = append(padded, '\n')
	}
	out := make([]byte, 12+len(padded))
	binary.LittleEndian.PutUint32(out[0:], 0x07230203)
	binary.LittleEndian.PutUint32(out[4:], 0)
	binary.LittleEndian.PutUint32(out[8:], uint32(stage.FlagBits()))
	copy(out[12:], padded)
	return out
}
