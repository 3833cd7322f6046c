// Command obj2buf reads a wavefront-style mesh from a file or stdin and
// writes the assembled vertex and index buffers as two JS array literals.
//
// usage: obj2buf [flags] [input.obj] [output.js]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/thedaneeffect/obj2buf"
)

var no_texture = flag.Bool("no-texture", false, "drop texture coordinates even when faces reference them")
var no_normal = flag.Bool("no-normal", false, "drop normals even when faces reference them")
var sort_depth = flag.Bool("sort", false, "reorder vertices by Z then X before emitting")
var cpu_profile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var mem_profile = flag.String("memprofile", "", "write memory profile to `file`")

func main() {
	log.SetFlags(0)
	log.SetPrefix("obj2buf: ")
	flag.Parse()

	if *cpu_profile != "" {
		f, err := os.Create(*cpu_profile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if *mem_profile != "" {
		defer func() {
			f, err := os.Create(*mem_profile)
			if err != nil {
				log.Fatal("could not create memory profile:", err)
			}
			defer f.Close()
			runtime.GC() // get up-to-date statistics
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatal("could not write memory profile:", err)
			}
		}()
	}

	input := os.Stdin
	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("could not open file %s: %v", path, err)
		}
		defer f.Close()
		input = f
	}

	mesh, err := obj2buf.Convert(input, obj2buf.Options{
		NoTexcoords: *no_texture,
		NoNormals:   *no_normal,
		Sort:        *sort_depth,
	})
	if err != nil {
		log.Fatal(err)
	}

	// The conversion is complete before the output is created, so a bad
	// input never leaves a truncated file behind.
	output := os.Stdout
	if path := flag.Arg(1); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("could not create file %s: %v", path, err)
		}
		defer f.Close()
		output = f
	}
	if err := emit(output, mesh); err != nil {
		log.Fatal(err)
	}
	if stride, ok := mesh.Stride(); ok {
		fmt.Fprintf(os.Stderr, "%d vertices, %d indices, stride %d\n", len(mesh.Verts), len(mesh.Indices), stride)
	} else {
		fmt.Fprintf(os.Stderr, "%d vertices, %d indices, mixed stride\n", len(mesh.Verts), len(mesh.Indices))
	}
}
