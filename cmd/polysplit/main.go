// polysplit - PSLG-split, ear-attack polyhedron triangulator.
//
// Reads a polyhedron in OFF or glTF format, triangulates every face via
// the split/dedup/ear-attack pipeline, and writes the resulting triangle
// soup to an STL file or a GPU vertex buffer. Optionally renders an
// animated rotating view of the result to the terminal, and/or pipes its
// frames as packed RGB24 to an external video encoder process.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/solidgen/polysplit/pkg/faceio"
	"github.com/solidgen/polysplit/pkg/math3d"
	"github.com/solidgen/polysplit/pkg/model"
	"github.com/solidgen/polysplit/pkg/pslg"
	"github.com/solidgen/polysplit/pkg/render"
	"github.com/solidgen/polysplit/pkg/sink"
	"github.com/solidgen/polysplit/pkg/triangulate"
	"github.com/solidgen/polysplit/pkg/vec"
	"github.com/solidgen/polysplit/pkg/videopipe"
)

var (
	inPath     = flag.String("in", "", "input polyhedron file (.off, .gltf, .glb)")
	format     = flag.String("format", "", "input format override: off or gltf (default: guess from extension)")
	outPath    = flag.String("out", "", "output file for the sink (empty: no sink output is written)")
	sinkKind   = flag.String("sink", "stl", "output sink: stl or vertexbuffer")
	eps        = flag.Float64("eps", float64(vec.Epsilon), "tolerance for geometric predicates")
	bucketBits = flag.Int("bucket-bits", model.BucketBits, "aligned-capacity bucket size (2^n) for the PSLG and triangulation backing arrays")
	watch      = flag.Int("watch", 0, "render an animated rotating view to the terminal for N frames (0 disables)")
	fps        = flag.Int("fps", 30, "frame rate for -watch and -encoder")
	width      = flag.Int("width", 80, "terminal columns / encoder frame width")
	height     = flag.Int("height", 24, "terminal rows / encoder frame height")
	encoder    = flag.String("encoder", "", "external command to pipe raw RGB24 frames to, e.g. 'ffmpeg -f rawvideo ... out.mp4'")
	encFrames  = flag.Int("encoder-frames", 120, "number of frames to send to -encoder")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "polysplit: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *inPath == "" {
		flag.Usage()
		return fmt.Errorf("missing -in")
	}
	model.BucketBits = *bucketBits
	pslg.BucketBits = *bucketBits

	poly, err := readPolyhedron(*inPath, *format)
	if err != nil {
		return fmt.Errorf("read %s: %w", *inPath, err)
	}

	tri, err := triangulate.Polyhedron(poly, float32(*eps))
	if err != nil {
		return fmt.Errorf("triangulate: %w", err)
	}
	fmt.Fprintf(os.Stderr, "triangulated %d face(s) into %d triangle(s)\n", poly.FaceCount(), tri.Len())

	if *outPath != "" {
		if err := writeSink(*outPath, *sinkKind, tri); err != nil {
			return fmt.Errorf("write sink: %w", err)
		}
	}

	mesh := render.NewTriangleMesh(tri)

	if *watch > 0 {
		if err := watchTerminal(mesh, *watch); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
	}

	if *encoder != "" {
		if err := pipeToEncoder(mesh, *encoder, *encFrames); err != nil {
			return fmt.Errorf("encoder pipe: %w", err)
		}
	}

	return nil
}

func readPolyhedron(path, format string) (model.Polyhedron, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".off":
			format = "off"
		case ".gltf", ".glb":
			format = "gltf"
		default:
			return model.Polyhedron{}, fmt.Errorf("cannot guess format for %q, pass -format", path)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return model.Polyhedron{}, err
	}
	defer f.Close()

	var reader faceio.Reader
	switch format {
	case "off":
		reader = faceio.OFF{}
	case "gltf":
		reader = faceio.GLTF{}
	default:
		return model.Polyhedron{}, fmt.Errorf("unknown format %q", format)
	}

	return reader.Read(f)
}

func writeSink(path, kind string, tri *model.Triangulation) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch kind {
	case "stl":
		return sink.WriteSTL(f, tri)
	case "vertexbuffer":
		buf := sink.BuildVertexBuffer(tri)
		_, err := f.Write(buf.Data)
		return err
	default:
		return fmt.Errorf("unknown sink %q", kind)
	}
}

// watchTerminal renders rotating frames of mesh to the terminal using a
// harmonica-spring-damped spin, the same rotation-as-velocity-plus-spring
// idiom the original terminal viewer used for mouse-driven spin decay,
// here driving a fixed continuous rotation instead of user input.
func watchTerminal(mesh *render.TriangleMesh, frames int) error {
	termRenderer := render.NewTerminalRenderer(os.Stdout, *width, *height)
	fbW, fbH := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbW, fbH)

	camera := newOrbitCamera(fbW, fbH)
	rasterizer := render.NewRasterizer(camera, fb)
	rasterizer.DisableBackfaceCulling = true

	spring := harmonica.NewSpring(harmonica.FPS(*fps), 4.0, 1.0)
	var yaw, yawVel, yawAccel float64
	lightDir := math3d.V3(0.5, 1, 0.3).Normalize()

	frameDuration := time.Second / time.Duration(*fps)
	fmt.Fprint(os.Stdout, "\x1b[2J")
	for i := 0; i < frames; i++ {
		yawVel, yawAccel = spring.Update(yawVel, yawAccel, 1.2)
		yaw += yawVel

		fb.Clear(render.RGB(20, 20, 28))
		rasterizer.ClearDepth()
		transform := math3d.RotateY(yaw)
		rasterizer.DrawTriangleMesh(mesh, transform, lightDir)

		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			return err
		}
		time.Sleep(frameDuration)
	}
	return nil
}

// pipeToEncoder renders a fixed rotation animation and streams it as
// packed RGB24 frames to an external encoder process's stdin, the frame
// pipe the polyhedron driver exposes for offline video export.
func pipeToEncoder(mesh *render.TriangleMesh, command string, frames int) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return fmt.Errorf("empty -encoder command")
	}
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}

	fb := render.NewFramebuffer(*width, *height)
	camera := newOrbitCamera(*width, *height)
	rasterizer := render.NewRasterizer(camera, fb)
	rasterizer.DisableBackfaceCulling = true

	pipe := videopipe.New(stdin, *width, *height, *fps, true)
	lightDir := math3d.V3(0.5, 1, 0.3).Normalize()

	for i := 0; i < frames; i++ {
		yaw := 2 * math.Pi * float64(i) / float64(frames)
		fb.Clear(render.RGB(20, 20, 28))
		rasterizer.ClearDepth()
		rasterizer.DrawTriangleMesh(mesh, math3d.RotateY(yaw), lightDir)

		if err := pipe.WriteFrame(fb); err != nil {
			pipe.Close()
			cmd.Wait()
			return err
		}
	}

	if err := pipe.Close(); err != nil {
		return err
	}
	return cmd.Wait()
}

func newOrbitCamera(fbW, fbH int) *render.Camera {
	camera := render.NewCamera()
	camera.SetAspectRatio(float64(fbW) / float64(fbH))
	camera.SetFOV(math.Pi / 3)
	camera.SetClipPlanes(0.1, 100)
	camera.SetPosition(math3d.V3(0, 0, 5))
	camera.LookAt(math3d.V3(0, 0, 0))
	return camera
}
