package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'mirror' or 'empty'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	maxDepth := flag.Int("depth", 10, "Maximum trace recursion depth")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Ground quad, diffuse/mirror/glass spheres, two point lights")
		fmt.Println("  mirror  - Single reflective sphere against the solid background")
		fmt.Println("  empty   - No geometry, background color only")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("%v. Using default scene.\n", err)
		selectedScene = scene.NewDefaultScene()
		*sceneType = "default"
	}

	config := renderer.DefaultConfig(*width, *height)
	config.MaxDepth = *maxDepth
	config.MaxStackSize = max(config.MaxStackSize, 2*(*maxDepth))
	config.NumWorkers = *workers

	r, err := renderer.NewRenderer(selectedScene, config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error creating renderer: %v\n", err)
		os.Exit(1)
	}

	fb, _ := r.RenderPass()

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	if err := savePNG(fb, filename); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds one of the named built-in scenes
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "mirror":
		return scene.NewMirrorScene(), nil
	case "empty":
		return scene.NewEmptyScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// savePNG writes the frame buffer to a PNG file, flipping rows so the
// buffer's bottom-up coordinates land in image space
func savePNG(fb *renderer.FrameBuffer, filename string) error {
	dc := gg.NewContext(fb.Width, fb.Height)
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j).Clamp(0, 1)
			dc.SetRGB(c.X, c.Y, c.Z)
			dc.SetPixel(i, fb.Height-1-j)
		}
	}
	return dc.SavePNG(filename)
}
