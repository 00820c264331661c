// dicegen builds six-sided die meshes and their UV atlas templates.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/GeheimCoding/Dice/internal/atlas"
	"github.com/GeheimCoding/Dice/internal/config"
	"github.com/GeheimCoding/Dice/internal/die"
	"github.com/GeheimCoding/Dice/internal/logger"
	"github.com/GeheimCoding/Dice/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "mesh", "m":
		cmdMesh(args)
	case "atlas", "a":
		cmdAtlas(args)
	case "info":
		cmdInfo(args)
	case "top":
		cmdTop(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`dicegen - procedural die mesh generator

Usage:
  dicegen <command> [options]

Commands:
  mesh  [options]              Build the die and write it as OBJ or STL
  atlas [options]              Write the UV atlas template PNG
  info  [options]              Print mesh statistics without writing files
  top   <axis:degrees>...      Report the face up after each rotation
  config [-write <file>]       Save the effective config (default: user config dir)

Options (mesh, atlas, info, config):
  -config <file>        Config file (default: ./dicegen.yaml)
  -subdivisions <n>     Icosphere subdivisions (0-8)
  -threshold <t>        Cutting plane distance (0-1, exclusive)
  -size <s>             Die edge length
  -format <obj|stl>     Mesh output format
  -out <dir>            Output directory
  -debug                Enable debug logging
  -log <file>           Also log to a rotating file

Examples:
  dicegen mesh -subdivisions 5 -format stl -out ./build
  dicegen atlas -out ./build
  dicegen top 1,0,0:90 0,0,1:180
  dicegen config -threshold 0.8 -write ./dicegen.yaml`)
}

// setup parses the shared flags, loads config and starts logging. bind, if
// not nil, registers extra flags for the subcommand.
func setup(name string, args []string, bind func(fs *flag.FlagSet)) *config.Config {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	config.BindFlags(fs)
	if bind != nil {
		bind(fs)
	}
	fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Sugar.Debugf("Config: %+v", cfg)
	return cfg
}

func cmdMesh(args []string) {
	cfg := setup("mesh", args, nil)
	defer logger.Sync()

	d, err := die.Build(cfg.Die)
	if err != nil {
		logger.Fatal("build failed", zap.Error(err))
	}

	path := filepath.Join(cfg.Output.Dir, cfg.Output.Name+"."+cfg.Output.Format)
	if err := writeMesh(path, cfg.Output.Name, cfg.Output.Format, d.MeshData()); err != nil {
		logger.Fatal("write failed", zap.Error(err))
	}

	logger.Info("mesh written",
		zap.String("path", path),
		zap.String("format", cfg.Output.Format))
}

// writeMesh encodes md in the given format to path.
func writeMesh(path, name, format string, md *formats.MeshData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch format {
	case config.FormatSTL:
		err = formats.WriteSTL(f, "dicegen "+name, md)
	default:
		err = formats.WriteOBJ(f, name, md)
	}
	if err != nil {
		f.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			logger.Error("removing partial output", zap.String("path", path), zap.Error(rmErr))
		}
		return err
	}
	return f.Close()
}

func cmdAtlas(args []string) {
	cfg := setup("atlas", args, nil)
	defer logger.Sync()

	tpl, err := atlas.FromConfig(cfg.Atlas)
	if err != nil {
		logger.Fatal("invalid atlas settings", zap.Error(err))
	}

	path := filepath.Join(cfg.Output.Dir, cfg.Output.Name+"_atlas.png")
	if err := tpl.Save(path); err != nil {
		logger.Fatal("atlas failed", zap.Error(err))
	}
}

func cmdInfo(args []string) {
	cfg := setup("info", args, nil)
	defer logger.Sync()

	d, err := die.Build(cfg.Die)
	if err != nil {
		logger.Fatal("build failed", zap.Error(err))
	}

	s := d.Stats()
	fmt.Printf("Subdivisions: %d\n", cfg.Die.Subdivisions)
	fmt.Printf("Threshold:    %g\n", cfg.Die.Threshold)
	fmt.Printf("Size:         %g\n", cfg.Die.Size)
	fmt.Printf("Vertices:     %d\n", s.Vertices)
	fmt.Printf("Triangles:    %d\n", s.Triangles)
	fmt.Printf("Bounds:       %v .. %v\n", s.Bounds.Min, s.Bounds.Max)
	fmt.Println()
	fmt.Println("Faces:")
	title := cases.Title(language.English)
	for _, f := range die.Faces {
		fmt.Printf("  %-6s %d  normal %v\n", title.String(f.Name), f.Number, f.Normal)
	}
}

func cmdTop(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dicegen top <axis:degrees>...")
		os.Exit(1)
	}

	roll, err := readRoll(os.Stdout, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(roll.String())
	fmt.Printf("Total: %d\n", roll.Total())
}

// readRoll reads the top face for each rotation spec, printing one line per
// die to w.
func readRoll(w io.Writer, specs []string) (*die.Roll, error) {
	roll := &die.Roll{}
	for _, spec := range specs {
		rot, err := parseRotation(spec)
		if err != nil {
			return nil, err
		}
		n := die.TopFace(rot)
		face, _ := die.FaceByNumber(n)
		roll.Add(n)
		fmt.Fprintf(w, "%-20s -> %d (%s)\n", spec, n, face.Name)
	}
	return roll, nil
}

func cmdConfig(args []string) {
	var out string
	cfg := setup("config", args, func(fs *flag.FlagSet) {
		fs.StringVar(&out, "write", "", "Write config to this file instead of the user config dir")
	})
	defer logger.Sync()

	path, err := saveConfig(cfg, out)
	if err != nil {
		logger.Fatal("saving config failed", zap.Error(err))
	}
	fmt.Println(path)
}

// saveConfig writes cfg to path, or to the user config dir when path is
// empty, and returns where it went.
func saveConfig(cfg *config.Config, path string) (string, error) {
	if path == "" {
		if err := cfg.Save(); err != nil {
			return "", err
		}
		return filepath.Join(config.ConfigDir(), config.FileName), nil
	}
	if err := cfg.SaveTo(path); err != nil {
		return "", err
	}
	return path, nil
}

// parseRotation parses "x,y,z:degrees" into a quaternion.
func parseRotation(s string) (mgl32.Quat, error) {
	axisStr, degStr, ok := strings.Cut(s, ":")
	if !ok {
		return mgl32.Quat{}, fmt.Errorf("rotation %q: expected axis:degrees", s)
	}

	parts := strings.Split(axisStr, ",")
	if len(parts) != 3 {
		return mgl32.Quat{}, fmt.Errorf("rotation %q: axis needs three components", s)
	}

	var axis mgl32.Vec3
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Quat{}, fmt.Errorf("rotation %q: %w", s, err)
		}
		axis[i] = float32(v)
	}
	if axis.Len() == 0 {
		return mgl32.Quat{}, fmt.Errorf("rotation %q: zero axis", s)
	}

	deg, err := strconv.ParseFloat(strings.TrimSpace(degStr), 32)
	if err != nil {
		return mgl32.Quat{}, fmt.Errorf("rotation %q: %w", s, err)
	}

	return mgl32.QuatRotate(mgl32.DegToRad(float32(deg)), axis.Normalize()), nil
}
