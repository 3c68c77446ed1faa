package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nilsaker/geolab/internal/config"
	"github.com/nilsaker/geolab/internal/dispatch"
	"github.com/nilsaker/geolab/pkg/mesh"
	"github.com/nilsaker/geolab/pkg/result"
	"github.com/nilsaker/geolab/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "geolab <start_id> <end_id> <model_path> [mode]",
	Short:   "Geodesic computation engine for triangle meshes",
	Long:    "geolab computes a shortest or approximate geodesic path between two vertices of an OBJ mesh, via edge-graph Dijkstra, an analytic parametric surface, or the Heat Method.",
	Args:    cobra.RangeArgs(3, 4),
	Version: version.GetFullVersion(),
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "optional .gcfg file overriding solver tuning parameters")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	startID, endID, err := parseEndpoints(args[0], args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	modelPath := args[2]
	mode := ""
	if len(args) == 4 {
		mode = args[3]
	}

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	m, err := mesh.LoadOBJ(modelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load %s: %v\n", modelPath, err)
		os.Exit(1)
	}

	switch mode {
	case "analytics":
		out := dispatch.RunAnalytics(m, modelPath, startID, endID, cfg)
		if err := result.WriteAnalytics(out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		printAnalyticsSummary("Analytics", out)
		if out.Error != "" {
			os.Exit(2)
		}
	case "heat":
		out := dispatch.RunHeat(m, modelPath, startID, endID, cfg)
		if err := result.WriteHeat(out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		printAnalyticsSummary("Heat Method", out)
		if out.Error != "" {
			os.Exit(2)
		}
	default:
		out, err := dispatch.RunDijkstra(m, modelPath, startID, endID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := result.WriteDijkstra(out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		printDijkstraSummary(out)
	}
	return nil
}

func parseEndpoints(startArg, endArg string) (int, int, error) {
	start, err := strconv.Atoi(startArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start_id %q: %w", startArg, err)
	}
	end, err := strconv.Atoi(endArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end_id %q: %w", endArg, err)
	}
	return start, end, nil
}

func printDijkstraSummary(d result.Dijkstra) {
	fmt.Println("--- Geodesic Lab: Dijkstra ---")
	if !d.Reachable {
		fmt.Println("Target Distance: (unreachable)")
	} else {
		fmt.Printf("Target Distance: %v\n", *d.TotalDistance)
	}
	fmt.Print("Path: ")
	for _, v := range d.Path {
		fmt.Printf("%d ", v)
	}
	fmt.Println()
	fmt.Println("------------------------------")
}

func printAnalyticsSummary(label string, a result.Analytics) {
	fmt.Printf("--- Geodesic Lab: %s ---\n", label)
	if a.Error != "" {
		fmt.Println("Error:", a.Error)
	} else {
		fmt.Println("Surface:", a.SurfaceType)
		fmt.Println("Curves:", len(a.Curves))
	}
	fmt.Println("------------------------------")
}
