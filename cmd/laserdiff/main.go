package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/casi-opea/ringed-laser-visualizer/internal/config"
	"github.com/casi-opea/ringed-laser-visualizer/internal/optics"
	"github.com/casi-opea/ringed-laser-visualizer/internal/ui"
)

var (
	configFile string
	wavelength float64
	distance   float64
	size       float64
	material   string
	zoom       float64
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "laserdiff",
		Short: "interactive laser diffraction pattern visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return ui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	ringsCmd := &cobra.Command{
		Use:   "rings",
		Short: "print ring geometry without opening a window",
		RunE:  printRings,
	}
	ringsCmd.Flags().Float64Var(&wavelength, "wavelength", 650, "wavelength (nm)")
	ringsCmd.Flags().Float64Var(&distance, "distance", 100, "screen distance (cm)")
	ringsCmd.Flags().Float64Var(&size, "size", 10, "particle size (um, custom material only)")
	ringsCmd.Flags().StringVar(&material, "material", "lycopodium", "material (lycopodium, silica, custom)")
	ringsCmd.Flags().Float64Var(&zoom, "zoom", 1.0, "zoom factor")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "laserdiff.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Println("wrote", path)
			return nil
		},
	}
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "config file helpers",
	}
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(ringsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func printRings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// CLI flags override the config file.
	if cmd.Flags().Changed("wavelength") {
		cfg.Params.WavelengthNm = wavelength
	}
	if cmd.Flags().Changed("distance") {
		cfg.Params.DistanceCm = distance
	}
	if cmd.Flags().Changed("size") {
		cfg.Params.ParticleSizeUm = size
	}
	if cmd.Flags().Changed("material") {
		cfg.Params.Material = material
	}
	if cmd.Flags().Changed("zoom") {
		cfg.Params.Zoom = zoom
	}

	p, err := cfg.Parameters()
	if err != nil {
		return err
	}

	rings := optics.ComputeRings(p, cfg.Render.BaseScale, cfg.Render.CanvasWidth, cfg.Render.CanvasHeight)

	fmt.Println(titleStyle.Render("Diffraction rings"))
	fmt.Println(subtleStyle.Render(fmt.Sprintf(
		"%s | %g nm | %g um | %g cm | zoom %.1fx | canvas %dx%d",
		p.Material.DisplayName(), p.WavelengthNm, p.ParticleSizeUm, p.DistanceCm, p.Zoom,
		cfg.Render.CanvasWidth, cfg.Render.CanvasHeight)))

	if len(rings) == 0 {
		fmt.Println(warnStyle.Render("no rings: every order is beyond 90 degrees or off-canvas"))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tSIN(THETA)\tTHETA (rad)\tRADIUS (mm)\tPIXELS")
	for _, r := range rings {
		fmt.Fprintf(w, "%d\t%.5f\t%.5f\t%.3f\t%.1f\n",
			r.Order, r.SinTheta, r.Theta, r.RadiusM*1000, r.PixelRadius)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(rings) > 1 {
		radii := make([]float64, len(rings))
		for i, r := range rings {
			radii[i] = r.PixelRadius
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(radii,
			asciigraph.Height(10),
			asciigraph.Caption("pixel radius by order")))
	}
	return nil
}
