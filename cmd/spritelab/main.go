package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/spritelab/internal/anim"
	"github.com/san-kum/spritelab/internal/config"
	"github.com/san-kum/spritelab/internal/npy"
	"github.com/san-kum/spritelab/internal/render"
	"github.com/san-kum/spritelab/internal/storage"
	"github.com/san-kum/spritelab/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	rows       int
	cols       int
	scale      int
	delayMS    int
	frameIdx   int
)

// main registers commands and flags. The bare command opens the
// interactive editor on a blank canvas; subcommands operate on .npy
// files and the sprite library without entering the editor.
func main() {
	rootCmd := &cobra.Command{
		Use:   "spritelab [file.npy]",
		Short: "terminal pixel-art animation editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runEditor(cmd, path, false)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "sprite library directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "canvas preset")
	rootCmd.Flags().IntVar(&rows, "rows", 0, "grid rows")
	rootCmd.Flags().IntVar(&cols, "cols", 0, "grid cols")

	playCmd := &cobra.Command{
		Use:   "play [file.npy]",
		Short: "open an animation with playback already running",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, args[0], true)
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info [file.npy]",
		Short: "describe an animation file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	exportGIFCmd := &cobra.Command{
		Use:   "export-gif [file.npy] [out.gif]",
		Short: "render an animation file as a looping GIF",
		Args:  cobra.ExactArgs(2),
		RunE:  runExportGIF,
	}
	exportGIFCmd.Flags().IntVar(&scale, "scale", render.DefaultScale, "pixels per cell")
	exportGIFCmd.Flags().IntVar(&delayMS, "delay", config.DefaultIntervalMS, "frame delay in ms")

	previewCmd := &cobra.Command{
		Use:   "preview [file.npy]",
		Short: "draw a frame inline in a graphics-capable terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&frameIdx, "frame", 0, "frame index")
	previewCmd.Flags().IntVar(&scale, "scale", render.DefaultScale, "pixels per cell")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list the sprite library",
		RunE:  runList,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list canvas presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s %dx%d\n", name, p.Rows, p.Cols)
			}
		},
	}

	rootCmd.AddCommand(playCmd, infoCmd, exportGIFCmd, previewCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: preset, then config file,
// then explicit flags, highest priority last.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("rows") {
		cfg.Rows = rows
	}
	if cmd.Flags().Changed("cols") {
		cfg.Cols = cols
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, cfg.Validate()
}

func runEditor(cmd *cobra.Command, path string, playing bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := anim.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return err
	}
	store.SetInterval(time.Duration(cfg.IntervalMS) * time.Millisecond)

	if path != "" {
		frames, err := npy.LoadAnimation(path)
		if err != nil {
			return err
		}
		if err := store.Replace(frames); err != nil {
			return err
		}
	}
	if playing {
		store.Play()
	}

	return tui.Run(store, cfg)
}

func runInfo(cmd *cobra.Command, args []string) error {
	frames, err := npy.LoadAnimation(args[0])
	if err != nil {
		return err
	}

	rows, cols := frames[0].Rows, frames[0].Cols
	fmt.Printf("file: %s\n", args[0])
	fmt.Printf("frames: %d\n", len(frames))
	fmt.Printf("grid: %dx%d\n", rows, cols)

	ink := make([]float64, len(frames))
	total := 0
	for i, f := range frames {
		n := f.Ink()
		ink[i] = float64(n)
		total += n
	}
	fmt.Printf("lit cells: %d of %d\n", total, len(frames)*rows*cols)

	if len(frames) > 1 {
		fmt.Println()
		graph := asciigraph.Plot(ink,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("lit cells per frame"),
		)
		fmt.Println(graph)
	}
	return nil
}

func runExportGIF(cmd *cobra.Command, args []string) error {
	frames, err := npy.LoadAnimation(args[0])
	if err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	if err := render.EncodeGIF(out, frames, scale, delayMS); err != nil {
		return err
	}
	fmt.Printf("wrote %d frame(s) to %s\n", len(frames), args[1])
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	frames, err := npy.LoadAnimation(args[0])
	if err != nil {
		return err
	}
	if frameIdx < 0 || frameIdx >= len(frames) {
		return fmt.Errorf("frame %d out of range (file has %d)", frameIdx, len(frames))
	}
	return render.PrintFrame(frames[frameIdx], scale)
}

func runList(cmd *cobra.Command, args []string) error {
	dir := dataDir
	if dir == "" {
		dir = config.DefaultDataDir
	}
	st := storage.New(dir)
	entries, err := st.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("library is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSAVED\tFRAMES\tGRID\tINTERVAL")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%dx%d\t%dms\n",
			e.Name,
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.Frames,
			e.Rows, e.Cols,
			e.IntervalMS,
		)
	}
	return w.Flush()
}
