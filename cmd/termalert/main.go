package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/Dicklesworthstone/termalert/pkg/alert"
	"github.com/Dicklesworthstone/termalert/pkg/export"
	"github.com/Dicklesworthstone/termalert/pkg/screen"
	"github.com/Dicklesworthstone/termalert/pkg/suppress"
	"github.com/Dicklesworthstone/termalert/pkg/watcher"
)

func main() {
	themePath := flag.String("theme", "", "YAML theme override file (hot reloaded while running)")
	exportSVG := flag.String("export-svg", "", "Write a layout wireframe as SVG and exit")
	exportPNG := flag.String("export-png", "", "Write a layout wireframe as PNG and exit")
	suppressDB := flag.String("suppress-db", defaultSuppressPath(), "Suppression database path (empty to disable)")
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *help {
		fmt.Println("Usage: termalert [options]")
		fmt.Println("\nA gallery of terminal alert panels.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("termalert version 0.1.0")
		os.Exit(0)
	}

	theme := alert.DefaultTheme(lipgloss.DefaultRenderer())
	if *themePath != "" {
		loaded, err := alert.LoadTheme(*themePath, theme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading theme: %v\n", err)
			os.Exit(1)
		}
		theme = loaded
	}

	if *exportSVG != "" || *exportPNG != "" {
		if err := runExport(theme, *exportSVG, *exportPNG); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting snapshot: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if screen.VisibleFrame().IsZero() {
		fmt.Fprintln(os.Stderr, "termalert needs a terminal to run the gallery.")
		fmt.Fprintln(os.Stderr, "Use -export-svg or -export-png for non-interactive snapshots.")
		os.Exit(1)
	}

	var store *suppress.Store
	if *suppressDB != "" {
		s, err := suppress.Open(*suppressDB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: suppression store unavailable: %v\n", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	m := newGallery(theme, store)
	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if *themePath != "" {
		path := *themePath
		g.Go(func() error {
			err := watcher.Watch(ctx, path, func() {
				base := alert.DefaultTheme(lipgloss.DefaultRenderer())
				reloaded, err := alert.LoadTheme(path, base)
				if err != nil {
					return
				}
				p.Send(themeReloadedMsg{theme: reloaded})
			}, watcher.Options{})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running termalert: %v\n", err)
		os.Exit(1)
	}
}

// runExport writes wireframe snapshots of the delete-file scenario, the
// busiest panel in the gallery.
func runExport(theme alert.Theme, svgPath, pngPath string) error {
	a := scenarios(theme)[0].Build(theme)

	write := func(path string, render func(*os.File) error) error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := render(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	if svgPath != "" {
		if err := write(svgPath, func(f *os.File) error { return export.WriteSVG(f, a) }); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	}
	if pngPath != "" {
		if err := write(pngPath, func(f *os.File) error { return export.WritePNG(f, a) }); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
	}
	return nil
}

func defaultSuppressPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "termalert", "suppress.db")
}
