package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"commondlg/internal/dialog"
	"commondlg/internal/watcher"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errCancelled maps user cancellation to exit code 1 in main.
var errCancelled = errors.New("selection cancelled")

type dialogKind string

const (
	kindOpen   dialogKind = "open"
	kindSave   dialogKind = "save"
	kindFolder dialogKind = "folder"
)

var rootCmd = &cobra.Command{
	Use:   "commondlg",
	Short: "Native Windows file and folder pickers for scripts",
	Long: `commondlg shows the native Windows open/save/folder dialogs and
prints the chosen path to stdout. The last-used folder is remembered
per dialog kind, so repeated picks start where the previous one ended.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Show the open-file dialog",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return runDialogCmd(cmd, kindOpen) },
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Show the save-file dialog",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return runDialogCmd(cmd, kindSave) },
}

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Show the folder picker",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return runDialogCmd(cmd, kindFolder) },
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("dir", "d", "", "starting folder (default: home directory)")
	pf.String("save-dir", "", "separate starting folder for save dialogs")
	pf.StringP("title", "t", "", "dialog title (default depends on dialog kind)")
	pf.StringSliceP("filter", "F", nil, "file type filter as ext:Description (repeatable; ignored by folder)")
	pf.IntP("repeat", "r", 1, "show the dialog N times, printing each chosen path")
	pf.Bool("watch", false, "reset remembered folders that vanish between repeats")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.String("log-file", "", "write logs to this file with rotation instead of stderr")

	viper.BindPFlag("dir", pf.Lookup("dir"))
	viper.BindPFlag("save-dir", pf.Lookup("save-dir"))
	viper.BindPFlag("title", pf.Lookup("title"))
	viper.BindPFlag("filter", pf.Lookup("filter"))
	viper.BindPFlag("repeat", pf.Lookup("repeat"))
	viper.BindPFlag("watch", pf.Lookup("watch"))
	viper.BindPFlag("verbose", pf.Lookup("verbose"))
	viper.BindPFlag("log-file", pf.Lookup("log-file"))

	rootCmd.AddCommand(openCmd, saveCmd, folderCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the logger from the verbose/log-file flags. With
// --log-file, output goes through lumberjack rotation, which keeps a
// dialog-driven tool usable without a console.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if path := viper.GetString("log-file"); path != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			LocalTime:  true,
		})
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			DisableColors:   true,
		})
	}
	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// parseFilterSpecs turns ext:Description specs into filters. The
// extension is normalized (leading "*." or "." stripped); a missing
// description defaults to "EXT files".
func parseFilterSpecs(specs []string) ([]dialog.FileTypeFilter, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	filters := make([]dialog.FileTypeFilter, 0, len(specs))
	for _, spec := range specs {
		ext, desc, _ := strings.Cut(spec, ":")
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			return nil, fmt.Errorf("invalid filter %q: want ext:Description", spec)
		}
		desc = strings.TrimSpace(desc)
		if desc == "" {
			desc = strings.ToUpper(ext) + " files"
		}
		filters = append(filters, dialog.NewFileTypeFilter(ext, desc))
	}
	return filters, nil
}

func runDialogCmd(cmd *cobra.Command, kind dialogKind) error {
	log := newLogger()

	dir := viper.GetString("dir")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		dir = home
	}

	filters, err := parseFilterSpecs(viper.GetStringSlice("filter"))
	if err != nil {
		return err
	}
	if kind == kindFolder && len(filters) > 0 {
		log.Warn("folder picker ignores --filter")
		filters = nil
	}

	title := viper.GetString("title")
	repeat := viper.GetInt("repeat")
	if repeat < 1 {
		repeat = 1
	}

	lease := dialog.GetOrCreate(dir, dialog.ForegroundWindow())
	if saveDir := viper.GetString("save-dir"); saveDir != "" {
		lease.SetDefaultSave(saveDir)
	}
	lease.Release()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if viper.GetBool("watch") {
		w, err := watcher.New(watcher.Config{
			Fallback:     dir,
			PollInterval: 500 * time.Millisecond,
			Log:          log,
		})
		if err != nil {
			return fmt.Errorf("starting defaults watcher: %w", err)
		}
		go w.Run(ctx)
	}

	output := cmd.OutOrStdout()
	cancelled := false
	for i := 0; i < repeat; i++ {
		path, accepted, err := showOnce(kind, filters, title)
		if err != nil {
			return err
		}
		if !accepted {
			log.Debug("selection cancelled")
			cancelled = true
			continue
		}
		log.WithField("path", path).Debug("selection confirmed")
		fmt.Fprintln(output, path)
	}
	if cancelled {
		return errCancelled
	}
	return nil
}

// showOnce runs one complete dialog session: lease the manager, bind
// a session to it, show, release.
func showOnce(kind dialogKind, filters []dialog.FileTypeFilter, title string) (string, bool, error) {
	lease, err := dialog.Get()
	if err != nil {
		return "", false, err
	}
	defer lease.Release()

	switch kind {
	case kindSave:
		d, err := dialog.NewSaveDialog(lease)
		if err != nil {
			return "", false, err
		}
		return d.Save(filters, title)
	case kindFolder:
		d, err := dialog.NewOpenDialog(lease)
		if err != nil {
			return "", false, err
		}
		return d.OpenFolder(title)
	default:
		d, err := dialog.NewOpenDialog(lease)
		if err != nil {
			return "", false, err
		}
		return d.Open(filters, title)
	}
}
