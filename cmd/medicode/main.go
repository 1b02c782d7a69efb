package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/spf13/cobra"

	"github.com/medicode-ai/medicode/internal/application"
	"github.com/medicode-ai/medicode/internal/application/history"
	"github.com/medicode-ai/medicode/internal/application/session"
	"github.com/medicode-ai/medicode/internal/config"
	"github.com/medicode-ai/medicode/internal/domain/analysis"
	"github.com/medicode-ai/medicode/internal/infra/proxy"
	"github.com/medicode-ai/medicode/internal/infra/store"
)

var (
	configPath string
	langFlag   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medicode",
		Short: "Medicine identification assistant (scanner, chat and history)",
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "display language: english, tamil or hindi")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(darkmodeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "config.yaml"
}

type app struct {
	cfg     *config.Config
	kv      *store.SQLite
	session *session.Session
	store   *history.Store
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	kv, err := store.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	logger := &log.Logger{Handler: text.New(os.Stderr), Level: log.WarnLevel}
	clock := application.SystemClock{}
	hist := history.New(kv, cfg.Storage.Namespace, clock, logger)
	client := proxy.New(cfg.Client.ProxyURL, logger)

	sess := session.New(client, hist, clock, logger)
	lang := langFlag
	if lang == "" {
		lang = cfg.Client.Language
	}
	sess.SetLanguage(analysis.ParseLanguage(lang))

	return &app{cfg: cfg, kv: kv, session: sess, store: hist}, nil
}

func (a *app) Close() error { return a.kv.Close() }

func analyzeCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "analyze [image-file]",
		Short: "Analyze a photo of medicine packaging or a prescription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			imageData, err := encodeImageFile(args[0])
			if err != nil {
				return err
			}

			fmt.Println(analysis.AnalyzingResult().Result)
			res := a.session.AnalyzeImage(context.Background(), imageData)

			if showAll {
				fmt.Printf("\nENGLISH:\n%s\n\nTAMIL:\n%s\n\nHINDI:\n%s\n", res.Result, res.TamilResult, res.HindiResult)
			} else {
				fmt.Printf("\n%s\n", res.Text(a.session.Language()))
			}
			if res.Failed() {
				fmt.Fprintf(os.Stderr, "(%s)\n", res.Err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "print all three languages")
	return cmd
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the medical assistant a free-text question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			reply := a.session.SendChat(context.Background(), strings.Join(args, " "))
			fmt.Println(reply.Text)
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past analyses",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List past analyses, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			items := a.session.History(context.Background())
			if len(items) == 0 {
				fmt.Println("No scans yet.")
				return nil
			}
			lang := a.session.Language()
			for _, item := range items {
				fmt.Printf("%s  %s\n    %s\n", item.ID, formatTimeAgo(item.Timestamp), truncate(textFor(item, lang), 100))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Delete one history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.session.DeleteHistoryItem(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	})

	return cmd
}

func darkmodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "darkmode [on|off]",
		Short: "Show or set the persisted dark-mode flag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := context.Background()
			if len(args) == 1 {
				on := args[0] == "on"
				if !on && args[0] != "off" {
					return fmt.Errorf("expected on or off, got %q", args[0])
				}
				if err := a.store.SetDarkMode(ctx, on); err != nil {
					return err
				}
			}
			if a.store.DarkMode(ctx) {
				fmt.Println("dark mode: on")
			} else {
				fmt.Println("dark mode: off")
			}
			return nil
		},
	}
}

// encodeImageFile reads an image and wraps it in the data URI the proxy expects.
func encodeImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var mime string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	case ".png":
		mime = "image/png"
	case ".webp":
		mime = "image/webp"
	default:
		return "", fmt.Errorf("unsupported image type %q (jpeg, png or webp)", filepath.Ext(path))
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func textFor(item analysis.HistoryItem, lang analysis.Language) string {
	res := analysis.Result{Result: item.Result, TamilResult: item.TamilResult, HindiResult: item.HindiResult}
	return strings.ReplaceAll(res.Text(lang), "\n", " ")
}

func formatTimeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
	return t.Format("2006-01-02")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
