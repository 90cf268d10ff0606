package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/catalog"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra/credentials"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/pipeline"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/storage"
)

const usage = `usage:
  studio classify <text>
  studio generate [-style studio] [-width 1024] [-height 1024] [-image path] <text>
  studio analyze [-prompt text] <image>
  studio key <gemini|qwen|openrouter> <api-key>`

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	cfg, err := infra.LoadConfig()
	if err != nil {
		return err
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.LogLevel).Output(zerolog.ConsoleWriter{Out: stderr, NoColor: true})

	switch args[0] {
	case "classify":
		return runClassify(args[1:], stdout)
	case "generate":
		return runGenerate(ctx, cfg, &logger, args[1:], stdout)
	case "analyze":
		return runAnalyze(ctx, cfg, &logger, args[1:], stdout)
	case "key":
		return runKey(ctx, cfg, logger, args[1:], stdout)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func runClassify(args []string, stdout io.Writer) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return errors.New("classify: text required")
	}
	c := catalog.Classify(text)
	title := cases.Title(language.English)
	fmt.Fprintf(stdout, "%s\t%s\n", c, title.String(string(c.Department())))
	return nil
}

func runGenerate(ctx context.Context, cfg *infra.Config, logger *infra.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	style := fs.String("style", "", "photoshoot style (lifestyle, studio, editorial, ...)")
	width := fs.Int("width", 0, "artifact width in pixels")
	height := fs.Int("height", 0, "artifact height in pixels")
	imagePath := fs.String("image", "", "optional product photo to analyse first")
	asJSON := fs.Bool("json", false, "print the attempt trace as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(fs.Args(), " "))

	in := pipeline.GenerateInput{
		Text:       text,
		Style:      *style,
		Dimensions: domain.Dimensions{Width: *width, Height: *height},
	}
	if *imagePath != "" {
		data, err := os.ReadFile(*imagePath)
		if err != nil {
			return fmt.Errorf("generate: read image: %w", err)
		}
		in.Image, in.ImageMIME = data, http.DetectContentType(data)
	}
	if in.Text == "" && len(in.Image) == 0 {
		return errors.New("generate: text or -image required")
	}

	store, err := storage.NewFileStore(cfg.ArtifactDir)
	if err != nil {
		return err
	}
	studio, err := pipeline.NewFromConfig(cfg, logger, nil)
	if err != nil {
		return err
	}

	out := studio.GenerateArtifact(ctx, in)
	key, err := store.WriteArtifact(ctx, out.RequestID, out.Artifact)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"request_id": out.RequestID,
			"category":   out.Category,
			"style":      out.Style,
			"prompt":     out.Prompt,
			"artifact":   store.Path(key),
			"kind":       out.Artifact.Kind(),
			"attempts":   out.Attempts,
		})
	}
	fmt.Fprintf(stdout, "category: %s\nstyle: %s\nbackend: %s\nartifact: %s\n",
		out.Category, out.Style, out.Artifact.Backend(), store.Path(key))
	for _, a := range out.Attempts {
		line := fmt.Sprintf("  %-16s %-18s %s", a.Backend, a.Outcome, a.Duration.Round(time.Millisecond))
		if a.Detail != "" {
			line += "  " + a.Detail
		}
		fmt.Fprintln(stdout, line)
	}
	return nil
}

func runAnalyze(ctx context.Context, cfg *infra.Config, logger *infra.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	prompt := fs.String("prompt", "", "question for the vision model (defaults to attribute extraction)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("analyze: exactly one image path required")
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("analyze: read image: %w", err)
	}

	studio, err := pipeline.NewFromConfig(cfg, logger, nil)
	if err != nil {
		return err
	}
	out := studio.AnalyzeUploadedImage(ctx, data, http.DetectContentType(data), *prompt)
	if !out.Success {
		return fmt.Errorf("analyze: %w\n%s", out.Err, out.Suggestion)
	}
	fmt.Fprintf(stdout, "model: %s\n%s\n", out.Model, strings.TrimSpace(out.Text))
	return nil
}

// runKey stores a provider API key in Postgres so services started without
// the matching env variable still find it.
func runKey(ctx context.Context, cfg *infra.Config, logger infra.Logger, args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return errors.New("key: provider and api key required")
	}
	if cfg.DatabaseURL == "" {
		return errors.New("key: DATABASE_URL is required")
	}
	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	store := credentials.NewStore(infra.NewSQLRunner(pool, logger))
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := store.SetToken(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "stored %s api key\n", strings.ToLower(args[0]))
	return nil
}
