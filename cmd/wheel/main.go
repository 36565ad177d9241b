package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/canvas"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/llm/gemini"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/llm/groq"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/optionsapi"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/presets"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/storage"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/app"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/config"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/lib/logger/sl"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/ports"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/render"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/sound"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Float64() float64 { return rand.Float64() }

// source flags shared by spin and save.
type sourceFlags struct {
	prompt string
	manual string
	file   string
	load   string
	preset string
}

type cli struct {
	local  bool
	frames string
	mute   bool

	cfg     config.Client
	logger  *slog.Logger
	store   storage.Store
	canvas  *canvas.Canvas
	view    *consoleView
	session *app.Session
	closers []func()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &cli{}
	err := newRootCmd(c).ExecuteContext(ctx)
	c.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "wheel:", err)
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "wheel",
		Short:         "Spin a wheel of AI-generated or hand-written options",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.PersistentFlags().BoolVar(&c.local, "local", false, "generate options in-process instead of calling WHEEL_API_URL")

	root.AddCommand(
		c.generateCmd(),
		c.spinCmd(),
		c.saveCmd(),
		c.listCmd(),
		c.presetsCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx := cmd.Context()

	c.store, err = storage.Open(ctx, storage.Options{
		Kind:        cfg.Store,
		DSN:         cfg.StoreDSN,
		SupabaseURL: cfg.SupabaseURL,
		SupabaseKey: cfg.SupabaseKey,
	})
	if err != nil {
		c.logger.Error("failed to open store", sl.Err(err))
		return err
	}
	c.closers = append(c.closers, func() { _ = c.store.Close() })

	c.canvas, err = canvas.New(cfg.WheelSize)
	if err != nil {
		return err
	}

	c.view = newConsoleView(cmd.OutOrStdout(), cmd.ErrOrStderr(), c.logger)

	c.session = app.NewSession(app.SessionDeps{
		Generator: &lazyGenerator{build: c.newGenerator},
		Library:   app.NewLibrary(c.store),
		Presets:   presets.NewEmbeddedStore(),
		Renderer:  render.NewRenderer(c.canvas, c.frameWriter()),
		Sound:     sound.New(sound.LogFactory(c.logger), c.logger),
		Clock:     systemClock{},
		RNG:       stdRNG{},
		View:      c.view,
		Log:       c.logger,
	})
	return c.session.Start(ctx)
}

func (c *cli) close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

func (c *cli) newGenerator(ctx context.Context) (ports.OptionGenerator, error) {
	if !c.local {
		return optionsapi.NewClient(&http.Client{}, c.cfg.APIURL), nil
	}

	srv, err := config.LoadServer()
	if err != nil {
		return nil, err
	}

	var completer ports.Completer
	switch srv.LLMProvider {
	case gemini.ProviderName:
		g, err := gemini.NewClient(ctx, srv.GeminiAPIKey, srv.LLMModel, c.logger)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, func() { _ = g.Close() })
		completer = g
	default:
		completer = groq.NewClient(&http.Client{Timeout: srv.LLMTimeout}, srv.GroqAPIKey, srv.GroqBaseURL, srv.LLMModel, c.logger)
	}
	return app.NewOptionService(completer), nil
}

// lazyGenerator builds the real generator on first use, so commands that
// never generate do not need provider credentials.
type lazyGenerator struct {
	build func(context.Context) (ports.OptionGenerator, error)

	once sync.Once
	gen  ports.OptionGenerator
	err  error
}

func (g *lazyGenerator) Generate(ctx context.Context, prompt string) (domain.GeneratedOptions, error) {
	g.once.Do(func() {
		g.gen, g.err = g.build(ctx)
	})
	if g.err != nil {
		return domain.GeneratedOptions{}, fmt.Errorf("init generator: %w", g.err)
	}
	return g.gen.Generate(ctx, prompt)
}

// frameWriter saves every rendered frame when --frames is set.
func (c *cli) frameWriter() func(render.Canvas) error {
	n := 0
	return func(rc render.Canvas) error {
		if c.frames == "" {
			return nil
		}
		cv, ok := rc.(*canvas.Canvas)
		if !ok {
			return nil
		}
		if n == 0 {
			if err := os.MkdirAll(c.frames, 0o755); err != nil {
				return err
			}
		}
		n++
		return cv.SavePNG(filepath.Join(c.frames, fmt.Sprintf("frame_%04d.png", n)))
	}
}

func (c *cli) loadSource(cmd *cobra.Command, f sourceFlags) error {
	ctx := cmd.Context()

	switch {
	case f.prompt != "":
		return c.session.Generate(ctx, f.prompt)
	case f.manual != "":
		// Allow "A,B,C" on the command line as well as real newlines.
		return c.session.UseManualOptions(strings.ReplaceAll(f.manual, ",", "\n"))
	case f.file != "":
		raw, err := os.ReadFile(f.file)
		if err != nil {
			return fmt.Errorf("read options file: %w", err)
		}
		return c.session.UseManualOptions(string(raw))
	case f.load != "":
		return c.session.Load(ctx, f.load)
	case f.preset != "":
		return c.session.UsePreset(ctx, f.preset)
	default:
		return errors.New("one of --prompt, --manual, --file, --load or --preset is required")
	}
}

func bindSource(cmd *cobra.Command, f *sourceFlags) {
	cmd.Flags().StringVar(&f.prompt, "prompt", "", "generate options from a prompt")
	cmd.Flags().StringVar(&f.manual, "manual", "", "comma or newline separated options")
	cmd.Flags().StringVar(&f.file, "file", "", "read options from a file, one per line")
	cmd.Flags().StringVar(&f.load, "load", "", "use a saved wheel")
	cmd.Flags().StringVar(&f.preset, "preset", "", "use a built-in preset")
	cmd.MarkFlagsMutuallyExclusive("prompt", "manual", "file", "load", "preset")
}

func (c *cli) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate PROMPT",
		Short: "Print the options generated for a prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.session.Generate(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			for _, opt := range c.session.Wheel().Options {
				fmt.Fprintln(cmd.OutOrStdout(), opt)
			}
			return nil
		},
	}
}

func (c *cli) spinCmd() *cobra.Command {
	var (
		src  sourceFlags
		out  string
		save string
	)
	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Spin a wheel and print the winning option",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.mute {
				c.session.ToggleSound()
			}
			if err := c.loadSource(cmd, src); err != nil {
				return err
			}
			if save != "" {
				if err := c.session.Save(cmd.Context(), save); err != nil {
					return err
				}
			}

			if _, err := c.session.Spin(cmd.Context()); err != nil {
				return err
			}

			if out != "" {
				if err := c.canvas.SavePNG(out); err != nil {
					return err
				}
				c.logger.Info("wheel image written", "path", out)
			}
			return nil
		},
	}
	bindSource(cmd, &src)
	cmd.Flags().StringVar(&out, "out", "", "write the final wheel to a PNG file")
	cmd.Flags().StringVar(&c.frames, "frames", "", "write every animation frame as PNG into a directory")
	cmd.Flags().BoolVar(&c.mute, "mute", false, "turn the sound effect off")
	cmd.Flags().StringVar(&save, "save", "", "save the wheel under a name before spinning")
	return cmd
}

func (c *cli) saveCmd() *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save a wheel under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadSource(cmd, src); err != nil {
				return err
			}
			return c.session.Save(cmd.Context(), args[0])
		},
	}
	bindSource(cmd, &src)
	return cmd
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved wheels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			choices, err := c.session.SavedWheelChoices(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range choices[1:] {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (c *cli) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in preset wheels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := presets.NewEmbeddedStore().ListPresets(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p.Name, strings.Join(p.Options, ", "))
			}
			return nil
		},
	}
}
