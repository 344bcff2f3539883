package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/crxgen-labs/crxgen/internal/answers"
	"github.com/crxgen-labs/crxgen/internal/branding"
	"github.com/crxgen-labs/crxgen/internal/buildinfo"
	"github.com/crxgen-labs/crxgen/internal/config"
	"github.com/crxgen-labs/crxgen/internal/installer"
	"github.com/crxgen-labs/crxgen/internal/manifest"
	"github.com/crxgen-labs/crxgen/internal/permissions"
	"github.com/crxgen-labs/crxgen/internal/prompt"
	"github.com/crxgen-labs/crxgen/internal/scaffold"
	"github.com/crxgen-labs/crxgen/internal/templates"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// createOptions holds everything a create run needs besides the target
// directory. Flags bind to createFlags; tests build their own.
type createOptions struct {
	Name          string
	Description   string
	Action        string
	UIFeatures    []string
	Permissions   []string
	Babel         bool
	Compass       bool
	TestFramework string
	Channel       string
	SkipInstall   bool
	SkipMessage   bool
	Force         bool
	SkipExisting  bool
	DryRun        bool
	Interactive   bool
}

var createFlags createOptions

var createYes bool

func init() {
	f := createCmd.Flags()
	f.StringVar(&createFlags.Name, "name", "", "Extension name (default: directory name)")
	f.StringVar(&createFlags.Description, "description", "", "Extension description (default: \""+prompt.DefaultDescription+"\")")
	f.StringVar(&createFlags.Action, "action", answers.ChoiceNo, "UI action: No, Browser or Page")
	f.StringSliceVar(&createFlags.UIFeatures, "ui", nil, "UI features: options, contentscript, omnibox")
	f.StringSliceVar(&createFlags.Permissions, "permissions", nil, "Permissions to request (see `crxgen permissions`)")
	f.BoolVar(&createFlags.Babel, "babel", true, "Author scripts in ES2015 and compile them with Babel")
	f.BoolVar(&createFlags.Compass, "compass", false, "Use Sass stylesheets compiled by Compass")
	f.StringVar(&createFlags.TestFramework, "test-framework", scaffold.TestFrameworkMocha, "Test framework: mocha or jasmine")
	f.StringVar(&createFlags.Channel, "channel", permissions.ChannelStable, "Offer permissions available on this Chrome channel: stable, beta or dev")
	f.BoolVar(&createFlags.SkipInstall, "skip-install", false, "Do not run npm install and bower install")
	f.BoolVar(&createFlags.SkipMessage, "skip-install-message", false, "Do not print the install message")
	f.BoolVar(&createFlags.Force, "force", false, "Overwrite existing files")
	f.BoolVar(&createFlags.SkipExisting, "skip-existing", false, "Keep existing files that differ")
	f.BoolVar(&createFlags.DryRun, "dry-run", false, "Print the manifest fields and file plan without writing")
	f.BoolVarP(&createYes, "yes", "y", false, "Do not prompt; use flags and defaults")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [directory]",
	Short: "Scaffold a Chrome extension project",
	Long: `Scaffold a Chrome extension project into directory (default: current directory).

When stdin is a terminal the generator asks for the name, description, UI
action, UI features and permissions. Pass --yes to answer from flags instead.

Examples:
  crxgen create my-ext
  crxgen create my-ext --yes --action Browser --ui options,omnibox --permissions tabs,storage
  crxgen create my-ext --yes --babel=false --compass --test-framework jasmine --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		opts := createFlags
		applyConfigDefaults(cmd, &opts)
		opts.Interactive = !createYes && prompt.IsTerminal(os.Stdin)

		return runCreate(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), dir, opts)
	},
}

// applyConfigDefaults fills flags the user did not pass from the config file.
func applyConfigDefaults(cmd *cobra.Command, opts *createOptions) {
	f := cmd.Flags()
	if !f.Changed("babel") {
		opts.Babel = config.Bool(config.KeyBabel)
	}
	if !f.Changed("compass") {
		opts.Compass = config.Bool(config.KeyCompass)
	}
	if !f.Changed("test-framework") {
		if v := config.Get(config.KeyTestFramework); v != "" {
			opts.TestFramework = v
		}
	}
	if !f.Changed("channel") {
		if v := config.Get(config.KeyChannel); v != "" {
			opts.Channel = v
		}
	}
	if !f.Changed("skip-install") {
		opts.SkipInstall = config.Bool(config.KeySkipInstall)
	}
}

func runCreate(ctx context.Context, in io.Reader, out, errOut io.Writer, dir string, opts createOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	policy, err := conflictPolicy(opts)
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}

	scaffoldOpts := scaffold.Options{
		Compile:          scaffold.CompileModeFor(opts.Babel),
		Style:            scaffold.StyleModeFor(opts.Compass),
		TestFramework:    opts.TestFramework,
		GeneratorName:    branding.CLIName(),
		GeneratorVersion: buildinfo.Normalize(buildVersion),
	}
	if err := scaffoldOpts.Validate(); err != nil {
		return err
	}

	all, err := permissions.Default()
	if err != nil {
		return err
	}
	catalog, err := all.Query(opts.Channel, permissions.TypeExtension)
	if err != nil {
		return err
	}

	raw, err := collectAnswers(in, out, catalog, filepath.Base(absDir), opts)
	if err != nil {
		return err
	}

	cfg, err := answers.Normalize(*raw, catalog)
	if err != nil {
		return err
	}
	logger.Debug("normalized answers",
		zap.String("name", cfg.Name),
		zap.Stringer("action", cfg.Action),
		zap.Strings("permissions", cfg.SelectedPermissions()))

	plan := scaffold.Synthesize(cfg, scaffoldOpts)

	if opts.DryRun {
		printDryRun(out, absDir, cfg, plan)
		return nil
	}

	writer := scaffold.NewFSWriter(absDir, policy)
	gen := scaffold.NewGenerator(templates.Embedded(), writer, logger)
	res, genErr := gen.Generate(plan)
	if res != nil {
		for _, f := range res.Files {
			fmt.Fprintf(out, "  %9s %s\n", f.Status, f.Path)
		}
	}
	if genErr != nil {
		return fmt.Errorf("generating into %s: %w", absDir, genErr)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(errOut, "[WARN] %s\n", w)
	}

	inst := installer.New(out, errOut, logger)
	warnings, err := inst.Install(ctx, absDir, out, installer.Options{
		SkipInstall: opts.SkipInstall,
		SkipMessage: opts.SkipMessage,
	})
	for _, w := range warnings {
		fmt.Fprintf(errOut, "[WARN] %s\n", w)
	}
	return err
}

func conflictPolicy(opts createOptions) (scaffold.ConflictPolicy, error) {
	switch {
	case opts.Force && opts.SkipExisting:
		return 0, fmt.Errorf("--force and --skip-existing are mutually exclusive")
	case opts.Force:
		return scaffold.ConflictOverwrite, nil
	case opts.SkipExisting:
		return scaffold.ConflictSkip, nil
	default:
		return scaffold.ConflictFail, nil
	}
}

// collectAnswers prompts when interactive and otherwise builds the answers
// from flags, with the same defaults the prompt offers.
func collectAnswers(in io.Reader, out io.Writer, catalog prompt.Catalog, dirName string, opts createOptions) (*answers.RawAnswers, error) {
	name := opts.Name
	if name == "" {
		name = dirName
	}
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = prompt.DefaultName
	}
	description := opts.Description
	if description == "" {
		description = prompt.DefaultDescription
	}

	if opts.Interactive {
		return prompt.Run(in, out, catalog, prompt.Defaults{Name: name, Description: description})
	}

	return &answers.RawAnswers{
		Name:        name,
		Description: description,
		Action:      opts.Action,
		UIFeatures:  opts.UIFeatures,
		Permissions: opts.Permissions,
	}, nil
}

func printDryRun(w io.Writer, dir string, cfg answers.Config, plan scaffold.Plan) {
	desc := manifest.Synthesize(cfg)

	fmt.Fprintf(w, "Manifest fields:\n")
	if len(desc.Fields) == 0 {
		fmt.Fprintf(w, "  (none)\n")
	}
	for _, f := range desc.Fields {
		fmt.Fprintf(w, "  %q: %s\n", f.Name, f.Fragment)
	}

	fmt.Fprintf(w, "\nFiles (in %s):\n", dir)
	for _, d := range plan.Dirs {
		fmt.Fprintf(w, "  mkdir %s\n", d)
	}
	for _, p := range plan.Placements {
		fmt.Fprintf(w, "  %s <- %s\n", p.Dest, p.Template)
	}
}
