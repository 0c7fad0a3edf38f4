package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/config"
	"github.com/sells-group/leadgen-cli/internal/model"
)

// rootFlags holds the command-line overrides for one invocation.
type rootFlags struct {
	companySize string
	industry    string
	location    string
	debug       bool
	output      string
	format      string
	profile     string
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		cfg   *config.Config
	)

	cmd := &cobra.Command{
		Use:   "leadgen-cli",
		Short: "Find, enrich, and draft outreach for B2B leads",
		Long: "Searches Apollo for companies matching size, industry, and location, enriches each one " +
			"with Apollo and Hunter data plus website insights, drafts a personalized outreach email, " +
			"and writes everything to a CSV or XLSX report.",
		Args:          cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDotEnv(".env"); err != nil {
				return err
			}

			c, err := config.Load()
			if err != nil {
				return eris.Wrap(err, "load config")
			}
			applyFlags(cmd, &flags, c)
			if err := c.Validate(); err != nil {
				return err
			}
			cfg = c

			if err := config.InitLogger(cfg.Log); err != nil {
				return eris.Wrap(err, "init logger")
			}

			for _, key := range cfg.MissingKeys() {
				zap.L().Warn("api key not configured, affected calls will return no data", zap.String("key", key))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPipeline(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			criteria := model.SearchCriteria{
				CompanySize: cfg.Search.CompanySize,
				Industry:    cfg.Search.Industry,
				Location:    cfg.Search.Location,
			}
			_, err = p.Run(cmd.Context(), criteria)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.companySize, "company_size", "", "company size range, e.g. 50-200 (default from config)")
	f.StringVar(&flags.industry, "industry", "", "industry to search (default from config)")
	f.StringVar(&flags.location, "location", "", "optional location filter (default from config)")
	f.BoolVar(&flags.debug, "debug", false, "log raw provider responses")
	f.StringVar(&flags.output, "output", "", "report file path (default from config, leads_output.csv)")
	f.StringVar(&flags.format, "format", "", "report format: csv or xlsx (default from config)")
	f.StringVar(&flags.profile, "profile", "", "YAML file describing the sending business")

	return cmd
}

// applyFlags overlays the flags the user actually set onto c.
func applyFlags(cmd *cobra.Command, flags *rootFlags, c *config.Config) {
	set := cmd.Flags().Changed
	if set("company_size") {
		c.Search.CompanySize = flags.companySize
	}
	if set("industry") {
		c.Search.Industry = flags.industry
	}
	if set("location") {
		c.Search.Location = flags.location
	}
	if set("output") {
		c.Report.Path = flags.output
	}
	if set("format") {
		c.Report.Format = flags.format
	}
	if set("profile") {
		c.Outreach.ProfilePath = flags.profile
	}
	if flags.debug {
		c.Log.Level = "debug"
	}
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return eris.Wrapf(err, "load %s", path)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
