package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wiki-push/internal/adapters/driven/sites"
	"github.com/custodia-labs/wiki-push/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wiki-push/internal/core/domain"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driving"
	"github.com/custodia-labs/wiki-push/internal/core/services"
	"github.com/custodia-labs/wiki-push/internal/logger"
)

// Flags of the root (publish) command.
var (
	domainFlag     string
	siteFlag       string
	emailFlag      string
	passwordFlag   string
	parentPageFlag string
	dryRunFlag     bool
	failFastFlag   bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&domainFlag, "domain", "", `site domain, "site" for consumer sites (required)`)
	f.StringVar(&siteFlag, "site", "", "site name (required)")
	f.StringVar(&emailFlag, "email", "", "account email, the password is prompted for when not given")
	f.StringVar(&passwordFlag, "password", "", "account password")
	f.StringVar(&parentPageFlag, "parent-page", "", "path of the page to create pages under, e.g. /docs (default site root)")
	f.BoolVar(&dryRunFlag, "dry-run", false, "convert pages and report what would be created without contacting the site")
	f.BoolVar(&failFastFlag, "fail-fast", false, "stop at the first page that fails")
}

// publishOptions is the fully resolved configuration of a run.
type publishOptions struct {
	Dir        string
	ParentPage string
	DryRun     bool
	FailFast   bool
	Session    driven.SessionConfig
	Content    contentOptions
}

func resolvePublishOptions(cmd *cobra.Command, args []string, cfg driven.ConfigStore) (publishOptions, error) {
	content, err := resolveContentOptions(cmd, cfg)
	if err != nil {
		return publishOptions{}, exitWith(ExitUsage, err)
	}

	opts := publishOptions{
		Dir:        strings.TrimRight(args[0], "/"),
		ParentPage: stringOption(parentPageFlag, cfg, keyParentPage),
		DryRun:     dryRunFlag,
		FailFast:   boolOption(cmd, "fail-fast", failFastFlag, cfg, keyFailFast),
		Content:    content,
		Session: driven.SessionConfig{
			Domain:            stringOption(domainFlag, cfg, keyDomain),
			Site:              stringOption(siteFlag, cfg, keySite),
			Email:             stringOption(emailFlag, cfg, keyEmail),
			Password:          passwordFlag,
			AccessToken:       cfg.GetString(keyAccessToken),
			RefreshToken:      cfg.GetString(keyRefreshToken),
			ClientID:          cfg.GetString(keyClientID),
			ClientSecret:      cfg.GetString(keyClientSecret),
			TokenURL:          cfg.GetString(keyTokenURL),
			RequestsPerSecond: cfg.GetFloat(keyRequestsPerSecond),
			Burst:             cfg.GetInt(keyBurst),
			Debug:             debugFlag,
		},
	}
	if opts.Dir == "" {
		opts.Dir = "/"
	}

	var missing []string
	if opts.Session.Domain == "" {
		missing = append(missing, "--domain")
	}
	if opts.Session.Site == "" {
		missing = append(missing, "--site")
	}
	if len(missing) > 0 {
		return opts, exitWith(ExitMissingOptions, fmt.Errorf("missing required option(s): %s", strings.Join(missing, ", ")))
	}

	return opts, nil
}

func runPublish(cmd *cobra.Command, args []string) error {
	opts, err := resolvePublishOptions(cmd, args, configStore)
	if err != nil {
		return err
	}

	builder, _, err := newContentPipeline(opts.Content)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	styles := newStyles(cmd.OutOrStdout())

	logger.Section("Session")
	store, err := openStore(cmd, opts)
	if err != nil {
		return err
	}

	logger.Section("Scan")
	scanner := services.NewPageScanner(func(name string) {
		cmd.Println(styles.Muted.Render(fmt.Sprintf("Internal page %s skipping", name)))
	})
	tree, err := scanner.Scan(opts.Dir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", opts.Dir, err)
	}

	publisher := services.NewPublisher(store, builder,
		services.WithFailFast(opts.FailFast),
		services.WithObserver(driving.PublishObserver{
			OnCreate: func(name string) {
				cmd.Printf("Creating %s\n", name)
			},
			OnFailure: func(name string, err error) {
				cmd.Println(styles.Error.Render(fmt.Sprintf("Failed %s: %v", name, err)))
				if hint := failureHint(err); hint != "" {
					cmd.Println(styles.Muted.Render("  " + hint))
				}
			},
		}),
	)

	result, err := publisher.Publish(ctx, tree, opts.ParentPage)
	if result != nil {
		printReport(cmd, styles, result, opts.DryRun)
	}
	if err != nil && errors.Is(err, domain.ErrParentNotFound) {
		return fmt.Errorf("%w (create it on the site first)", err)
	}
	return err
}

// openStore opens a session, or an in-memory site for a dry run.
func openStore(cmd *cobra.Command, opts publishOptions) (driven.SiteStore, error) {
	if opts.DryRun {
		store := memory.NewSiteStore(sites.RootURL(sites.DefaultSiteURL, opts.Session.Domain, opts.Session.Site))
		if opts.ParentPage != "" {
			store.AddEntry(opts.ParentPage, "")
		}
		cmd.Println("Dry run: nothing will be created.")
		return store, nil
	}

	if sessionFactory == nil {
		return nil, errors.New("session factory not configured")
	}

	session := opts.Session
	if session.Email != "" && session.Password == "" && session.AccessToken == "" && session.RefreshToken == "" {
		password, err := readPassword(cmd, fmt.Sprintf("Password for %s: ", session.Email))
		if err != nil {
			return nil, exitWith(ExitMissingOptions, err)
		}
		session.Password = password
	}

	store, err := sessionFactory.Open(cmd.Context(), session)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// failureHint explains the remote failures a user can act on.
func failureHint(err error) string {
	switch {
	case sites.IsConflict(err):
		return "a page with this name already exists under the parent page"
	case sites.IsRateLimited(err):
		return "the site is rate limiting requests; lower ratelimit.requests_per_second"
	default:
		return ""
	}
}
