package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/abdul-hamid-achik/quest/packages/core/config"
	"github.com/abdul-hamid-achik/quest/packages/core/quest"
	"github.com/abdul-hamid-achik/quest/packages/http"
	"github.com/spf13/cobra"
)

type goOptions struct {
	vars     []string
	headers  []string
	params   []string
	timeout  string
	gzip     bool
	deflate  bool
	brotli   bool
	insecure bool
	proxy    string
	dryRun   bool
	fail     bool
	include  bool
	output   string
}

func newGoCmd(global *globalOptions) *cobra.Command {
	opts := &goOptions{}

	goCmd := &cobra.Command{
		Use:   "go <quest>",
		Short: "Resolve a quest and send it",
		Long: `Resolve a quest from the quest file and send it.

Global, quest and command line values are merged per section, with the
command line winning. valueFrom entries are read from the process
environment first, then from the env file.

Examples:
  quest go get
  quest go get -v path-param=anything -p new-param=value
  quest go post -H "content-type=text/plain" --include
  quest go get --dry-run`,
		Args: exactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return completeQuestNames(global, cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return goCommand(cmd, global, opts, args[0])
		},
	}

	f := goCmd.Flags()
	f.StringArrayVarP(&opts.vars, "var", "v", nil, "Set a URL var (key=value, repeatable)")
	f.StringArrayVarP(&opts.headers, "header", "H", nil, "Set a header (key=value, repeatable)")
	f.StringArrayVarP(&opts.params, "param", "p", nil, "Set a query param (key=value, repeatable)")
	f.StringVarP(&opts.timeout, "timeout", "t", "30", "Request timeout in seconds or as a duration (env: QUEST_TIMEOUT)")
	f.BoolVar(&opts.gzip, "gzip", false, "Accept gzip compressed responses (env: QUEST_GZIP)")
	f.BoolVar(&opts.deflate, "deflate", false, "Accept deflate compressed responses (env: QUEST_DEFLATE)")
	f.BoolVar(&opts.brotli, "brotli", false, "Accept brotli compressed responses (env: QUEST_BROTLI)")
	f.BoolVarP(&opts.insecure, "insecure", "k", false, "Disable TLS certificate validation (env: QUEST_INSECURE)")
	f.StringVar(&opts.proxy, "proxy", "", "Proxy URL for the request")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Print the resolved request instead of sending it")
	f.BoolVar(&opts.fail, "fail", false, "Exit with code 1 when the response status is not 2xx")
	f.BoolVarP(&opts.include, "include", "i", false, "Print the status line and response headers")
	f.StringVarP(&opts.output, "output", "o", "console", "Dry-run output format: console, json")

	return goCmd
}

func goCommand(cmd *cobra.Command, global *globalOptions, opts *goOptions, name string) error {
	ov, err := parseOverrides(opts.vars, opts.headers, opts.params)
	if err != nil {
		return err
	}

	s, err := global.load(cmd)
	if err != nil {
		return err
	}
	s.logger.Debug("overrides parsed",
		"vars", ov.Vars.Names(),
		"headers", ov.Headers.Names(),
		"params", ov.Params.Names(),
	)

	flags := cmd.Flags()
	override := &config.Config{}
	if flags.Changed("timeout") {
		override.Timeout = opts.timeout
	}
	if flags.Changed("gzip") {
		override.Gzip = config.BoolPtr(opts.gzip)
	}
	if flags.Changed("deflate") {
		override.Deflate = config.BoolPtr(opts.deflate)
	}
	if flags.Changed("brotli") {
		override.Brotli = config.BoolPtr(opts.brotli)
	}
	if flags.Changed("insecure") {
		override.Insecure = config.BoolPtr(opts.insecure)
	}
	s.cfg = s.cfg.Merge(override)

	timeout, err := s.cfg.TimeoutDuration()
	if err != nil {
		return usageError(err)
	}

	doc, err := s.document()
	if err != nil {
		return err
	}
	lookup, err := s.environment()
	if err != nil {
		return err
	}

	req, err := quest.Resolve(doc, name, ov, lookup)
	if err != nil {
		return err
	}
	// Values stay out of the log; they may hold secrets.
	s.logger.Debug("quest resolved",
		"quest", req.Quest,
		"method", req.Method,
		"headers", keys(req.Headers),
		"params", keys(req.Params),
		"body", req.HasBody(),
	)

	if err := http.ValidateURL(req.URL); err != nil {
		return fmt.Errorf("quest %q: %w", name, err)
	}

	if opts.dryRun {
		f, err := s.formatter(cmd, opts.output)
		if err != nil {
			return err
		}
		f.FormatRequest(req)
		return nil
	}

	clientOpts := []http.ClientOption{
		http.WithTimeout(timeout),
		http.WithFollowRedirects(s.cfg.GetFollowRedirects()),
		http.WithValidateSSL(!s.cfg.GetInsecure()),
		http.WithEncodings(http.Encodings{
			Gzip:    s.cfg.GetGzip(),
			Deflate: s.cfg.GetDeflate(),
			Brotli:  s.cfg.GetBrotli(),
		}),
		http.WithLogger(s.logger),
	}
	if s.cfg.MaxRedirects > 0 {
		clientOpts = append(clientOpts, http.WithMaxRedirects(s.cfg.MaxRedirects))
	}
	if opts.proxy != "" {
		clientOpts = append(clientOpts, http.WithProxy(opts.proxy))
	}
	client := http.NewClient(clientOpts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resp, err := client.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("quest %q: %w", name, err)
	}
	s.logger.Info("quest completed",
		"quest", req.Quest,
		"status", resp.StatusCode,
		"duration_ms", resp.DurationMs(),
	)

	s.console(cmd).FormatResponse(resp, opts.include)

	if opts.fail && !resp.IsSuccess() {
		return &exitError{
			code: ExitRequestFailed,
			err:  fmt.Errorf("quest %q: server responded %s", name, resp.Status),
		}
	}
	return nil
}

// completeQuestNames offers the quest names of the current quest file.
func completeQuestNames(global *globalOptions, cmd *cobra.Command, args []string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := global.load(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	doc, err := s.document()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return doc.Names(), cobra.ShellCompDirectiveNoFileComp
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
