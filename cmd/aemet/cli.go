package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/manumora/aemet"
)

// CLI defines the command-line interface structure for Kong.
// Every flag defaults to the production setting, so running without
// arguments refreshes /var/www/html/aemet.html.
type CLI struct {
	URL       string        `default:"${url}" env:"AEMET_URL" help:"Forecast page to snapshot"`
	OutputDir string        `short:"o" default:"${output_dir}" env:"AEMET_OUTPUT_DIR" help:"Directory that receives aemet.html"`
	UserAgent string        `default:"${user_agent}" env:"AEMET_USER_AGENT" help:"User-Agent header sent to AEMET"`
	Timeout   time.Duration `short:"t" default:"0s" env:"AEMET_TIMEOUT" help:"Fetch timeout, 0 waits indefinitely (browser mode uses 30s)"`
	Browser   bool          `short:"b" env:"AEMET_BROWSER" help:"Render the page with headless Chrome"`
	Verbose   bool          `short:"v" help:"Log every step"`
}

func cliVars() kong.Vars {
	return kong.Vars{
		"url":        aemet.DefaultURL,
		"output_dir": aemet.DefaultOutputDir,
		"user_agent": aemet.DefaultUserAgent,
	}
}

// envFileResolver fills flags left unset on the command line from .env
// values. A variable already set in the process environment wins, as it
// would with godotenv.Load.
func envFileResolver(values map[string]string) kong.Resolver {
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, env := range flag.Envs {
			if _, ok := os.LookupEnv(env); ok {
				return nil, nil
			}
			if v, ok := values[env]; ok {
				return v, nil
			}
		}
		return nil, nil
	})
}
