package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/deepblocks/auth-service/internal/app"
	"github.com/deepblocks/auth-service/internal/config"
	"github.com/deepblocks/auth-service/internal/version"
)

func main() {
	var (
		configFile  = flag.String("config", "", "path to config.yml (default: search standard locations)")
		envFile     = flag.String("env", "", "path to .env file (default: search standard locations)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		v := version.Get()
		fmt.Printf("%s %s (%s, built %s, %s)\n",
			config.ServiceName, v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
		return
	}

	var opts []config.LoaderOption
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if *envFile != "" {
		opts = append(opts, config.WithEnvFile(*envFile))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.ServiceName, err)
		os.Exit(1)
	}

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.ServiceName, err)
		os.Exit(1)
	}

	if err := a.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.ServiceName, err)
		os.Exit(1)
	}
}
