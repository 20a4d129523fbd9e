// Command pluginflow is a small demonstration CLI for the plugin
// framework: it assembles a chef manager from the built-in chefs and
// an optional YAML manifest, lists what is registered, and asks one
// chef to make a dish.
//
// Usage:
//
//	pluginflow -list                          # list registered chefs
//	pluginflow -chef fry                      # make a dish with one chef
//	pluginflow -manifest plugins.yaml -list   # include manifest chefs
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/BaSui01/pluginflow/quick"
)

func main() {
	var (
		manifest = flag.String("manifest", "", "path to a YAML plugin manifest")
		chef     = flag.String("chef", "", "chef identifier to cook with (default: first registered)")
		list     = flag.Bool("list", false, "list registered chefs and exit")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
	}

	opts := []quick.Option{
		quick.WithBuiltinChefs(),
		quick.WithLogger(logger),
	}
	if *manifest != "" {
		opts = append(opts, quick.WithManifest(*manifest))
	}

	m, err := quick.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build chef manager: %v\n", err)
		os.Exit(1)
	}

	if *list {
		for _, id := range m.List() {
			fmt.Println(id)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var dishErr error
	if *chef != "" {
		c, err := m.Get(ctx, *chef)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		dish, err := c.Make(ctx)
		if err != nil {
			dishErr = err
		} else {
			fmt.Printf("%s: %s\n", dish.Technique, dish.Description)
		}
	} else {
		c, err := m.AChef(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		dish, err := c.Make(ctx)
		if err != nil {
			dishErr = err
		} else {
			fmt.Printf("%s: %s\n", dish.Technique, dish.Description)
		}
	}
	if dishErr != nil {
		fmt.Fprintf(os.Stderr, "cooking failed: %v\n", dishErr)
		os.Exit(1)
	}
}
