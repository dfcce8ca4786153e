package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Sitemap prints the full command tree, one line per reachable command.
func (r *Runner) Sitemap(ctx context.Context, cmd *cli.Command) error {
	r.writePlainHeader("Movu Sitemap")
	root := cmd.Root()
	for _, top := range root.Commands {
		r.printCommandTree(root.Name, top)
	}
	return nil
}

func (r *Runner) printCommandTree(prefix string, cmd *cli.Command) {
	full := prefix + " " + cmd.Name
	if len(cmd.Commands) == 0 {
		r.writePlain("%s - %s\n", full, cmd.Usage)
		return
	}
	for _, sub := range cmd.Commands {
		r.printCommandTree(full, sub)
	}
}

// About prints application information.
func (r *Runner) About(ctx context.Context, cmd *cli.Command) error {
	r.writePlainHeader("About Movu")
	r.writePlain("Movu is a terminal client for the Movu video service.\n")
	r.writePlain("Search the Pexels-backed catalog, manage favorites, and\n")
	r.writePlain("join the conversation without leaving your shell.\n\n")
	r.writePlain("Version: %s\n", cmd.Root().Version)
	r.writePlain("API: %s\n", r.config.API.BaseURL)
	return nil
}
