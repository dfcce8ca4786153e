// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles database initialization and config creation.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and local database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles account and session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage your Movu account and session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create a new Movu account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "first-name",
						Usage:    "First name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "last-name",
						Usage:    "Last name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "age",
						Usage:    "Age in years",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "confirm-password",
						Usage: "Password confirmation (defaults to --password)",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "reset",
				Usage: "Request a password reset link",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email address",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "listen",
						Usage: "Capture the reset token with a local callback server",
					},
					&cli.StringFlag{
						Name:  "new-password",
						Usage: "Complete the reset immediately after capturing the token",
					},
				},
				Action: r.AuthReset,
			},
			{
				Name:  "confirm-reset",
				Usage: "Complete a password reset with a token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "token",
						Usage:    "Reset token from the emailed link",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "new-password",
						Usage:    "New password",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "confirm-password",
						Usage: "Password confirmation (defaults to --new-password)",
					},
				},
				Action: r.AuthConfirmReset,
			},
			{
				Name:  "delete-account",
				Usage: "Permanently delete the signed-in account",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Skip the confirmation prompt",
					},
				},
				Action: r.AuthDeleteAccount,
			},
			{
				Name:   "status",
				Usage:  "Show the current session state",
				Action: r.AuthStatus,
			},
		},
	}
}

// videosCommand handles catalog search and playback
func videosCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "videos",
		Aliases: []string{"v"},
		Usage:   "Search and open catalog videos",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Search the video catalog",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "per-page",
						Usage: "Maximum number of results",
						Value: 15,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.VideosSearch,
			},
			{
				Name:  "open",
				Usage: "Open a video's playback link in the browser",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "index",
						Usage: "Result to open (1-based)",
						Value: 1,
					},
				},
				Action: r.VideosOpen,
			},
		},
	}
}

// favoritesCommand handles the user's favorites and the local cache
func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage your favorite videos",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List favorites (refreshes the local cache)",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "cached",
						Usage: "Read from the local cache without calling the API",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.FavoritesList,
			},
			{
				Name:  "add",
				Usage: "Search the catalog and favorite a result",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "index",
						Usage: "Result to favorite (1-based)",
						Value: 1,
					},
				},
				Action: r.FavoritesAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a favorite by video ID",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "video-id",
					},
				},
				Action: r.FavoritesRemove,
			},
			{
				Name:  "check",
				Usage: "Check whether a video is favorited",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "video-id",
					},
				},
				Action: r.FavoritesCheck,
			},
			{
				Name:   "sync",
				Usage:  "Refresh the local cache from the server",
				Action: r.FavoritesSync,
			},
			{
				Name:  "export",
				Usage: "Export favorites to files",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "format",
						Usage: "Export formats: json, csv, markdown, txt (default: all)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory",
					},
					&cli.BoolFlag{
						Name:  "thumbnails",
						Usage: "Download thumbnail images",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent thumbnail downloads",
						Value: 5,
					},
				},
				Action: r.FavoritesExport,
			},
		},
	}
}

// profileCommand handles profile display and edits
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "View and edit your profile",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the signed-in user's profile",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.ProfileShow,
			},
			{
				Name:  "edit",
				Usage: "Update profile fields",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "first-name",
						Usage: "New first name",
					},
					&cli.StringFlag{
						Name:  "last-name",
						Usage: "New last name",
					},
					&cli.StringFlag{
						Name:  "age",
						Usage: "New age",
					},
					&cli.StringFlag{
						Name:  "email",
						Usage: "New email address",
					},
				},
				Action: r.ProfileEdit,
			},
		},
	}
}

// commentsCommand handles the global comment feed
func commentsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "comments",
		Usage: "Read and post comments",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the comment feed",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CommentsList,
			},
			{
				Name:  "add",
				Usage: "Post a comment",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "text",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "as",
						Usage: "Author label (defaults to the signed-in user's name)",
					},
				},
				Action: r.CommentsAdd,
			},
			{
				Name:  "delete",
				Usage: "Delete a comment by ID",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "comment-id",
					},
				},
				Action: r.CommentsDelete,
			},
		},
	}
}

// apiCommand handles direct API calls to the Movu backend
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the Movu backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

// sitemapCommand prints the full command tree.
func sitemapCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "sitemap",
		Usage:  "Print every available command",
		Action: r.Sitemap,
	}
}

// aboutCommand prints application information.
func aboutCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "about",
		Usage:  "About Movu",
		Action: r.About,
	}
}
