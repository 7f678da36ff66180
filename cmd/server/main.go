package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/mozilla-b2g/dogdish/internal/config"
	"github.com/mozilla-b2g/dogdish/internal/server"
	"github.com/mozilla-b2g/dogdish/internal/server/handlers"
	"github.com/mozilla-b2g/dogdish/internal/updates"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	var (
		port      string
		directory string
		channel   string
	)
	cmd := &cobra.Command{
		Use:           "dogdish",
		Short:         "dogdish serves update manifests for a directory of .mar packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			if port != "" {
				config.Current.Port = port
			}
			if directory != "" {
				config.Current.Directory = directory
			}
			if channel != "" {
				config.Current.Channel = channel
			}
			return serve()
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to serve on (default 8080)")
	cmd.Flags().StringVarP(&directory, "directory", "d", "", "directory of update files (default current directory)")
	cmd.Flags().StringVar(&channel, "channel", "", "update channel, nightly or stable (default nightly)")
	return cmd
}

func serve() error {
	ch, err := updates.ChannelByName(config.Current.Channel)
	if err != nil {
		return err
	}

	// A server with zero updates to hand out is misconfigured; refuse to start.
	registry, err := updates.NewRegistry(config.Current.Directory, ch)
	if err != nil {
		return err
	}

	h := &handlers.UpdateHandler{
		Registry: registry,
		Renderer: &updates.Renderer{
			BaseURL: config.Current.DownloadBaseURL,
			Path:    config.Current.ResolvePath(),
		},
	}

	app := fiber.New(fiber.Config{
		ServerHeader: "dogdish",
		AppName:      "dogdish update server",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	server.RegisterRoutes(app, h)

	fmt.Printf("http://localhost:%s/\n", config.Current.Port)
	return app.Listen(":" + config.Current.Port)
}
