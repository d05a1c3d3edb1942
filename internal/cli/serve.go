package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/internal/server"
)

// defaultEnvFiles are the dotenv files serve reads when present.
var defaultEnvFiles = []string{".env", ".env.local"}

// serveCommand creates the serve command, which runs the extraction server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		envFiles []string
		host     string
		port     int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the extraction server",
		Long: `Run the extraction server.

The server accepts POST /upload with a multipart "file" field (PDF, PNG or
JPEG, up to 16 MiB) and answers with the extracted company records.

Settings come from the environment, optionally loaded from .env files:
  HOST, PORT                     listen address (127.0.0.1:5000)
  OPENAI_API_KEY                 enables extraction; without it uploads
                                 return the sample data
  OPENAI_BASE_URL, OPENAI_MODEL  alternative endpoint and model (gpt-4o)
  REDIS_ADDR, REDIS_PASSWORD,    cache model answers in Redis
  REDIS_DB, CACHE_PREFIX
  CORS_ORIGINS                   comma-separated allowed origins (*)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(envFiles...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			ctx := cmd.Context()
			svc, closeCache, err := server.NewService(ctx, cfg, c.Logger)
			if err != nil {
				return fmt.Errorf("initialize service: %w", err)
			}
			defer closeCache()

			printSuccess("Extraction server")
			printKeyValue("address", StyleLink.Render("http://"+cfg.Addr()))
			printKeyValue("model", modelLabel(cfg))
			printKeyValue("cache", cacheLabel(cfg))
			printNewline()

			return server.New(svc, c.Logger, cfg).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", defaultEnvFiles, "dotenv files to load when present")
	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides HOST)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides PORT)")

	return cmd
}

func modelLabel(cfg server.Config) string {
	if cfg.OpenAIKey == "" {
		return StyleWarning.Render("none (sample data)")
	}
	return StyleHighlight.Render(cfg.OpenAIModel)
}

func cacheLabel(cfg server.Config) string {
	if cfg.RedisAddr == "" {
		return StyleDim.Render("off")
	}
	return StyleNumber.Render("redis " + cfg.RedisAddr)
}
