package main

import (
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nightable/gamenight/server"
	"github.com/nightable/gamenight/store"
)

const releaseVersion = "0.1.0"

func newCmd(cfg *server.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gamenight",
		Short:         "A party-game server hosting Stampede and Chameleon rooms.",
		Args:          cobra.ExactArgs(0),
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := server.NewServer(store.NewInMemoryGameStore(), *cfg)
			log.Printf("Listening on %s...", cfg.Addr())
			return s.ListenAndServe()
		},
	}

	fs := cmd.Flags()
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	fs.StringVarP(&cfg.Host, "host", "H", cfg.Host, "address to bind to (env: GAMENIGHT_HOST)")
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on (env: GAMENIGHT_PORT)")
	fs.StringVar(&cfg.PublicURL, "public-url", cfg.PublicURL, "external base URL for share links (env: GAMENIGHT_PUBLIC_URL)")

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetVersionTemplate("gamenight v{{.Version}}\n")

	return cmd
}

func main() {
	log.SetFlags(0)

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatal(err.Error())
	}

	cobra.CheckErr(newCmd(&cfg).Execute())
}
