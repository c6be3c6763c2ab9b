// Command treeviz builds a tree from its level-order encoding and animates a
// traversal over it, in the terminal or over the network.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jeffwilliams/treeviz"
	"github.com/jeffwilliams/treeviz/config"
	"github.com/jeffwilliams/treeviz/logger"
	"github.com/jeffwilliams/treeviz/playback"
)

type rootOpts struct {
	cfgFile string
	debug   bool
	noColor bool
}

var (
	rootOpt rootOpts
	conf    *config.Config
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "treeviz",
	Short: "treeviz animates traversals of trees given in level order",
	Long: `treeviz builds a binary or n-ary tree from an array such as
"[1, null, 3, 2, 4, null, 5, 6]" and plays back the order in which a pre-, in-
or post-order traversal visits its nodes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOpt.cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.BoolVarP(&rootOpt.debug, "debug", "d", false, "turn on debug logging")
	flags.BoolVar(&rootOpt.noColor, "no-color", false, "disable colored log output")
	flags.StringP("kind", "k", "nary", "tree kind: binary or nary")
	flags.StringP("method", "m", "preorder", "traversal: preorder, inorder or postorder")
	flags.Duration("pause", playback.DefaultPause, "time between visits")

	bindFlags(flags, map[string]string{
		config.KeyKind:   "kind",
		config.KeyMethod: "method",
		config.KeyPause:  "pause",
	})

	rootCmd.AddCommand(
		newPrintCmd(),
		newUICmd(),
		newSendCmd(),
		newListenCmd(),
		newWolframCmd(),
	)
}

// bindFlags makes each flag override the config key it is mapped from.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func initConfig() error {
	c, err := config.Load(v, rootOpt.cfgFile)
	if err != nil {
		return err
	}
	conf = c

	return logger.Init(logger.Options{
		Level:        conf.Log.Level,
		Verbose:      rootOpt.debug,
		DisableColor: rootOpt.noColor,
	})
}

// session prepares the tree given on the command line, or the configured one.
func session(args []string) (*treeviz.Session, error) {
	flat := conf.Tree
	if len(args) > 0 {
		flat = strings.Join(args, " ")
	}
	s, err := treeviz.Prepare(flat, conf.Kind, conf.Method)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("built %s tree %s, %s order %v", s.Kind, s.Tree, s.Method, s.Order)
	return s, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logrus.Errorf("treeviz: %v", err)
		os.Exit(1)
	}
}
