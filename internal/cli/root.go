package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/computerscienceiscool/wa-agent/internal/whatsapp"
)

var rootCmd = &cobra.Command{
	Use:   "wa-agent",
	Short: "WhatsApp instruction agent - sends instruction file steps to one number",
	Long: `wa-agent reads a .txt or .md instruction file and sends its message steps
to one WhatsApp number through the WhatsApp Cloud API (Meta Graph API).

Files may use explicit directive lines:

    SEND: First message
    WAIT: 3
    SEND: Second message

or plain paragraphs separated by blank lines, each sent as one message.`,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("instructions", "", "Path to .txt or .md instructions file")
	rootCmd.PersistentFlags().String("to", "", "Recipient phone number with country code, e.g. +14155552671")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print steps instead of sending WhatsApp messages")
	rootCmd.PersistentFlags().Float64("delay-seconds", 1.0, "Delay after each SEND step when the file has no WAIT directives")
	rootCmd.PersistentFlags().Int("timeout-seconds", 30, "HTTP timeout in seconds for each API request")
	rootCmd.PersistentFlags().String("dotenv", ".env", "Path to .env file for WHATSAPP_TOKEN and WHATSAPP_PHONE_NUMBER_ID")
	rootCmd.PersistentFlags().Bool("json", false, "Print the final report in JSON format")
	rootCmd.PersistentFlags().Bool("verbose", false, "Verbose diagnostic logging")

	// Bind flags to viper
	viper.BindPFlags(rootCmd.PersistentFlags())
}

func init() {
	// Credentials are never flags; they arrive through the environment or
	// the dotenv file.
	viper.SetDefault("api-version", whatsapp.DefaultAPIVersion)

	// Enable environment variables with WHATSAPP prefix
	viper.SetEnvPrefix("WHATSAPP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
