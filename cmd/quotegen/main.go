package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envFile string
	outDir  string
	force   bool

	rootCmd = &cobra.Command{
		Use:   "quotegen",
		Short: "Generate LED display quotes offline",
		Long: `quotegen prices an LED display or reads a cost spreadsheet and writes the
audit workbook, the client proposal PDF and a combined archive to a directory.

Configuration comes from the same environment variables as the server.`,
		PersistentPreRunE: loadEnv,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file to load when present")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "quotes", "directory the artifacts are written to")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "overwrite existing files")

	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(extractCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Printf("⚠️  Received interrupt signal, shutting down...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadEnv(_ *cobra.Command, _ []string) error {
	if envFile == "" {
		return nil
	}
	if _, err := os.Stat(envFile); err != nil {
		return nil
	}
	if err := godotenv.Overload(envFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	return nil
}
