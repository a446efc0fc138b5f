package main

import (
	"fmt"
	"os"

	_ "github.com/muhammadheryan/gg-motors/docs"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gg-motors",
	Short: "GG Motors vehicle marketplace API",
}

// @title GG Motors API
// @version 1.0
// @description Vehicle marketplace API: listings with images, users and transactions
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	rootCmd.AddCommand(serveCmd, workerCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
